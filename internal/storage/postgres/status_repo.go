// Package postgres содержит реализацию репозиториев поверх PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Avimitin/plct-archrv-pkg-bot/internal/storage"
)

// StatusRepository - репозиторий, для управления статусами пакетов в Postgres.
type StatusRepository struct {
	pool *pgxpool.Pool
}

// NewStatusRepository создаёт экземпляр *StatusRepository
func NewStatusRepository(pool *pgxpool.Pool) *StatusRepository {
	return &StatusRepository{pool: pool}
}

// FindPackager осуществляет поиск мейнтейнера, за которым закреплён пакет pkgname.
func (s *StatusRepository) FindPackager(ctx context.Context, pkgname string) (storage.Packager, error) {
	const query = `
		SELECT p.alias, p.tg_uid
		FROM packagers p
		INNER JOIN assignments a ON a.tg_uid = p.tg_uid
		WHERE a.package = $1
	`

	var packager storage.Packager
	err := s.pool.QueryRow(ctx, query, pkgname).Scan(&packager.Alias, &packager.TgUID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return packager, fmt.Errorf("no packager assigned to package %s", pkgname)
		}

		return packager, fmt.Errorf("query failed: %w", err)
	}
	return packager, nil
}

// DropAssignment снимает назначение пакета pkgname с мейнтейнера tgUID.
func (s *StatusRepository) DropAssignment(ctx context.Context, pkgname string, tgUID int64) error {
	const query = `DELETE FROM assignments WHERE package = $1 AND tg_uid = $2`

	ct, err := s.pool.Exec(ctx, query, pkgname, tgUID)
	if err != nil {
		return fmt.Errorf("drop assignment failed: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("assignment of %s to %d not found", pkgname, tgUID)
	}

	return nil
}

// RemoveMarks удаляет пометки пакета pkgname, попавшие в filter, одним запросом
// и возвращает имена реально удалённых пометок. При filter == nil удаляются все.
func (s *StatusRepository) RemoveMarks(ctx context.Context, pkgname string, filter []storage.Mark) ([]storage.Mark, error) {
	const filteredQuery = `DELETE FROM marks WHERE package = $1 AND mark = ANY($2) RETURNING mark`
	const unfilteredQuery = `DELETE FROM marks WHERE package = $1 RETURNING mark`

	var rows pgx.Rows
	var err error
	if filter == nil {
		rows, err = s.pool.Query(ctx, unfilteredQuery, pkgname)
	} else {
		names := make([]string, 0, len(filter))
		for _, m := range filter {
			names = append(names, string(m))
		}
		rows, err = s.pool.Query(ctx, filteredQuery, pkgname, names)
	}
	if err != nil {
		return nil, fmt.Errorf("delete marks failed: %w", err)
	}

	defer rows.Close()

	var removed []storage.Mark
	for rows.Next() {
		var mark string
		if err := rows.Scan(&mark); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		removed = append(removed, storage.Mark(mark))
	}

	return removed, rows.Err()
}

// GetWorkingList возвращает снимок текущих назначений для дашборда.
func (s *StatusRepository) GetWorkingList(ctx context.Context) ([]storage.WorkUnit, error) {
	const query = `
		SELECT a.package, a.status, p.alias, p.tg_uid
		FROM assignments a
		INNER JOIN packagers p ON p.tg_uid = a.tg_uid
		ORDER BY a.package
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	defer rows.Close()

	var units []storage.WorkUnit
	for rows.Next() {
		var unit storage.WorkUnit
		if err := rows.Scan(&unit.Package, &unit.Status, &unit.Alias, &unit.TgUID); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		units = append(units, unit)
	}

	return units, rows.Err()
}

// GetMarkList возвращает снимок текущих пометок для дашборда.
func (s *StatusRepository) GetMarkList(ctx context.Context) ([]storage.MarkUnit, error) {
	const query = `SELECT package, mark FROM marks ORDER BY package, mark`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	defer rows.Close()

	var units []storage.MarkUnit
	for rows.Next() {
		var unit storage.MarkUnit
		if err := rows.Scan(&unit.Package, &unit.Mark); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		units = append(units, unit)
	}

	return units, rows.Err()
}

package storage

import "context"

// StatusRepository - репозиторий статусов пакетов, назначений и пометок.
type StatusRepository interface {
	FindPackager(ctx context.Context, pkgname string) (Packager, error)
	DropAssignment(ctx context.Context, pkgname string, tgUID int64) error
	RemoveMarks(ctx context.Context, pkgname string, filter []Mark) ([]Mark, error)
	GetWorkingList(ctx context.Context) ([]WorkUnit, error)
	GetMarkList(ctx context.Context) ([]MarkUnit, error)
}

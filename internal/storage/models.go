// Package storage содержит модели данных и интерфейсы репозиториев.
package storage

// PackageStatus - итоговый статус пакета при завершении работы.
type PackageStatus string

const (
	// StatusFTBFS - пакет не собирается из исходников (fails to build from source).
	StatusFTBFS PackageStatus = "ftbfs"
	// StatusLeaf - пакет больше никому не нужен (осиротевший).
	StatusLeaf PackageStatus = "leaf"
)

// IsValid возвращает true, если значение является допустимым статусом.
func (s PackageStatus) IsValid() bool {
	switch s {
	case StatusFTBFS, StatusLeaf:
		return true
	default:
		return false
	}
}

// Mark - пометка на пакете из фиксированного словаря.
type Mark string

const (
	// MarkOutdated - пакет устарел.
	MarkOutdated Mark = "outdated"
	// MarkStuck - работа над пакетом застряла.
	MarkStuck Mark = "stuck"
	// MarkReady - пакет готов к выкладке.
	MarkReady Mark = "ready"
	// MarkOutdatedDep - устаревшая зависимость.
	MarkOutdatedDep Mark = "outdated_dep"
	// MarkMissingDep - отсутствующая зависимость.
	MarkMissingDep Mark = "missing_dep"
	// MarkUnknown - причина неизвестна.
	MarkUnknown Mark = "unknown"
	// MarkIgnore - пакет игнорируется.
	MarkIgnore Mark = "ignore"
	// MarkFailing - сборка пакета падает.
	MarkFailing Mark = "failing"
)

// CleanupMarks возвращает словарь пометок, снимаемых при завершении пакета.
// Пометки вне этого словаря workflow не трогает.
func CleanupMarks() []Mark {
	return []Mark{
		MarkOutdated,
		MarkStuck,
		MarkReady,
		MarkOutdatedDep,
		MarkMissingDep,
		MarkUnknown,
		MarkIgnore,
		MarkFailing,
	}
}

// Packager - мейнтейнер, за которым закреплён пакет.
type Packager struct {
	Alias string
	TgUID int64
}

// WorkUnit - строка списка текущих назначений для дашборда.
type WorkUnit struct {
	Package string
	Status  string
	Alias   string
	TgUID   int64
}

// MarkUnit - строка списка пометок для дашборда.
type MarkUnit struct {
	Package string
	Mark    string
}

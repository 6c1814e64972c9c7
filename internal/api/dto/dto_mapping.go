package dto

import "github.com/Avimitin/plct-archrv-pkg-bot/internal/storage"

// FromStorageWorkList storage.WorkUnit -> массив WorkUnit.
func FromStorageWorkList(units []storage.WorkUnit) []WorkUnit {
	res := make([]WorkUnit, 0, len(units))
	for _, u := range units {
		res = append(res, WorkUnit{
			Package: u.Package,
			Status:  u.Status,
			Alias:   u.Alias,
			TgUID:   u.TgUID,
		})
	}
	return res
}

// FromStorageMarkList storage.MarkUnit -> массив MarkUnit.
func FromStorageMarkList(units []storage.MarkUnit) []MarkUnit {
	res := make([]MarkUnit, 0, len(units))
	for _, u := range units {
		res = append(res, MarkUnit{
			Package: u.Package,
			Mark:    u.Mark,
		})
	}
	return res
}

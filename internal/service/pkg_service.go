package service

import (
	"context"
	"log"

	"github.com/Avimitin/plct-archrv-pkg-bot/internal/apperrors"
	"github.com/Avimitin/plct-archrv-pkg-bot/internal/storage"
)

// PkgService - сервис для чтения текущего состояния пакетов.
type PkgService struct {
	repo storage.StatusRepository
}

// NewPkgService возвращает новый PkgService.
func NewPkgService(repo storage.StatusRepository) *PkgService {
	return &PkgService{repo: repo}
}

// GetWorkingList возвращает список текущих назначений.
func (p *PkgService) GetWorkingList(ctx context.Context) ([]storage.WorkUnit, *apperrors.AppError) {
	units, err := p.repo.GetWorkingList(ctx)
	if err != nil {
		log.Printf("get working list failed: %v", err)
		return nil, &apperrors.AppError{
			Code:    apperrors.ErrStoreFailure,
			Message: "fail to get working list",
			Detail:  err.Error(),
		}
	}
	return units, nil
}

// GetMarkList возвращает список текущих пометок.
func (p *PkgService) GetMarkList(ctx context.Context) ([]storage.MarkUnit, *apperrors.AppError) {
	units, err := p.repo.GetMarkList(ctx)
	if err != nil {
		log.Printf("get mark list failed: %v", err)
		return nil, &apperrors.AppError{
			Code:    apperrors.ErrStoreFailure,
			Message: "fail to get mark list",
			Detail:  err.Error(),
		}
	}
	return units, nil
}

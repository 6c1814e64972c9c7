package handlers

import (
	"net/http"

	"github.com/Avimitin/plct-archrv-pkg-bot/internal/api/dto"
	"github.com/Avimitin/plct-archrv-pkg-bot/internal/service"
)

// PkgHandler обрабатывает запросы состояния пакетов.
type PkgHandler struct {
	PkgService *service.PkgService
}

// NewPkgHandler возвращает новый PkgHandler.
func NewPkgHandler(pkgService *service.PkgService) *PkgHandler {
	return &PkgHandler{PkgService: pkgService}
}

// GetPackages - GET /pkg
func (p *PkgHandler) GetPackages(w http.ResponseWriter, r *http.Request) {
	workList, appErr := p.PkgService.GetWorkingList(r.Context())
	if appErr != nil {
		respondAppError(w, appErr)
		return
	}

	markList, appErr := p.PkgService.GetMarkList(r.Context())
	if appErr != nil {
		respondAppError(w, appErr)
		return
	}

	respondJSON(w, http.StatusOK, dto.PkgResponse{
		WorkList: dto.FromStorageWorkList(workList),
		MarkList: dto.FromStorageMarkList(markList),
	})
}

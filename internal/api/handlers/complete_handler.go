// Package handlers содержит HTTP-обработчики
package handlers

import (
	"net/http"

	"github.com/Avimitin/plct-archrv-pkg-bot/internal/service"
)

// CompleteHandler - обёртка над service.CompleteService для HTTP-эндпоинта
// завершения пакета.
type CompleteHandler struct {
	CompleteService *service.CompleteService
}

// NewCompleteHandler возвращает новый CompleteHandler.
func NewCompleteHandler(completeService *service.CompleteService) *CompleteHandler {
	return &CompleteHandler{CompleteService: completeService}
}

// Complete обрабатывает GET /delete/{pkgname}/{status}
func (c *CompleteHandler) Complete(w http.ResponseWriter, r *http.Request) {
	pkgname := r.PathValue("pkgname")
	status := r.PathValue("status")
	token := r.URL.Query().Get("token")

	if appErr := c.CompleteService.CompletePackage(r.Context(), pkgname, status, token); appErr != nil {
		respondAppError(w, appErr)
		return
	}

	respondOk(w, "package deleted")
}

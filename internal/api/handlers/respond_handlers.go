package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Avimitin/plct-archrv-pkg-bot/internal/api/dto"
	"github.com/Avimitin/plct-archrv-pkg-bot/internal/apperrors"
)

// respondJSON отправляет JSON-ответ с заданным статусом.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode JSON response: %v", err)
	}
}

// respondOk отправляет успешный конверт с подтверждением в detail.
func respondOk(w http.ResponseWriter, detail string) {
	respondJSON(w, http.StatusOK, dto.MsgResponse{
		Status: dto.StatusOk,
		Msg:    "Request success",
		Detail: detail,
	})
}

// respondAppError маппит *apperrors.AppError в конверт ошибки.
func respondAppError(w http.ResponseWriter, err *apperrors.AppError) {
	respondJSON(w, err.HTTPStatus(), dto.MsgResponse{
		Status: dto.StatusFail,
		Msg:    err.Message,
		Detail: err.Detail,
	})
}

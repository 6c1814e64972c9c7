// Package router регистрирует HTTP-маршруты и возвращает http.Handler.
package router

import (
	"net/http"

	"github.com/Avimitin/plct-archrv-pkg-bot/internal/api/handlers"
)

// NewRouter создаёт HTTP router с зарегистрированными маршрутами.
func NewRouter(
	pkgHandler *handlers.PkgHandler,
	completeHandler *handlers.CompleteHandler,
) http.Handler {

	mux := http.NewServeMux()

	mux.HandleFunc("GET /pkg", pkgHandler.GetPackages)
	mux.HandleFunc("GET /delete/{pkgname}/{status}", completeHandler.Complete)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			http.Error(w, "failed to write response", http.StatusInternalServerError)
		}
	})

	return mux
}

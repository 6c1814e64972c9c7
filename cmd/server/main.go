// Package main - точка входа в приложение.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Avimitin/plct-archrv-pkg-bot/internal/api/handlers"
	"github.com/Avimitin/plct-archrv-pkg-bot/internal/api/router"
	"github.com/Avimitin/plct-archrv-pkg-bot/internal/config"
	"github.com/Avimitin/plct-archrv-pkg-bot/internal/infra/postgres"
	"github.com/Avimitin/plct-archrv-pkg-bot/internal/notify"
	"github.com/Avimitin/plct-archrv-pkg-bot/internal/service"
	postgresRepo "github.com/Avimitin/plct-archrv-pkg-bot/internal/storage/postgres"
)

func main() {
	ctx := context.Background()

	dbCfg := config.LoadDB()
	log.Printf("starting server with DB config: host=%s port=%d dbname=%s sslmode=%s",
		dbCfg.Host, dbCfg.Port, dbCfg.Name, dbCfg.SSLmode)

	pool, err := postgres.NewPool(ctx, dbCfg)
	if err != nil {
		log.Fatalf("failed to create DB pool: %v", err)
	}
	log.Println("database connection pool created successfully")

	statusRepo := postgresRepo.NewStatusRepository(pool)

	botCfg := config.LoadBot()
	var bot notify.Notifier
	if botCfg.Token == "" {
		log.Println("warning: TG_BOT_TOKEN is empty, notifications disabled")
		bot = notify.Noop{}
	} else {
		bot = notify.NewTelegramBot(botCfg.Token, botCfg.ChatID)
	}

	serverCfg := config.LoadServer()

	pkgService := service.NewPkgService(statusRepo)
	completeService := service.NewCompleteService(statusRepo, bot, serverCfg.APIToken)

	pkgHandler := handlers.NewPkgHandler(pkgService)
	completeHandler := handlers.NewCompleteHandler(completeService)

	handler := router.NewRouter(pkgHandler, completeHandler)

	srv := &http.Server{
		Addr:         serverCfg.Addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("starting HTTP server on %s", serverCfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	<-quit
	log.Println("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)

	if err := srv.Shutdown(shutdownCtx); err != nil {
		cancel()
		pool.Close()
		log.Fatalf("server forced to shutdown: %v", err)
	}

	cancel()
	pool.Close()
	log.Println("server exited gracefully")
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Tomlord1122/storefront-backend/internal/config"
	"github.com/Tomlord1122/storefront-backend/internal/domain"
	"github.com/Tomlord1122/storefront-backend/internal/logger"
	"github.com/Tomlord1122/storefront-backend/internal/repository"
	"github.com/Tomlord1122/storefront-backend/internal/server"
	"github.com/Tomlord1122/storefront-backend/internal/service"
)

func gracefulShutdown(apiServer *http.Server, log *slog.Logger, done chan bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Info("shutting down gracefully, press Ctrl+C again to force")
	stop()

	ctxTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctxTimeout); err != nil {
		log.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	log.Info("server closed")
	done <- true
}

func main() {
	cfg, err := config.LoadTodo()
	if err != nil {
		slog.Error("load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log, logCloser, err := logger.New("todo", cfg.LogLevel, cfg.LogFile)
	if err != nil {
		slog.Error("init logger", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer logCloser.Close()

	var store *repository.MemoryTodoStore
	if cfg.Seed {
		store = repository.NewMemoryTodoStore(cfg.InitialViews, domain.DefaultTodoSeed()...)
	} else {
		store = repository.NewMemoryTodoStore(cfg.InitialViews)
	}

	todoService := service.NewTodoService(store, log)
	todoServer := server.NewTodoServer(todoService, log)
	httpServer := server.NewHTTPServer(cfg.Addr(), todoServer.RegisterRoutes())

	done := make(chan bool, 1)
	go gracefulShutdown(httpServer, log, done)

	log.Info("todo app running",
		slog.String("url", "http://localhost"+httpServer.Addr),
		slog.String("api", "http://localhost"+httpServer.Addr+"/api/todos"),
	)
	err = httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("http server error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	<-done
	log.Info("graceful shutdown complete")
}

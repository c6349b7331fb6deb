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
	"github.com/Tomlord1122/storefront-backend/internal/database"
	"github.com/Tomlord1122/storefront-backend/internal/logger"
	"github.com/Tomlord1122/storefront-backend/internal/repository"
	"github.com/Tomlord1122/storefront-backend/internal/server"
	"github.com/Tomlord1122/storefront-backend/internal/service"
)

func gracefulShutdown(apiServer *http.Server, dbService database.Service, log *slog.Logger, done chan bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Info("shutting down gracefully, press Ctrl+C again to force")
	stop()

	// The server has 5 seconds to finish in-flight requests.
	ctxTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctxTimeout); err != nil {
		log.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	if err := dbService.Close(); err != nil {
		log.Error("close database pool", slog.String("error", err.Error()))
	}

	log.Info("server exiting")
	done <- true
}

func main() {
	cfg, err := config.LoadShop()
	if err != nil {
		slog.Error("load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log, logCloser, err := logger.New("shop", cfg.LogLevel, cfg.LogFile)
	if err != nil {
		slog.Error("init logger", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer logCloser.Close()

	dbService, err := database.New(cfg.DB, log)
	if err != nil {
		log.Error("connect database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.DB.Bootstrap {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := database.Bootstrap(ctx, dbService.GetDB())
		cancel()
		if err != nil {
			log.Error("database bootstrap failed", slog.String("error", err.Error()))
			_ = dbService.Close()
			os.Exit(1)
		}
		log.Info("database initialized")
	}

	shopRepo := repository.NewGormShopRepository(dbService.GetDB())
	shopService := service.NewShopService(shopRepo, log)
	shopServer := server.NewShopServer(shopService, dbService, log)
	httpServer := server.NewHTTPServer(cfg.Addr(), shopServer.RegisterRoutes())

	done := make(chan bool, 1)
	go gracefulShutdown(httpServer, dbService, log, done)

	log.Info("server started", slog.String("addr", httpServer.Addr))
	err = httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("http server error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	<-done
	log.Info("graceful shutdown complete")
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vytor/chessroyale/internal/api"
	"github.com/vytor/chessroyale/internal/config"
	"github.com/vytor/chessroyale/internal/db"
	"github.com/vytor/chessroyale/internal/lobby"
	"github.com/vytor/chessroyale/internal/logger"
	"github.com/vytor/chessroyale/internal/repository/sqldb"
	"github.com/vytor/chessroyale/internal/services"
)

const sweepInterval = 5 * time.Minute

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(cfg.LogColors),
	)
	logger.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}

	log.Info("===========================================")
	log.Info("Chess Royale Server Starting")
	log.Info("===========================================")
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("database_configured=%t", cfg.HasDatabase())
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("session_idle_timeout=%s", cfg.SessionIdleTimeout)

	// Open database. Without one the server still runs; comment calls fail.
	var database *db.DB
	if !cfg.HasDatabase() {
		log.Error("DATABASE_URL is not set, comments will be unavailable")
	} else {
		var err error
		database, err = db.Open(cfg.DatabaseURL)
		if err != nil {
			log.Error("failed to open database, comments will be unavailable: %v", err)
			database = nil
		}
	}
	if database != nil {
		defer func() {
			log.Debug("closing database connection")
			database.Close()
		}()
	}

	// Initialize services
	annotationService := services.NewAnnotationService(sqldb.NewCommentRepository(database))
	sessions := lobby.NewManager(cfg.SessionIdleTimeout)

	srv := &api.Server{
		Annotations:   annotationService,
		Sessions:      sessions,
		SecureCookies: cfg.SecureCookies,
	}
	if database != nil {
		srv.DB = database
	}

	ctx, cancel := context.WithCancel(logger.NewContext(context.Background(), log))
	go sessions.Run(ctx, sweepInterval)

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("stopping session sweeper")
	cancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("Chess Royale Server Stopped")
	log.Info("===========================================")
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vytor/chessroyale/internal/config"
	"github.com/vytor/chessroyale/internal/db"
	"github.com/vytor/chessroyale/internal/logger"
	"github.com/vytor/chessroyale/internal/repository/sqldb"
	"github.com/vytor/chessroyale/internal/services"
	"github.com/vytor/chessroyale/internal/tui"
	"github.com/vytor/chessroyale/internal/worker"
)

func main() {
	cfg := config.Load()

	// The terminal belongs to the UI; logs go to a file.
	var out io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot open log file %s: %v\n", cfg.LogFile, err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	log := logger.New(
		logger.WithOutput(out),
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(false),
	)
	logger.SetDefault(log)
	log.Info("Chess Royale TUI starting")

	var database *db.DB
	if !cfg.HasDatabase() {
		log.Error("DATABASE_URL is not set, comments will be unavailable")
	} else {
		var err error
		if database, err = db.Open(cfg.DatabaseURL); err != nil {
			log.Error("failed to open database, comments will be unavailable: %v", err)
			database = nil
		}
	}
	if database != nil {
		defer database.Close()
	}

	store := services.NewAnnotationService(sqldb.NewCommentRepository(database))

	// One worker keeps storage calls in submission order.
	pool := worker.NewPool(1, 16)
	pool.Start(logger.NewContext(context.Background(), log))
	defer pool.Stop()

	if err := tui.New(store, pool).Run(); err != nil {
		log.Error("tui exited with error: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Info("Chess Royale TUI stopped")
}

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/lineup/cliparse"
	"github.com/danielhkuo/lineup/db"
	"github.com/danielhkuo/lineup/docstore"
	"github.com/danielhkuo/lineup/middleware"
	"github.com/danielhkuo/lineup/router"
	"github.com/danielhkuo/lineup/seed"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect, verify and create schema
	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbConn, err := db.Open(startCtx, cfg)
	if err != nil {
		slog.Error("database setup failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	dialect, err := docstore.DialectFor(cfg.DatabaseType)
	if err != nil {
		slog.Error("unsupported database type", "error", err)
		os.Exit(1)
	}

	// Document store behind a circuit breaker
	store := docstore.WithBreaker(docstore.NewSQLStore(dbConn, dialect), "document-store", docstore.DefaultBreakerConfig)
	defer store.Close()

	// Optional festival seed
	if cfg.SeedFile != "" {
		n, err := seed.LoadFestivalsFile(startCtx, store, cfg.SeedFile)
		if err != nil {
			slog.Error("festival seeding failed", "file", cfg.SeedFile, "error", err)
			os.Exit(1)
		}
		slog.Info("Festivals seeded", "file", cfg.SeedFile, "count", n)
	}

	// Create router
	mux := router.NewRouter(store, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "store_timeout", cfg.StoreTimeout, "fanout", cfg.ScheduleFanOut)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

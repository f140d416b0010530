// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/filmvote/cliparse"
	"github.com/danielhkuo/filmvote/db"
	"github.com/danielhkuo/filmvote/ledger"
	"github.com/danielhkuo/filmvote/middleware"
	"github.com/danielhkuo/filmvote/router"
)

func main() {
	var err error

	// Load .env if present, then parse configuration
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded configuration from .env")
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the store (SQLite file by default, Postgres optional)
	driver, err := db.DriverName(cfg.DatabaseType)
	if err != nil {
		slog.Error("database configuration invalid", "error", err)
		os.Exit(1)
	}
	dbConn, err := sql.Open(driver, db.DSN(cfg.DatabaseURL, cfg.DatabaseType))
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// SQLite deadlocks on concurrent deferred-transaction writers, so
	// funnel everything through one connection
	if cfg.DatabaseType == db.TypeSQLite {
		dbConn.SetMaxOpenConns(1)
	}

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn, cfg.DatabaseType); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// A fresh store gets a default round so votes are accepted immediately
	round, err := ledger.New(dbConn).EnsureActiveRound()
	if err != nil {
		slog.Error("failed to ensure active round", "error", err)
		os.Exit(1)
	}
	slog.Info("Active round", "round_id", round.ID, "name", round.Name)

	// Create router
	mux, err := router.NewRouter(dbConn, cfg)
	if err != nil {
		slog.Error("router setup failed", "error", err)
		os.Exit(1)
	}

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
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

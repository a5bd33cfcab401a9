// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/lineup/cliparse"
)

// Open connects to the configured database, verifies the connection and
// applies the schema.
func Open(ctx context.Context, cfg cliparse.Config) (*sql.DB, error) {
	driver := cfg.DatabaseType
	if driver != "postgres" && driver != "sqlite" {
		return nil, fmt.Errorf("unsupported database type %q", driver)
	}

	conn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	// A single connection serialises SQLite writers and keeps :memory:
	// databases from splitting across connections.
	if driver == "sqlite" {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := CreateSchema(conn, driver); err != nil {
		conn.Close()
		return nil, err
	}

	return conn, nil
}

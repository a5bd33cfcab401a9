// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the backing database and creates its schema.

# Opening

Open connects with the driver named by DATABASE_TYPE, pings, and applies the
schema:

	conn, err := db.Open(ctx, cfg)

Supported types are "postgres" (lib/pq) and "sqlite" (modernc.org/sqlite).
SQLite is limited to one open connection.

# Schema Creation

CreateSchema is safe to call multiple times - uses IF NOT EXISTS.

# Tables

A single table backs the document store:

  - document: (collection, id) primary key, JSON data, updated_at

Collection values are slash-separated paths such as "users" or
"users/{id}/festivals". The data column is JSONB on PostgreSQL and TEXT on
SQLite.

# Indexes

  - document.(collection, username): username equality and prefix queries
*/
package db

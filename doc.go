// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the lineup API server.

lineup serves festival lineups, lets users follow each other and mark
favorite bands, and builds a personalized schedule that overlays a user's
own favorites with those of everyone they follow.

# Starting the Server

With no configuration the server uses a local SQLite file:

	go run .

Against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 8080 -t postgres -d "postgres://..." -seed festivals.json

# Configuration

Settings are read from flags, then the environment (optionally loaded from
a .env file), then defaults:

  - PORT (-p): Server port (default: 8080)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string (required for postgres)
  - STORE_TIMEOUT (-timeout): Per-operation store deadline (default: 5s)
  - SCHEDULE_FANOUT (-fanout): Concurrent followed-user fetches (default: 8)
  - SEED_FILE (-seed): Festival JSON to load at start-up
  - -env: Env file to load (default: .env)

# Architecture

  - handlers: HTTP request handlers (festivals, users, follows, favorites, schedule)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, metrics, JSON helpers, validation
  - schedule: Personalized schedule builder
  - repository: Typed access to festivals, users and favorites
  - favorites: Favorite-set membership index
  - docstore: Document store over SQL with a circuit breaker
  - metrics: Prometheus collectors
  - models: Stored documents and request/response types
  - seed: Festival loading
  - db: Connection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8080)
  - DatabaseType: "sqlite" (default) or "postgres"
  - DatabaseURL: connection string (default for sqlite: file:lineup.db)
  - StoreTimeout: bound on each document store call (default: 5s)
  - ScheduleFanOut: concurrent favorite fetches per schedule (default: 8)
  - SeedFile: festivals JSON to load at start-up (optional)
  - EnvFile: env file loaded before reading the environment (default: .env)

# CLI Flags

	-p        Server port
	-d        Database URL
	-t        Database type
	-timeout  Store call timeout (Go duration)
	-fanout   Schedule fan-out
	-seed     Seed file
	-env      Env file ("" disables)

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	STORE_TIMEOUT   → -timeout
	SCHEDULE_FANOUT → -fanout
	SEED_FILE       → -seed

The env file is read with godotenv and never overrides variables that are
already set. CLI flags take precedence over both.

# Validation

ParseFlags returns an error if:

  - DATABASE_TYPE is not sqlite or postgres
  - postgres is selected without DATABASE_URL
  - a numeric or duration value does not parse or is out of range
*/
package cliparse

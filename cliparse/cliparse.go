package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort           = 8080
	DefaultDatabaseType   = "sqlite"
	DefaultSQLiteURL      = "file:lineup.db"
	DefaultStoreTimeout   = 5 * time.Second
	DefaultScheduleFanOut = 8
)

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseType   string
	StoreTimeout   time.Duration
	ScheduleFanOut int
	SeedFile       string
	EnvFile        string
}

// ParseFlags parses CLI flags, falling back to environment variables
// (optionally loaded from an env file) and then to defaults
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	flags := flag.NewFlagSet("lineup", flag.ContinueOnError)

	flags.IntVar(&cfg.Port, "p", 0, "Server port")
	flags.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	flags.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	flags.DurationVar(&cfg.StoreTimeout, "timeout", 0, "Timeout for each document store call")
	flags.IntVar(&cfg.ScheduleFanOut, "fanout", 0, "Concurrent favorite fetches per schedule")
	flags.StringVar(&cfg.SeedFile, "seed", "", "JSON file of festivals to load at start-up")
	flags.StringVar(&cfg.EnvFile, "env", ".env", "Env file to load before reading the environment")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	// Existing environment variables win over the file
	if cfg.EnvFile != "" {
		if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load env file %s: %w", cfg.EnvFile, err)
		}
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DefaultDatabaseType
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("invalid database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType != "sqlite" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = DefaultSQLiteURL
	}

	if cfg.StoreTimeout == 0 {
		if s := os.Getenv("STORE_TIMEOUT"); s != "" {
			d, err := time.ParseDuration(s)
			if err != nil {
				return Config{}, errors.New("invalid STORE_TIMEOUT env variable")
			}
			cfg.StoreTimeout = d
		} else {
			cfg.StoreTimeout = DefaultStoreTimeout
		}
	}
	if cfg.StoreTimeout < 0 {
		return Config{}, errors.New("store timeout must be positive")
	}

	if cfg.ScheduleFanOut == 0 {
		if s := os.Getenv("SCHEDULE_FANOUT"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				return Config{}, errors.New("invalid SCHEDULE_FANOUT env variable")
			}
			cfg.ScheduleFanOut = n
		} else {
			cfg.ScheduleFanOut = DefaultScheduleFanOut
		}
	}
	if cfg.ScheduleFanOut < 1 {
		return Config{}, errors.New("schedule fan-out must be at least 1")
	}

	if cfg.SeedFile == "" {
		cfg.SeedFile = os.Getenv("SEED_FILE")
	}

	return cfg, nil
}

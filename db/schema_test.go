package db

import (
	"context"
	"testing"

	"github.com/danielhkuo/lineup/cliparse"
)

func TestOpenSQLiteCreatesSchema(t *testing.T) {
	cfg := cliparse.Config{DatabaseType: "sqlite", DatabaseURL: ":memory:"}

	conn, err := Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer conn.Close()

	// Second run must be a no-op
	if err := CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("CreateSchema not idempotent: %v", err)
	}

	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM document`).Scan(&count); err != nil {
		t.Fatalf("document table missing: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected empty table, got %d rows", count)
	}
}

func TestOpenUnsupportedType(t *testing.T) {
	_, err := Open(context.Background(), cliparse.Config{DatabaseType: "mysql", DatabaseURL: "x"})
	if err == nil {
		t.Fatal("Expected error for unsupported database type")
	}
}

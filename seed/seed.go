// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-json"

	"github.com/danielhkuo/lineup/docstore"
	"github.com/danielhkuo/lineup/models"
)

var festivals = docstore.Collection("festivals")

// LoadFestivals reads a JSON array of festivals and writes each one to
// festivals/{id}, replacing any existing document. It returns the number of
// festivals written.
func LoadFestivals(ctx context.Context, store docstore.Store, r io.Reader) (int, error) {
	var batch []models.Festival
	if err := json.NewDecoder(r).Decode(&batch); err != nil {
		return 0, fmt.Errorf("failed to decode festivals: %w", err)
	}

	// Reject the whole batch before writing anything
	seen := make(map[string]struct{}, len(batch))
	for i, festival := range batch {
		if festival.ID == "" {
			return 0, fmt.Errorf("festival %d has no id", i)
		}
		if _, dup := seen[festival.ID]; dup {
			return 0, fmt.Errorf("festival %q listed twice", festival.ID)
		}
		seen[festival.ID] = struct{}{}
	}

	for _, festival := range batch {
		id := festival.ID
		festival.ID = ""
		if festival.Dates == nil {
			festival.Dates = []string{}
		}
		if festival.Presentations == nil {
			festival.Presentations = []models.Presentation{}
		}

		if err := store.Set(ctx, festivals.Doc(id), festival); err != nil {
			return 0, fmt.Errorf("failed to store festival %s: %w", id, err)
		}
		slog.Info("festival seeded", "festival_id", id, "name", festival.Name)
	}

	return len(batch), nil
}

// LoadFestivalsFile is LoadFestivals over the file at path.
func LoadFestivalsFile(ctx context.Context, store docstore.Store, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return LoadFestivals(ctx, store, f)
}

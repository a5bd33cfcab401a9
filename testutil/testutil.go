// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/danielhkuo/lineup/cliparse"
	"github.com/danielhkuo/lineup/db"
	"github.com/danielhkuo/lineup/docstore"
	"github.com/danielhkuo/lineup/models"
)

// TestFestivalID is the id under which TestFestival is seeded
const TestFestivalID = "rock-fest-2024"

// SetupTestStore returns a document store over a fresh in-memory SQLite database
func SetupTestStore(t *testing.T) *docstore.SQLStore {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return docstore.NewSQLStore(conn, docstore.SQLite)
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           8080,
		DatabaseType:   "sqlite",
		DatabaseURL:    ":memory:",
		StoreTimeout:   2 * time.Second,
		ScheduleFanOut: 4,
	}
}

// TestFestival returns a two-day festival with three bands
func TestFestival() models.Festival {
	friday := time.Date(2024, 7, 12, 0, 0, 0, 0, time.UTC)
	saturday := friday.AddDate(0, 0, 1)

	return models.Festival{
		Name:  "Rock Fest",
		Dates: []string{"2024-07-12", "2024-07-13"},
		Presentations: []models.Presentation{
			{
				Day: "Friday",
				Bands: []models.Band{
					{BandID: "b1", Name: "The Openers", StartTime: friday.Add(18 * time.Hour), EndTime: friday.Add(19 * time.Hour), Stage: "Main"},
					{BandID: "b2", Name: "Night Shift", StartTime: friday.Add(20*time.Hour + 30*time.Minute), EndTime: friday.Add(22 * time.Hour), Stage: "Tent"},
				},
			},
			{
				Day: "Saturday",
				Bands: []models.Band{
					{BandID: "b1", Name: "The Openers (encore)", StartTime: saturday.Add(17 * time.Hour), EndTime: saturday.Add(18 * time.Hour), Stage: "Tent"},
				},
			},
		},
	}
}

// SeedFestival stores festival under id
func SeedFestival(t *testing.T, store docstore.Store, id string, festival models.Festival) {
	t.Helper()

	if err := store.Set(context.Background(), docstore.Collection("festivals").Doc(id), festival); err != nil {
		t.Fatalf("Failed to seed festival: %v", err)
	}
}

// CreateTestUser stores a user and returns the generated id
func CreateTestUser(t *testing.T, store docstore.Store, username string, following ...models.FollowEdge) string {
	t.Helper()

	if following == nil {
		following = []models.FollowEdge{}
	}
	ref, err := store.Add(context.Background(), docstore.Collection("users"), models.User{
		Username:  username,
		Following: following,
	})
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return ref.ID
}

// SetTestFavorites overwrites a user's favorites for a festival
func SetTestFavorites(t *testing.T, store docstore.Store, userID, festivalID string, keys ...models.FavoriteKey) {
	t.Helper()

	if keys == nil {
		keys = []models.FavoriteKey{}
	}
	ref := docstore.Collection("users").Doc(userID).Collection("festivals").Doc(festivalID)
	err := store.Set(context.Background(), ref, models.UserFestivalFavorites{
		FestivalID:    festivalID,
		FavoriteBands: keys,
	})
	if err != nil {
		t.Fatalf("Failed to set test favorites: %v", err)
	}
}

// Fav is shorthand for a FavoriteKey
func Fav(day, bandID string) models.FavoriteKey {
	return models.FavoriteKey{PresentationDay: day, BandID: bandID}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/lineup/models"
	"github.com/danielhkuo/lineup/testutil"
)

func TestCreateUser(t *testing.T) {
	repo, _ := setupTestRepo(t)
	handler := NewUserHandler(repo)

	// First registration creates the user
	req := testutil.MakeRequest("POST", "/users", models.CreateUserRequest{Username: "alice"}, nil)
	w := httptest.NewRecorder()
	handler.CreateUser(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var created models.CreateUserResponse
	testutil.AssertJSON(t, w, &created)
	if created.Message != models.MessageUserCreated {
		t.Errorf("Expected message '%s', got '%s'", models.MessageUserCreated, created.Message)
	}
	if created.UserID == "" {
		t.Fatal("Expected user_id in response")
	}
	if created.User.Username != "alice" || created.User.Following == nil || len(created.User.Following) != 0 {
		t.Errorf("Unexpected user: %+v", created.User)
	}

	// Second registration returns the same user
	req = testutil.MakeRequest("POST", "/users", models.CreateUserRequest{Username: "alice"}, nil)
	w = httptest.NewRecorder()
	handler.CreateUser(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var existing models.CreateUserResponse
	testutil.AssertJSON(t, w, &existing)
	if existing.Message != models.MessageUserExists {
		t.Errorf("Expected message '%s', got '%s'", models.MessageUserExists, existing.Message)
	}
	if existing.UserID != created.UserID {
		t.Errorf("Expected user_id %s, got %s", created.UserID, existing.UserID)
	}
}

func TestCreateUser_BadRequest(t *testing.T) {
	repo, _ := setupTestRepo(t)
	handler := NewUserHandler(repo)

	testCases := []struct {
		name    string
		body    string
		message string
	}{
		{"empty body", "", "Missing request body"},
		{"invalid JSON", "{nope", "Invalid JSON"},
		{"missing username", `{}`, "missing required fields: username"},
		{"blank username", `{"username":""}`, "missing required fields: username"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/users", strings.NewReader(tc.body))
			w := httptest.NewRecorder()

			handler.CreateUser(w, req)

			testutil.AssertStatus(t, w, http.StatusBadRequest)

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Message != tc.message {
				t.Errorf("Expected message '%s', got '%s'", tc.message, resp.Message)
			}
		})
	}
}

func TestFindUsers(t *testing.T) {
	repo, store := setupTestRepo(t)
	handler := NewUserHandler(repo)

	fan := testutil.CreateTestUser(t, store, "band_fan")
	banker := testutil.CreateTestUser(t, store, "banker")
	testutil.CreateTestUser(t, store, "zzz")

	req := testutil.MakeRequest("GET", "/users/find?user=ban", nil, nil)
	w := httptest.NewRecorder()
	handler.FindUsers(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var found []models.UserSummary
	testutil.AssertJSON(t, w, &found)

	expected := []models.UserSummary{
		{Username: "band_fan", UserID: fan},
		{Username: "banker", UserID: banker},
	}
	if len(found) != len(expected) {
		t.Fatalf("Expected %d results, got %+v", len(expected), found)
	}
	for i := range expected {
		if found[i] != expected[i] {
			t.Errorf("Result %d: expected %+v, got %+v", i, expected[i], found[i])
		}
	}
}

func TestFindUsers_NoMatch(t *testing.T) {
	repo, _ := setupTestRepo(t)
	handler := NewUserHandler(repo)

	req := testutil.MakeRequest("GET", "/users/find?user=nobody", nil, nil)
	w := httptest.NewRecorder()
	handler.FindUsers(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("Expected empty array, got %s", body)
	}
}

func TestFindUsers_MissingParameter(t *testing.T) {
	repo, _ := setupTestRepo(t)
	handler := NewUserHandler(repo)

	for _, path := range []string{"/users/find", "/users/find?user="} {
		req := testutil.MakeRequest("GET", path, nil, nil)
		w := httptest.NewRecorder()
		handler.FindUsers(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)

		var resp models.ErrorResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Message != "Missing 'user' parameter" {
			t.Errorf("%s: unexpected message '%s'", path, resp.Message)
		}
	}
}

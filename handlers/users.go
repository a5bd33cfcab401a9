// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/lineup/middleware"
	"github.com/danielhkuo/lineup/models"
	"github.com/danielhkuo/lineup/repository"
)

type UserHandler struct {
	repo *repository.Repository
}

func NewUserHandler(repo *repository.Repository) *UserHandler {
	return &UserHandler{repo: repo}
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, created, err := h.repo.CreateUser(r.Context(), req.Username)
	if err != nil {
		writeError(w, err, "create user")
		return
	}

	// An existing username is returned as-is with the same status
	message := models.MessageUserExists
	if created {
		message = models.MessageUserCreated
		slog.Info("user created", "user_id", user.ID, "username", user.Username)
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CreateUserResponse{
		Message: message,
		User:    user,
		UserID:  user.ID,
	})
}

// FindUsers handles GET /users/find?user=
func (h *UserHandler) FindUsers(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("user")
	if prefix == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing 'user' parameter")
		return
	}

	found, err := h.repo.FindUsersByUsernamePrefix(r.Context(), prefix)
	if err != nil {
		writeError(w, err, "search users")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, found)
}

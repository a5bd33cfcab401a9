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

type FollowHandler struct {
	repo *repository.Repository
}

func NewFollowHandler(repo *repository.Repository) *FollowHandler {
	return &FollowHandler{repo: repo}
}

// Follow handles POST /users/{userId}/follow
func (h *FollowHandler) Follow(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	var req models.FollowRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.repo.FollowUser(r.Context(), userID, req.UserID, req.Username); err != nil {
		writeError(w, err, "follow user")
		return
	}

	slog.Info("user followed", "user_id", userID, "target_id", req.UserID)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "User followed successfully",
	})
}

// GetFollowing handles GET /users/{userId}/following
func (h *FollowHandler) GetFollowing(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	following, err := h.repo.GetFollowing(r.Context(), userID)
	if err != nil {
		writeError(w, err, "get following list")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, following)
}

// Unfollow handles DELETE /users/{userId}/following/{followingId}
func (h *FollowHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	followingID := r.PathValue("followingId")

	if err := h.repo.UnfollowUser(r.Context(), userID, followingID); err != nil {
		writeError(w, err, "unfollow user")
		return
	}

	slog.Info("user unfollowed", "user_id", userID, "target_id", followingID)

	middleware.JSONResponse(w, http.StatusOK, models.StatusResponse{
		Status:  "success",
		Message: "Unfollowed user " + followingID,
	})
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/lineup/middleware"
	"github.com/danielhkuo/lineup/models"
	"github.com/danielhkuo/lineup/repository"
)

type FavoriteHandler struct {
	repo *repository.Repository
}

func NewFavoriteHandler(repo *repository.Repository) *FavoriteHandler {
	return &FavoriteHandler{repo: repo}
}

// SetFavorite handles POST /users/{userId}/{festivalId}/favorite
func (h *FavoriteHandler) SetFavorite(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	festivalID := r.PathValue("festivalId")

	var req models.FavoriteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	key := models.FavoriteKey{PresentationDay: req.PresentationDay, BandID: req.BandID}
	if err := h.repo.SetFavorite(r.Context(), userID, festivalID, key, *req.Favorite); err != nil {
		writeError(w, err, "update favorite")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Band favorite status updated successfully",
	})
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/lineup/middleware"
	"github.com/danielhkuo/lineup/repository"
)

type FestivalHandler struct {
	repo *repository.Repository
}

func NewFestivalHandler(repo *repository.Repository) *FestivalHandler {
	return &FestivalHandler{repo: repo}
}

// GetFestival handles GET /festivals?festivalId=
func (h *FestivalHandler) GetFestival(w http.ResponseWriter, r *http.Request) {
	festivalID := r.URL.Query().Get("festivalId")
	if festivalID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing festivalId parameter")
		return
	}

	festival, err := h.repo.GetFestival(r.Context(), festivalID)
	if err != nil {
		writeError(w, err, "get festival")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, festival)
}

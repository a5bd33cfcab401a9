// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/lineup/cliparse"
	"github.com/danielhkuo/lineup/middleware"
	"github.com/danielhkuo/lineup/repository"
	"github.com/danielhkuo/lineup/schedule"
)

type ScheduleHandler struct {
	builder *schedule.Builder
}

func NewScheduleHandler(repo *repository.Repository, cfg cliparse.Config) *ScheduleHandler {
	return &ScheduleHandler{builder: schedule.NewBuilder(repo, cfg.ScheduleFanOut)}
}

// GetSchedule handles GET /users/{userId}/{festivalId}/schedule
func (h *ScheduleHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	festivalID := r.PathValue("festivalId")

	result, err := h.builder.Build(r.Context(), userID, festivalID)
	if err != nil {
		writeError(w, err, "build schedule")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, result)
}

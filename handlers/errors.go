// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/lineup/docstore"
	"github.com/danielhkuo/lineup/middleware"
	"github.com/danielhkuo/lineup/repository"
)

// writeError maps repository and store errors onto HTTP responses.
// action completes "Failed to ..." for unexpected errors.
func writeError(w http.ResponseWriter, err error, action string) {
	var nf *repository.NotFoundError
	switch {
	case errors.As(err, &nf):
		middleware.ErrorResponse(w, http.StatusNotFound, notFoundMessage(nf))
	case errors.Is(err, context.Canceled):
		slog.Info("request canceled", "action", action)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Request canceled")
	case errors.Is(err, docstore.ErrUnavailable):
		slog.Warn("document store unavailable", "action", action, "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Service temporarily unavailable")
	default:
		slog.Error("failed to "+action, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to "+action)
	}
}

func notFoundMessage(nf *repository.NotFoundError) string {
	switch nf.Kind {
	case repository.KindUser:
		return "User not found"
	case repository.KindFestival:
		return "Festival not found"
	case repository.KindFollowTarget:
		return "User to follow not found"
	case repository.KindFollowEdge:
		return fmt.Sprintf("User %s not found in following list", nf.ID)
	default:
		return "Not found"
	}
}

// decodeBody parses and validates a JSON request body, writing a 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := middleware.ParseJSONBody(r, v); err != nil {
		if errors.Is(err, io.EOF) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Missing request body")
		} else {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		}
		return false
	}

	if err := middleware.ValidateStruct(v); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return false
	}

	return true
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/lineup/cliparse"
	"github.com/danielhkuo/lineup/docstore"
	"github.com/danielhkuo/lineup/handlers"
	"github.com/danielhkuo/lineup/middleware"
	"github.com/danielhkuo/lineup/repository"
)

func NewRouter(store docstore.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	repo := repository.New(store, cfg.StoreTimeout)
	festivalHandler := handlers.NewFestivalHandler(repo)
	userHandler := handlers.NewUserHandler(repo)
	followHandler := handlers.NewFollowHandler(repo)
	favoriteHandler := handlers.NewFavoriteHandler(repo)
	scheduleHandler := handlers.NewScheduleHandler(repo, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus scrape endpoint
	mux.Handle("GET /metrics", promhttp.Handler())

	// Festivals
	mux.HandleFunc("GET /festivals", middleware.WithLogging(festivalHandler.GetFestival))

	// Users
	mux.HandleFunc("POST /users", middleware.WithLogging(userHandler.CreateUser))
	mux.HandleFunc("GET /users/find", middleware.WithLogging(userHandler.FindUsers))

	// Following
	mux.HandleFunc("POST /users/{userId}/follow", middleware.WithLogging(followHandler.Follow))
	mux.HandleFunc("GET /users/{userId}/following", middleware.WithLogging(followHandler.GetFollowing))
	mux.HandleFunc("DELETE /users/{userId}/following/{followingId}", middleware.WithLogging(followHandler.Unfollow))

	// Favorites and schedule
	mux.HandleFunc("POST /users/{userId}/{festivalId}/favorite", middleware.WithLogging(favoriteHandler.SetFavorite))
	mux.HandleFunc("GET /users/{userId}/{festivalId}/schedule", middleware.WithLogging(scheduleHandler.GetSchedule))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("lineup API v1"))
	})

	return mux
}

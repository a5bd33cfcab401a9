// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the lineup API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, cfg)

The store is wrapped in a repository whose calls are bounded by
cfg.StoreTimeout.

# Endpoints

Operational:

	GET /health  - Liveness
	GET /metrics - Prometheus metrics
	GET /        - Banner

Festivals:

	GET /festivals?festivalId= - Festival lineup

Users:

	POST /users             - Register (idempotent on username)
	GET  /users/find?user=  - Username prefix search

Following:

	POST   /users/{userId}/follow                  - Follow a user
	GET    /users/{userId}/following               - List followed users
	DELETE /users/{userId}/following/{followingId} - Unfollow

Favorites and schedule:

	POST /users/{userId}/{festivalId}/favorite - Mark or unmark a band
	GET  /users/{userId}/{festivalId}/schedule - Personalized schedule

API routes are wrapped with middleware.WithLogging.
*/
package router

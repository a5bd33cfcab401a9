// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the lineup API.

# Handler Types

Each handler is a struct over the repository:

  - FestivalHandler: festival lineup lookup
  - UserHandler: registration and username prefix search
  - FollowHandler: follow, unfollow and following list
  - FavoriteHandler: per-festival band favorites
  - ScheduleHandler: personalized schedule

Handlers are created via constructor functions:

	repo := repository.New(store, cfg.StoreTimeout)
	userHandler := handlers.NewUserHandler(repo)
	scheduleHandler := handlers.NewScheduleHandler(repo, cfg)

# Endpoints

	GET    /festivals?festivalId=               → GetFestival
	POST   /users                               → CreateUser
	GET    /users/find?user=                    → FindUsers
	POST   /users/{userId}/follow               → Follow
	GET    /users/{userId}/following            → GetFollowing
	DELETE /users/{userId}/following/{followingId} → Unfollow
	POST   /users/{userId}/{festivalId}/favorite → SetFavorite
	GET    /users/{userId}/{festivalId}/schedule → GetSchedule

Registering an existing username is not an error: the existing user is
returned with 201 and the message "User already exists".

# Errors

Error bodies have the form {"error": <status text>, "message": <detail>}.
Missing entities map to 404 with a message naming what was missing, an
unavailable document store maps to 503, and anything else to 500.
*/
package handlers

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON (validated with go-playground/validator tags):

  - CreateUserRequest: username
  - FollowRequest: user_id, username
  - FavoriteRequest: presentation_day, band_id, favorite

# Response Types

  - CreateUserResponse: message, user, user_id
  - UserSummary: username, user_id (prefix search results)
  - MessageResponse / StatusResponse: mutation acknowledgements
  - ErrorResponse: error, message

# Domain Types

Stored documents:

  - Festival: festivals/{id}, read-only to the API
  - User: users/{id}, following list keyed by user_id
  - UserFestivalFavorites: users/{id}/festivals/{festivalId}

Value types:

  - Presentation, Band: lineup structure nested in Festival
  - FollowEdge: followed user id plus cached username
  - FavoriteKey: (presentation_day, band_id), compared structurally

# Schedule Types

The personalized view returned by the schedule endpoint:

	Schedule -> []PresentationSchedule -> []ScheduledBand

Each ScheduledBand carries favorite (the requester's own mark) and following
(followed users who marked the same band). Times marshal as RFC 3339.
*/
package models

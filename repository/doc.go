// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package repository provides typed access to the documents behind the API.

# Documents

	festivals/{festivalId}                 → models.Festival
	users/{userId}                         → models.User
	users/{userId}/festivals/{festivalId}  → models.UserFestivalFavorites

# Usage

	repo := repository.New(store, cfg.StoreTimeout)
	user, err := repo.GetUser(ctx, userID)

Every operation is bounded by the timeout given to New. A timeout surfaces
as docstore.ErrUnavailable, never as a not-found.

# Errors

Missing entities are reported as *NotFoundError with a Kind:

  - KindUser: the acting user does not exist
  - KindFestival: the festival does not exist
  - KindFollowTarget: the user to follow does not exist
  - KindFollowEdge: the user is not in the following list

All of them unwrap to ErrNotFound. A missing favorites document is not an
error; it reads as an empty set.

# Set Semantics

Following lists are keyed by user id (see models.User.Follow), favorite
lists by (presentation_day, band_id) (see favorites.Index). Mutations go
through docstore.Store.Update, so each is atomic on its single document.

Username uniqueness is checked before insert but not serialised; two
concurrent creates with the same username may both succeed.
*/
package repository

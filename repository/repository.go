// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/lineup/docstore"
	"github.com/danielhkuo/lineup/favorites"
	"github.com/danielhkuo/lineup/models"
)

// prefixUpperBound closes a prefix range over the Basic Multilingual Plane.
const prefixUpperBound = "\uf8ff"

var (
	festivals = docstore.Collection("festivals")
	users     = docstore.Collection("users")
)

func userRef(userID string) docstore.DocRef {
	return users.Doc(userID)
}

func favoritesRef(userID, festivalID string) docstore.DocRef {
	return userRef(userID).Collection("festivals").Doc(festivalID)
}

// Repository provides typed access to festivals, users, follows and favorites.
type Repository struct {
	store   docstore.Store
	timeout time.Duration
}

// New returns a repository over store. Each store call is bounded by timeout;
// zero disables the bound.
func New(store docstore.Store, timeout time.Duration) *Repository {
	return &Repository{store: store, timeout: timeout}
}

func (r *Repository) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

// GetFestival returns the festival document with its id filled in.
func (r *Repository) GetFestival(ctx context.Context, festivalID string) (models.Festival, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	snap, err := r.store.Get(ctx, festivals.Doc(festivalID))
	if errors.Is(err, docstore.ErrNotFound) {
		return models.Festival{}, notFound(KindFestival, festivalID)
	}
	if err != nil {
		return models.Festival{}, fmt.Errorf("failed to get festival: %w", err)
	}

	var festival models.Festival
	if err := snap.DataTo(&festival); err != nil {
		return models.Festival{}, err
	}
	festival.ID = snap.ID()
	if festival.Dates == nil {
		festival.Dates = []string{}
	}
	if festival.Presentations == nil {
		festival.Presentations = []models.Presentation{}
	}

	return festival, nil
}

// GetUser returns the user document with its id filled in.
func (r *Repository) GetUser(ctx context.Context, userID string) (models.User, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	snap, err := r.store.Get(ctx, userRef(userID))
	if errors.Is(err, docstore.ErrNotFound) {
		return models.User{}, notFound(KindUser, userID)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return decodeUser(snap)
}

func decodeUser(snap *docstore.Snapshot) (models.User, error) {
	var user models.User
	if err := snap.DataTo(&user); err != nil {
		return models.User{}, err
	}
	user.ID = snap.ID()
	if user.Following == nil {
		user.Following = []models.FollowEdge{}
	}
	return user, nil
}

// FindUsersByUsernamePrefix returns users whose username starts with prefix,
// ordered by username.
func (r *Repository) FindUsersByUsernamePrefix(ctx context.Context, prefix string) ([]models.UserSummary, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	snaps, err := r.store.FindRange(ctx, users, "username", prefix, prefix+prefixUpperBound)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	found := make([]models.UserSummary, 0, len(snaps))
	for _, snap := range snaps {
		user, err := decodeUser(snap)
		if err != nil {
			return nil, err
		}
		found = append(found, models.UserSummary{Username: user.Username, UserID: user.ID})
	}

	return found, nil
}

// CreateUser creates a user with an empty following list. If the username is
// already taken the existing user is returned with created=false.
//
// The existence check and the insert are separate calls, so two concurrent
// creates with the same username can both succeed.
func (r *Repository) CreateUser(ctx context.Context, username string) (user models.User, created bool, err error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	existing, err := r.store.FindEqual(ctx, users, "username", username)
	if err != nil {
		return models.User{}, false, fmt.Errorf("failed to look up username: %w", err)
	}
	if len(existing) > 0 {
		user, err := decodeUser(existing[len(existing)-1])
		return user, false, err
	}

	user = models.User{Username: username, Following: []models.FollowEdge{}}
	ref, err := r.store.Add(ctx, users, user)
	if err != nil {
		return models.User{}, false, fmt.Errorf("failed to create user: %w", err)
	}
	user.ID = ref.ID

	return user, true, nil
}

// FollowUser records that userID follows targetID. The following list is keyed
// by user id: following the same user again refreshes the cached username.
func (r *Repository) FollowUser(ctx context.Context, userID, targetID, targetUsername string) error {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	if _, err := r.store.Get(ctx, userRef(userID)); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return notFound(KindUser, userID)
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if _, err := r.store.Get(ctx, userRef(targetID)); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return notFound(KindFollowTarget, targetID)
		}
		return fmt.Errorf("failed to get user to follow: %w", err)
	}

	err := r.store.Update(ctx, userRef(userID), func(cur *docstore.Snapshot) (any, error) {
		if cur == nil {
			return nil, notFound(KindUser, userID)
		}
		user, err := decodeUser(cur)
		if err != nil {
			return nil, err
		}
		if !user.Follow(models.FollowEdge{UserID: targetID, Username: targetUsername}) {
			return nil, nil
		}
		return user, nil
	})
	if err != nil {
		return wrapMutation("follow user", err)
	}

	return nil
}

// UnfollowUser removes targetID from userID's following list.
func (r *Repository) UnfollowUser(ctx context.Context, userID, targetID string) error {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	err := r.store.Update(ctx, userRef(userID), func(cur *docstore.Snapshot) (any, error) {
		if cur == nil {
			return nil, notFound(KindUser, userID)
		}
		user, err := decodeUser(cur)
		if err != nil {
			return nil, err
		}
		if !user.Unfollow(targetID) {
			return nil, notFound(KindFollowEdge, targetID)
		}
		return user, nil
	})
	if errors.Is(err, docstore.ErrInvalidPath) {
		return notFound(KindUser, userID)
	}
	if err != nil {
		return wrapMutation("unfollow user", err)
	}

	return nil
}

// GetFollowing returns the user's following list, empty when they follow nobody.
func (r *Repository) GetFollowing(ctx context.Context, userID string) ([]models.FollowEdge, error) {
	user, err := r.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Following, nil
}

// GetFavorites returns the user's favorites for a festival. A missing
// favorites document is an empty set, not an error.
func (r *Repository) GetFavorites(ctx context.Context, userID, festivalID string) ([]models.FavoriteKey, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	snap, err := r.store.Get(ctx, favoritesRef(userID, festivalID))
	if errors.Is(err, docstore.ErrNotFound) {
		return []models.FavoriteKey{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get favorites: %w", err)
	}

	var favs models.UserFestivalFavorites
	if err := snap.DataTo(&favs); err != nil {
		return nil, err
	}
	if favs.FavoriteBands == nil {
		favs.FavoriteBands = []models.FavoriteKey{}
	}

	return favs.FavoriteBands, nil
}

// SetFavorite marks (want=true) or unmarks a band for the user, creating the
// favorites document on first use. Both directions are idempotent. A festival
// id that cannot name a document is reported as a missing festival.
func (r *Repository) SetFavorite(ctx context.Context, userID, festivalID string, key models.FavoriteKey, want bool) error {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	if _, err := r.store.Get(ctx, userRef(userID)); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return notFound(KindUser, userID)
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	err := r.store.Update(ctx, favoritesRef(userID, festivalID), func(cur *docstore.Snapshot) (any, error) {
		favs := models.UserFestivalFavorites{FestivalID: festivalID}
		if cur != nil {
			if err := cur.DataTo(&favs); err != nil {
				return nil, err
			}
		}

		idx := favorites.NewIndex(favs.FavoriteBands)
		var changed bool
		if want {
			changed = idx.Add(key)
		} else {
			changed = idx.Remove(key)
		}

		// An existing, unchanged document is left alone
		if cur != nil && !changed {
			return nil, nil
		}

		favs.FestivalID = festivalID
		favs.FavoriteBands = idx.Keys()
		return favs, nil
	})
	// The user path was valid above, so only the festival id can be at fault
	if errors.Is(err, docstore.ErrInvalidPath) {
		return notFound(KindFestival, festivalID)
	}
	if err != nil {
		return wrapMutation("set favorite", err)
	}

	return nil
}

// wrapMutation keeps not-found errors raised inside an update unwrapped.
func wrapMutation(op string, err error) error {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return err
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

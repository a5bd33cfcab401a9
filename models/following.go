// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Follow adds edge to the following list, keyed by UserID.
// An existing edge for the same user keeps its position and takes the new
// username. Returns false when the list was already up to date.
func (u *User) Follow(edge FollowEdge) bool {
	for i, existing := range u.Following {
		if existing.UserID != edge.UserID {
			continue
		}
		if existing == edge {
			return false
		}
		u.Following[i] = edge
		return true
	}
	u.Following = append(u.Following, edge)
	return true
}

// Unfollow removes every edge pointing at userID and reports whether any was found.
func (u *User) Unfollow(userID string) bool {
	kept := u.Following[:0]
	for _, edge := range u.Following {
		if edge.UserID != userID {
			kept = append(kept, edge)
		}
	}
	removed := len(kept) != len(u.Following)
	u.Following = kept
	return removed
}

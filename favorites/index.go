// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package favorites provides a membership index over (day, band) favorite keys.
package favorites

import "github.com/danielhkuo/lineup/models"

// Index answers "is this band favorited" in constant time.
// The zero value is an empty, usable index.
type Index struct {
	set  map[models.FavoriteKey]struct{}
	keys []models.FavoriteKey
}

// NewIndex builds an index from a stored favorite list, dropping duplicates.
func NewIndex(keys []models.FavoriteKey) *Index {
	idx := &Index{set: make(map[models.FavoriteKey]struct{}, len(keys))}
	for _, k := range keys {
		idx.Add(k)
	}
	return idx
}

// Contains reports whether (day, bandID) is in the index.
func (i *Index) Contains(day, bandID string) bool {
	if i == nil {
		return false
	}
	_, ok := i.set[models.FavoriteKey{PresentationDay: day, BandID: bandID}]
	return ok
}

// Add inserts k, returning false if it was already present.
func (i *Index) Add(k models.FavoriteKey) bool {
	if i.set == nil {
		i.set = make(map[models.FavoriteKey]struct{})
	}
	if _, ok := i.set[k]; ok {
		return false
	}
	i.set[k] = struct{}{}
	i.keys = append(i.keys, k)
	return true
}

// Remove deletes k, returning false if it was not present.
func (i *Index) Remove(k models.FavoriteKey) bool {
	if _, ok := i.set[k]; !ok {
		return false
	}
	delete(i.set, k)
	for n, existing := range i.keys {
		if existing == k {
			i.keys = append(i.keys[:n], i.keys[n+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of distinct keys.
func (i *Index) Len() int {
	if i == nil {
		return 0
	}
	return len(i.set)
}

// Keys returns the distinct keys in first-insertion order.
func (i *Index) Keys() []models.FavoriteKey {
	out := make([]models.FavoriteKey, 0, i.Len())
	if i == nil {
		return out
	}
	return append(out, i.keys...)
}

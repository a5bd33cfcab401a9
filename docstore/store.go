// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package docstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

var (
	ErrNotFound    = errors.New("document not found")
	ErrUnavailable = errors.New("document store unavailable")
	ErrInvalidPath = errors.New("invalid document path")
)

// Store is a collection/document database. Implementations must be safe for
// concurrent use.
type Store interface {
	// Get returns the document at ref, or ErrNotFound.
	Get(ctx context.Context, ref DocRef) (*Snapshot, error)

	// Set creates or overwrites the document at ref with v encoded as JSON.
	Set(ctx context.Context, ref DocRef, v any) error

	// Add stores v under a new store-generated id in coll.
	Add(ctx context.Context, coll CollectionRef, v any) (DocRef, error)

	// Update atomically reads, modifies and writes a single document.
	Update(ctx context.Context, ref DocRef, fn UpdateFunc) error

	// FindEqual returns documents in coll whose top-level string field equals value.
	FindEqual(ctx context.Context, coll CollectionRef, field, value string) ([]*Snapshot, error)

	// FindRange returns documents in coll with lower <= field < upper,
	// ordered ascending by field.
	FindRange(ctx context.Context, coll CollectionRef, field, lower, upper string) ([]*Snapshot, error)

	Close() error
}

// UpdateFunc receives the current document (nil when it does not exist) and
// returns the value to write. Returning a nil value leaves the document
// untouched; returning an error aborts the update and is passed through.
// It may run more than once and must not have side effects.
type UpdateFunc func(current *Snapshot) (any, error)

// Snapshot is a document read from the store.
type Snapshot struct {
	Ref  DocRef
	Data []byte
}

// ID returns the document id.
func (s *Snapshot) ID() string {
	return s.Ref.ID
}

// DataTo decodes the document into v.
func (s *Snapshot) DataTo(v any) error {
	if err := json.Unmarshal(s.Data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", s.Ref.Path(), err)
	}
	return nil
}

func encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return data, nil
}

// CollectionRef names a collection, e.g. "users" or "users/{id}/festivals".
type CollectionRef struct {
	Path string
}

func Collection(path string) CollectionRef {
	return CollectionRef{Path: path}
}

// Doc returns a reference to the document id inside the collection.
func (c CollectionRef) Doc(id string) DocRef {
	return DocRef{Parent: c, ID: id}
}

// DocRef addresses a single document.
type DocRef struct {
	Parent CollectionRef
	ID     string
}

func (d DocRef) Path() string {
	return d.Parent.Path + "/" + d.ID
}

// Collection returns a subcollection nested under the document.
func (d DocRef) Collection(name string) CollectionRef {
	return CollectionRef{Path: d.Path() + "/" + name}
}

func (d DocRef) valid() bool {
	return validSegment(d.ID) && validCollection(d.Parent.Path)
}

func validSegment(s string) bool {
	return s != "" && !strings.Contains(s, "/")
}

// Collection paths alternate collection/document segments and end on a collection.
func validCollection(path string) bool {
	parts := strings.Split(path, "/")
	if len(parts)%2 == 0 {
		return false
	}
	for _, p := range parts {
		if p == "" {
			return false
		}
	}
	return true
}

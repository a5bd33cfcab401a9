// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package repository

import (
	"errors"
	"fmt"
)

// Kinds of missing entity reported by NotFoundError
const (
	KindUser         = "user"
	KindFestival     = "festival"
	KindFollowTarget = "follow target"
	KindFollowEdge   = "following edge"
)

var ErrNotFound = errors.New("not found")

// NotFoundError reports which referenced entity is missing.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

func notFound(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}

// IsNotFound reports whether err is a NotFoundError of the given kind.
func IsNotFound(err error, kind string) bool {
	var nf *NotFoundError
	return errors.As(err, &nf) && nf.Kind == kind
}

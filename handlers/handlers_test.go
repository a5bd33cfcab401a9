// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/danielhkuo/lineup/docstore"
	"github.com/danielhkuo/lineup/repository"
	"github.com/danielhkuo/lineup/testutil"
)

// setupTestRepo returns a repository over a fresh store seeded with the test festival
func setupTestRepo(t *testing.T) (*repository.Repository, docstore.Store) {
	t.Helper()

	store := testutil.SetupTestStore(t)
	testutil.SeedFestival(t, store, testutil.TestFestivalID, testutil.TestFestival())

	return repository.New(store, time.Second), store
}

// downStore fails every call as an unreachable backend would
type downStore struct{}

var errDown = fmt.Errorf("connection refused: %w", docstore.ErrUnavailable)

func (downStore) Get(context.Context, docstore.DocRef) (*docstore.Snapshot, error) {
	return nil, errDown
}

func (downStore) Set(context.Context, docstore.DocRef, any) error {
	return errDown
}

func (downStore) Add(context.Context, docstore.CollectionRef, any) (docstore.DocRef, error) {
	return docstore.DocRef{}, errDown
}

func (downStore) Update(context.Context, docstore.DocRef, docstore.UpdateFunc) error {
	return errDown
}

func (downStore) FindEqual(context.Context, docstore.CollectionRef, string, string) ([]*docstore.Snapshot, error) {
	return nil, errDown
}

func (downStore) FindRange(context.Context, docstore.CollectionRef, string, string, string) ([]*docstore.Snapshot, error) {
	return nil, errDown
}

func (downStore) Close() error { return nil }

func downRepo() *repository.Repository {
	return repository.New(downStore{}, time.Second)
}

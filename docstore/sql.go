// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package docstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/lineup/metrics"
)

// maxUpdateAttempts bounds retries when two updates race to create the same document.
const maxUpdateAttempts = 3

var fieldPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Dialect holds the SQL differences between supported databases.
type Dialect struct {
	Name string

	// numbered placeholders ($1, $2) instead of ?
	numbered bool
	// appended to the row read inside Update
	lockClause string
	// extracts a top-level string field from the data column
	fieldExpr func(field string) string
}

var (
	Postgres = Dialect{
		Name:       "postgres",
		numbered:   true,
		lockClause: " FOR UPDATE",
		fieldExpr: func(field string) string {
			return `(data->>'` + field + `') COLLATE "C"`
		},
	}

	SQLite = Dialect{
		Name: "sqlite",
		fieldExpr: func(field string) string {
			return `json_extract(data, '$.` + field + `')`
		},
	}
)

// DialectFor returns the dialect for a DATABASE_TYPE value.
func DialectFor(dbType string) (Dialect, error) {
	switch dbType {
	case "postgres":
		return Postgres, nil
	case "sqlite":
		return SQLite, nil
	}
	return Dialect{}, fmt.Errorf("unsupported database type %q", dbType)
}

// rebind rewrites ? placeholders for dialects that number them.
func (d Dialect) rebind(query string) string {
	if !d.numbered {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (d Dialect) field(name string) (string, error) {
	if !fieldPattern.MatchString(name) {
		return "", fmt.Errorf("invalid field name %q", name)
	}
	return d.fieldExpr(name), nil
}

// SQLStore keeps every document as a JSON row in the document table.
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
	now     func() time.Time
	newID   func() string
}

func NewSQLStore(db *sql.DB, dialect Dialect) *SQLStore {
	return &SQLStore{
		db:      db,
		dialect: dialect,
		now:     time.Now,
		newID:   newDocumentID,
	}
}

// newDocumentID returns a random 32-character hex id.
func newDocumentID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func observe(op string, start time.Time, err *error) {
	metrics.StoreOperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if *err != nil {
		metrics.StoreErrors.WithLabelValues(op, errorKind(*err)).Inc()
	}
}

func (s *SQLStore) Get(ctx context.Context, ref DocRef) (snap *Snapshot, err error) {
	defer observe("get", time.Now(), &err)

	if !ref.valid() {
		return nil, fmt.Errorf("get %s: %w", ref.Path(), ErrNotFound)
	}

	var data []byte
	err = s.db.QueryRowContext(ctx, s.dialect.rebind(`
		SELECT data FROM document WHERE collection = ? AND id = ?
	`), ref.Parent.Path, ref.ID).Scan(&data)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get %s: %w", ref.Path(), ErrNotFound)
	}
	if err != nil {
		return nil, classify("get "+ref.Path(), err)
	}

	return &Snapshot{Ref: ref, Data: data}, nil
}

func (s *SQLStore) Set(ctx context.Context, ref DocRef, v any) (err error) {
	defer observe("set", time.Now(), &err)

	if !ref.valid() {
		return fmt.Errorf("set %s: %w", ref.Path(), ErrInvalidPath)
	}
	data, err := encode(v)
	if err != nil {
		return err
	}

	if err = s.upsert(ctx, s.db, ref, data); err != nil {
		return classify("set "+ref.Path(), err)
	}
	return nil
}

func (s *SQLStore) Add(ctx context.Context, coll CollectionRef, v any) (ref DocRef, err error) {
	defer observe("add", time.Now(), &err)

	ref = coll.Doc(s.newID())
	if !ref.valid() {
		return DocRef{}, fmt.Errorf("add %s: %w", coll.Path, ErrInvalidPath)
	}
	data, err := encode(v)
	if err != nil {
		return DocRef{}, err
	}

	_, err = s.db.ExecContext(ctx, s.dialect.rebind(`
		INSERT INTO document (collection, id, data, updated_at)
		VALUES (?, ?, ?, ?)
	`), ref.Parent.Path, ref.ID, string(data), s.now().UTC())
	if err != nil {
		return DocRef{}, classify("add "+coll.Path, err)
	}

	return ref, nil
}

func (s *SQLStore) Update(ctx context.Context, ref DocRef, fn UpdateFunc) (err error) {
	defer observe("update", time.Now(), &err)

	if !ref.valid() {
		return fmt.Errorf("update %s: %w", ref.Path(), ErrInvalidPath)
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		var written bool
		written, err = s.updateOnce(ctx, ref, fn)
		if err != nil || written {
			return err
		}
	}
	return fmt.Errorf("update %s: %w: concurrent create did not settle", ref.Path(), ErrUnavailable)
}

// updateOnce returns written=false only when another transaction created the
// document between our read and our insert, in which case the caller retries.
func (s *SQLStore) updateOnce(ctx context.Context, ref DocRef, fn UpdateFunc) (bool, error) {
	op := "update " + ref.Path()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, classify(op, err)
	}
	defer tx.Rollback()

	var data []byte
	err = tx.QueryRowContext(ctx, s.dialect.rebind(`
		SELECT data FROM document WHERE collection = ? AND id = ?`+s.dialect.lockClause,
	), ref.Parent.Path, ref.ID).Scan(&data)

	var current *Snapshot
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return false, classify(op, err)
	default:
		current = &Snapshot{Ref: ref, Data: data}
	}

	v, err := fn(current)
	if err != nil {
		return false, err
	}
	if v == nil {
		if err := tx.Commit(); err != nil {
			return false, classify(op, err)
		}
		return true, nil
	}

	encoded, err := encode(v)
	if err != nil {
		return false, err
	}

	if current == nil {
		res, err := tx.ExecContext(ctx, s.dialect.rebind(`
			INSERT INTO document (collection, id, data, updated_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT (collection, id) DO NOTHING
		`), ref.Parent.Path, ref.ID, string(encoded), s.now().UTC())
		if err != nil {
			return false, classify(op, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return false, classify(op, err)
		}
		if n == 0 {
			return false, nil
		}
	} else if err := s.upsert(ctx, tx, ref, encoded); err != nil {
		return false, classify(op, err)
	}

	if err := tx.Commit(); err != nil {
		return false, classify(op, err)
	}
	return true, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *SQLStore) upsert(ctx context.Context, e execer, ref DocRef, data []byte) error {
	_, err := e.ExecContext(ctx, s.dialect.rebind(`
		INSERT INTO document (collection, id, data, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (collection, id) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at
	`), ref.Parent.Path, ref.ID, string(data), s.now().UTC())
	return err
}

func (s *SQLStore) FindEqual(ctx context.Context, coll CollectionRef, field, value string) (snaps []*Snapshot, err error) {
	defer observe("find_equal", time.Now(), &err)

	expr, err := s.dialect.field(field)
	if err != nil {
		return nil, err
	}

	return s.query(ctx, coll, `
		SELECT id, data FROM document
		WHERE collection = ? AND `+expr+` = ?
		ORDER BY id
	`, coll.Path, value)
}

func (s *SQLStore) FindRange(ctx context.Context, coll CollectionRef, field, lower, upper string) (snaps []*Snapshot, err error) {
	defer observe("find_range", time.Now(), &err)

	expr, err := s.dialect.field(field)
	if err != nil {
		return nil, err
	}

	return s.query(ctx, coll, `
		SELECT id, data FROM document
		WHERE collection = ? AND `+expr+` >= ? AND `+expr+` < ?
		ORDER BY `+expr+`, id
	`, coll.Path, lower, upper)
}

func (s *SQLStore) query(ctx context.Context, coll CollectionRef, query string, args ...any) ([]*Snapshot, error) {
	op := "query " + coll.Path

	rows, err := s.db.QueryContext(ctx, s.dialect.rebind(query), args...)
	if err != nil {
		return nil, classify(op, err)
	}
	defer rows.Close()

	snaps := []*Snapshot{}
	for rows.Next() {
		var id string
		var data []byte
		if err := rows.Scan(&id, &data); err != nil {
			return nil, classify(op, err)
		}
		snaps = append(snaps, &Snapshot{Ref: coll.Doc(id), Data: data})
	}
	if err := rows.Err(); err != nil {
		return nil, classify(op, err)
	}

	return snaps, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

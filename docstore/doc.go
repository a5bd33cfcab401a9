// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package docstore is a small document database: named collections of JSON
documents addressed by slash-separated paths.

# References

	users := docstore.Collection("users")
	user := users.Doc(userID)                        // users/{id}
	fav := user.Collection("festivals").Doc(fid)     // users/{id}/festivals/{fid}

# Operations

  - Get: point lookup, ErrNotFound when absent
  - Set: create or overwrite
  - Add: create with a generated id (uuid, hex)
  - Update: atomic read-modify-write of one document
  - FindEqual / FindRange: queries on a top-level string field

Documents are encoded with goccy/go-json; Snapshot.DataTo decodes them.

# Backends

SQLStore keeps documents in the document table created by package db. The
Postgres dialect locks the row with SELECT ... FOR UPDATE inside Update and
compares strings byte-wise (COLLATE "C"); the SQLite dialect relies on the
single open connection for isolation.

# Errors

Timeouts, cancellation and connection failures are wrapped with
ErrUnavailable so callers can tell them apart from ErrNotFound:

	if errors.Is(err, docstore.ErrUnavailable) {
		// 503
	}

WithBreaker adds a circuit breaker (sony/gobreaker) that opens after
consecutive ErrUnavailable failures and rejects calls with ErrUnavailable
until it half-opens again.
*/
package docstore

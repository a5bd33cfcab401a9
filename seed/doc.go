// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package seed loads festival lineups into the document store.
//
// The input is a JSON array in the stored festival shape plus an "id":
//
//	[{"id": "rock-fest-2024", "festival_name": "Rock Fest", "dates": [...],
//	  "presentations": [{"presentation_day": "Friday", "bands": [...]}]}]
//
// The server runs it at start-up when -seed or SEED_FILE is set.
package seed

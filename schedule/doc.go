// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package schedule joins a festival lineup with a user's favorites and the
// favorites of everyone the user follows.
//
// Each band in the result carries a favorite flag for the requester and a
// following list naming the followed users who marked it. Bands keep the
// order they have in the festival document; following lists keep the order
// of the requester's following list.
package schedule

// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package track

import "github.com/20Youssef10/anime-hub-central/internal/store"

// Tracker bundles the three stores over one KV medium. Each store owns
// its own key; there is no shared mutable state between them.
type Tracker struct {
	Watchlist *Watchlist
	Lists     *CustomLists
	Recent    *Recent
}

// Open loads all three stores from kv.
func Open(kv store.KVStore) (*Tracker, error) {
	w, err := NewWatchlist(kv)
	if err != nil {
		return nil, err
	}
	c, err := NewCustomLists(kv)
	if err != nil {
		return nil, err
	}
	r, err := NewRecent(kv)
	if err != nil {
		return nil, err
	}
	return &Tracker{Watchlist: w, Lists: c, Recent: r}, nil
}

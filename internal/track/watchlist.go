// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package track implements the personal tracking stores: the watchlist,
// custom lists, and the recently-viewed history, all persisted through
// a shared key-value medium, plus the derived statistics over them.
//
// Mutations that target a missing record are silent no-ops. The UI may
// race a removal against an update; crashing the caller over a record
// that just disappeared helps nobody. Only a malformed import payload
// is reported as a failure.
package track

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/20Youssef10/anime-hub-central/internal/store"
)

const watchlistKey = "anitrack:watchlist"

// Watchlist is the authoritative store of per-anime tracking entries.
// At most one entry exists per anime ID. All operations are synchronous
// and persist before returning.
type Watchlist struct {
	observable
	kv      store.KVStore
	entries []Entry
}

// NewWatchlist loads the watchlist collection from kv.
func NewWatchlist(kv store.KVStore) (*Watchlist, error) {
	w := &Watchlist{kv: kv}
	data, err := kv.Get(context.Background(), watchlistKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return w, nil
		}
		return nil, fmt.Errorf("load watchlist: %w", err)
	}
	if err := json.Unmarshal(data, &w.entries); err != nil {
		return nil, fmt.Errorf("unmarshal watchlist: %w", err)
	}
	return w, nil
}

func (w *Watchlist) persist() error {
	data, err := json.Marshal(w.entries)
	if err != nil {
		return fmt.Errorf("marshal watchlist: %w", err)
	}
	if err := w.kv.Set(context.Background(), watchlistKey, data); err != nil {
		return fmt.Errorf("persist watchlist: %w", err)
	}
	w.notify()
	return nil
}

func (w *Watchlist) find(animeID int) int {
	for i := range w.entries {
		if w.entries[i].AnimeID == animeID {
			return i
		}
	}
	return -1
}

// Add creates an entry for animeID with the given status. Adding an
// anime that is already tracked is a no-op; the existing entry is never
// overwritten. StartedAt is stamped only when the initial status is
// watching.
func (w *Watchlist) Add(animeID int, status WatchStatus) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if status == "" {
		status = StatusPlanToWatch
	}
	if w.find(animeID) >= 0 {
		return nil
	}
	e := Entry{
		AnimeID: animeID,
		Status:  status,
	}
	if status == StatusWatching {
		e.StartedAt = time.Now().Format(time.RFC3339)
	}
	w.entries = append(w.entries, e)
	return w.persist()
}

// Update merges patch into the entry for animeID. No-op if the entry
// does not exist.
func (w *Watchlist) Update(animeID int, patch EntryPatch) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	i := w.find(animeID)
	if i < 0 {
		return nil
	}
	patch.apply(&w.entries[i])
	return w.persist()
}

// Remove deletes the entry for animeID if present. Idempotent.
func (w *Watchlist) Remove(animeID int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	i := w.find(animeID)
	if i < 0 {
		return nil
	}
	w.entries = append(w.entries[:i], w.entries[i+1:]...)
	return w.persist()
}

// BulkSetStatus applies status to every tracked entry among animeIDs.
// IDs without an entry are skipped, never created. Entering completed
// stamps CompletedAt; other statuses leave it untouched.
func (w *Watchlist) BulkSetStatus(animeIDs []int, status WatchStatus) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	now := time.Now().Format(time.RFC3339)
	changed := false
	for _, id := range animeIDs {
		i := w.find(id)
		if i < 0 {
			continue
		}
		w.entries[i].Status = status
		if status == StatusCompleted {
			w.entries[i].CompletedAt = now
		}
		changed = true
	}
	if !changed {
		return nil
	}
	return w.persist()
}

// BulkRemove deletes every tracked entry among animeIDs. IDs without an
// entry are no-ops.
func (w *Watchlist) BulkRemove(animeIDs []int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	drop := make(map[int]bool, len(animeIDs))
	for _, id := range animeIDs {
		drop[id] = true
	}
	kept := w.entries[:0]
	changed := false
	for _, e := range w.entries {
		if drop[e.AnimeID] {
			changed = true
			continue
		}
		kept = append(kept, e)
	}
	if !changed {
		return nil
	}
	w.entries = kept
	return w.persist()
}

// IncrementRewatch starts another watch-through: rewatch count goes up
// by one, progress resets to zero, and status is forced to watching.
// No-op if the entry does not exist.
func (w *Watchlist) IncrementRewatch(animeID int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	i := w.find(animeID)
	if i < 0 {
		return nil
	}
	w.entries[i].RewatchCount++
	w.entries[i].Progress = 0
	w.entries[i].Status = StatusWatching
	return w.persist()
}

// AddEpisodeNote attaches a free-text note to one episode of a tracked
// anime. No-op if the entry does not exist.
func (w *Watchlist) AddEpisodeNote(animeID, episode int, text string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	i := w.find(animeID)
	if i < 0 {
		return nil
	}
	if w.entries[i].EpisodeNotes == nil {
		w.entries[i].EpisodeNotes = make(map[int]string)
	}
	w.entries[i].EpisodeNotes[episode] = text
	return w.persist()
}

// RemoveEpisodeNote drops the note for one episode. No-op if the entry
// or note does not exist.
func (w *Watchlist) RemoveEpisodeNote(animeID, episode int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	i := w.find(animeID)
	if i < 0 {
		return nil
	}
	delete(w.entries[i].EpisodeNotes, episode)
	return w.persist()
}

// ToggleFavorite flips the favorite flag. No-op if the entry does not
// exist.
func (w *Watchlist) ToggleFavorite(animeID int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	i := w.find(animeID)
	if i < 0 {
		return nil
	}
	w.entries[i].Favorite = !w.entries[i].Favorite
	return w.persist()
}

// Get returns the entry for animeID, or nil if not tracked.
func (w *Watchlist) Get(animeID int) *Entry {
	w.mu.RLock()
	defer w.mu.RUnlock()
	i := w.find(animeID)
	if i < 0 {
		return nil
	}
	e := w.entries[i]
	return &e
}

// Has reports whether animeID is tracked.
func (w *Watchlist) Has(animeID int) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.find(animeID) >= 0
}

// All returns a copy of every entry in insertion order.
func (w *Watchlist) All() []Entry {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]Entry, len(w.entries))
	copy(out, w.entries)
	return out
}

// ByStatus returns every entry with the given status.
func (w *Watchlist) ByStatus(status WatchStatus) []Entry {
	w.mu.RLock()
	defer w.mu.RUnlock()
	var out []Entry
	for _, e := range w.entries {
		if e.Status == status {
			out = append(out, e)
		}
	}
	return out
}

// Favorites returns every entry flagged as a favorite.
func (w *Watchlist) Favorites() []Entry {
	w.mu.RLock()
	defer w.mu.RUnlock()
	var out []Entry
	for _, e := range w.entries {
		if e.Favorite {
			out = append(out, e)
		}
	}
	return out
}

// Statistics aggregates the current collection.
func (w *Watchlist) Statistics() Statistics {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return ComputeStatistics(w.entries)
}

// ExportJSON serializes the full collection as indented JSON. The
// result round-trips through Import.
func (w *Watchlist) ExportJSON() (string, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	data, err := json.MarshalIndent(w.entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal export: %w", err)
	}
	return string(data), nil
}

// Import parses data as an exported watchlist and applies it. It
// returns false on a parse failure, leaving the collection exactly as
// it was. With merge set, entries whose anime ID is already tracked are
// dropped from the import and existing data is kept; otherwise the
// whole collection is replaced.
func (w *Watchlist) Import(data string, merge bool) bool {
	var imported []Entry
	if err := json.Unmarshal([]byte(data), &imported); err != nil {
		return false
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	// Enforce uniqueness within the payload itself: first wins.
	seen := make(map[int]bool, len(imported))
	unique := imported[:0]
	for _, e := range imported {
		if seen[e.AnimeID] {
			continue
		}
		seen[e.AnimeID] = true
		unique = append(unique, e)
	}
	imported = unique

	if merge {
		for _, e := range imported {
			if w.find(e.AnimeID) >= 0 {
				continue
			}
			w.entries = append(w.entries, e)
		}
	} else {
		w.entries = imported
	}

	if err := w.persist(); err != nil {
		return false
	}
	return true
}

// SortedByProgress returns entries ordered by progress descending;
// ties keep insertion order.
func (w *Watchlist) SortedByProgress() []Entry {
	out := w.All()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Progress > out[j].Progress
	})
	return out
}

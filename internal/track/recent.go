// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package track

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/20Youssef10/anime-hub-central/internal/store"
)

const recentKey = "anitrack:recently_viewed"

// MaxRecentItems bounds the recently-viewed list.
const MaxRecentItems = 20

// Recent is a bounded most-recent-first list of viewed anime. Viewing
// an anime already in the list moves it to the front instead of
// duplicating it; the tail is dropped past MaxRecentItems.
type Recent struct {
	observable
	kv    store.KVStore
	items []RecentItem
}

// NewRecent loads the recently-viewed collection from kv.
func NewRecent(kv store.KVStore) (*Recent, error) {
	r := &Recent{kv: kv}
	data, err := kv.Get(context.Background(), recentKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return r, nil
		}
		return nil, fmt.Errorf("load recently viewed: %w", err)
	}
	if err := json.Unmarshal(data, &r.items); err != nil {
		return nil, fmt.Errorf("unmarshal recently viewed: %w", err)
	}
	return r, nil
}

func (r *Recent) persist() error {
	data, err := json.Marshal(r.items)
	if err != nil {
		return fmt.Errorf("marshal recently viewed: %w", err)
	}
	if err := r.kv.Set(context.Background(), recentKey, data); err != nil {
		return fmt.Errorf("persist recently viewed: %w", err)
	}
	r.notify()
	return nil
}

// RecordView puts animeID at the front of the list with a fresh
// snapshot of title and cover image.
func (r *Recent) RecordView(animeID int, title, coverImage string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.items[:0]
	for _, it := range r.items {
		if it.AnimeID != animeID {
			kept = append(kept, it)
		}
	}
	item := RecentItem{
		AnimeID:    animeID,
		ViewedAt:   time.Now(),
		Title:      title,
		CoverImage: coverImage,
	}
	r.items = append([]RecentItem{item}, kept...)
	if len(r.items) > MaxRecentItems {
		r.items = r.items[:MaxRecentItems]
	}
	return r.persist()
}

// Remove drops animeID from the list if present.
func (r *Recent) Remove(animeID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.AnimeID == animeID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return r.persist()
		}
	}
	return nil
}

// Clear empties the list.
func (r *Recent) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
	if err := r.kv.Delete(context.Background(), recentKey); err != nil {
		return fmt.Errorf("clear recently viewed: %w", err)
	}
	r.notify()
	return nil
}

// All returns a copy of the list, most recent first.
func (r *Recent) All() []RecentItem {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]RecentItem, len(r.items))
	copy(out, r.items)
	return out
}

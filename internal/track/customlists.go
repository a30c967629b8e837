// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package track

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/20Youssef10/anime-hub-central/internal/store"
)

const customListsKey = "anitrack:custom_lists"

// CustomLists stores user-defined named groupings of anime IDs,
// decoupled from watch status. Mutations on a nonexistent list ID are
// silent no-ops, mirroring the watchlist's failure policy.
type CustomLists struct {
	observable
	kv    store.KVStore
	lists []CustomList
}

// NewCustomLists loads the custom list collection from kv.
func NewCustomLists(kv store.KVStore) (*CustomLists, error) {
	c := &CustomLists{kv: kv}
	data, err := kv.Get(context.Background(), customListsKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c, nil
		}
		return nil, fmt.Errorf("load custom lists: %w", err)
	}
	if err := json.Unmarshal(data, &c.lists); err != nil {
		return nil, fmt.Errorf("unmarshal custom lists: %w", err)
	}
	return c, nil
}

func (c *CustomLists) persist() error {
	data, err := json.Marshal(c.lists)
	if err != nil {
		return fmt.Errorf("marshal custom lists: %w", err)
	}
	if err := c.kv.Set(context.Background(), customListsKey, data); err != nil {
		return fmt.Errorf("persist custom lists: %w", err)
	}
	c.notify()
	return nil
}

func (c *CustomLists) find(listID string) int {
	for i := range c.lists {
		if c.lists[i].ID == listID {
			return i
		}
	}
	return -1
}

// Create makes a new empty list. Callers are expected to reject
// empty or whitespace-only names before calling; the store does not
// enforce that.
func (c *CustomLists) Create(name, description, color, icon string) (CustomList, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	l := CustomList{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		AnimeIDs:    []int{},
		Color:       color,
		Icon:        icon,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	c.lists = append(c.lists, l)
	if err := c.persist(); err != nil {
		return CustomList{}, err
	}
	return l, nil
}

// Delete removes the list entirely. Watchlist entries are never
// touched. No-op on an unknown ID.
func (c *CustomLists) Delete(listID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.find(listID)
	if i < 0 {
		return nil
	}
	c.lists = append(c.lists[:i], c.lists[i+1:]...)
	return c.persist()
}

// Update merges metadata fields into the list and refreshes UpdatedAt.
// No-op on an unknown ID.
func (c *CustomLists) Update(listID string, patch ListPatch) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.find(listID)
	if i < 0 {
		return nil
	}
	l := &c.lists[i]
	if patch.Name != nil {
		l.Name = *patch.Name
	}
	if patch.Description != nil {
		l.Description = *patch.Description
	}
	if patch.Color != nil {
		l.Color = *patch.Color
	}
	if patch.Icon != nil {
		l.Icon = *patch.Icon
	}
	l.UpdatedAt = time.Now()
	return c.persist()
}

// AddAnime appends animeID to the list's membership, preserving
// insertion order. Idempotent: an ID already in the list is left alone
// and UpdatedAt is not refreshed.
func (c *CustomLists) AddAnime(listID string, animeID int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.find(listID)
	if i < 0 {
		return nil
	}
	for _, id := range c.lists[i].AnimeIDs {
		if id == animeID {
			return nil
		}
	}
	c.lists[i].AnimeIDs = append(c.lists[i].AnimeIDs, animeID)
	c.lists[i].UpdatedAt = time.Now()
	return c.persist()
}

// RemoveAnime removes animeID from the list's membership if present.
func (c *CustomLists) RemoveAnime(listID string, animeID int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.find(listID)
	if i < 0 {
		return nil
	}
	ids := c.lists[i].AnimeIDs
	for j, id := range ids {
		if id == animeID {
			c.lists[i].AnimeIDs = append(ids[:j], ids[j+1:]...)
			c.lists[i].UpdatedAt = time.Now()
			return c.persist()
		}
	}
	return nil
}

// Contains reports whether animeID is in the list.
func (c *CustomLists) Contains(listID string, animeID int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i := c.find(listID)
	if i < 0 {
		return false
	}
	for _, id := range c.lists[i].AnimeIDs {
		if id == animeID {
			return true
		}
	}
	return false
}

// ListsContaining returns every list whose membership includes animeID.
func (c *CustomLists) ListsContaining(animeID int) []CustomList {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []CustomList
	for _, l := range c.lists {
		for _, id := range l.AnimeIDs {
			if id == animeID {
				out = append(out, l)
				break
			}
		}
	}
	return out
}

// Get returns the list with the given ID, or nil if unknown.
func (c *CustomLists) Get(listID string) *CustomList {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i := c.find(listID)
	if i < 0 {
		return nil
	}
	l := c.lists[i]
	return &l
}

// GetByName returns the first list with the given name, or nil.
func (c *CustomLists) GetByName(name string) *CustomList {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, l := range c.lists {
		if l.Name == name {
			out := l
			return &out
		}
	}
	return nil
}

// All returns a copy of every list in creation order.
func (c *CustomLists) All() []CustomList {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]CustomList, len(c.lists))
	copy(out, c.lists)
	return out
}

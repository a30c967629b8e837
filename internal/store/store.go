// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package store provides the persistent key-value medium backing the
// tracking stores. Implementations are string-keyed, synchronous, and
// durable across restarts (except MemoryStore, which is test/fallback only).
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("store: key not found")

// KVStore is a synchronous string-keyed byte store.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	kv := NewMemoryStore()
	ctx := context.Background()

	if _, err := kv.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get missing key: got %v, want ErrNotFound", err)
	}

	if err := kv.Set(ctx, "k", []byte("v1")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := kv.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "v1" {
		t.Fatalf("Get returned %q, want %q", got, "v1")
	}

	// Overwrite
	if err := kv.Set(ctx, "k", []byte("v2")); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	got, _ = kv.Get(ctx, "k")
	if string(got) != "v2" {
		t.Fatalf("Get after overwrite returned %q, want %q", got, "v2")
	}

	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := kv.Get(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after delete: got %v, want ErrNotFound", err)
	}

	// Deleting a missing key is a no-op
	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete missing key: %v", err)
	}
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	kv := NewMemoryStore()
	ctx := context.Background()

	buf := []byte("original")
	if err := kv.Set(ctx, "k", buf); err != nil {
		t.Fatal(err)
	}
	buf[0] = 'X'

	got, err := kv.Get(ctx, "k")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "original" {
		t.Fatalf("stored value aliased caller buffer: %q", got)
	}
}

func TestSQLiteStorePersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "test.db")
	ctx := context.Background()

	s1, err := OpenSQLiteStore(path)
	if err != nil {
		t.Fatalf("OpenSQLiteStore: %v", err)
	}
	if err := s1.Set(ctx, "k", []byte("persisted")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s1.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Reopen and verify the value survived.
	s2, err := OpenSQLiteStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	got, err := s2.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if string(got) != "persisted" {
		t.Fatalf("Get returned %q, want %q", got, "persisted")
	}

	if _, err := s2.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get missing key: got %v, want ErrNotFound", err)
	}
}

// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/20Youssef10/anime-hub-central/internal/anilist"
	"github.com/20Youssef10/anime-hub-central/internal/cmd"
	"github.com/20Youssef10/anime-hub-central/internal/config"
	"github.com/20Youssef10/anime-hub-central/internal/store"
	"github.com/20Youssef10/anime-hub-central/internal/track"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "anitrack: failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Storage backend selection. Default: "sqlite" (persistent).
	// Options: "sqlite", "memory" (in-memory only, no persistence).
	var kv store.KVStore

	switch cfg.Storage {
	case "sqlite":
		// If SQLite fails (permissions, corrupted file), fall back to the
		// in-memory store so the tool remains operational without persistence.
		sqlite, err := store.OpenSQLiteStore(cfg.DBPath())
		if err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: cannot open SQLite database: %v\n", err)
			fmt.Fprintln(os.Stderr, "         falling back to in-memory store (no persistence)")
			kv = store.NewMemoryStore()
			break
		}
		kv = sqlite

	case "memory":
		kv = store.NewMemoryStore()

	default:
		fmt.Fprintf(os.Stderr, "anitrack: unknown storage backend %q (choose sqlite or memory)\n", cfg.Storage)
		os.Exit(1)
	}
	defer kv.Close()

	tracker, err := track.Open(kv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "anitrack: failed to load tracking data: %v\n", err)
		os.Exit(1)
	}

	catalog := anilist.NewClient(cfg.CatalogURL, cfg.CatalogTimeout)

	root := cmd.NewRootCmd(cfg, tracker, catalog)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

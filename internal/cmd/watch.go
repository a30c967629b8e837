// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/20Youssef10/anime-hub-central/internal/config"
	"github.com/20Youssef10/anime-hub-central/internal/track"
)

func newWatchFolderCmd(cfg *config.Config, tracker *track.Tracker) *cobra.Command {
	var (
		replace    bool
		debounceMs int
	)

	cmd := &cobra.Command{
		Use:   "watch <directory>",
		Short: "Watch a folder for watchlist exports and auto-import",
		Long: `Monitor a directory for JSON watchlist exports and import each one as
it appears. Useful for syncing exports dropped by another device.

Examples:
  anitrack watch ~/Dropbox/anitrack
  anitrack watch ~/Downloads --replace`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]

			info, err := os.Stat(dir)
			if err != nil {
				return fmt.Errorf("cannot access directory %s: %w", dir, err)
			}
			if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", dir)
			}

			return watchDirectory(dir, tracker, !replace, debounceMs)
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "Replace the watchlist with each import instead of merging")
	cmd.Flags().IntVar(&debounceMs, "debounce", 1000, "Debounce milliseconds for file events")

	return cmd
}

func watchDirectory(dir string, tracker *track.Tracker, merge bool, debounceMs int) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch directory: %w", err)
	}
	log.Printf("Watching: %s", dir)
	log.Println("Press Ctrl+C to stop watching")

	// Debounce so half-written files are not imported.
	pending := make(map[string]*time.Timer)
	var pendingMu sync.Mutex

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !strings.HasSuffix(strings.ToLower(event.Name), ".json") {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}

			pendingMu.Lock()
			if timer, exists := pending[event.Name]; exists {
				timer.Stop()
			}
			pending[event.Name] = time.AfterFunc(time.Duration(debounceMs)*time.Millisecond, func() {
				pendingMu.Lock()
				delete(pending, event.Name)
				pendingMu.Unlock()

				if err := importExportFile(event.Name, tracker, merge); err != nil {
					log.Printf("Failed to import %s: %v", event.Name, err)
				}
			})
			pendingMu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

func importExportFile(path string, tracker *track.Tracker, merge bool) error {
	log.Printf("Importing: %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}
	if ok := tracker.Watchlist.Import(string(data), merge); !ok {
		return fmt.Errorf("not a valid watchlist export")
	}

	log.Printf("Imported %s, watchlist now has %d entries", path, len(tracker.Watchlist.All()))
	return nil
}

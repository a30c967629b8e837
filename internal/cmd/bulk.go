// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/20Youssef10/anime-hub-central/internal/config"
	"github.com/20Youssef10/anime-hub-central/internal/track"
)

func newBulkCmd(cfg *config.Config, tracker *track.Tracker) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bulk",
		Short: "Apply one change to many entries",
	}

	cmd.AddCommand(newBulkStatusCmd(tracker))
	cmd.AddCommand(newBulkRemoveCmd(tracker))

	return cmd
}

func parseAnimeIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid anime id %q", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func newBulkStatusCmd(tracker *track.Tracker) *cobra.Command {
	return &cobra.Command{
		Use:   "status <status> <anime-id> [anime-id...]",
		Short: "Set the status of several entries at once",
		Long: `Set every listed entry to the given status. IDs that are not on
the watchlist are skipped.

Example:
  anitrack bulk status completed 5114 16498 21459`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := parseStatusFlag(args[0])
			if err != nil {
				return err
			}
			ids, err := parseAnimeIDs(args[1:])
			if err != nil {
				return err
			}

			if err := tracker.Watchlist.BulkSetStatus(ids, st); err != nil {
				return err
			}

			updated := 0
			for _, id := range ids {
				if tracker.Watchlist.Has(id) {
					updated++
				}
			}
			fmt.Printf("Set %d entr%s to %s.\n", updated, plural(updated, "y", "ies"), st)
			return nil
		},
	}
}

func newBulkRemoveCmd(tracker *track.Tracker) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <anime-id> [anime-id...]",
		Short: "Remove several entries at once",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseAnimeIDs(args)
			if err != nil {
				return err
			}

			present := 0
			for _, id := range ids {
				if tracker.Watchlist.Has(id) {
					present++
				}
			}
			if err := tracker.Watchlist.BulkRemove(ids); err != nil {
				return err
			}
			fmt.Printf("Removed %d entr%s.\n", present, plural(present, "y", "ies"))
			return nil
		},
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

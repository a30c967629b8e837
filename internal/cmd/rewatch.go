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

func newRewatchCmd(cfg *config.Config, tracker *track.Tracker) *cobra.Command {
	return &cobra.Command{
		Use:   "rewatch <anime-id>",
		Short: "Start rewatching an anime",
		Long: `Bump the rewatch counter, reset episode progress to zero, and set
the status back to watching.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid anime id %q", args[0])
			}
			if !tracker.Watchlist.Has(id) {
				return fmt.Errorf("anime %d is not on your watchlist", id)
			}

			if err := tracker.Watchlist.IncrementRewatch(id); err != nil {
				return err
			}

			e := tracker.Watchlist.Get(id)
			fmt.Printf("Rewatching %d (rewatch #%d).\n", id, e.RewatchCount)
			return nil
		},
	}
}

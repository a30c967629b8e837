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

func newRemoveCmd(cfg *config.Config, tracker *track.Tracker) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <anime-id> [anime-id...]",
		Aliases: []string{"rm"},
		Short:   "Remove anime from your watchlist",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			removed := 0
			for _, arg := range args {
				id, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid anime id %q", arg)
				}
				if !tracker.Watchlist.Has(id) {
					fmt.Printf("Not tracked: %d\n", id)
					continue
				}
				if err := tracker.Watchlist.Remove(id); err != nil {
					return err
				}
				fmt.Printf("Removed: %d\n", id)
				removed++
			}
			if len(args) > 1 {
				fmt.Printf("\nRemoved %d anime.\n", removed)
			}
			return nil
		},
	}
}

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

func newFavoriteCmd(cfg *config.Config, tracker *track.Tracker) *cobra.Command {
	return &cobra.Command{
		Use:     "favorite <anime-id>",
		Aliases: []string{"fav"},
		Short:   "Toggle the favorite flag on an entry",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid anime id %q", args[0])
			}
			if !tracker.Watchlist.Has(id) {
				return fmt.Errorf("anime %d is not on your watchlist", id)
			}

			if err := tracker.Watchlist.ToggleFavorite(id); err != nil {
				return err
			}

			if tracker.Watchlist.Get(id).Favorite {
				fmt.Printf("Favorited %d.\n", id)
			} else {
				fmt.Printf("Unfavorited %d.\n", id)
			}
			return nil
		},
	}
}

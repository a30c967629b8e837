// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/20Youssef10/anime-hub-central/internal/anilist"
	"github.com/20Youssef10/anime-hub-central/internal/config"
	"github.com/20Youssef10/anime-hub-central/internal/track"
)

func newAddCmd(cfg *config.Config, tracker *track.Tracker, catalog *anilist.Client) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "add <anime-id> [anime-id...]",
		Short: "Add anime to your watchlist",
		Long: `Add one or more anime to the watchlist by AniList ID.

Adding an ID that is already tracked leaves the existing entry alone.

Examples:
  anitrack add 5114
  anitrack add 5114 16498 --status watching`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := parseStatusFlag(status)
			if err != nil {
				return err
			}

			added := 0
			for _, arg := range args {
				id, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid anime id %q", arg)
				}
				if tracker.Watchlist.Has(id) {
					fmt.Printf("Already tracked: %d\n", id)
					continue
				}
				if err := tracker.Watchlist.Add(id, st); err != nil {
					return err
				}

				title := fmt.Sprintf("%d", id)
				if anime, err := catalog.ByID(cmd.Context(), id); err == nil {
					title = anime.DisplayTitle()
				}
				fmt.Printf("Added: %s\n", title)
				added++
			}

			if len(args) > 1 {
				fmt.Printf("\nAdded %d anime.\n", added)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "", "Initial status: "+statusChoices())

	return cmd
}

func parseStatusFlag(s string) (track.WatchStatus, error) {
	if s == "" {
		return "", nil
	}
	st, err := track.ParseStatus(s)
	if err != nil {
		return "", fmt.Errorf("invalid status %q (choose %s)", s, statusChoices())
	}
	return st, nil
}

func statusChoices() string {
	all := track.AllStatuses()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

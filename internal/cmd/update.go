// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/20Youssef10/anime-hub-central/internal/config"
	"github.com/20Youssef10/anime-hub-central/internal/track"
)

func newUpdateCmd(cfg *config.Config, tracker *track.Tracker) *cobra.Command {
	var (
		status    string
		progress  int
		score     int
		started   string
		completed string
	)

	cmd := &cobra.Command{
		Use:   "update <anime-id>",
		Short: "Update a watchlist entry",
		Long: `Update the status, episode progress, or score of a tracked anime.

Only the flags you pass are changed; everything else keeps its value.

Examples:
  anitrack update 5114 --progress 12
  anitrack update 5114 --status completed --score 9`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid anime id %q", args[0])
			}
			if !tracker.Watchlist.Has(id) {
				return fmt.Errorf("anime %d is not on your watchlist", id)
			}

			var patch track.EntryPatch
			if cmd.Flags().Changed("status") {
				st, err := parseStatusFlag(status)
				if err != nil {
					return err
				}
				patch.Status = &st
			}
			if cmd.Flags().Changed("progress") {
				if progress < 0 {
					return fmt.Errorf("progress cannot be negative")
				}
				patch.Progress = &progress
			}
			if cmd.Flags().Changed("score") {
				if score < 1 || score > 10 {
					return fmt.Errorf("score must be between 1 and 10")
				}
				patch.Score = &score
			}
			if cmd.Flags().Changed("started") {
				if _, err := time.Parse(time.RFC3339, started); err != nil {
					return fmt.Errorf("invalid --started timestamp (want RFC3339): %w", err)
				}
				patch.StartedAt = &started
			}
			if cmd.Flags().Changed("completed") {
				if _, err := time.Parse(time.RFC3339, completed); err != nil {
					return fmt.Errorf("invalid --completed timestamp (want RFC3339): %w", err)
				}
				patch.CompletedAt = &completed
			}
			if patch.Status == nil && patch.Progress == nil && patch.Score == nil &&
				patch.StartedAt == nil && patch.CompletedAt == nil {
				return fmt.Errorf("nothing to update: pass --status, --progress, --score, --started, or --completed")
			}

			if err := tracker.Watchlist.Update(id, patch); err != nil {
				return err
			}

			e := tracker.Watchlist.Get(id)
			fmt.Printf("Updated %d: status=%s progress=%d", e.AnimeID, e.Status, e.Progress)
			if e.Score != nil {
				fmt.Printf(" score=%d", *e.Score)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "", "New status: "+statusChoices())
	cmd.Flags().IntVarP(&progress, "progress", "p", 0, "Episodes watched")
	cmd.Flags().IntVar(&score, "score", 0, "Score from 1 to 10")
	cmd.Flags().StringVar(&started, "started", "", "Started timestamp (RFC3339)")
	cmd.Flags().StringVar(&completed, "completed", "", "Completed timestamp (RFC3339)")

	return cmd
}

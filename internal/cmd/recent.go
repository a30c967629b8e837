// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/20Youssef10/anime-hub-central/internal/config"
	"github.com/20Youssef10/anime-hub-central/internal/output"
	"github.com/20Youssef10/anime-hub-central/internal/track"
)

func newRecentCmd(cfg *config.Config, tracker *track.Tracker) *cobra.Command {
	var out output.OutputOptions

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show recently viewed anime",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			items := tracker.Recent.All()
			if len(items) == 0 {
				fmt.Println("Nothing viewed recently.")
				return nil
			}

			if out.Is(output.OutputJSON) {
				return output.JSON(items)
			}

			table := output.NewTable("ID", "Title", "Viewed")
			for _, item := range items {
				title := item.Title
				if title == "" {
					title = "-"
				}
				table.AddRow(
					fmt.Sprintf("%d", item.AnimeID),
					truncate(title, 45),
					humanize.Time(item.ViewedAt),
				)
			}
			table.Render()

			return nil
		},
	}

	cmd.AddCommand(newRecentRemoveCmd(tracker))
	cmd.AddCommand(newRecentClearCmd(tracker))
	out.AddOutputFlags(cmd, output.OutputTable)

	return cmd
}

func newRecentRemoveCmd(tracker *track.Tracker) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <anime-id>",
		Short: "Remove one anime from the history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid anime id %q", args[0])
			}
			if err := tracker.Recent.Remove(id); err != nil {
				return err
			}
			fmt.Printf("Removed %d from history.\n", id)
			return nil
		},
	}
}

func newRecentClearCmd(tracker *track.Tracker) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the viewing history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := tracker.Recent.Clear(); err != nil {
				return err
			}
			fmt.Println("History cleared.")
			return nil
		},
	}
}

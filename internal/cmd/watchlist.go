// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/20Youssef10/anime-hub-central/internal/config"
	"github.com/20Youssef10/anime-hub-central/internal/output"
	"github.com/20Youssef10/anime-hub-central/internal/track"
)

func newWatchlistCmd(cfg *config.Config, tracker *track.Tracker) *cobra.Command {
	var (
		out        output.OutputOptions
		status     string
		favorites  bool
		byProgress bool
	)

	cmd := &cobra.Command{
		Use:     "watchlist",
		Aliases: []string{"wl", "ls"},
		Short:   "Show your watchlist",
		Long: `List tracked anime, optionally filtered by status or favorites.

Examples:
  anitrack watchlist
  anitrack watchlist --status watching
  anitrack watchlist --favorites -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			var entries []track.Entry
			switch {
			case favorites:
				entries = tracker.Watchlist.Favorites()
			case status != "":
				st, err := parseStatusFlag(status)
				if err != nil {
					return err
				}
				entries = tracker.Watchlist.ByStatus(st)
			case byProgress:
				entries = tracker.Watchlist.SortedByProgress()
			default:
				entries = tracker.Watchlist.All()
			}

			if len(entries) == 0 {
				fmt.Println("Watchlist is empty.")
				return nil
			}

			if out.Is(output.OutputJSON) {
				return output.JSON(entries)
			}

			table := output.NewTable("ID", "Status", "Progress", "Score", "Rewatches", "Fav")
			for _, e := range entries {
				score := "-"
				if e.Score != nil {
					score = fmt.Sprintf("%d", *e.Score)
				}
				fav := ""
				if e.Favorite {
					fav = "*"
				}
				table.AddRow(
					fmt.Sprintf("%d", e.AnimeID),
					string(e.Status),
					fmt.Sprintf("%d", e.Progress),
					score,
					fmt.Sprintf("%d", e.RewatchCount),
					fav,
				)
			}
			table.Render()

			fmt.Printf("\n%d anime tracked.\n", len(entries))
			return nil
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "", "Filter by status: "+statusChoices())
	cmd.Flags().BoolVarP(&favorites, "favorites", "f", false, "Show only favorites")
	cmd.Flags().BoolVar(&byProgress, "by-progress", false, "Sort by episode progress")
	out.AddOutputFlags(cmd, output.OutputTable)

	return cmd
}

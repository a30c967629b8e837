// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/20Youssef10/anime-hub-central/internal/anilist"
	"github.com/20Youssef10/anime-hub-central/internal/config"
	"github.com/20Youssef10/anime-hub-central/internal/output"
	"github.com/20Youssef10/anime-hub-central/internal/track"
)

func newStatsCmd(cfg *config.Config, tracker *track.Tracker, catalog *anilist.Client) *cobra.Command {
	var (
		out    output.OutputOptions
		genres bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show watchlist statistics",
		Long: `Display statistics about your watchlist: totals, watch time, status
breakdown, and optionally the genre distribution (which queries the
catalog for each tracked anime).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			entries := tracker.Watchlist.All()
			stats := track.ComputeStatistics(entries)
			watchTime := track.ComputeWatchTime(entries)
			dist := track.StatusDistribution(entries)

			var genreDist []track.GenreCount
			if genres {
				genresOf := func(animeID int) []string {
					anime, err := catalog.ByID(cmd.Context(), animeID)
					if err != nil {
						return nil
					}
					return anime.Genres
				}
				genreDist = track.GenreDistribution(entries, genresOf, 10)
			}

			if out.Is(output.OutputJSON) {
				payload := map[string]any{
					"totals":      stats,
					"watch_time":  watchTime,
					"by_status":   dist,
					"favorites":   track.FavoriteCount(entries),
					"list_count":  len(tracker.Lists.All()),
				}
				if genres {
					payload["by_genre"] = genreDist
				}
				return output.JSON(payload)
			}

			fmt.Printf("Watchlist Statistics\n")
			fmt.Printf("====================\n\n")
			fmt.Printf("Anime tracked:  %d\n", stats.TotalAnime)
			fmt.Printf("Episodes seen:  %s\n", humanize.Comma(int64(stats.TotalEpisodes)))
			fmt.Printf("Watch time:     %s minutes (%d hours, %.1f days)\n",
				humanize.Comma(int64(watchTime.Minutes)), watchTime.Hours, watchTime.Days)
			fmt.Printf("Rewatches:      %d\n", stats.TotalRewatches)
			fmt.Printf("Favorites:      %d\n", track.FavoriteCount(entries))
			fmt.Printf("Custom lists:   %d\n", len(tracker.Lists.All()))
			if stats.AverageScore > 0 {
				fmt.Printf("Average score:  %.1f\n", stats.AverageScore)
			}

			fmt.Println("\nBy status:")
			for _, st := range track.AllStatuses() {
				fmt.Printf("  %-14s %d\n", st, dist[st])
			}

			if genres {
				fmt.Println("\nTop genres:")
				for _, g := range genreDist {
					fmt.Printf("  %-14s %d\n", g.Name, g.Count)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&genres, "genres", "g", false, "Include genre distribution (queries the catalog)")
	out.AddOutputFlags(cmd, output.OutputTable)
	return cmd
}

// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/20Youssef10/anime-hub-central/internal/anilist"
	"github.com/20Youssef10/anime-hub-central/internal/config"
	"github.com/20Youssef10/anime-hub-central/internal/output"
	"github.com/20Youssef10/anime-hub-central/internal/track"
)

func newBrowseCmd(cfg *config.Config, tracker *track.Tracker, catalog *anilist.Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the anime catalog",
		Long:  `Browse and search AniList: trending, popular, airing, seasonal, and filtered views.`,
	}

	cmd.AddCommand(newBrowseRankingCmd(tracker, catalog, "trending", "Show trending anime", catalog.Trending))
	cmd.AddCommand(newBrowseRankingCmd(tracker, catalog, "popular", "Show all-time popular anime", catalog.Popular))
	cmd.AddCommand(newBrowseRankingCmd(tracker, catalog, "top", "Show top rated anime", catalog.TopRated))
	cmd.AddCommand(newBrowseRankingCmd(tracker, catalog, "airing", "Show currently airing anime", catalog.Airing))
	cmd.AddCommand(newBrowseSeasonCmd(catalog))
	cmd.AddCommand(newBrowseSearchCmd(catalog))
	cmd.AddCommand(newBrowseFilterCmd(catalog))
	cmd.AddCommand(newBrowseShowCmd(tracker, catalog))
	cmd.AddCommand(newBrowseSimilarCmd(catalog))

	return cmd
}

func renderAnimeTable(results []anilist.Anime, out *output.OutputOptions) error {
	if len(results) == 0 {
		fmt.Println("No results.")
		return nil
	}
	if out.Is(output.OutputJSON) {
		return output.JSON(results)
	}

	table := output.NewTable("ID", "Title", "Episodes", "Score", "Genres")
	for _, a := range results {
		episodes := "?"
		if a.Episodes != nil {
			episodes = fmt.Sprintf("%d", *a.Episodes)
		}
		score := "-"
		if a.Score > 0 {
			score = fmt.Sprintf("%.1f", a.Score)
		}
		table.AddRow(
			fmt.Sprintf("%d", a.ID),
			truncate(a.DisplayTitle(), 45),
			episodes,
			score,
			truncate(strings.Join(a.Genres, ", "), 30),
		)
	}
	table.Render()
	return nil
}

func newBrowseRankingCmd(tracker *track.Tracker, catalog *anilist.Client, use, short string,
	fetch func(ctx context.Context, page, perPage int) ([]anilist.Anime, error)) *cobra.Command {

	var (
		out     output.OutputOptions
		page    int
		perPage int
	)

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}
			results, err := fetch(cmd.Context(), page, perPage)
			if err != nil {
				return err
			}
			return renderAnimeTable(results, &out)
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Result page")
	cmd.Flags().IntVar(&perPage, "per-page", 20, "Results per page")
	out.AddOutputFlags(cmd, output.OutputTable)

	return cmd
}

func newBrowseSeasonCmd(catalog *anilist.Client) *cobra.Command {
	var (
		out     output.OutputOptions
		page    int
		perPage int
	)

	cmd := &cobra.Command{
		Use:   "season <winter|spring|summer|fall> <year>",
		Short: "Show the anime of a season",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}
			season := strings.ToLower(args[0])
			switch season {
			case "winter", "spring", "summer", "fall":
			default:
				return fmt.Errorf("invalid season %q (choose winter, spring, summer, fall)", args[0])
			}
			year, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid year %q", args[1])
			}

			results, err := catalog.Seasonal(cmd.Context(), season, year, page, perPage)
			if err != nil {
				return err
			}
			return renderAnimeTable(results, &out)
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Result page")
	cmd.Flags().IntVar(&perPage, "per-page", 20, "Results per page")
	out.AddOutputFlags(cmd, output.OutputTable)

	return cmd
}

func newBrowseSearchCmd(catalog *anilist.Client) *cobra.Command {
	var (
		out     output.OutputOptions
		page    int
		perPage int
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the catalog by title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}
			results, err := catalog.Search(cmd.Context(), strings.Join(args, " "), page, perPage)
			if err != nil {
				return err
			}
			return renderAnimeTable(results, &out)
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Result page")
	cmd.Flags().IntVar(&perPage, "per-page", 20, "Results per page")
	out.AddOutputFlags(cmd, output.OutputTable)

	return cmd
}

func newBrowseFilterCmd(catalog *anilist.Client) *cobra.Command {
	var (
		out     output.OutputOptions
		filters anilist.BrowseFilters
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Browse with genre, season, and sort filters",
		Long: `Browse the catalog with filters.

Examples:
  anitrack browse filter --genre Action --genre Fantasy
  anitrack browse filter --season winter --year 2026 --sort score`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}
			results, err := catalog.Browse(cmd.Context(), filters)
			if err != nil {
				return err
			}
			return renderAnimeTable(results, &out)
		},
	}

	cmd.Flags().StringSliceVarP(&filters.Genres, "genre", "g", nil, "Filter by genre (can be repeated)")
	cmd.Flags().StringVar(&filters.Season, "season", "", "Filter by season: winter, spring, summer, fall")
	cmd.Flags().IntVar(&filters.SeasonYear, "year", 0, "Filter by season year")
	cmd.Flags().StringVar(&filters.Sort, "sort", "popularity", "Sort: "+strings.Join(anilist.SortKeys(), ", "))
	cmd.Flags().IntVar(&filters.Page, "page", 1, "Result page")
	cmd.Flags().IntVar(&filters.PerPage, "per-page", 24, "Results per page")
	out.AddOutputFlags(cmd, output.OutputTable)

	return cmd
}

func newBrowseShowCmd(tracker *track.Tracker, catalog *anilist.Client) *cobra.Command {
	var out output.OutputOptions

	cmd := &cobra.Command{
		Use:   "show <anime-id>",
		Short: "Show one anime in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid anime id %q", args[0])
			}

			anime, err := catalog.ByID(cmd.Context(), id)
			if err != nil {
				return err
			}

			// Viewing a detail page lands the show in the history.
			if err := tracker.Recent.RecordView(anime.ID, anime.DisplayTitle(), anime.CoverImage); err != nil {
				return err
			}

			if out.Is(output.OutputJSON) {
				return output.JSON(anime)
			}

			fmt.Printf("%s (id: %d)\n", anime.DisplayTitle(), anime.ID)
			if anime.TitleJapanese != "" {
				fmt.Printf("Japanese: %s\n", anime.TitleJapanese)
			}
			if anime.Episodes != nil {
				fmt.Printf("Episodes: %d\n", *anime.Episodes)
			}
			fmt.Printf("Status:   %s\n", anime.Status)
			if anime.Season != "" {
				fmt.Printf("Season:   %s %d\n", anime.Season, anime.SeasonYear)
			}
			if anime.Score > 0 {
				fmt.Printf("Score:    %.1f\n", anime.Score)
			}
			if len(anime.Genres) > 0 {
				fmt.Printf("Genres:   %s\n", strings.Join(anime.Genres, ", "))
			}
			if len(anime.Studios) > 0 {
				fmt.Printf("Studio:   %s\n", strings.Join(anime.Studios, ", "))
			}
			if anime.NextEpisode != nil {
				fmt.Printf("Next episode: #%d\n", anime.NextEpisode.Episode)
			}
			for _, link := range anime.Streaming {
				fmt.Printf("Watch on %s: %s\n", link.Platform, link.URL)
			}
			if anime.Synopsis != "" {
				fmt.Printf("\n%s\n", anime.Synopsis)
			}

			if e := tracker.Watchlist.Get(id); e != nil {
				fmt.Printf("\nOn your watchlist: %s, episode %d", e.Status, e.Progress)
				if e.Score != nil {
					fmt.Printf(", scored %d", *e.Score)
				}
				fmt.Println()
			}
			return nil
		},
	}

	out.AddOutputFlags(cmd, output.OutputTable)

	return cmd
}

func newBrowseSimilarCmd(catalog *anilist.Client) *cobra.Command {
	var (
		out     output.OutputOptions
		perPage int
	)

	cmd := &cobra.Command{
		Use:   "similar <anime-id>",
		Short: "Show recommendations for an anime",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid anime id %q", args[0])
			}
			results, err := catalog.Recommendations(cmd.Context(), id, perPage)
			if err != nil {
				return err
			}
			return renderAnimeTable(results, &out)
		},
	}

	cmd.Flags().IntVar(&perPage, "per-page", 10, "Number of recommendations")
	out.AddOutputFlags(cmd, output.OutputTable)

	return cmd
}

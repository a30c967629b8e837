// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/20Youssef10/anime-hub-central/internal/anilist"
	"github.com/20Youssef10/anime-hub-central/internal/config"
	"github.com/20Youssef10/anime-hub-central/internal/track"
)

// NewRootCmd creates the root command for anitrack.
func NewRootCmd(cfg *config.Config, tracker *track.Tracker, catalog *anilist.Client) *cobra.Command {

	root := &cobra.Command{
		Use:   "anitrack",
		Short: "Track the anime you watch",
		Long: `Keep a personal anime watchlist from the terminal.

anitrack provides tools to:
- Track watch status, episode progress, and scores
- Organize shows into custom lists
- Browse and search the AniList catalog
- Review watch-time statistics and achievements
- Export and import your data as JSON`,
	}

	root.AddCommand(newAddCmd(cfg, tracker, catalog))
	root.AddCommand(newUpdateCmd(cfg, tracker))
	root.AddCommand(newRemoveCmd(cfg, tracker))
	root.AddCommand(newWatchlistCmd(cfg, tracker))
	root.AddCommand(newBulkCmd(cfg, tracker))
	root.AddCommand(newNoteCmd(cfg, tracker))
	root.AddCommand(newRewatchCmd(cfg, tracker))
	root.AddCommand(newFavoriteCmd(cfg, tracker))
	root.AddCommand(newListsCmd(cfg, tracker))
	root.AddCommand(newRecentCmd(cfg, tracker))
	root.AddCommand(newStatsCmd(cfg, tracker, catalog))
	root.AddCommand(newAchievementsCmd(cfg, tracker))
	root.AddCommand(newExportCmd(cfg, tracker))
	root.AddCommand(newImportCmd(cfg, tracker))
	root.AddCommand(newBrowseCmd(cfg, tracker, catalog))
	root.AddCommand(newWatchFolderCmd(cfg, tracker))
	root.AddCommand(newServeCmd(cfg, tracker, catalog))

	return root
}

// truncate shortens s to at most n runes for table cells.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/20Youssef10/anime-hub-central/internal/config"
	"github.com/20Youssef10/anime-hub-central/internal/output"
	"github.com/20Youssef10/anime-hub-central/internal/track"
)

func newAchievementsCmd(cfg *config.Config, tracker *track.Tracker) *cobra.Command {
	var (
		out      output.OutputOptions
		unlocked bool
	)

	cmd := &cobra.Command{
		Use:   "achievements",
		Short: "Show your achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			stats := tracker.Watchlist.Statistics()
			achievements := track.EvaluateAchievements(stats, track.DefaultAchievements(), time.Now().UTC())

			if unlocked {
				kept := achievements[:0]
				for _, a := range achievements {
					if a.UnlockedAt != "" {
						kept = append(kept, a)
					}
				}
				achievements = kept
			}

			if out.Is(output.OutputJSON) {
				return output.JSON(achievements)
			}

			if len(achievements) == 0 {
				fmt.Println("No achievements unlocked yet.")
				return nil
			}

			table := output.NewTable("Achievement", "Tier", "Progress", "Unlocked")
			for _, a := range achievements {
				state := ""
				if a.UnlockedAt != "" {
					state = "yes"
				}
				table.AddRow(
					a.Name,
					string(a.Tier),
					fmt.Sprintf("%d/%d", a.Progress, a.Threshold),
					state,
				)
			}
			table.Render()

			fmt.Printf("\n%d of %d unlocked.\n",
				track.UnlockedCount(achievements), len(track.DefaultAchievements()))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&unlocked, "unlocked", "u", false, "Show only unlocked achievements")
	out.AddOutputFlags(cmd, output.OutputTable)

	return cmd
}

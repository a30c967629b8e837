// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/20Youssef10/anime-hub-central/internal/config"
	"github.com/20Youssef10/anime-hub-central/internal/track"
)

func newImportCmd(cfg *config.Config, tracker *track.Tracker) *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a watchlist export",
		Long: `Import watchlist entries from a JSON export.

By default imported entries are merged into the current watchlist and
existing entries win over imported ones. With --replace the current
watchlist is discarded first.

Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if args[0] == "-" {
				data, err = io.ReadAll(os.Stdin)
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("read import: %w", err)
			}

			before := len(tracker.Watchlist.All())
			if ok := tracker.Watchlist.Import(string(data), !replace); !ok {
				return fmt.Errorf("import failed: not a valid watchlist export")
			}
			after := len(tracker.Watchlist.All())

			if replace {
				fmt.Printf("Imported %d entries (replaced %d).\n", after, before)
			} else {
				fmt.Printf("Imported %d new entries (%d total).\n", after-before, after)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "Discard the current watchlist before importing")

	return cmd
}

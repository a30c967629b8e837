// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/20Youssef10/anime-hub-central/internal/config"
	"github.com/20Youssef10/anime-hub-central/internal/track"
)

func newExportCmd(cfg *config.Config, tracker *track.Tracker) *cobra.Command {
	var (
		format  string // "json", "yaml"
		outPath string // file path or "-" for stdout
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export your watchlist",
		Long:  "Export the watchlist as JSON (re-importable) or YAML for use in other tools.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var outBytes []byte

			switch format {
			case "json":
				data, err := tracker.Watchlist.ExportJSON()
				if err != nil {
					return fmt.Errorf("export json: %w", err)
				}
				outBytes = []byte(data)
			case "yaml":
				data, err := yaml.Marshal(tracker.Watchlist.All())
				if err != nil {
					return fmt.Errorf("export yaml: %w", err)
				}
				outBytes = data
			default:
				return fmt.Errorf("unsupported format: %s (choose json, yaml)", format)
			}

			if outPath == "-" || outPath == "" {
				fmt.Println(string(outBytes))
				return nil
			}
			if err := os.WriteFile(outPath, outBytes, 0644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			fmt.Printf("Exported %d entries to %s\n", len(tracker.Watchlist.All()), outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Export format: json, yaml")
	cmd.Flags().StringVarP(&outPath, "output", "o", "-", "Output file (default: stdout)")

	return cmd
}

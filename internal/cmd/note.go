// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/20Youssef10/anime-hub-central/internal/config"
	"github.com/20Youssef10/anime-hub-central/internal/output"
	"github.com/20Youssef10/anime-hub-central/internal/track"
)

func newNoteCmd(cfg *config.Config, tracker *track.Tracker) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage per-episode notes",
	}

	cmd.AddCommand(newNoteAddCmd(tracker))
	cmd.AddCommand(newNoteRemoveCmd(tracker))
	cmd.AddCommand(newNoteListCmd(tracker))

	return cmd
}

func newNoteAddCmd(tracker *track.Tracker) *cobra.Command {
	return &cobra.Command{
		Use:   "add <anime-id> <episode> <text>",
		Short: "Add or replace a note on an episode",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid anime id %q", args[0])
			}
			episode, err := strconv.Atoi(args[1])
			if err != nil || episode < 1 {
				return fmt.Errorf("invalid episode number %q", args[1])
			}
			if !tracker.Watchlist.Has(id) {
				return fmt.Errorf("anime %d is not on your watchlist", id)
			}

			if err := tracker.Watchlist.AddEpisodeNote(id, episode, args[2]); err != nil {
				return err
			}
			fmt.Printf("Noted episode %d of %d.\n", episode, id)
			return nil
		},
	}
}

func newNoteRemoveCmd(tracker *track.Tracker) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <anime-id> <episode>",
		Short: "Remove a note from an episode",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid anime id %q", args[0])
			}
			episode, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid episode number %q", args[1])
			}

			if err := tracker.Watchlist.RemoveEpisodeNote(id, episode); err != nil {
				return err
			}
			fmt.Printf("Removed note on episode %d of %d.\n", episode, id)
			return nil
		},
	}
}

func newNoteListCmd(tracker *track.Tracker) *cobra.Command {
	var out output.OutputOptions

	cmd := &cobra.Command{
		Use:   "list <anime-id>",
		Short: "Show the notes for an anime",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid anime id %q", args[0])
			}
			e := tracker.Watchlist.Get(id)
			if e == nil {
				return fmt.Errorf("anime %d is not on your watchlist", id)
			}

			if len(e.EpisodeNotes) == 0 {
				fmt.Println("No notes.")
				return nil
			}

			if out.Is(output.OutputJSON) {
				return output.JSON(e.EpisodeNotes)
			}

			episodes := make([]int, 0, len(e.EpisodeNotes))
			for ep := range e.EpisodeNotes {
				episodes = append(episodes, ep)
			}
			sort.Ints(episodes)

			table := output.NewTable("Episode", "Note")
			for _, ep := range episodes {
				table.AddRow(fmt.Sprintf("%d", ep), truncate(e.EpisodeNotes[ep], 70))
			}
			table.Render()
			return nil
		},
	}

	out.AddOutputFlags(cmd, output.OutputTable)

	return cmd
}

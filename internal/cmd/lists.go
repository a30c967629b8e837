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

func newListsCmd(cfg *config.Config, tracker *track.Tracker) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lists",
		Aliases: []string{"list", "l"},
		Short:   "Manage custom anime lists",
		Long:    `Create, show, and manage your own lists of anime (for example "Summer 2026" or "Comfort shows").`,
	}

	cmd.AddCommand(newListsCreateCmd(tracker))
	cmd.AddCommand(newListsListCmd(tracker))
	cmd.AddCommand(newListsShowCmd(tracker))
	cmd.AddCommand(newListsAddCmd(tracker))
	cmd.AddCommand(newListsRemoveCmd(tracker))
	cmd.AddCommand(newListsRenameCmd(tracker))
	cmd.AddCommand(newListsDeleteCmd(tracker))

	return cmd
}

// resolveList finds a list by name first, then by ID.
func resolveList(tracker *track.Tracker, nameOrID string) (*track.CustomList, error) {
	if l := tracker.Lists.GetByName(nameOrID); l != nil {
		return l, nil
	}
	if l := tracker.Lists.Get(nameOrID); l != nil {
		return l, nil
	}
	return nil, fmt.Errorf("list not found: %s", nameOrID)
}

func newListsCreateCmd(tracker *track.Tracker) *cobra.Command {
	var (
		description string
		color       string
		icon        string
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if name == "" {
				return fmt.Errorf("list name cannot be empty")
			}
			if tracker.Lists.GetByName(name) != nil {
				return fmt.Errorf("list %q already exists", name)
			}

			l, err := tracker.Lists.Create(name, description, color, icon)
			if err != nil {
				return err
			}

			fmt.Printf("Created list: %s (id: %s)\n", l.Name, l.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "List description")
	cmd.Flags().StringVar(&color, "color", "", "Display color, e.g. #22c55e")
	cmd.Flags().StringVar(&icon, "icon", "", "Display icon name")

	return cmd
}

func newListsListCmd(tracker *track.Tracker) *cobra.Command {
	var out output.OutputOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all custom lists",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			lists := tracker.Lists.All()
			if len(lists) == 0 {
				fmt.Println("No lists found.")
				return nil
			}

			if out.Is(output.OutputJSON) {
				return output.JSON(lists)
			}

			table := output.NewTable("Name", "Anime", "Description", "Updated")
			for _, l := range lists {
				table.AddRow(
					l.Name,
					fmt.Sprintf("%d", len(l.AnimeIDs)),
					truncate(l.Description, 40),
					l.UpdatedAt.Format("2006-01-02"),
				)
			}
			table.Render()

			return nil
		},
	}

	out.AddOutputFlags(cmd, output.OutputTable)

	return cmd
}

func newListsShowCmd(tracker *track.Tracker) *cobra.Command {
	var out output.OutputOptions

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show the anime in a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			l, err := resolveList(tracker, args[0])
			if err != nil {
				return err
			}

			if out.Is(output.OutputJSON) {
				return output.JSON(l)
			}

			fmt.Printf("List: %s\n", l.Name)
			if l.Description != "" {
				fmt.Printf("Description: %s\n", l.Description)
			}
			fmt.Printf("Anime: %d\n\n", len(l.AnimeIDs))

			if len(l.AnimeIDs) == 0 {
				return nil
			}

			table := output.NewTable("ID", "Status", "Progress")
			for _, id := range l.AnimeIDs {
				status, progress := "-", "-"
				if e := tracker.Watchlist.Get(id); e != nil {
					status = string(e.Status)
					progress = fmt.Sprintf("%d", e.Progress)
				}
				table.AddRow(fmt.Sprintf("%d", id), status, progress)
			}
			table.Render()

			return nil
		},
	}

	out.AddOutputFlags(cmd, output.OutputTable)

	return cmd
}

func newListsAddCmd(tracker *track.Tracker) *cobra.Command {
	return &cobra.Command{
		Use:   "add <list> <anime-id> [anime-id...]",
		Short: "Add anime to a list",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := resolveList(tracker, args[0])
			if err != nil {
				return err
			}
			ids, err := parseAnimeIDs(args[1:])
			if err != nil {
				return err
			}

			added := 0
			for _, id := range ids {
				if tracker.Lists.Contains(l.ID, id) {
					fmt.Printf("Already in list: %d\n", id)
					continue
				}
				if err := tracker.Lists.AddAnime(l.ID, id); err != nil {
					return err
				}
				added++
			}

			fmt.Printf("Added %d anime to %s.\n", added, l.Name)
			return nil
		},
	}
}

func newListsRemoveCmd(tracker *track.Tracker) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <list> <anime-id> [anime-id...]",
		Short: "Remove anime from a list",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := resolveList(tracker, args[0])
			if err != nil {
				return err
			}
			ids, err := parseAnimeIDs(args[1:])
			if err != nil {
				return err
			}

			removed := 0
			for _, id := range ids {
				if !tracker.Lists.Contains(l.ID, id) {
					continue
				}
				if err := tracker.Lists.RemoveAnime(l.ID, id); err != nil {
					return err
				}
				removed++
			}

			fmt.Printf("Removed %d anime from %s.\n", removed, l.Name)
			return nil
		},
	}
}

func newListsRenameCmd(tracker *track.Tracker) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "rename <list> <new-name>",
		Short: "Rename a list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := resolveList(tracker, args[0])
			if err != nil {
				return err
			}
			newName := args[1]
			if newName == "" {
				return fmt.Errorf("list name cannot be empty")
			}

			patch := track.ListPatch{Name: &newName}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}
			if err := tracker.Lists.Update(l.ID, patch); err != nil {
				return err
			}

			fmt.Printf("Renamed %s to %s.\n", l.Name, newName)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "New description")

	return cmd
}

func newListsDeleteCmd(tracker *track.Tracker) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <list>",
		Short: "Delete a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := resolveList(tracker, args[0])
			if err != nil {
				return err
			}

			if !force && len(l.AnimeIDs) > 0 {
				return fmt.Errorf("list %q has %d anime, use --force to delete", l.Name, len(l.AnimeIDs))
			}

			if err := tracker.Lists.Delete(l.ID); err != nil {
				return err
			}

			fmt.Printf("Deleted list: %s\n", l.Name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Delete even if the list is not empty")

	return cmd
}

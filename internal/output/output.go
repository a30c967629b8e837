// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package output implements the table/JSON command output helpers.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// Format names an output format.
type Format string

const (
	OutputTable Format = "table"
	OutputJSON  Format = "json"
)

// OutputOptions carries the --output flag for a command.
type OutputOptions struct {
	Format string

	def Format
}

// AddOutputFlags registers the --output flag with the given default.
func (o *OutputOptions) AddOutputFlags(cmd *cobra.Command, def Format) {
	o.def = def
	cmd.Flags().StringVarP(&o.Format, "output", "o", string(def), "Output format: table, json")
}

// Resolve validates the selected format.
func (o *OutputOptions) Resolve() error {
	if o.Format == "" {
		o.Format = string(o.def)
	}
	switch Format(o.Format) {
	case OutputTable, OutputJSON:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (choose table, json)", o.Format)
	}
}

// Is reports whether the resolved format matches f.
func (o *OutputOptions) Is(f Format) bool {
	return Format(o.Format) == f
}

// JSON writes v to stdout as indented JSON.
func JSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Table renders aligned columnar output.
type Table struct {
	headers []string
	rows    [][]string
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// AddRow appends a row; extra cells are dropped, missing cells padded.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
	}
	t.rows = append(t.rows, row)
}

// Render writes the table to stdout.
func (t *Table) Render() {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(t.headers, "\t"))
	underline := make([]string, len(t.headers))
	for i, h := range t.headers {
		underline[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(w, strings.Join(underline, "\t"))
	for _, row := range t.rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

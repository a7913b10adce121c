// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package commands

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/riannucci/seqar/sqa"
)

func newLsCommand(g *globals) *cobra.Command {
	var long bool

	cmd := &cobra.Command{
		Use:   "ls ARCHIVE",
		Short: "List the entries of an archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ar, err := g.open(args[0])
			if err != nil {
				return err
			}
			defer ar.Close()

			if long {
				return printLong(cmd.OutOrStdout(), ar)
			}
			for ent, err := range ar.All() {
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ent.Path())
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&long, "long", "l", false, "show entry sizes")
	return cmd
}

func printLong(w io.Writer, ar *sqa.Archive) error {
	rows := [][]string{}
	var total uint64
	for ent, err := range ar.All() {
		if err != nil {
			return err
		}
		size := uint64(len(ent.Content))
		total += size
		rows = append(rows, []string{ent.Path(), humanize.Bytes(size)})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Size"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)
	table.AppendBulk(rows)
	table.Render()

	_, err := fmt.Fprintf(w, "%d entries, %s\n", len(rows), humanize.Bytes(total))
	return err
}

// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package commands

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/riannucci/seqar/hrx"
	"github.com/riannucci/seqar/internal/logging"
	"github.com/riannucci/seqar/sqa"
)

func newConvertCommand(g *globals) *cobra.Command {
	var comment string

	cmd := &cobra.Command{
		Use:   "convert IN.hrx OUT",
		Short: "Convert an HRX archive to a seqar archive",
		Long: `Convert an HRX (human readable archive) file to a seqar archive.

Directory items and HRX comments are not carried over.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := g.context(cmd)

			in, err := hrx.Load(args[0])
			if err != nil {
				return err
			}

			return writeArchive(args[1], func(f *os.File) error {
				w, err := sqa.NewWriter(f)
				if err != nil {
					return err
				}
				for ent, err := range in.All() {
					if err != nil {
						return errors.Wrapf(err, "reading %q", args[0])
					}
					if ent.IsDir() {
						logging.Debugf(ctx, "skipping directory %q", ent.Path())
						continue
					}
					if cmd.Flags().Changed("comment") {
						err = w.AddWithComment(ent.Path(), []byte(comment), ent.Content)
					} else {
						err = w.Add(ent.Path(), ent.Content)
					}
					if err != nil {
						return err
					}
				}
				if err := w.Close(); err != nil {
					return err
				}
				logging.Debugf(ctx, "converted %d entries", w.Count())
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&comment, "comment", "", "comment stored with every record")
	return cmd
}

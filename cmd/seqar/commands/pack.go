// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package commands

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/riannucci/seqar/sqa"
)

func newPackCommand(g *globals) *cobra.Command {
	var noCheck bool
	var caseSafe bool

	cmd := &cobra.Command{
		Use:   "pack PATH OUT",
		Short: "Build an archive from a file or directory tree",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeArchive(args[1], func(f *os.File) error {
				return sqa.CreateFromPath(g.context(cmd), f, args[0],
					sqa.WithNameCheck(!noCheck), sqa.WithCaseSafe(caseSafe))
			})
		},
	}
	cmd.Flags().BoolVar(&noCheck, "no-name-check", false, "store names without validating them")
	cmd.Flags().BoolVar(&caseSafe, "case-safe", false, "reject names which differ only in case")
	return cmd
}

// writeArchive creates out, runs fill on it and removes out again if fill or
// the final close fails.
func writeArchive(out string, fill func(*os.File) error) (err error) {
	f, err := os.OpenFile(out, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
	if err != nil {
		return errors.Wrapf(err, "creating %q", out)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(out)
		}
	}()
	return fill(f)
}

// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package commands

import (
	"github.com/spf13/cobra"

	"github.com/riannucci/seqar/internal/logging"
)

func newUnpackCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "unpack ARCHIVE DIR",
		Short: "Extract an archive into an empty or missing directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logging.SetField(g.context(cmd), "archive", args[0])

			ar, err := g.open(args[0])
			if err != nil {
				return err
			}
			defer ar.Close()

			if err := ar.UnpackTo(ctx, args[1]); err != nil {
				return err
			}
			logging.Debugf(ctx, "unpacked to %q", args[1])
			return nil
		},
	}
}

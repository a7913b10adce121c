// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riannucci/seqar/sqa"
)

func newSumCommand(g *globals) *cobra.Command {
	var scheme string

	cmd := &cobra.Command{
		Use:   "sum ARCHIVE",
		Short: "Print a digest of every entry",
		Long: `Print one "<hex digest>  <name>" line per entry, in archive order.

Schemes: sha256, sha512, blake2s, blake2b, sha3-256, sha3-512.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := sqa.ParseDigestScheme(scheme)
			if err != nil {
				return err
			}

			ar, err := g.open(args[0])
			if err != nil {
				return err
			}
			defer ar.Close()

			for ent, err := range ar.All() {
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", hex.EncodeToString(ent.Sum(d)), ent.Path())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&scheme, "scheme", sqa.DigestBLAKE2b.String(), "digest scheme")
	return cmd
}

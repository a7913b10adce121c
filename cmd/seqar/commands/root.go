// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package commands implements the seqar CLI.
package commands

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/riannucci/seqar/internal/logging"
	"github.com/riannucci/seqar/sqa"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
)

// globals holds the persistent flags shared by every subcommand.
type globals struct {
	mmap    bool
	verbose bool
}

func (g *globals) open(path string) (*sqa.Archive, error) {
	return sqa.Open(path, sqa.WithMmap(g.mmap))
}

// context returns the command context with a logger writing to the
// command's stderr.
func (g *globals) context(cmd *cobra.Command) context.Context {
	level := logrus.InfoLevel
	if g.verbose {
		level = logrus.DebugLevel
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logging.Set(ctx, logging.New(cmd.ErrOrStderr(), level))
}

// NewRootCommand builds a fresh seqar command tree.
func NewRootCommand() *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:   "seqar",
		Short: "seqar - sequential archive tool",
		Long: `seqar reads and writes seqar archives: a magic header followed by
length-prefixed records, read strictly in order.

Use "seqar [command] --help" for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().BoolVar(&g.mmap, "mmap", false, "map archives into memory instead of reading them")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newLsCommand(g),
		newCatCommand(g),
		newUnpackCommand(g),
		newPackCommand(g),
		newSumCommand(g),
		newConvertCommand(g),
		newVersionCommand(),
	)
	return root
}

// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Command seqar lists, extracts, builds and converts seqar archives.
package main

import (
	"fmt"
	"os"

	"github.com/riannucci/seqar/cmd/seqar/commands"
)

// Build-time variables injected via ldflags
var (
	version = "dev"
	commit  = "none"
)

func main() {
	commands.Version = version
	commands.Commit = commit

	if err := commands.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "seqar: %v\n", err)
		os.Exit(1)
	}
}

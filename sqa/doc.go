// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package sqa reads and writes seqar archives.
//
// An Archive is a lazy view over an in-memory buffer: Bind (or Open) only
// checks the header, and each call to Entries walks the records from the
// start. Names and contents handed out by an Archive alias its buffer.
package sqa

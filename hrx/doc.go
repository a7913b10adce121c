// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package hrx reads Human Readable Archive (.hrx) data, as specified at
// https://github.com/google/hrx.
//
// An hrx archive is text. It opens with a boundary such as "<===>", and
// every line beginning with that boundary starts a new item:
//
//	<===> one.txt
//	Content of one text file
//	<===>
//	This is a comment
//	<===> subdir/file.txt
//	Contents of a file in a subdir.
//
// The reader mirrors the seqar Archive: parsing is lazy, each call to
// Entries starts over, names and contents alias the input, and comments
// are skipped.
package hrx

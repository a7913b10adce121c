// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package seqar documents a simple sequential archive format, comparable to
// tar without the headers. There is no table of contents: entries are found
// by reading the records from the front, which keeps the writer streaming
// and the reader free of any state beyond a byte offset.
//
// Like its predecessor SAR, the format does not attempt to preserve file
// ownership or mode bits. An entry is only a name and its content.
//
// It has a fairly basic format:
//   - file magic header ("SQA" + byte(VERSION)). VERSION current == 1.
//   - zero or more records
//   - end marker (a single 0x00 byte, which must be the last byte)
//
// A record is:
//   - uvarint name length (at least 1), then the name bytes
//   - flags byte; bit 0 means a comment follows. Other bits are reserved.
//   - if flagged: uvarint comment length, then the comment bytes
//   - uvarint content length, then the content bytes
//
// Comments are carried for tools which want them but are never surfaced by
// the reader. An empty file (zero bytes) is an empty archive.
//
// The implementation lives in sub packages:
//   - sqa/sqadata: the wire format (header, record cursor, name checks)
//   - sqa: the archive view, writer, loaders and unpacking
//   - hrx: a reader for the textual HRX format, for conversion
//   - cmd/seqar: the command line tool
//
// TODO(riannucci): if random access is ever needed, add an optional trailing
// index of record offsets rather than changing the record layout.
package seqar

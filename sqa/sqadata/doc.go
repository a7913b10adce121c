// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package sqadata implements the wire routines of the seqar format: the
// 'magic' bytes, the record cursor which decodes one record at a time out of
// an in-memory buffer, the matching encoders, and entry name checks.
package sqadata

// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package sqadata

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Flags is the single byte which follows a record's name.
type Flags byte

// These are the flag bits known to this version of the format.
const (
	// FlagComment indicates that a comment length and comment bytes follow
	// the flags byte.
	FlagComment Flags = 1 << iota

	knownFlags = FlagComment
)

// Valid returns nil iff f has no unknown bits set.
func (f Flags) Valid() error {
	if f&^knownFlags != 0 {
		return errors.Errorf("unknown flags 0x%02x", byte(f&^knownFlags))
	}
	return nil
}

// Span is a byte range within an archive buffer. It never owns the bytes it
// refers to.
type Span struct {
	Offset int
	Length int
}

// End is the offset just past the span.
func (s Span) End() int { return s.Offset + s.Length }

// Of resolves the span against buf. The result aliases buf, and is never nil
// when buf isn't, even for a zero-length span.
func (s Span) Of(buf []byte) []byte {
	return buf[s.Offset:s.End():s.End()]
}

// Record is a single decoded record. The comment, if the record had one, has
// already been skipped.
type Record struct {
	Name    Span
	Content Span
}

// recordReader decodes the fields of the record starting at start. Any
// failure is reported as a *RecordError against start.
type recordReader struct {
	buf   []byte
	start int
	pos   int
}

func (r *recordReader) fail(field, reason string, args ...any) error {
	return &RecordError{r.start, field, fmt.Sprintf(reason, args...)}
}

func (r *recordReader) uvarint(field string) (uint64, error) {
	v, n := binary.Uvarint(r.buf[r.pos:])
	switch {
	case n == 0:
		return 0, r.fail(field, "truncated (%d bytes remain)", len(r.buf)-r.pos)
	case n < 0:
		return 0, r.fail(field, "varint overflows 64 bits")
	}
	r.pos += n
	return v, nil
}

func (r *recordReader) span(field string, length uint64) (Span, error) {
	remain := len(r.buf) - r.pos
	if length > uint64(remain) {
		return Span{}, r.fail(field, "truncated (want %d bytes, %d remain)", length, remain)
	}
	s := Span{r.pos, int(length)}
	r.pos = s.End()
	return s, nil
}

func (r *recordReader) lengthPrefixed(field string) (Span, error) {
	l, err := r.uvarint(field + " length")
	if err != nil {
		return Span{}, err
	}
	return r.span(field, l)
}

// ReadRecord decodes the record which starts at buf[off:].
//
// It returns the record and the offset at which the next record begins. At
// the end marker, ReadRecord returns io.EOF. Any other error is
// a *RecordError; in that case next == off and rec is the zero Record.
//
// ReadRecord doesn't retain or modify buf.
func ReadRecord(buf []byte, off int) (rec Record, next int, err error) {
	if off < 0 || off > len(buf) {
		return Record{}, off, &RecordError{off, "record", "offset out of range"}
	}
	r := recordReader{buf: buf, start: off, pos: off}

	nameLen, err := r.uvarint("name length")
	if err != nil {
		if off == len(buf) {
			err = r.fail("end marker", "missing")
		}
		return Record{}, off, err
	}
	if nameLen == 0 {
		if r.pos != len(buf) {
			return Record{}, off, r.fail("end marker", "%d bytes of data after end marker", len(buf)-r.pos)
		}
		return Record{}, off, io.EOF
	}
	if rec.Name, err = r.span("name", nameLen); err != nil {
		return Record{}, off, err
	}

	if r.pos == len(buf) {
		return Record{}, off, r.fail("flags", "truncated (0 bytes remain)")
	}
	flags := Flags(buf[r.pos])
	r.pos++
	if err := flags.Valid(); err != nil {
		return Record{}, off, r.fail("flags", "%s", err)
	}
	if flags&FlagComment != 0 {
		if _, err := r.lengthPrefixed("comment"); err != nil {
			return Record{}, off, err
		}
	}

	if rec.Content, err = r.lengthPrefixed("content"); err != nil {
		return Record{}, off, err
	}
	return rec, r.pos, nil
}

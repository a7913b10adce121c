// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package sqadata

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrBadFormat is matched by every *FormatError.
	ErrBadFormat = errors.New("bad archive format")

	// ErrMalformedRecord is matched by every *RecordError.
	ErrMalformedRecord = errors.New("malformed record")
)

// FormatError is returned when the archive header does not hold.
type FormatError struct {
	Reason string

	// Err is the underlying cause, if any (e.g. io.ErrUnexpectedEOF).
	Err error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bad archive format: %s: %s", e.Reason, e.Err)
	}
	return "bad archive format: " + e.Reason
}

// Is allows errors.Is(err, ErrBadFormat).
func (e *FormatError) Is(target error) bool { return target == ErrBadFormat }

func (e *FormatError) Unwrap() error { return e.Err }

// RecordError is returned by ReadRecord when a record is truncated or
// otherwise cannot be decoded.
type RecordError struct {
	// Offset is the offset of the record header which failed to decode.
	Offset int

	// Field is the part of the record which was being decoded, e.g.
	// "content length".
	Field string

	// Reason describes what was wrong with Field.
	Reason string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("malformed record at offset %d: %s: %s", e.Offset, e.Field, e.Reason)
}

// Is allows errors.Is(err, ErrMalformedRecord).
func (e *RecordError) Is(target error) bool { return target == ErrMalformedRecord }

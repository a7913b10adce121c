// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package sqadata

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// WriteRecord writes a single record to w.
//
// If comment is nil the record carries no comment. A non-nil but empty
// comment is written as a zero-length comment.
//
// name must not be empty, since a zero-length name is the end marker.
func WriteRecord(w io.Writer, name string, comment, content []byte) error {
	if name == "" {
		return errors.New("empty record name")
	}

	flags := Flags(0)
	if comment != nil {
		flags |= FlagComment
	}

	hdr := make([]byte, 0, 3*binary.MaxVarintLen64+len(name)+1)
	hdr = binary.AppendUvarint(hdr, uint64(len(name)))
	hdr = append(hdr, name...)
	hdr = append(hdr, byte(flags))
	if comment != nil {
		hdr = binary.AppendUvarint(hdr, uint64(len(comment)))
		if _, err := w.Write(hdr); err != nil {
			return err
		}
		if _, err := w.Write(comment); err != nil {
			return err
		}
		hdr = hdr[:0]
	}
	hdr = binary.AppendUvarint(hdr, uint64(len(content)))
	if _, err := w.Write(hdr); err != nil {
		return err
	}
	_, err := w.Write(content)
	return err
}

// WriteEnd writes the end marker. Nothing may follow it.
func WriteEnd(w io.Writer) error {
	_, err := w.Write([]byte{0})
	return err
}

// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package sqadata

import (
	"fmt"
	"io"
)

// Magic is the magic bytes which appear at the beginning of a seqar archive.
const Magic = "SQA"

// Version is the version of the seqar format.
const Version byte = 1

// HeaderSize is the number of bytes taken by Magic and the version byte.
const HeaderSize = len(Magic) + 1

var magicVer = []byte(Magic + string(Version))

// WriteMagic writes SQA+VERSION to the writer.
func WriteMagic(w io.Writer) error {
	_, err := w.Write(magicVer)
	return err
}

// ReadMagic checks that buf begins with SQA, and ensures that the archive
// version is <= Version. The first record begins at buf[HeaderSize:].
func ReadMagic(buf []byte) (version byte, err error) {
	if len(buf) < HeaderSize {
		err = &FormatError{
			Reason: fmt.Sprintf("short header (%d bytes)", len(buf)),
			Err:    io.ErrUnexpectedEOF,
		}
		return
	}

	if sBuf := string(buf[:len(Magic)]); sBuf != Magic {
		err = &FormatError{Reason: fmt.Sprintf("bad magic: %q", sBuf)}
		return
	}

	version = buf[len(Magic)]
	if version > Version {
		err = &FormatError{Reason: fmt.Sprintf("bad version: %d > %d", version, Version)}
	}
	return
}

// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package sqa

import (
	"bytes"
	"fmt"
	"io"
	"iter"

	"github.com/pkg/errors"

	"github.com/riannucci/seqar/sqa/sqadata"
)

var (
	// ErrNotFound is returned (wrapped) by Get when no entry has the
	// requested name.
	ErrNotFound = errors.New("no such entry")

	// ErrClosed is returned when reading from a Close()'d Archive.
	ErrClosed = errors.New("archive is closed")
)

// Archive is a read-only view of a seqar archive held in memory.
//
// Nothing is parsed until entries are requested, and every traversal decodes
// the records afresh. The buffer must not be modified while the Archive, or
// any slice obtained from it, is in use.
type Archive struct {
	buf     []byte
	version byte

	didClose bool
	closer   func() error
}

// Bind returns an Archive over buf. Only the magic header is checked.
//
// An empty buf is a valid, empty archive.
func Bind(buf []byte) (*Archive, error) {
	if len(buf) == 0 {
		return &Archive{buf: buf, version: sqadata.Version}, nil
	}

	version, err := sqadata.ReadMagic(buf)
	if err != nil {
		return nil, errors.Wrap(err, "checking magic")
	}
	if version != 1 {
		return nil, &sqadata.FormatError{Reason: fmt.Sprintf("unsupported version %d", version)}
	}
	return &Archive{buf: buf, version: version}, nil
}

// Version returns the format version of the archive.
func (a *Archive) Version() byte { return a.version }

// Size returns the size of the archive in bytes.
func (a *Archive) Size() int { return len(a.buf) }

// Close releases the storage backing the archive, if the Archive owns it
// (see Open). Slices previously obtained from the Archive must not be used
// afterwards.
func (a *Archive) Close() error {
	if a.didClose {
		return nil
	}
	a.didClose = true
	a.buf = nil

	if a.closer != nil {
		return a.closer()
	}
	return nil
}

// Entry is a single file in the archive. Both slices alias the archive
// buffer.
type Entry struct {
	Name    []byte
	Content []byte
}

// Path returns the entry name as a string.
func (e Entry) Path() string { return string(e.Name) }

// EntryIterator walks the entries of an Archive in storage order.
//
//	it := ar.Entries()
//	for it.Next() {
//	    ent := it.Entry()
//	    // ...
//	}
//	if err := it.Err(); err != nil {
//	    // the archive is malformed
//	}
type EntryIterator struct {
	buf []byte
	off int

	cur  Entry
	err  error
	done bool
}

// Entries returns a new iterator positioned before the first entry.
//
// Each call starts an independent traversal; iterators don't share state, so
// several may be used at once, including from different goroutines.
func (a *Archive) Entries() *EntryIterator {
	switch {
	case a.didClose:
		return &EntryIterator{err: ErrClosed, done: true}
	case len(a.buf) == 0:
		return &EntryIterator{done: true}
	}
	return &EntryIterator{buf: a.buf, off: sqadata.HeaderSize}
}

// Next advances to the next entry. It returns false at the end of the
// archive, or when a record could not be decoded; Err tells which.
func (it *EntryIterator) Next() bool {
	if it.done {
		return false
	}

	rec, next, err := sqadata.ReadRecord(it.buf, it.off)
	if err != nil {
		it.done = true
		it.cur = Entry{}
		if err != io.EOF {
			it.err = err
		}
		return false
	}

	it.cur = Entry{
		Name:    rec.Name.Of(it.buf),
		Content: rec.Content.Of(it.buf),
	}
	it.off = next
	return true
}

// Entry returns the current entry. It's only meaningful after Next returned
// true.
func (it *EntryIterator) Entry() Entry { return it.cur }

// Err returns the error which ended the iteration, or nil if the iteration
// reached the end marker (or hasn't ended yet).
func (it *EntryIterator) Err() error { return it.err }

// All returns the entries of the archive as a sequence. If the archive is
// malformed, the last pair yielded carries the error.
func (a *Archive) All() iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		it := a.Entries()
		for it.Next() {
			if !yield(it.Entry(), nil) {
				return
			}
		}
		if err := it.Err(); err != nil {
			yield(Entry{}, err)
		}
	}
}

// Names returns the names of all entries in storage order.
func (a *Archive) Names() ([]string, error) {
	var ret []string
	it := a.Entries()
	for it.Next() {
		ret = append(ret, it.Entry().Path())
	}
	return ret, it.Err()
}

// Get returns the content of the first entry called name. The returned slice
// aliases the archive buffer.
func (a *Archive) Get(name string) ([]byte, error) {
	it := a.Entries()
	for it.Next() {
		if ent := it.Entry(); bytes.Equal(ent.Name, []byte(name)) {
			return ent.Content, nil
		}
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return nil, errors.Wrapf(ErrNotFound, "get %q", name)
}

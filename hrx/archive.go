// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package hrx

import (
	"bytes"
	"fmt"
	"iter"
	"os"
	"unicode/utf8"

	"github.com/pkg/errors"
)

var (
	// ErrNoBoundary is returned by Parse when data doesn't start with an
	// archive boundary.
	ErrNoBoundary = errors.New("no archive boundary found")

	// ErrNotFound is returned (wrapped) by Get when no file has the requested
	// name.
	ErrNotFound = errors.New("no such entry")
)

// ItemError is returned when an item is neither a file nor a comment.
type ItemError struct {
	// Offset is the offset of the item within the archive data.
	Offset int
	Item   []byte
}

func (e *ItemError) Error() string {
	item := e.Item
	if len(item) > 40 {
		item = item[:40]
	}
	return fmt.Sprintf("invalid item at offset %d: %q", e.Offset, item)
}

// Archive is a parsed hrx archive.
type Archive struct {
	data []byte

	// sep is "\n" followed by the boundary.
	sep []byte
}

// findBoundary returns the boundary ("<", one or more "=", ">") which data
// starts with, or nil.
func findBoundary(data []byte) []byte {
	if len(data) < 3 || data[0] != '<' {
		return nil
	}
	for i := 1; i < len(data); i++ {
		switch data[i] {
		case '=':
		case '>':
			if i == 1 {
				return nil
			}
			return data[:i+1]
		default:
			return nil
		}
	}
	return nil
}

// Parse returns an Archive over data. Only the boundary is located; items are
// parsed as they are iterated.
//
// Empty data is an empty archive.
func Parse(data []byte) (*Archive, error) {
	if len(data) == 0 {
		return &Archive{}, nil
	}
	if !utf8.Valid(data) {
		return nil, errors.New("archive is not valid UTF-8")
	}
	boundary := findBoundary(data)
	if boundary == nil {
		return nil, ErrNoBoundary
	}
	sep := make([]byte, 0, len(boundary)+1)
	sep = append(append(sep, '\n'), boundary...)
	return &Archive{data: data, sep: sep}, nil
}

// Load reads and parses the hrx archive at path.
func Load(path string) (*Archive, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %q", path)
	}
	ar, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %q", path)
	}
	return ar, nil
}

// Entry is a file in the archive. Both slices alias the archive data.
type Entry struct {
	Name    []byte
	Content []byte
}

// Path returns the entry name as a string.
func (e Entry) Path() string { return string(e.Name) }

// IsDir returns true if the entry names a directory ("dir/").
func (e Entry) IsDir() bool { return bytes.HasSuffix(e.Name, []byte("/")) }

// EntryIterator walks the files of an Archive in the order they appear.
type EntryIterator struct {
	data []byte
	sep  []byte
	off  int

	cur  Entry
	err  error
	done bool
}

// Entries returns a new iterator positioned before the first file. Iterators
// are independent of each other.
func (a *Archive) Entries() *EntryIterator {
	if len(a.data) == 0 {
		return &EntryIterator{done: true}
	}
	return &EntryIterator{data: a.data, sep: a.sep, off: len(a.sep) - 1}
}

// Next advances to the next file, skipping comments. It returns false at the
// end of the archive, or on an invalid item; Err tells which.
func (it *EntryIterator) Next() bool {
	for !it.done {
		start := it.off
		item := it.data[start:]
		if i := bytes.Index(item, it.sep); i >= 0 {
			item = item[:i:i]
			it.off += i + len(it.sep)
		} else {
			it.done = true
		}

		switch {
		case len(item) == 0 || item[0] == '\n':
			// comment

		case item[0] == ' ':
			item = item[1:]
			if nl := bytes.IndexByte(item, '\n'); nl >= 0 {
				it.cur = Entry{item[:nl:nl], item[nl+1:]}
			} else {
				it.cur = Entry{item, item[len(item):]}
			}
			return true

		default:
			it.done = true
			it.err = &ItemError{start, item}
		}
	}
	it.cur = Entry{}
	return false
}

// Entry returns the current file.
func (it *EntryIterator) Entry() Entry { return it.cur }

// Err returns the error which ended the iteration, if any.
func (it *EntryIterator) Err() error { return it.err }

// All returns the files of the archive as a sequence. If the archive is
// invalid, the last pair yielded carries the error.
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

// Names returns the names of all files in the archive, in order.
func (a *Archive) Names() ([]string, error) {
	var ret []string
	it := a.Entries()
	for it.Next() {
		ret = append(ret, it.Entry().Path())
	}
	return ret, it.Err()
}

// Get returns the content of the first file called name.
func (a *Archive) Get(name string) ([]byte, error) {
	it := a.Entries()
	for it.Next() {
		if ent := it.Entry(); string(ent.Name) == name {
			return ent.Content, nil
		}
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return nil, errors.Wrapf(ErrNotFound, "get %q", name)
}

// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package sqa

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/riannucci/seqar/internal/logging"
	"github.com/riannucci/seqar/sqa/sqadata"
)

type createOptionData struct {
	checkNames  bool
	uniqueNames bool
	caseSafe    bool
}

// CreateOption functions can be supplied to NewWriter and CreateFromPath.
type CreateOption func(*createOptionData)

// WithNameCheck controls whether entry names are checked with
// sqadata.CheckName before being written. Defaults to true.
func WithNameCheck(val bool) CreateOption {
	return func(o *createOptionData) {
		o.checkNames = val
	}
}

// WithUniqueNames controls whether adding the same name twice is an error.
// Defaults to true.
func WithUniqueNames(val bool) CreateOption {
	return func(o *createOptionData) {
		o.uniqueNames = val
	}
}

// WithCaseSafe additionally rejects names which differ from an earlier one
// only by case, so that the archive can be unpacked on case-insensitive
// filesystems. It implies WithUniqueNames(true).
func WithCaseSafe(val bool) CreateOption {
	return func(o *createOptionData) {
		o.caseSafe = val
		if val {
			o.uniqueNames = true
		}
	}
}

// Writer writes a seqar archive to an io.Writer.
//
// A rejected name leaves the output untouched and the Writer usable. Errors
// from the underlying io.Writer are sticky: every later call returns them.
type Writer struct {
	w     io.Writer
	opts  createOptionData
	names sqadata.NameSet

	count  int
	err    error
	closed bool
}

// NewWriter writes the archive header to w and returns a Writer for the
// records.
func NewWriter(w io.Writer, options ...CreateOption) (*Writer, error) {
	opts := createOptionData{
		checkNames:  true,
		uniqueNames: true,
	}
	for _, o := range options {
		o(&opts)
	}

	if err := sqadata.WriteMagic(w); err != nil {
		return nil, errors.Wrap(err, "writing magic")
	}
	return &Writer{
		w:     w,
		opts:  opts,
		names: sqadata.NameSet{CaseSafe: opts.caseSafe},
	}, nil
}

// Add appends a record without a comment.
func (w *Writer) Add(name string, content []byte) error {
	return w.add(name, nil, content)
}

// AddWithComment appends a record carrying comment. Readers never surface
// the comment.
func (w *Writer) AddWithComment(name string, comment, content []byte) error {
	if comment == nil {
		comment = []byte{}
	}
	return w.add(name, comment, content)
}

func (w *Writer) add(name string, comment, content []byte) error {
	switch {
	case w.err != nil:
		return w.err
	case w.closed:
		return errors.New("cannot add to a closed Writer")
	case name == "":
		return errors.New("empty entry name")
	}

	if w.opts.checkNames {
		if err := sqadata.CheckName(name); err != nil {
			return err
		}
	}
	if w.opts.uniqueNames {
		if err := w.names.Add(name); err != nil {
			return err
		}
	}

	if err := sqadata.WriteRecord(w.w, name, comment, content); err != nil {
		w.err = errors.Wrapf(err, "writing record %q", name)
		return w.err
	}
	w.count++
	return nil
}

// Count returns the number of records written so far.
func (w *Writer) Count() int { return w.count }

// Close writes the end marker. It doesn't close the underlying io.Writer.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	if w.closed {
		return nil
	}
	w.closed = true

	if err := sqadata.WriteEnd(w.w); err != nil {
		w.err = errors.Wrap(err, "writing end marker")
	}
	return w.err
}

// CreateFromPath writes an archive to out containing every regular file
// beneath path, named by its slash-separated path relative to path. Files are
// added in lexical order. If path is itself a regular file, the archive
// contains just that file under its base name.
//
// Anything other than regular files and directories (symlinks, devices, ...)
// is skipped with a warning logged to ctx.
func CreateFromPath(ctx context.Context, out io.Writer, path string, options ...CreateOption) error {
	path, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w, err := NewWriter(out, options...)
	if err != nil {
		return err
	}

	err = filepath.WalkDir(path, func(cur string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := filepath.Base(cur)
		if cur != path {
			if rel, err = filepath.Rel(path, cur); err != nil {
				return err
			}
		}
		rel = filepath.ToSlash(rel)

		if !d.Type().IsRegular() {
			logging.Warningf(ctx, "skipping %q: not a regular file (%s)", rel, d.Type())
			return nil
		}

		data, err := os.ReadFile(cur)
		if err != nil {
			return errors.Wrapf(err, "reading %q", rel)
		}
		if err := w.Add(rel, data); err != nil {
			return errors.Wrapf(err, "adding %q", rel)
		}
		logging.Debugf(ctx, "added %q (%d bytes)", rel, len(data))
		return nil
	})
	if err != nil {
		return err
	}

	return w.Close()
}

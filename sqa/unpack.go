// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package sqa

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/riannucci/seqar/internal/logging"
	"github.com/riannucci/seqar/sqa/sqadata"
)

func ensureRoot(root string) error {
	st, err := os.Stat(root)
	switch {
	case os.IsNotExist(err):
		if err := os.MkdirAll(root, 0777); err != nil {
			return errors.Wrap(err, "making root dir")
		}
		return nil
	case err != nil:
		return err
	case !st.IsDir():
		return errors.Errorf("%q is not a directory", root)
	}

	f, err := os.Open(root)
	if err != nil {
		return err
	}
	names, err := f.Readdirnames(1)
	f.Close()
	if len(names) != 0 {
		return errors.New("dir not empty")
	}
	if err != nil && err != io.EOF {
		return err
	}
	return nil
}

func ensureFile(wg *sync.WaitGroup, ech chan<- error, abs, rel string, content []byte) {
	f, err := os.OpenFile(abs, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
	if err != nil {
		ech <- errors.Wrapf(err, "creating file %q", rel)
		return
	}
	// content aliases the archive buffer; only the close may outlive this call.
	if _, err := f.Write(content); err != nil {
		f.Close()
		ech <- errors.Wrapf(err, "writing file %q", rel)
		return
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		ech <- errors.Wrapf(f.Close(), "closing file %q", rel)
	}()
}

// UnpackTo writes every entry of the Archive to a file beneath root, creating
// intermediate directories as entry names require.
//
// root must be either a non-existant path, or a path to an empty directory.
// Every entry name must pass sqadata.CheckName; an entry which would be
// written outside of root stops the unpack.
//
// Failures for individual files are logged to ctx and do not stop the
// unpack; UnpackTo then returns a summary error. A malformed archive stops
// the unpack with an error once the preceding entries have been written.
func (a *Archive) UnpackTo(ctx context.Context, root string) error {
	root, err := filepath.Abs(root)
	if err != nil {
		return errors.Wrap(err, "making abspath")
	}

	if err := ensureRoot(root); err != nil {
		return errors.Wrap(err, "checking root")
	}

	ech := make(chan error, 1)
	var fatal error
	go func() {
		defer close(ech)

		wg := &sync.WaitGroup{}
		defer wg.Wait()

		madeDirs := map[string]struct{}{root: {}}

		it := a.Entries()
		for it.Next() {
			ent := it.Entry()
			rel := ent.Path()
			if err := sqadata.CheckName(rel); err != nil {
				// this immediately quits the loop
				fatal = errors.Wrap(err, "bad entry name")
				return
			}
			abs := filepath.Join(root, filepath.FromSlash(rel))

			if dir := filepath.Dir(abs); dir != root {
				if _, ok := madeDirs[dir]; !ok {
					if err := os.MkdirAll(dir, 0777); err != nil {
						fatal = errors.Wrapf(err, "making dir for %q", rel)
						return
					}
					madeDirs[dir] = struct{}{}
				}
			}

			ensureFile(wg, ech, abs, rel, ent.Content)
		}
		if err := it.Err(); err != nil {
			fatal = errors.Wrap(err, "reading archive")
		}
	}()

	hadError := false
	for err := range ech {
		if err == nil {
			continue
		}
		if !hadError {
			logging.Errorf(ctx, "errors while unpacking to %q:", root)
			hadError = true
		}
		logging.Errorf(ctx, "  %s", err)
	}
	if fatal != nil {
		return fatal
	}
	if hadError {
		return errors.New("errors while unpacking (see log)")
	}

	return nil
}

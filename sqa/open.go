// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package sqa

import (
	"os"

	"github.com/pkg/errors"
)

type openOptionData struct {
	mmap bool
}

// OpenOption functions can be supplied to the Open function
type OpenOption func(*openOptionData)

// WithMmap is an OpenOption which maps the archive file into memory
// read-only instead of reading it. The mapping is released by
// Archive.Close.
//
// On platforms without mmap support this option is ignored.
func WithMmap(val bool) OpenOption {
	return func(o *openOptionData) {
		o.mmap = val
	}
}

// Open loads the archive at path.
//
// As with Bind, only the header is checked; records are decoded when entries
// are requested. The caller should Close the returned Archive.
func Open(path string, options ...OpenOption) (*Archive, error) {
	opts := openOptionData{}
	for _, o := range options {
		o(&opts)
	}

	var buf []byte
	var closer func() error
	var err error
	if opts.mmap {
		buf, closer, err = mapFile(path)
	} else {
		buf, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %q", path)
	}

	ar, err := Bind(buf)
	if err != nil {
		if closer != nil {
			closer()
		}
		return nil, errors.Wrapf(err, "parsing %q", path)
	}
	ar.closer = closer
	return ar, nil
}

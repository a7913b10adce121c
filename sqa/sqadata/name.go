// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package sqadata

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

var badChars = regexp.MustCompile("[<>:\"\\\\|?*\x00-\x1f\x7f]")

func checkPathPiece(piece string) error {
	if piece == "" {
		return errors.New("empty path component")
	}
	if piece == "." {
		return errors.New("'.' path component")
	}
	if piece == ".." {
		return errors.Errorf("relative path segment %q not allowed", piece)
	}
	if idxs := badChars.FindStringIndex(piece); len(idxs) > 0 {
		return errors.Errorf("bad char %q in path component", piece[idxs[0]:idxs[1]])
	}
	return nil
}

// CheckName returns nil iff name is a usable entry name: a relative,
// slash-separated path which stays beneath the directory it is unpacked to
// and which is portable across filesystems.
func CheckName(name string) error {
	if name == "" {
		return errors.New("empty name")
	}
	if strings.HasPrefix(name, "/") {
		return errors.Errorf("absolute name %q", name)
	}
	for i, piece := range strings.Split(name, "/") {
		if err := checkPathPiece(piece); err != nil {
			return errors.Wrapf(err, "name %q, component %d", name, i)
		}
	}
	return nil
}

// NameSet tracks entry names to detect duplicates. If CaseSafe is set, names
// which differ only in case are also considered duplicates.
type NameSet struct {
	CaseSafe bool

	names      map[string]struct{}
	lowerNames map[string]struct{}
}

// Add records name, returning an error if it (or, when CaseSafe, a case
// variant of it) was already added.
func (s *NameSet) Add(name string) error {
	if s.names == nil {
		s.names = map[string]struct{}{}
		s.lowerNames = map[string]struct{}{}
	}
	if _, ok := s.names[name]; ok {
		return errors.Errorf("duplicate entry %q", name)
	}
	if s.CaseSafe {
		lower := strings.ToLower(name)
		if _, ok := s.lowerNames[lower]; ok {
			return errors.Errorf("case-sensitive entry %q", name)
		}
		s.lowerNames[lower] = struct{}{}
	}
	s.names[name] = struct{}{}
	return nil
}

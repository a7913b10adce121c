// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package assertions contains goconvey assertions shared by the tests of
// this module.
package assertions

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ShouldErrLike checks that actual is a non-nil error which either contains
// the expected string, or matches the expected error under errors.Is.
//
// With no expected value, it only checks that actual is a non-nil error.
func ShouldErrLike(actual any, expected ...any) string {
	if len(expected) > 1 {
		return fmt.Sprintf("ShouldErrLike expects at most one value, got %d", len(expected))
	}
	err, ok := actual.(error)
	if !ok && actual != nil {
		return fmt.Sprintf("expected an error, got %T", actual)
	}
	if err == nil {
		return "expected an error, got nil"
	}
	if len(expected) == 0 {
		return ""
	}

	switch x := expected[0].(type) {
	case string:
		if !strings.Contains(err.Error(), x) {
			return fmt.Sprintf("expected error containing %q, got %q", x, err.Error())
		}
	case error:
		if !errors.Is(err, x) {
			return fmt.Sprintf("expected error matching %q, got %q", x.Error(), err.Error())
		}
	default:
		return fmt.Sprintf("ShouldErrLike expects a string or an error, got %T", expected[0])
	}
	return ""
}

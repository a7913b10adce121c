// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !unix

package sqa

import (
	"os"
)

func mapFile(path string) ([]byte, func() error, error) {
	buf, err := os.ReadFile(path)
	return buf, nil, err
}

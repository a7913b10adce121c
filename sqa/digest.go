// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package sqa

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"

	"github.com/pkg/errors"
)

// DigestScheme selects the hash used to digest entry contents.
type DigestScheme byte

// These are the available digest algorithms.
const (
	DigestSHA2_256 DigestScheme = iota + 1
	DigestSHA2_512
	DigestBLAKE2s
	DigestBLAKE2b
	DigestSHA3_256
	DigestSHA3_512
)

var digestNames = map[DigestScheme]string{
	DigestSHA2_256: "sha256",
	DigestSHA2_512: "sha512",
	DigestBLAKE2s:  "blake2s",
	DigestBLAKE2b:  "blake2b",
	DigestSHA3_256: "sha3-256",
	DigestSHA3_512: "sha3-512",
}

// Valid returns nil iff the DigestScheme is valid.
func (d DigestScheme) Valid() error {
	if _, ok := digestNames[d]; !ok {
		return errors.Errorf("unknown digest scheme 0x%x", byte(d))
	}
	return nil
}

func (d DigestScheme) String() string {
	if name, ok := digestNames[d]; ok {
		return name
	}
	return fmt.Sprintf("DigestScheme(0x%02x)", byte(d))
}

// ParseDigestScheme returns the DigestScheme whose String() is name, ignoring
// case.
func ParseDigestScheme(name string) (DigestScheme, error) {
	for d, n := range digestNames {
		if strings.EqualFold(n, name) {
			return d, nil
		}
	}
	return 0, errors.Errorf("unknown digest scheme %q", name)
}

// Hash gets a new hash.Hash for this scheme. It panics if the scheme is
// invalid.
func (d DigestScheme) Hash() hash.Hash {
	var h hash.Hash
	switch d {
	case DigestSHA2_256:
		h = sha256.New()
	case DigestSHA2_512:
		h = sha512.New()
	case DigestBLAKE2s:
		h, _ = blake2s.New256(nil)
	case DigestBLAKE2b:
		h, _ = blake2b.New512(nil)
	case DigestSHA3_256:
		h = sha3.New256()
	case DigestSHA3_512:
		h = sha3.New512()
	}
	if h == nil {
		panic(d.Valid())
	}
	return h
}

// Sum returns the digest of the entry content.
func (e Entry) Sum(d DigestScheme) []byte {
	h := d.Hash()
	h.Write(e.Content)
	return h.Sum(nil)
}

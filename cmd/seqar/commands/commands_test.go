// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package commands

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riannucci/seqar/sqa"
	"github.com/riannucci/seqar/sqa/sqadata"
)

// run executes a fresh command tree and returns what it wrote to stdout and
// stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// fixture writes a small tree and packs it, returning the archive path.
func fixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	for rel, data := range map[string]string{
		"b.txt":   "bee",
		"a/z.txt": "zed",
		"a/empty": "",
	} {
		abs := filepath.Join(src, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0777))
		require.NoError(t, os.WriteFile(abs, []byte(data), 0666))
	}
	out := filepath.Join(dir, "tree.sqa")
	_, _, err := run(t, "pack", src, out)
	require.NoError(t, err)
	return out
}

func TestLs(t *testing.T) {
	t.Parallel()
	ar := fixture(t)

	t.Run("names", func(t *testing.T) {
		stdout, _, err := run(t, "ls", ar)
		require.NoError(t, err)
		assert.Equal(t, "a/empty\na/z.txt\nb.txt\n", stdout)
	})

	t.Run("mmap", func(t *testing.T) {
		stdout, _, err := run(t, "--mmap", "ls", ar)
		require.NoError(t, err)
		assert.Equal(t, "a/empty\na/z.txt\nb.txt\n", stdout)
	})

	t.Run("long", func(t *testing.T) {
		stdout, _, err := run(t, "ls", "-l", ar)
		require.NoError(t, err)
		assert.Contains(t, stdout, "NAME")
		assert.Contains(t, stdout, "SIZE")
		assert.Contains(t, stdout, "a/z.txt")
		assert.Contains(t, stdout, "3 B")
		assert.Contains(t, stdout, "3 entries, 6 B\n")
	})

	t.Run("missing archive", func(t *testing.T) {
		_, _, err := run(t, "ls", filepath.Join(t.TempDir(), "nope.sqa"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("truncated archive", func(t *testing.T) {
		data, err := os.ReadFile(ar)
		require.NoError(t, err)
		bad := filepath.Join(t.TempDir(), "bad.sqa")
		require.NoError(t, os.WriteFile(bad, data[:len(data)-1], 0666))

		stdout, _, err := run(t, "ls", bad)
		assert.ErrorIs(t, err, sqadata.ErrMalformedRecord)
		assert.Equal(t, "a/empty\na/z.txt\nb.txt\n", stdout)
	})
}

func TestCat(t *testing.T) {
	t.Parallel()
	ar := fixture(t)

	stdout, _, err := run(t, "cat", ar, "b.txt", "a/empty", "a/z.txt")
	require.NoError(t, err)
	assert.Equal(t, "beezed", stdout)

	_, _, err = run(t, "cat", ar, "nope")
	assert.ErrorIs(t, err, sqa.ErrNotFound)

	_, _, err = run(t, "cat", ar)
	assert.Error(t, err)
}

func TestUnpack(t *testing.T) {
	t.Parallel()
	ar := fixture(t)
	dest := filepath.Join(t.TempDir(), "out")

	_, _, err := run(t, "-v", "unpack", ar, dest)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dest, "a", "z.txt"))
	require.NoError(t, err)
	assert.Equal(t, "zed", string(data))

	_, _, err = run(t, "unpack", ar, dest)
	assert.ErrorContains(t, err, "dir not empty")
}

func TestPack(t *testing.T) {
	t.Parallel()

	t.Run("refuses to overwrite", func(t *testing.T) {
		ar := fixture(t)
		before, err := os.ReadFile(ar)
		require.NoError(t, err)

		_, _, err = run(t, "pack", t.TempDir(), ar)
		assert.ErrorIs(t, err, os.ErrExist)

		after, err := os.ReadFile(ar)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("bad names remove the output", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "src")
		require.NoError(t, os.MkdirAll(src, 0777))
		require.NoError(t, os.WriteFile(filepath.Join(src, "bad:name"), nil, 0666))
		out := filepath.Join(dir, "out.sqa")

		_, _, err := run(t, "pack", src, out)
		assert.ErrorContains(t, err, `adding "bad:name"`)
		_, err = os.Stat(out)
		assert.ErrorIs(t, err, os.ErrNotExist)

		_, _, err = run(t, "pack", "--no-name-check", src, out)
		require.NoError(t, err)
		stdout, _, err := run(t, "ls", out)
		require.NoError(t, err)
		assert.Equal(t, "bad:name\n", stdout)
	})
}

func TestSum(t *testing.T) {
	t.Parallel()
	ar := fixture(t)

	hexOf := func(data string) string {
		sum := sha256.Sum256([]byte(data))
		return hex.EncodeToString(sum[:])
	}

	stdout, _, err := run(t, "sum", "--scheme", "SHA256", ar)
	require.NoError(t, err)
	assert.Equal(t,
		hexOf("")+"  a/empty\n"+
			hexOf("zed")+"  a/z.txt\n"+
			hexOf("bee")+"  b.txt\n",
		stdout)

	t.Run("default scheme", func(t *testing.T) {
		stdout, _, err := run(t, "sum", ar)
		require.NoError(t, err)
		ent := sqa.Entry{Name: []byte("b.txt"), Content: []byte("bee")}
		assert.Contains(t, stdout, hex.EncodeToString(ent.Sum(sqa.DigestBLAKE2b))+"  b.txt\n")
	})

	t.Run("unknown scheme", func(t *testing.T) {
		_, _, err := run(t, "sum", "--scheme", "md5", ar)
		assert.ErrorContains(t, err, `unknown digest scheme "md5"`)
	})
}

func TestConvert(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	in := filepath.Join(dir, "in.hrx")
	require.NoError(t, os.WriteFile(in, []byte(
		"<===> hello.txt\nhi\n<===>\na comment\n<===> sub/\n<===> sub/empty.txt\n"), 0666))

	t.Run("plain", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "out.sqa")
		_, stderr, err := run(t, "-v", "convert", in, out)
		require.NoError(t, err)
		assert.Contains(t, stderr, "skipping directory")

		ar, err := sqa.Open(out)
		require.NoError(t, err)
		defer ar.Close()
		names, err := ar.Names()
		require.NoError(t, err)
		assert.Equal(t, []string{"hello.txt", "sub/empty.txt"}, names)

		data, err := ar.Get("hello.txt")
		require.NoError(t, err)
		assert.Equal(t, "hi", string(data))
	})

	t.Run("with comment", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "out.sqa")
		_, _, err := run(t, "convert", "--comment", "from hrx", in, out)
		require.NoError(t, err)

		raw, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, 2, bytes.Count(raw, []byte("from hrx")))

		stdout, _, err := run(t, "cat", out, "hello.txt")
		require.NoError(t, err)
		assert.Equal(t, "hi", stdout)
	})

	t.Run("not hrx", func(t *testing.T) {
		_, _, err := run(t, "convert", "commands_test.go", filepath.Join(t.TempDir(), "out.sqa"))
		assert.ErrorContains(t, err, "no archive boundary found")
	})
}

func TestVersion(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "seqar dev (commit: none, format version: 1)\n", stdout)
}

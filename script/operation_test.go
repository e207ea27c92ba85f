// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script_test

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/script"
)

const lineScript = `
# build a small tree
insert 2 two
insert 1 one
INSERT 3 three and more   # trailing comment

find 3 three and more
remove 9
count 3
equal-paths true
check
print
dot
`

func TestParse(t *testing.T) {
	ops, err := script.Parse(strings.NewReader(lineScript))
	require.NoError(t, err, "parse")
	require.Equal(t, 10, len(ops), "operation count")

	assert.Equal(t, script.Operation{Op: script.OpInsert, Key: "2", Value: "two", Line: 3}, ops[0])
	assert.Equal(t, script.Operation{Op: script.OpInsert, Key: "3", Value: "three and more", Line: 5}, ops[2])
	assert.Equal(t, script.Operation{Op: script.OpFind, Key: "3", Value: "three and more", Line: 7}, ops[3])
	assert.Equal(t, script.Operation{Op: script.OpRemove, Key: "9", Line: 8}, ops[4])
	assert.Equal(t, script.Operation{Op: script.OpCount, Value: "3", Line: 9}, ops[5])
	assert.Equal(t, script.Operation{Op: script.OpEqualPaths, Value: "true", Line: 10}, ops[6])
	assert.Equal(t, script.OpDot, ops[9].Op)
}

func TestParseKeepsValueSpacing(t *testing.T) {
	ops, err := script.Parse(strings.NewReader("insert 1 a  b\tc   \nfind\t1   a  b\tc\n"))
	require.NoError(t, err, "parse")
	require.Equal(t, 2, len(ops), "operation count")

	assert.Equal(t, script.Operation{Op: script.OpInsert, Key: "1", Value: "a  b\tc", Line: 1}, ops[0])
	assert.Equal(t, script.Operation{Op: script.OpFind, Key: "1", Value: "a  b\tc", Line: 2}, ops[1])
}

func TestParseErrors(t *testing.T) {
	items := []struct {
		text string
		line string
		err  error
	}{
		{"insert", "line 1:", fault.ErrMissingKey},
		{"insert 1", "line 1:", fault.ErrMissingValue},
		{"check\nremove 1 2", "line 2:", fault.ErrTooManyArguments},
		{"find", "line 1:", fault.ErrMissingKey},
		{"count", "line 1:", fault.ErrMissingValue},
		{"count -1", "line 1:", fault.ErrInvalidCount},
		{"count x", "line 1:", fault.ErrInvalidCount},
		{"equal-paths maybe", "line 1:", fault.ErrInvalidBoolean},
		{"print all", "line 1:", fault.ErrTooManyArguments},
		{"# x\n\nrotate 1", "line 3:", fault.ErrInvalidOperation},
	}

	for i, item := range items {
		_, err := script.Parse(strings.NewReader(item.text))
		require.Error(t, err, "%d: expected error", i)
		assert.True(t, errors.Is(err, item.err), "%d: actual: %s  expected: %s", i, err, item.err)
		assert.True(t, strings.HasPrefix(err.Error(), item.line), "%d: actual: %s", i, err)
		assert.True(t, fault.IsErrInvalid(errors.Unwrap(err)), "%d: not an invalid error", i)
	}
}

const yamlScript = `
- op: insert
  key: "10"
  value: ten
- op: Find
  key: "10"
- op: count
  value: "1"
- op: check
`

func TestParseYAML(t *testing.T) {
	ops, err := script.ParseYAML(strings.NewReader(yamlScript))
	require.NoError(t, err, "parse")
	require.Equal(t, 4, len(ops), "operation count")

	assert.Equal(t, script.Operation{Op: script.OpInsert, Key: "10", Value: "ten", Line: 1}, ops[0])
	assert.Equal(t, script.Operation{Op: script.OpFind, Key: "10", Line: 2}, ops[1])
	assert.Equal(t, script.Operation{Op: script.OpCount, Value: "1", Line: 3}, ops[2])
	assert.Equal(t, script.OpCheck, ops[3].Op)
}

func TestParseYAMLEmpty(t *testing.T) {
	ops, err := script.ParseYAML(strings.NewReader(""))
	assert.NoError(t, err, "empty document")
	assert.Equal(t, 0, len(ops), "operation count")
}

func TestParseYAMLErrors(t *testing.T) {
	_, err := script.ParseYAML(strings.NewReader("- op: insert\n  key: \"1\"\n"))
	assert.True(t, errors.Is(err, fault.ErrMissingValue), "actual: %s", err)
	assert.Equal(t, "item 1: missing value", err.Error(), "message")

	_, err = script.ParseYAML(strings.NewReader("op: [unclosed"))
	assert.Error(t, err, "malformed YAML")
}

func TestLoad(t *testing.T) {
	tmp, err := ioutil.TempDir("", "avl-script")
	require.NoError(t, err, "temp dir")
	defer os.RemoveAll(tmp)

	lineFile := filepath.Join(tmp, "ops.txt")
	yamlFile := filepath.Join(tmp, "ops.YML")
	require.NoError(t, ioutil.WriteFile(lineFile, []byte(lineScript), 0600))
	require.NoError(t, ioutil.WriteFile(yamlFile, []byte(yamlScript), 0600))

	ops, err := script.Load(lineFile)
	assert.NoError(t, err, "line script")
	assert.Equal(t, 10, len(ops), "line script operations")

	ops, err = script.Load(yamlFile)
	assert.NoError(t, err, "YAML script")
	assert.Equal(t, 4, len(ops), "YAML script operations")

	_, err = script.Load(filepath.Join(tmp, "absent.txt"))
	assert.True(t, os.IsNotExist(err), "missing file: %v", err)

	_, err = script.Load(filepath.Join(tmp, "ops.json"))
	assert.Equal(t, fault.ErrUnsupportedScriptFormat, err, "unsupported extension")
}

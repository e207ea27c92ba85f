// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/item"
)

func TestGetConfigurationDefaults(t *testing.T) {
	tmp := makeFiles(t, map[string]string{
		"replay.conf": "return {}\n",
		"replay.txt":  "check\n",
	})
	defer os.RemoveAll(tmp)

	config, err := getConfiguration(filepath.Join(tmp, "replay.conf"))
	require.NoError(t, err, "configuration")

	assert.Equal(t, filepath.Join(tmp, defaultScriptFile), config.Script, "script")
	assert.Equal(t, item.StringType, config.KeyType, "key type")
	assert.False(t, config.Watch, "watch")
	assert.Equal(t, "", config.PidFile, "pid file")
	assert.Equal(t, "", config.DotFile, "dot file")
	assert.Equal(t, filepath.Join(tmp, defaultLogDirectory), config.Logging.Directory, "log directory")
	assert.Equal(t, defaultLogFile, config.Logging.File, "log file")

	info, err := os.Stat(config.Logging.Directory)
	require.NoError(t, err, "log directory created")
	assert.True(t, info.IsDir(), "log directory is a directory")
}

func TestGetConfiguration(t *testing.T) {
	tmp := makeFiles(t, map[string]string{
		"replay.conf": `
local M = {}
M.script = "ops.yaml"
M.key_type = "INTEGER"
M.watch = true
M.print_data = true
M.dot_file = "tree.dot"
M.pidfile = "/tmp/replay.pid"
return M
`,
		"ops.yaml": "- op: check\n",
	})
	defer os.RemoveAll(tmp)

	config, err := getConfiguration(filepath.Join(tmp, "replay.conf"))
	require.NoError(t, err, "configuration")

	assert.Equal(t, filepath.Join(tmp, "ops.yaml"), config.Script, "script")
	assert.Equal(t, item.IntegerType, config.KeyType, "key type")
	assert.True(t, config.Watch, "watch")
	assert.True(t, config.PrintData, "print data")
	assert.Equal(t, filepath.Join(tmp, "tree.dot"), config.DotFile, "dot file")
	assert.Equal(t, "/tmp/replay.pid", config.PidFile, "pid file")
}

func TestGetConfigurationErrors(t *testing.T) {
	tmp := makeFiles(t, map[string]string{
		"bad-key.conf":     `return { key_type = "float" }`,
		"no-script.conf":   `return { script = "absent.txt" }`,
		"blank.conf":       `return { script = "" }`,
		"not-a-table.conf": `return 42`,
		"replay.txt":       "check\n",
	})
	defer os.RemoveAll(tmp)

	items := []struct {
		file string
		err  error
	}{
		{"bad-key.conf", fault.ErrInvalidKeyType},
		{"no-script.conf", fault.ErrMissingScript},
		{"blank.conf", fault.ErrMissingScript},
		{"not-a-table.conf", fault.ErrInvalidConfiguration},
		{"absent.conf", fault.ErrNotFoundConfigFile},
	}

	for _, it := range items {
		_, err := getConfiguration(filepath.Join(tmp, it.file))
		assert.True(t, errors.Is(err, it.err), "%s: actual: %v  expected: %s", it.file, err, it.err)
	}
}

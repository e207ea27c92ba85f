// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/item"
	"github.com/bitmark-inc/avltree/util"
)

// basic defaults (files are relative to the directory holding the configuration file)
const (
	defaultScriptFile = "replay.txt"
	defaultKeyType    = item.StringType

	defaultLogDirectory = "log"
	defaultLogFile      = "avl-replay.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Configuration - settings read from the Lua configuration file
type Configuration struct {
	PidFile   string               `gluamapper:"pidfile" json:"pidfile"`
	Script    string               `gluamapper:"script" json:"script"`
	KeyType   string               `gluamapper:"key_type" json:"key_type"`
	Watch     bool                 `gluamapper:"watch" json:"watch"`
	PrintData bool                 `gluamapper:"print_data" json:"print_data"`
	DotFile   string               `gluamapper:"dot_file" json:"dot_file"`
	Logging   logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		PidFile:   "", // no PidFile by default
		Script:    defaultScriptFile,
		KeyType:   defaultKeyType,
		Watch:     false,
		PrintData: false,
		DotFile:   "", // no Graphviz output by default

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.KeyType = strings.ToLower(options.KeyType)
	if !item.IsValidType(options.KeyType) {
		return nil, fmt.Errorf("key type: %q: %w", options.KeyType, fault.ErrInvalidKeyType)
	}

	if "" == options.Script {
		return nil, fault.ErrMissingScript
	}
	options.Script = util.EnsureAbsolute(dataDirectory, options.Script)
	if !util.EnsureFileExists(options.Script) {
		return nil, fmt.Errorf("script: %q: %w", options.Script, fault.ErrMissingScript)
	}

	// optional absolute paths i.e. blank or an absolute path
	for _, f := range []*string{
		&options.PidFile,
		&options.DotFile,
	} {
		*f = util.OptionalAbsolute(dataDirectory, *f)
	}

	// the log file must be a simple name within the log directory
	if !util.IsPlainName(options.Logging.File) {
		return nil, fmt.Errorf("log file: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = util.EnsureAbsolute(dataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

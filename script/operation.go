// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bitmark-inc/avltree/fault"
)

// operation names
const (
	OpInsert     = "insert"
	OpRemove     = "remove"
	OpFind       = "find"
	OpCount      = "count"
	OpCheck      = "check"
	OpEqualPaths = "equal-paths"
	OpPrint      = "print"
	OpDot        = "dot"
)

// Operation - a single step of a script
type Operation struct {
	Op    string `yaml:"op"`
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
	Line  int    `yaml:"-"` // source line or list position, from 1
}

// Load - read a script file, the format is chosen by its extension
func Load(fileName string) ([]Operation, error) {
	parse := Parse
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".yaml", ".yml":
		parse = ParseYAML
	case "", ".txt", ".avl":
	default:
		return nil, fault.ErrUnsupportedScriptFormat
	}

	f, err := os.Open(fileName)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	return parse(f)
}

// Parse - read the line oriented script format
func Parse(r io.Reader) ([]Operation, error) {
	operations := []Operation{}

	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n += 1
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if 0 == len(fields) {
			continue
		}

		op := Operation{
			Op:   strings.ToLower(fields[0]),
			Line: n,
		}
		rest := after(strings.TrimSpace(line), fields[0])

		switch op.Op {
		case OpCount, OpEqualPaths:
			op.Value = rest
		default:
			if len(fields) > 1 {
				op.Key = fields[1]
				op.Value = after(rest, fields[1])
			}
		}

		if err := op.validate(); nil != err {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		operations = append(operations, op)
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	return operations, nil
}

// the text following a leading field, spacing inside it is kept
func after(s string, field string) string {
	return strings.TrimSpace(s[len(field):])
}

// ParseYAML - read the YAML script format
func ParseYAML(r io.Reader) ([]Operation, error) {
	operations := []Operation{}

	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&operations); nil != err && io.EOF != err {
		return nil, err
	}

	for i := range operations {
		op := &operations[i]
		op.Line = i + 1
		op.Op = strings.ToLower(op.Op)
		if err := op.validate(); nil != err {
			return nil, fmt.Errorf("item %d: %w", op.Line, err)
		}
	}
	return operations, nil
}

// check an operation has the arguments it needs and no more
func (op Operation) validate() error {
	switch op.Op {
	case OpInsert:
		if "" == op.Key {
			return fault.ErrMissingKey
		}
		if "" == op.Value {
			return fault.ErrMissingValue
		}

	case OpRemove:
		if "" == op.Key {
			return fault.ErrMissingKey
		}
		if "" != op.Value {
			return fault.ErrTooManyArguments
		}

	case OpFind:
		if "" == op.Key {
			return fault.ErrMissingKey
		}

	case OpCount:
		if "" == op.Value {
			return fault.ErrMissingValue
		}
		n, err := strconv.Atoi(op.Value)
		if nil != err || n < 0 {
			return fault.ErrInvalidCount
		}

	case OpEqualPaths:
		if "" != op.Key {
			return fault.ErrTooManyArguments
		}
		if "" != op.Value {
			if _, err := strconv.ParseBool(op.Value); nil != err {
				return fault.ErrInvalidBoolean
			}
		}

	case OpCheck, OpPrint, OpDot:
		if "" != op.Key || "" != op.Value {
			return fault.ErrTooManyArguments
		}

	default:
		return fault.ErrInvalidOperation
	}
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package item

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// names of the supported key types
const (
	StringType  = "string"
	IntegerType = "integer"
)

// String - keys ordered byte-wise
type String string

// Integer - keys ordered numerically
type Integer int64

// Compare - string comparison for AVL interface
func (s String) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(String)))
}

// String - the key as text
func (s String) String() string {
	return string(s)
}

// Compare - numeric comparison for AVL interface
func (i Integer) Compare(x interface{}) int {
	j := x.(Integer)
	switch {
	case i < j:
		return -1
	case i > j:
		return 1
	default:
		return 0
	}
}

// String - the key in decimal
func (i Integer) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// IsValidType - true if keyType names a supported key type
func IsValidType(keyType string) bool {
	return StringType == keyType || IntegerType == keyType
}

// Parse - convert text to a key of the named type
func Parse(keyType string, text string) (avl.Item, error) {
	switch keyType {
	case StringType:
		return String(text), nil
	case IntegerType:
		n, err := strconv.ParseInt(text, 10, 64)
		if nil != err {
			return nil, fault.ErrInvalidInteger
		}
		return Integer(n), nil
	default:
		return nil, fault.ErrInvalidKeyType
	}
}

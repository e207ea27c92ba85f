// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type InvariantError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised      = InvalidError("already initialised")
	ErrBalanceOutOfRange       = InvariantError("balance out of range")
	ErrBalanceMismatch         = InvariantError("balance does not match subtree heights")
	ErrCountMismatch           = InvariantError("node count does not match tree")
	ErrHeightMismatch          = InvariantError("cached height does not match subtree")
	ErrInvalidBoolean          = InvalidError("invalid boolean")
	ErrInvalidConfiguration    = InvalidError("configuration must return a table")
	ErrInvalidCount            = InvalidError("invalid count")
	ErrInvalidInteger          = InvalidError("invalid integer")
	ErrInvalidKeyType          = InvalidError("invalid key type")
	ErrInvalidLoggerChannel    = InvalidError("invalid logger channel")
	ErrInvalidOperation        = InvalidError("invalid operation")
	ErrInvalidStructPointer    = InvalidError("invalid struct pointer")
	ErrKeyNotFound             = NotFoundError("key not found")
	ErrKeyOrdering             = InvariantError("keys are not in strictly increasing order")
	ErrMissingKey              = InvalidError("missing key")
	ErrMissingScript           = InvalidError("missing script file")
	ErrMissingValue            = InvalidError("missing value")
	ErrNotFoundConfigFile      = NotFoundError("config file is not found")
	ErrParentLink              = InvariantError("parent link is inconsistent")
	ErrTooManyArguments        = InvalidError("too many arguments")
	ErrUnexpectedCount         = ProcessError("unexpected count")
	ErrUnexpectedEqualPaths    = ProcessError("unexpected equal paths result")
	ErrUnexpectedValue         = ProcessError("unexpected value")
	ErrUnsupportedScriptFormat = InvalidError("unsupported script format")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string   { return string(e) }
func (e InvariantError) Error() string { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }

// determine the class of an error, looking through %w wrapping
func IsErrInvalid(e error) bool   { var t InvalidError; return errors.As(e, &t) }
func IsErrInvariant(e error) bool { var t InvariantError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool  { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool   { var t ProcessError; return errors.As(e, &t) }

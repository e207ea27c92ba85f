// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package script - replay a list of tree operations
//
// a script is plain text, one operation per line, with '#' starting
// a comment:
//
//   insert KEY VALUE…     add a key or overwrite its value
//   remove KEY            remove a key (absent keys are ignored)
//   find KEY [VALUE…]     print the value, optionally verify it
//   count N               verify the number of keys
//   check                 verify all tree invariants
//   equal-paths [BOOL]    print, optionally verify, the leaf depth check
//   print                 ASCII picture of the tree
//   dot                   Graphviz picture of the tree
//
// a VALUE is the rest of the line after the key, with its inner
// spacing kept and only the surrounding white space removed.
//
// script files have no extension or end in .txt or .avl; a file ending
// in .yaml or .yml instead holds a list of maps with the fields: op,
// key and value.
package script

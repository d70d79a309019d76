// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - resolve a path from slotd.conf against the data
// directory, which defaults to the directory holding slotd.conf
//
// absolute paths are only cleaned
func EnsureAbsolute(dataDirectory string, filePath string) string {
	if filepath.IsAbs(filePath) {
		return filepath.Clean(filePath)
	}
	return filepath.Join(dataDirectory, filePath)
}

// EnsureFileExists - true if name is an existing regular file
//
// gen-rpc-cert uses this to refuse overwriting a certificate or key;
// a directory at that path is not a file and must not count
func EnsureFileExists(name string) bool {
	info, err := os.Stat(name)
	if nil != err {
		return false
	}
	return !info.IsDir()
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureDirectory - make the path absolute and create the directory
// with owner-only permissions if it does not exist
func EnsureDirectory(directory string, path string) (string, error) {
	path = EnsureAbsolute(directory, path)
	if err := os.MkdirAll(path, 0700); nil != err {
		return "", err
	}
	return path, nil
}

/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser reads theme documents into untyped maps and writes
// converted documents back out.
package parser

import (
	"fmt"

	"bennypowers.dev/themeport/fs"
)

// ParseFile reads and parses a theme document from the filesystem.
func ParseFile(filesystem fs.FileSystem, path string) (map[string]any, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, err
	}
	raw, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return raw, nil
}

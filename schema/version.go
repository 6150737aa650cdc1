/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package schema identifies the theme schema a document is written in.
package schema

import "fmt"

// Version represents a theme document schema.
type Version int

const (
	// Unknown represents an undetected or unrecognized schema.
	Unknown Version = iota

	// Legacy represents the colors/highlight theme schema being migrated away from.
	Legacy

	// ZedV0_2_0 represents the Zed theme family schema v0.2.0.
	ZedV0_2_0
)

// zedV0_2_0URL is the $schema value written into converted documents.
const zedV0_2_0URL = "https://zed.dev/schema/themes/v0.2.0.json"

// String returns the string representation of the schema version.
func (v Version) String() string {
	switch v {
	case Legacy:
		return "legacy"
	case ZedV0_2_0:
		return "zed-v0.2.0"
	default:
		return "unknown"
	}
}

// URL returns the JSON Schema URL for this version. The legacy schema has
// none.
func (v Version) URL() string {
	if v == ZedV0_2_0 {
		return zedV0_2_0URL
	}
	return ""
}

// FromURL returns the schema version from a JSON Schema URL.
func FromURL(url string) (Version, error) {
	switch url {
	case zedV0_2_0URL:
		return ZedV0_2_0, nil
	default:
		return Unknown, fmt.Errorf("%w: unrecognized schema URL: %s", ErrUnknownVersion, url)
	}
}

// FromString returns the schema version from a string representation.
func FromString(s string) (Version, error) {
	switch s {
	case "legacy", "source":
		return Legacy, nil
	case "zed", "zed-v0.2.0", "v0.2.0", "0.2.0":
		return ZedV0_2_0, nil
	default:
		return Unknown, fmt.Errorf("%w: %s", ErrUnknownVersion, s)
	}
}

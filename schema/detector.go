/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema

// DetectionConfig provides configuration for schema version detection.
type DetectionConfig struct {
	// DefaultVersion is used when no other detection method succeeds.
	DefaultVersion Version
}

// DetectVersion detects the schema of a decoded theme document.
// Priority order:
// 1. $schema field in the document root
// 2. Duck typing on the variants in "themes"
// 3. Config default version
// 4. Unknown
func DetectVersion(data map[string]any, config *DetectionConfig) Version {
	if schemaURL, ok := data["$schema"].(string); ok {
		if version, err := FromURL(schemaURL); err == nil {
			return version
		}
	}

	if version := duckTypeSchema(data); version != Unknown {
		return version
	}

	if config != nil {
		return config.DefaultVersion
	}
	return Unknown
}

// duckTypeSchema looks at the keys of each variant. A "style" key only
// appears in converted documents; "colors", "highlight" and "mode" only in
// legacy ones. The first variant that decides wins.
func duckTypeSchema(data map[string]any) Version {
	themes, ok := data["themes"].([]any)
	if !ok {
		return Unknown
	}
	for _, item := range themes {
		variant, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if _, ok := variant["style"]; ok {
			return ZedV0_2_0
		}
		for _, key := range []string{"colors", "highlight", "mode"} {
			if _, ok := variant[key]; ok {
				return Legacy
			}
		}
	}
	return Unknown
}

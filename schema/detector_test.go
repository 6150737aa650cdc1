/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema_test

import (
	"testing"

	"bennypowers.dev/themeport/schema"
)

func TestDetectVersion(t *testing.T) {
	tests := []struct {
		name     string
		data     map[string]any
		config   *schema.DetectionConfig
		expected schema.Version
	}{
		{
			name:     "explicit zed schema",
			data:     map[string]any{"$schema": "https://zed.dev/schema/themes/v0.2.0.json"},
			expected: schema.ZedV0_2_0,
		},
		{
			name: "unrecognized schema URL falls through to duck typing",
			data: map[string]any{
				"$schema": "https://example.com/theme.json",
				"themes":  []any{map[string]any{"colors": map[string]any{}}},
			},
			expected: schema.Legacy,
		},
		{
			name:     "duck type style",
			data:     map[string]any{"themes": []any{map[string]any{"name": "x", "style": map[string]any{}}}},
			expected: schema.ZedV0_2_0,
		},
		{
			name:     "duck type colors",
			data:     map[string]any{"themes": []any{map[string]any{"colors": map[string]any{}}}},
			expected: schema.Legacy,
		},
		{
			name:     "duck type mode only",
			data:     map[string]any{"themes": []any{map[string]any{"name": "x", "mode": "light"}}},
			expected: schema.Legacy,
		},
		{
			name:     "skips undecided variants",
			data:     map[string]any{"themes": []any{"junk", map[string]any{"name": "x"}, map[string]any{"highlight": map[string]any{}}}},
			expected: schema.Legacy,
		},
		{
			name:     "no themes",
			data:     map[string]any{"name": "x"},
			expected: schema.Unknown,
		},
		{
			name:     "config default",
			data:     map[string]any{"name": "x"},
			config:   &schema.DetectionConfig{DefaultVersion: schema.Legacy},
			expected: schema.Legacy,
		},
		{
			name:     "nil document",
			data:     nil,
			expected: schema.Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := schema.DetectVersion(tt.data, tt.config); got != tt.expected {
				t.Errorf("DetectVersion() = %v, want %v", got, tt.expected)
			}
		})
	}
}

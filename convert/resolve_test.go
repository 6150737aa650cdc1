/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/themeport/convert"
	"bennypowers.dev/themeport/testutil"
	"bennypowers.dev/themeport/theme"
)

func TestResolveStyle_Defaults(t *testing.T) {
	style := convert.ResolveStyle(nil, theme.Highlight{})

	expected := testutil.LoadFixtureFile(t, "fixtures/convert/defaults.json")
	var want map[string]any
	require.NoError(t, json.Unmarshal(expected, &want))

	got := make(map[string]any, style.Len())
	for _, f := range style.Fields() {
		if f.Valid {
			got[f.Name] = f.Value
		} else {
			got[f.Name] = nil
		}
	}
	assert.Equal(t, want, got)
	assert.Equal(t, orderedKeys(t, expected), fieldNames(style))

	assert.Equal(t, convert.Players(), style.Players)
	assert.Len(t, style.Players, 6)
	assert.Empty(t, style.Syntax)
}

func TestResolveStyle_FallbackChains(t *testing.T) {
	tests := []struct {
		name      string
		colors    map[string]string
		highlight map[string]string
		field     string
		want      string
	}{
		{
			name:   "single source",
			colors: map[string]string{"border": "#111111"},
			field:  "border",
			want:   "#111111",
		},
		{
			name:   "specific key wins over general key",
			colors: map[string]string{"panel.background": "#aaaaaa", "muted.background": "#bbbbbb"},
			field:  "panel.background",
			want:   "#aaaaaa",
		},
		{
			name:   "general key when specific is missing",
			colors: map[string]string{"muted.background": "#bbbbbb"},
			field:  "panel.background",
			want:   "#bbbbbb",
		},
		{
			name:   "empty string falls through",
			colors: map[string]string{"panel.background": "", "muted.background": "#bbbbbb"},
			field:  "panel.background",
			want:   "#bbbbbb",
		},
		{
			name:  "literal default",
			field: "panel.background",
			want:  "#292e42",
		},
		{
			name:      "highlight before colors",
			colors:    map[string]string{"background": "#000000"},
			highlight: map[string]string{"editor.background": "#010101"},
			field:     "editor.background",
			want:      "#010101",
		},
		{
			name:   "colors after highlight",
			colors: map[string]string{"background": "#000000"},
			field:  "editor.gutter.background",
			want:   "#000000",
		},
		{
			name:   "colors key does not satisfy highlight lookup",
			colors: map[string]string{"editor.line_number": "#123456"},
			field:  "editor.line_number",
			want:   "#565f89",
		},
		{
			name:   "constant ignores input",
			colors: map[string]string{"search.match_background": "#ffffff"},
			field:  "search.match_background",
			want:   "#e0af6844",
		},
		{
			name:   "border.disabled prefers input.border",
			colors: map[string]string{"input.border": "#222222", "border": "#333333"},
			field:  "border.disabled",
			want:   "#222222",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := convert.ResolveStyle(tt.colors, theme.Highlight{Overrides: tt.highlight})
			got, ok := style.Get(tt.field)
			require.True(t, ok, "field %s should be set", tt.field)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveStyle_AlphaDerivedBackgrounds(t *testing.T) {
	alpha := []string{"error", "warning", "info", "hint", "success", "conflict", "created", "deleted", "modified", "renamed"}
	for _, cat := range alpha {
		t.Run(cat, func(t *testing.T) {
			base := "#abcdef"
			style := convert.ResolveStyle(nil, theme.Highlight{Overrides: map[string]string{cat: base}})

			got, _ := style.Get(cat)
			assert.Equal(t, base, got)
			bg, ok := style.Get(cat + ".background")
			require.True(t, ok)
			assert.Equal(t, base+"11", bg)
			border, _ := style.Get(cat + ".border")
			assert.Equal(t, base, border)
		})
	}
}

func TestResolveStyle_AlphaSuffixIsConcatenation(t *testing.T) {
	// Not a colour at all; the suffix is appended regardless.
	style := convert.ResolveStyle(nil, theme.Highlight{Overrides: map[string]string{"error": "red"}})
	bg, _ := style.Get("error.background")
	assert.Equal(t, "red11", bg)
}

func TestResolveStyle_ExplicitOverrides(t *testing.T) {
	style := convert.ResolveStyle(nil, theme.Highlight{Overrides: map[string]string{
		"warning":            "#e0af68",
		"warning.background": "#00000000",
		"warning.border":     "#ffffff",
	}})

	bg, _ := style.Get("warning.background")
	assert.Equal(t, "#00000000", bg)
	border, _ := style.Get("warning.border")
	assert.Equal(t, "#ffffff", border)
}

func TestResolveStyle_DefaultBaseStillSuffixed(t *testing.T) {
	style := convert.ResolveStyle(nil, theme.Highlight{})
	bg, ok := style.Get("hint.background")
	require.True(t, ok)
	assert.Equal(t, "#7dcfff11", bg)
}

func TestResolveStyle_NullBackgroundCategories(t *testing.T) {
	for _, cat := range []string{"hidden", "ignored", "predictive", "unreachable"} {
		t.Run(cat, func(t *testing.T) {
			style := convert.ResolveStyle(nil, theme.Highlight{Overrides: map[string]string{cat: "#123456"}})

			_, ok := style.Get(cat + ".background")
			assert.False(t, ok, "background should be null without an override")
			assert.True(t, style.Has(cat+".background"))

			border, _ := style.Get(cat + ".border")
			assert.Equal(t, "#123456", border)

			style = convert.ResolveStyle(nil, theme.Highlight{Overrides: map[string]string{cat + ".background": "#654321"}})
			bg, ok := style.Get(cat + ".background")
			assert.True(t, ok)
			assert.Equal(t, "#654321", bg)
		})
	}
}

func TestResolveStyle_SyntaxFromHighlight(t *testing.T) {
	style := convert.ResolveStyle(nil, theme.Highlight{Syntax: map[string]any{
		"keyword": map[string]any{"color": "#bb9af7"},
	}})
	assert.Equal(t, map[string]theme.SyntaxStyle{"keyword": {Color: "#bb9af7"}}, style.Syntax)
}

func TestResolveStyle_PlayersAreNotShared(t *testing.T) {
	a := convert.ResolveStyle(nil, theme.Highlight{})
	b := convert.ResolveStyle(nil, theme.Highlight{})
	a.Players[0].Cursor = "#000000"
	assert.Equal(t, "#7aa2f7", b.Players[0].Cursor)
	assert.Equal(t, "#7aa2f7", convert.Players()[0].Cursor)
}

func TestAppearance(t *testing.T) {
	assert.Equal(t, "light", convert.Appearance("light"))
	assert.Equal(t, "dark", convert.Appearance("dark"))
	assert.Equal(t, "dark", convert.Appearance(""))
	assert.Equal(t, "dark", convert.Appearance("LIGHT"))
}

func TestFields(t *testing.T) {
	seen := make(map[string]bool, len(convert.Fields))
	for _, rule := range convert.Fields {
		assert.False(t, seen[rule.Field], "duplicate field %s", rule.Field)
		seen[rule.Field] = true

		switch rule.Kind {
		case convert.KindConstant:
			assert.Empty(t, rule.Candidates, rule.Field)
		case convert.KindAlpha:
			assert.NotEmpty(t, rule.Base, rule.Field)
			assert.Equal(t, "11", rule.Suffix, rule.Field)
		default:
			assert.NotEmpty(t, rule.Candidates, rule.Field)
		}
	}
	assert.Len(t, convert.Fields, 106)
	assert.False(t, seen["syntax"])
	assert.False(t, seen["players"])
}

func TestRule_DefaultString(t *testing.T) {
	byField := make(map[string]convert.Rule)
	for _, r := range convert.Fields {
		byField[r.Field] = r
	}
	assert.Equal(t, "#292e42", byField["border"].DefaultString())
	assert.Equal(t, "null", byField["border.transparent"].DefaultString())
	assert.Equal(t, "null", byField["hidden.background"].DefaultString())
	assert.Equal(t, "(highlight.error | #f7768e)11", byField["error.background"].DefaultString())
}

func fieldNames(style theme.Style) []string {
	names := make([]string, 0, style.Len())
	for _, f := range style.Fields() {
		names = append(names, f.Name)
	}
	return names
}

// orderedKeys returns the top-level keys of a JSON object in document order.
func orderedKeys(t *testing.T, data []byte) []string {
	t.Helper()
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	require.NoError(t, err)
	require.Equal(t, json.Delim('{'), tok)

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		require.NoError(t, err)
		keys = append(keys, tok.(string))
		var skip json.RawMessage
		require.NoError(t, dec.Decode(&skip))
	}
	return keys
}

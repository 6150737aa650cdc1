/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package render

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"bennypowers.dev/themeport/theme"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Tab Bar", "tab-bar"},
		{"tab_bar", "tab-bar"},
		{"editor.document_highlight", "editor-document-highlight"},
		{"Elevated  Surface", "elevated-surface"},
		{"UPPERCASE", "uppercase"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := slugify(tt.input)
			if result != tt.expected {
				t.Errorf("slugify(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestToTitleCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"editor", "Editor"},
		{"tab bar", "Tab Bar"},
		{"ghost element", "Ghost Element"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := toTitleCase(tt.input)
			if result != tt.expected {
				t.Errorf("toTitleCase(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGroupOf(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"background", "background"},
		{"editor.background", "editor"},
		{"editor.document_highlight.read_background", "editor"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := GroupOf(tt.input); got != tt.expected {
				t.Errorf("GroupOf(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestComputeRows(t *testing.T) {
	var style theme.Style
	style.Set("background", "#1a1b26")
	style.SetNull("border.transparent")
	style.Set("editor.background", "red11")

	rows := ComputeRows(style)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	if !rows[0].IsColor || rows[0].Null || rows[0].Group != "background" {
		t.Errorf("unexpected first row %+v", rows[0])
	}
	if !rows[1].Null || rows[1].Value != "null" || rows[1].IsColor {
		t.Errorf("unexpected null row %+v", rows[1])
	}
	if rows[1].Group != "border" {
		t.Errorf("expected group border, got %q", rows[1].Group)
	}
	// Concatenated fallbacks such as "red11" are not valid colours.
	if rows[2].IsColor {
		t.Errorf("expected %q not to be a colour", rows[2].Value)
	}
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		background string
		want       string
		ok         bool
	}{
		{"opaque", "#7aa2f7", "#000000", "#7aa2f7", true},
		{"half red over black", "#ff000080", "#000000", "#800000", true},
		{"transparent", "#1a1b2600", "#ffffff", "#ffffff", true},
		{"invalid value", "not-a-colour", "#000000", "", false},
		{"invalid background", "#ffffff", "", "#ffffff", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Flatten(tt.value, tt.background)
			if ok != tt.ok {
				t.Fatalf("Flatten() ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("Flatten() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContrast(t *testing.T) {
	tests := []struct {
		name string
		fg   string
		bg   string
		want float64
	}{
		{"black on white", "#000000", "#ffffff", 21},
		{"white on black", "#ffffff", "#000000", 21},
		{"same colour", "#7aa2f7", "#7aa2f7", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Contrast(tt.fg, tt.bg)
			if !ok {
				t.Fatal("expected contrast to be computed")
			}
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("Contrast() = %.3f, want %.3f", got, tt.want)
			}
		})
	}

	if _, ok := Contrast("nope", "#000000"); ok {
		t.Error("expected failure for invalid foreground")
	}
	if _, ok := Contrast("#ffffff", "nope"); ok {
		t.Error("expected failure for invalid background")
	}
}

func TestRenderer_ColorSwatch(t *testing.T) {
	var buf bytes.Buffer
	rn := NewRenderer(&buf)

	if got := rn.ColorSwatch("not-a-colour", "#000000"); got != "" {
		t.Errorf("expected empty swatch, got %q", got)
	}
	if got := rn.ColorSwatch("#7aa2f7", "#000000"); !strings.Contains(got, "  ") {
		t.Errorf("expected a two-cell swatch, got %q", got)
	}
}

func TestRenderer_Table(t *testing.T) {
	var style theme.Style
	style.Set("background", "#1a1b26")
	style.SetNull("border.transparent")
	style.Set("editor.foreground", "#c0caf5")

	var buf bytes.Buffer
	rn := NewRenderer(&buf)
	if err := rn.Table(ComputeRows(style), "#1a1b26"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "background ") || !strings.HasSuffix(lines[0], "#1a1b26") {
		t.Errorf("unexpected line %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "border.transparent") || !strings.Contains(lines[1], "null") {
		t.Errorf("unexpected null line %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], "#c0caf5") {
		t.Errorf("unexpected line %q", lines[2])
	}
}

func TestMarkdown(t *testing.T) {
	rows := []Row{
		{Name: "tab_bar.background", Group: "tab_bar", Value: "#161720", IsColor: true},
		{Name: "text", Group: "text", Value: "#c0caf5", IsColor: true},
	}

	var buf bytes.Buffer
	if err := Markdown(&buf, rows, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"## Tab Bar {#tab-bar}\n\n",
		"| Name                 | Value   |\n",
		"|----------------------|---------|\n",
		"| `tab_bar.background` | #161720 |\n",
		"\n## Text {#text}\n\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q\ngot:\n%s", want, out)
		}
	}

	if strings.Index(out, "Tab Bar") > strings.Index(out, "## Text") {
		t.Error("groups must keep first-occurrence order")
	}
}

func TestMarkdown_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := Markdown(&buf, nil, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

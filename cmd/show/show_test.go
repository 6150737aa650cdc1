/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package show

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"bennypowers.dev/themeport/testutil"
	"bennypowers.dev/themeport/theme"
)

func TestLoad(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/batch", "/project")

	doc, err := load(mfs, "/project/themes/tokyonight.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Themes) != 3 {
		t.Errorf("expected 3 variants, got %d", len(doc.Themes))
	}

	if _, err := load(mfs, "/project/themes/zed-native.json"); err == nil {
		t.Error("expected error for an already converted theme")
	}

	_, err = load(mfs, "/project/themes/broken.json")
	if !errors.Is(err, theme.ErrStructural) {
		t.Errorf("expected structural error, got %v", err)
	}
}

func TestSelectVariants(t *testing.T) {
	variants := []theme.TargetVariant{
		{Name: "Storm"},
		{Name: "Day"},
		{Name: "7"},
	}

	tests := []struct {
		name    string
		sel     string
		want    []string
		wantErr bool
	}{
		{name: "all", sel: "", want: []string{"Storm", "Day", "7"}},
		{name: "by name", sel: "Day", want: []string{"Day"}},
		{name: "by index", sel: "0", want: []string{"Storm"}},
		{name: "name wins over index", sel: "7", want: []string{"7"}},
		{name: "index out of range", sel: "3", wantErr: true},
		{name: "unknown name", sel: "Night", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := selectVariants(variants, tt.sel)
			if (err != nil) != tt.wantErr {
				t.Fatalf("selectVariants() error = %v, wantErr %v", err, tt.wantErr)
			}
			var names []string
			for _, v := range got {
				names = append(names, v.Name)
			}
			if strings.Join(names, ",") != strings.Join(tt.want, ",") {
				t.Errorf("selectVariants() = %v, want %v", names, tt.want)
			}
		})
	}
}

func TestContrastLine(t *testing.T) {
	var style theme.Style
	style.Set("background", "#000000")
	style.Set("text", "#ffffff")

	if got := contrastLine(style); got != "contrast: 21.00:1 (text #ffffff on #000000)" {
		t.Errorf("unexpected contrast line %q", got)
	}

	var broken theme.Style
	broken.Set("background", "#000000")
	broken.Set("text", "red11")
	if got := contrastLine(broken); got != "contrast: n/a" {
		t.Errorf("unexpected contrast line %q", got)
	}
}

func TestOutputs(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/batch", "/project")
	doc, err := load(mfs, "/project/themes/gruvbox.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		if err := outputTable(&buf, doc.Themes); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := buf.String()
		for _, want := range []string{"Gruvbox Light (light)", "contrast: ", "1 syntax rules, 6 players", "background", "#fbf1c7"} {
			if !strings.Contains(out, want) {
				t.Errorf("table output missing %q", want)
			}
		}
	})

	t.Run("markdown", func(t *testing.T) {
		var buf bytes.Buffer
		if err := outputMarkdown(&buf, doc.Themes); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := buf.String()
		for _, want := range []string{"# Gruvbox Light\n", "Appearance: light.", "## Editor {#editor}", "| `editor.background` "} {
			if !strings.Contains(out, want) {
				t.Errorf("markdown output missing %q", want)
			}
		}
	})
}

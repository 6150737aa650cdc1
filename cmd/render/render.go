/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/themeport/theme"
)

// Row holds computed display values for a single style field.
type Row struct {
	Name    string // Style field name, e.g. "editor.background"
	Group   string // First dotted segment of Name
	Value   string // Colour value, or "null"
	IsColor bool   // Whether Value parses as a CSS colour
	Null    bool   // Whether the field is encoded as null
}

// ComputeRows transforms the colour fields of a style into display rows.
func ComputeRows(style theme.Style) []Row {
	fields := style.Fields()
	rows := make([]Row, 0, len(fields))
	for _, f := range fields {
		row := Row{
			Name:  f.Name,
			Group: GroupOf(f.Name),
			Value: f.Value,
			Null:  !f.Valid,
		}
		if row.Null {
			row.Value = "null"
		} else if _, err := csscolorparser.Parse(f.Value); err == nil {
			row.IsColor = true
		}
		rows = append(rows, row)
	}
	return rows
}

// GroupOf returns the part of a field name before the first dot.
func GroupOf(name string) string {
	group, _, _ := strings.Cut(name, ".")
	return group
}

// ColumnWidths calculates the max width needed for each column.
func ColumnWidths(rows []Row) (name, val int) {
	name, val = 4, 5 // minimums for headers
	for _, r := range rows {
		name = max(name, len(r.Name))
		val = max(val, len(r.Value))
	}
	return
}

// Flatten composites a possibly translucent colour over background and
// returns the opaque result as #rrggbb. ok is false if either value does
// not parse.
func Flatten(value, background string) (hex string, ok bool) {
	fg, err := csscolorparser.Parse(value)
	if err != nil {
		return "", false
	}
	bg, err := csscolorparser.Parse(background)
	if err != nil {
		bg = csscolorparser.Color{R: 0, G: 0, B: 0, A: 1}
	}
	top := colorful.Color{R: fg.R, G: fg.G, B: fg.B}
	bottom := colorful.Color{R: bg.R, G: bg.G, B: bg.B}
	return bottom.BlendRgb(top, fg.A).Clamped().Hex(), true
}

// Contrast returns the WCAG contrast ratio between two colours, from 1 to
// 21. Translucent foregrounds are flattened onto the background first.
func Contrast(foreground, background string) (float64, bool) {
	bgHex, ok := Flatten(background, "#000000")
	if !ok {
		return 0, false
	}
	fgHex, ok := Flatten(foreground, bgHex)
	if !ok {
		return 0, false
	}
	fg, _ := colorful.Hex(fgHex)
	bg, _ := colorful.Hex(bgHex)

	l1, l2 := luminance(fg), luminance(bg)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05), true
}

func luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Renderer draws styled terminal output for one writer. The colour profile
// is detected from the writer, so swatches degrade to plain text when the
// output is not a terminal.
type Renderer struct {
	w       io.Writer
	r       *lipgloss.Renderer
	heading lipgloss.Style
	muted   lipgloss.Style
}

// NewRenderer returns a Renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		w:       w,
		r:       r,
		heading: r.NewStyle().Bold(true).Underline(true),
		muted:   r.NewStyle().Faint(true),
	}
}

// ColorSwatch returns a two-cell block filled with value, composited over
// background. It returns "" when value is not a colour.
func (rn *Renderer) ColorSwatch(value, background string) string {
	hex, ok := Flatten(value, background)
	if !ok {
		return ""
	}
	return rn.r.NewStyle().Background(lipgloss.Color(hex)).Render("  ") + " "
}

// Heading writes a styled heading line.
func (rn *Renderer) Heading(text string) {
	fmt.Fprintln(rn.w, rn.heading.Render(text))
}

// Table renders rows as an aligned table with colour swatches.
func (rn *Renderer) Table(rows []Row, background string) error {
	if len(rows) == 0 {
		return nil
	}
	nameW, _ := ColumnWidths(rows)
	for _, r := range rows {
		if r.Null {
			fmt.Fprintf(rn.w, "%-*s     %s\n", nameW, r.Name, rn.muted.Render(r.Value))
			continue
		}
		swatch := "   "
		if r.IsColor {
			swatch = rn.ColorSwatch(r.Value, background)
		}
		if _, err := fmt.Fprintf(rn.w, "%-*s  %s%s\n", nameW, r.Name, swatch, r.Value); err != nil {
			return err
		}
	}
	return nil
}

// Markdown renders rows as markdown tables grouped by field group, under
// headings of the given level.
func Markdown(w io.Writer, rows []Row, level int) error {
	if len(rows) == 0 {
		return nil
	}

	// Group rows, preserving order of first occurrence
	groupOrder := make([]string, 0)
	byGroup := make(map[string][]Row)
	for _, r := range rows {
		if _, exists := byGroup[r.Group]; !exists {
			groupOrder = append(groupOrder, r.Group)
		}
		byGroup[r.Group] = append(byGroup[r.Group], r)
	}

	heading := strings.Repeat("#", min(max(level, 1), 6))
	for i, group := range groupOrder {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s %s {#%s}\n\n", heading, toTitleCase(strings.ReplaceAll(group, "_", " ")), slugify(group))

		nameW, valW := ColumnWidths(byGroup[group])
		nameW += 2 // backticks
		fmt.Fprintf(w, "| %-*s | %-*s |\n", nameW, "Name", valW, "Value")
		fmt.Fprintf(w, "|-%s-|-%s-|\n", strings.Repeat("-", nameW), strings.Repeat("-", valW))
		for _, r := range byGroup[group] {
			fmt.Fprintf(w, "| %-*s | %-*s |\n", nameW, "`"+r.Name+"`", valW, r.Value)
		}
	}
	return nil
}

// slugify converts a name to a URL-safe anchor ID.
// e.g., "Tab Bar" -> "tab-bar"
func slugify(name string) string {
	var result strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(r)
		} else if r == ' ' || r == '-' || r == '_' || r == '.' {
			result.WriteRune('-')
		}
	}
	// Remove consecutive dashes
	s := result.String()
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}

// toTitleCase converts a string to Title Case.
func toTitleCase(s string) string {
	caser := cases.Title(language.English)
	return caser.String(s)
}

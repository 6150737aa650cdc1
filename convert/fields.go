/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import "strings"

// Kind tags the shape of a field rule.
type Kind int

const (
	// KindLookup takes the first non-empty candidate, else Default.
	KindLookup Kind = iota

	// KindAlpha takes the first non-empty candidate, else the first
	// non-empty Base candidate (or Default) with Suffix appended.
	KindAlpha

	// KindConstant is always Default, or null when Null is set.
	KindConstant
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindLookup:
		return "lookup"
	case KindAlpha:
		return "alpha"
	case KindConstant:
		return "constant"
	default:
		return "unknown"
	}
}

// Section names the part of a source variant a key is read from.
type Section int

const (
	// Colors is the variant's flat UI colour map.
	Colors Section = iota
	// Highlight is the variant's flat highlight overrides.
	Highlight
)

// String returns the source document key of the section.
func (s Section) String() string {
	if s == Highlight {
		return "highlight"
	}
	return "colors"
}

// Key is one lookup in a fallback chain.
type Key struct {
	Section Section
	Name    string
}

// String returns the key as "section.name".
func (k Key) String() string {
	return k.Section.String() + "." + k.Name
}

func c(name string) Key { return Key{Section: Colors, Name: name} }
func h(name string) Key { return Key{Section: Highlight, Name: name} }

// Rule resolves one target style field.
type Rule struct {
	Field      string
	Kind       Kind
	Candidates []Key
	// Base feeds the suffixed fallback of KindAlpha rules.
	Base    []Key
	Suffix  string
	Default string
	// Null marks a rule whose terminal fallback is null instead of Default.
	Null bool
}

// DefaultString renders the rule's terminal fallback for display.
func (r Rule) DefaultString() string {
	switch {
	case r.Null:
		return "null"
	case r.Kind == KindAlpha:
		names := make([]string, 0, len(r.Base))
		for _, k := range r.Base {
			names = append(names, k.String())
		}
		names = append(names, r.Default)
		return "(" + strings.Join(names, " | ") + ")" + r.Suffix
	default:
		return r.Default
	}
}

// alphaSuffix is appended to a base colour to derive a translucent
// background.
const alphaSuffix = "11"

func lookup(field, def string, keys ...Key) Rule {
	return Rule{Field: field, Kind: KindLookup, Candidates: keys, Default: def}
}

func constant(field, value string) Rule {
	return Rule{Field: field, Kind: KindConstant, Default: value}
}

func null(field string) Rule {
	return Rule{Field: field, Kind: KindConstant, Null: true}
}

// category describes a diagnostic/status colour that expands into a
// base/background/border triad.
type category struct {
	name string
	def  string
	// alpha is false for categories whose background has no derived
	// default and stays null without an explicit override.
	alpha bool
}

// categories are listed in target field order.
var categories = []category{
	{"conflict", "#f7768e", true},
	{"created", "#9ece6a", true},
	{"deleted", "#f7768e", true},
	{"error", "#f7768e", true},
	{"hidden", "#565f89", false},
	{"hint", "#7dcfff", true},
	{"ignored", "#565f89", false},
	{"info", "#7aa2f7", true},
	{"modified", "#e0af68", true},
	{"predictive", "#565f89", false},
	{"renamed", "#7aa2f7", true},
	{"success", "#9ece6a", true},
	{"unreachable", "#565f89", false},
	{"warning", "#e0af68", true},
}

func triad(cat category) []Rule {
	base := lookup(cat.name, cat.def, h(cat.name))

	background := Rule{
		Field:      cat.name + ".background",
		Kind:       KindLookup,
		Candidates: []Key{h(cat.name + ".background")},
		Null:       true,
	}
	if cat.alpha {
		background = Rule{
			Field:      cat.name + ".background",
			Kind:       KindAlpha,
			Candidates: []Key{h(cat.name + ".background")},
			Base:       []Key{h(cat.name)},
			Suffix:     alphaSuffix,
			Default:    cat.def,
		}
	}

	border := lookup(cat.name+".border", cat.def, h(cat.name+".border"), h(cat.name))
	return []Rule{base, background, border}
}

// Fields is the ordered table of target style fields. syntax and players
// are not listed; they are filled by ConvertSyntax and Players.
var Fields = buildFields()

func buildFields() []Rule {
	rules := []Rule{
		lookup("background", "#1a1b26", c("background")),
		lookup("text", "#c0caf5", c("foreground")),
		lookup("text.muted", "#565f89", c("muted.foreground")),
		lookup("text.accent", "#c0caf5", c("foreground")),
		lookup("text.placeholder", "#565f89", c("muted.foreground")),
		lookup("text.disabled", "#565f89", c("muted.foreground")),
		lookup("border", "#292e42", c("border")),
		lookup("border.variant", "#292e42", c("border")),
		lookup("border.focused", "#7aa2f7", c("primary.background")),
		lookup("border.selected", "#7aa2f7", c("primary.background")),
		lookup("border.disabled", "#292e42", c("input.border"), c("border")),
		null("border.transparent"),
		lookup("panel.background", "#292e42", c("panel.background"), c("muted.background")),
		lookup("panel.focused_border", "#7aa2f7", c("primary.background")),
		lookup("panel.indent_guide", "#292e42", c("muted.background")),
		lookup("panel.indent_guide_active", "#7aa2f7", c("primary.background")),
		lookup("elevated_surface.background", "#1a1b26", c("popover.background"), c("background")),
		lookup("surface.background", "#292e42", c("muted.background")),
		lookup("tab_bar.background", "#161720", c("tab_bar.background"), c("title_bar.background")),
		lookup("tab.active_background", "#1a1b26", c("tab.active.background"), c("background")),
		lookup("tab.inactive_background", "#292e42", c("secondary.background"), c("muted.background")),
		lookup("tab.text", "#565f89", c("tab.foreground"), c("muted.foreground")),
		lookup("tab.active_text", "#c0caf5", c("tab.active.foreground"), c("foreground")),
		lookup("title_bar.background", "#161720", c("title_bar.background")),
		lookup("title_bar.inactive_background", "#161720", c("title_bar.background")),
		lookup("toolbar.background", "#292e42", c("panel.background"), c("muted.background")),
		lookup("status_bar.background", "#161720", c("title_bar.background")),
		lookup("icon", "#c0caf5", c("foreground")),
		lookup("icon.muted", "#565f89", c("muted.foreground")),
		lookup("icon.accent", "#7aa2f7", c("primary.background")),
		lookup("icon.disabled", "#565f89", c("muted.foreground")),
		lookup("icon.placeholder", "#565f89", c("muted.foreground")),
		lookup("element.background", "#292e42", c("secondary.background"), c("muted.background")),
		lookup("element.hover", "#31374f", c("secondary.hover.background")),
		lookup("element.active", "#7aa2f7", c("primary.background")),
		lookup("element.selected", "#7aa2f722", c("list.active.background")),
		lookup("element.disabled", "#565f89", c("muted.foreground")),
		lookup("ghost_element.hover", "#7aa2f711", c("list.active.background")),
		lookup("ghost_element.active", "#7aa2f722", c("list.active.background")),
		lookup("ghost_element.selected", "#7aa2f722", c("list.active.background")),
		lookup("ghost_element.disabled", "#565f89", c("muted.foreground")),
		lookup("drop_target.background", "#7aa2f722", c("list.active.background")),
		lookup("link_text.hover", "#7aa2f7", c("link.hover.foreground"), c("link.foreground")),
		lookup("scrollbar.track.background", "#1a1b2600", c("scrollbar.background")),
		null("scrollbar.track.border"),
		lookup("scrollbar.thumb.background", "#414868", c("scrollbar.thumb.background")),
		null("scrollbar.thumb.border"),
		lookup("scrollbar.thumb.hover_background", "#7aa2f7", c("primary.background")),
		lookup("editor.background", "#1a1b26", h("editor.background"), c("background")),
		lookup("editor.foreground", "#c0caf5", h("editor.foreground"), c("foreground")),
		lookup("editor.gutter.background", "#1a1b26", h("editor.background"), c("background")),
		lookup("editor.line_number", "#565f89", h("editor.line_number")),
		lookup("editor.active_line_number", "#c0caf5", h("editor.active_line_number")),
		lookup("editor.active_line.background", "#292e42", h("editor.active_line.background")),
		lookup("editor.highlighted_line.background", "#292e42", h("editor.active_line.background")),
		lookup("editor.indent_guide", "#292e42", c("muted.background")),
		lookup("editor.indent_guide_active", "#7aa2f7", c("primary.background")),
		lookup("editor.wrap_guide", "#292e42", c("muted.background")),
		lookup("editor.active_wrap_guide", "#7aa2f7", c("primary.background")),
		lookup("editor.invisible", "#565f89", c("muted.foreground")),
		lookup("editor.document_highlight.read_background", "#7aa2f711", c("list.active.background")),
		lookup("editor.document_highlight.write_background", "#7aa2f722", c("list.active.background")),
		lookup("editor.document_highlight.bracket_background", "#7aa2f722", c("list.active.background")),
		constant("search.match_background", "#e0af6844"),
	}
	for _, cat := range categories {
		rules = append(rules, triad(cat)...)
	}
	return rules
}

/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import "bennypowers.dev/themeport/theme"

// ResolveStyle computes every target style field of one variant from its
// colour tokens and highlight section. It never fails: each field ends in a
// literal default.
func ResolveStyle(colors map[string]string, highlight theme.Highlight) theme.Style {
	src := sources{colors: colors, highlight: highlight.Overrides}

	var style theme.Style
	for _, rule := range Fields {
		if value, ok := src.resolve(rule); ok {
			style.Set(rule.Field, value)
		} else {
			style.SetNull(rule.Field)
		}
	}
	style.Syntax = ConvertSyntax(highlight.Syntax)
	style.Players = Players()
	return style
}

// Appearance derives the target appearance from a raw mode string: "light"
// for "light", "dark" for anything else.
func Appearance(mode string) string {
	return theme.ParseMode(mode).Appearance()
}

type sources struct {
	colors    map[string]string
	highlight map[string]string
}

// resolve applies one rule. ok is false when the field resolves to null.
func (s sources) resolve(rule Rule) (string, bool) {
	if rule.Kind == KindConstant {
		return rule.Default, !rule.Null
	}
	if v, ok := s.first(rule.Candidates); ok {
		return v, true
	}
	switch {
	case rule.Kind == KindAlpha:
		base, ok := s.first(rule.Base)
		if !ok {
			base = rule.Default
		}
		return base + rule.Suffix, true
	case rule.Null:
		return "", false
	default:
		return rule.Default, true
	}
}

// first returns the first present, non-empty value among keys.
func (s sources) first(keys []Key) (string, bool) {
	for _, k := range keys {
		m := s.colors
		if k.Section == Highlight {
			m = s.highlight
		}
		if v := m[k.Name]; v != "" {
			return v, true
		}
	}
	return "", false
}

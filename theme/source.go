/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package theme defines the legacy source and Zed target theme documents.
package theme

import "fmt"

// SourceDocument is a legacy multi-variant theme file.
type SourceDocument struct {
	Name   string
	Author string
	Themes []SourceVariant
}

// SourceVariant is one named colour scheme of a legacy theme file.
type SourceVariant struct {
	// Name is empty when the raw document had no usable name.
	Name string
	Mode Mode
	// Colors holds the flat UI colour tokens, e.g. "muted.background".
	Colors    map[string]string
	Highlight Highlight
}

// Highlight holds the editor highlight section of a variant: flat string
// overrides such as "error.background", and the raw syntax rules.
type Highlight struct {
	Overrides map[string]string
	// Syntax maps token names to raw attributes. Values are left untyped;
	// entries that are not mappings are dropped during conversion.
	Syntax map[string]any
}

// Decode builds a SourceDocument from an untyped decoded document.
//
// Missing scalars are left empty for the converter to default. The only
// failures are structural: a missing or non-sequence "themes", a variant
// that is not a mapping, or "colors"/"highlight" that are not mappings.
func Decode(raw map[string]any) (SourceDocument, error) {
	if raw == nil {
		return SourceDocument{}, structural("", "document is empty")
	}

	rawThemes, ok := raw["themes"]
	if !ok {
		return SourceDocument{}, structural("themes", "missing")
	}
	list, ok := rawThemes.([]any)
	if !ok {
		return SourceDocument{}, structural("themes", "expected a sequence, got %s", kindOf(rawThemes))
	}

	doc := SourceDocument{
		Name:   stringField(raw, "name"),
		Author: stringField(raw, "author"),
		Themes: make([]SourceVariant, 0, len(list)),
	}
	for i, item := range list {
		path := fmt.Sprintf("themes[%d]", i)
		m, ok := item.(map[string]any)
		if !ok {
			return SourceDocument{}, structural(path, "expected a mapping, got %s", kindOf(item))
		}
		v, err := decodeVariant(path, m)
		if err != nil {
			return SourceDocument{}, err
		}
		doc.Themes = append(doc.Themes, v)
	}
	return doc, nil
}

func decodeVariant(path string, raw map[string]any) (SourceVariant, error) {
	v := SourceVariant{
		Name: stringField(raw, "name"),
		Mode: ParseMode(stringField(raw, "mode")),
	}

	colors, err := optionalMap(raw, "colors", path)
	if err != nil {
		return SourceVariant{}, err
	}
	v.Colors = stringEntries(colors)

	highlight, err := optionalMap(raw, "highlight", path)
	if err != nil {
		return SourceVariant{}, err
	}
	v.Highlight.Overrides = stringEntries(highlight)
	if syntax, ok := highlight["syntax"].(map[string]any); ok {
		v.Highlight.Syntax = syntax
	} else {
		v.Highlight.Syntax = map[string]any{}
	}
	return v, nil
}

// optionalMap returns raw[key] as a mapping. An absent or null key yields an
// empty mapping; any other non-mapping value is a structural error.
func optionalMap(raw map[string]any, key, path string) (map[string]any, error) {
	value, ok := raw[key]
	if !ok || value == nil {
		return map[string]any{}, nil
	}
	m, ok := value.(map[string]any)
	if !ok {
		return nil, structural(path+"."+key, "expected a mapping, got %s", kindOf(value))
	}
	return m, nil
}

// stringEntries keeps the string-valued entries of m.
func stringEntries(m map[string]any) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

func stringField(raw map[string]any, key string) string {
	s, _ := raw[key].(string)
	return s
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int64, float64, uint64:
		return "number"
	case []any:
		return "sequence"
	case map[string]any:
		return "mapping"
	default:
		return fmt.Sprintf("%T", v)
	}
}

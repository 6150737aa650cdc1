/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert maps legacy theme documents onto the Zed theme schema.
//
// Every target style field is resolved through a fallback chain declared in
// Fields. Conversion is pure: the same input always yields the same output,
// and concurrent calls share nothing but the read-only field table.
package convert

import (
	"bennypowers.dev/themeport/schema"
	"bennypowers.dev/themeport/theme"
)

// ConvertDocument converts a legacy theme document, preserving variant
// order.
func ConvertDocument(src theme.SourceDocument) theme.TargetDocument {
	doc := theme.TargetDocument{
		Schema: schema.ZedV0_2_0.URL(),
		Name:   orUnknown(src.Name),
		Author: orUnknown(src.Author),
		Themes: make([]theme.TargetVariant, 0, len(src.Themes)),
	}
	for _, v := range src.Themes {
		doc.Themes = append(doc.Themes, ConvertVariant(v))
	}
	return doc
}

// ConvertRaw decodes an untyped document and converts it. A document
// without a well-formed "themes" sequence yields a *theme.StructuralError
// and no output.
func ConvertRaw(raw map[string]any) (theme.TargetDocument, error) {
	src, err := theme.Decode(raw)
	if err != nil {
		return theme.TargetDocument{}, err
	}
	return ConvertDocument(src), nil
}

/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import "bennypowers.dev/themeport/theme"

// UnknownName replaces a missing document, author, or variant name.
const UnknownName = "Unknown"

// ConvertVariant converts one legacy variant into a Zed theme.
func ConvertVariant(src theme.SourceVariant) theme.TargetVariant {
	return theme.TargetVariant{
		Name:       orUnknown(src.Name),
		Appearance: src.Mode.Appearance(),
		Style:      ResolveStyle(src.Colors, src.Highlight),
	}
}

func orUnknown(s string) string {
	if s == "" {
		return UnknownName
	}
	return s
}

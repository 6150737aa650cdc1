/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"fmt"

	"bennypowers.dev/themeport/theme"
)

// ConvertSyntax maps raw syntax rules to Zed syntax styles. Entries whose
// value is not a mapping are dropped. color is always emitted (empty when
// absent); font_style and font_weight only when truthy.
func ConvertSyntax(raw map[string]any) map[string]theme.SyntaxStyle {
	out := make(map[string]theme.SyntaxStyle, len(raw))
	for name, value := range raw {
		attrs, ok := value.(map[string]any)
		if !ok {
			continue
		}
		color, _ := attrs["color"].(string)
		style := theme.SyntaxStyle{Color: color}
		if v := attrs["font_style"]; truthy(v) {
			if s, ok := v.(string); ok {
				style.FontStyle = s
			} else {
				style.FontStyle = fmt.Sprint(v)
			}
		}
		if v := attrs["font_weight"]; truthy(v) {
			style.FontWeight = v
		}
		out[name] = style
	}
	return out
}

// truthy reports whether a decoded value would count as set: not nil,
// false, zero, or empty.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case int64:
		return x != 0
	case uint64:
		return x != 0
	case float64:
		return x != 0
	case []any:
		return len(x) > 0
	case map[string]any:
		return len(x) > 0
	default:
		return true
	}
}

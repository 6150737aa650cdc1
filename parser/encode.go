/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"bytes"
	"encoding/json"
	"strings"

	"bennypowers.dev/themeport/theme"
)

// DefaultIndent is the number of spaces used when indent is not positive.
const DefaultIndent = 2

// Encode serializes a converted document as indented JSON with a trailing
// newline. HTML characters are not escaped.
func Encode(doc theme.TargetDocument, indent int) ([]byte, error) {
	if indent <= 0 {
		indent = DefaultIndent
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", strings.Repeat(" ", indent))
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

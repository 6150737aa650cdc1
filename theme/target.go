/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package theme

import (
	"bytes"
	"encoding/json"
	"slices"
)

// TargetDocument is a Zed theme family file.
type TargetDocument struct {
	Schema string          `json:"$schema"`
	Name   string          `json:"name"`
	Author string          `json:"author"`
	Themes []TargetVariant `json:"themes"`
}

// TargetVariant is one Zed theme.
type TargetVariant struct {
	Name       string `json:"name"`
	Appearance string `json:"appearance"`
	Style      Style  `json:"style"`
}

// SyntaxStyle is the Zed style of one syntax token.
type SyntaxStyle struct {
	Color     string `json:"color"`
	FontStyle string `json:"font_style,omitempty"`
	// FontWeight is passed through as found in the source, usually a number.
	FontWeight any `json:"font_weight,omitempty"`
}

// Player is the cursor/selection colour set of one collaborator.
type Player struct {
	Cursor     string `json:"cursor"`
	Background string `json:"background"`
	Selection  string `json:"selection"`
}

// StyleField is one named colour of a Style. Valid is false for fields the
// target document carries as null.
type StyleField struct {
	Name  string
	Value string
	Valid bool
}

// Style is the ordered set of colour fields of a Zed theme, followed by the
// syntax map and the player list. Field order is the order of Set calls and
// is preserved when encoding.
type Style struct {
	fields  []StyleField
	index   map[string]int
	Syntax  map[string]SyntaxStyle
	Players []Player
}

// Set assigns a colour to name, appending the field if it is new.
func (s *Style) Set(name, value string) {
	s.put(StyleField{Name: name, Value: value, Valid: true})
}

// SetNull records name as an explicit null field.
func (s *Style) SetNull(name string) {
	s.put(StyleField{Name: name})
}

func (s *Style) put(f StyleField) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if i, ok := s.index[f.Name]; ok {
		s.fields[i] = f
		return
	}
	s.index[f.Name] = len(s.fields)
	s.fields = append(s.fields, f)
}

// Get returns the colour of name. ok is false when the field is null or
// unknown.
func (s Style) Get(name string) (value string, ok bool) {
	i, found := s.index[name]
	if !found {
		return "", false
	}
	f := s.fields[i]
	return f.Value, f.Valid
}

// Has reports whether name is a field of the style, null or not.
func (s Style) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Fields returns a copy of the colour fields in order.
func (s Style) Fields() []StyleField {
	return slices.Clone(s.fields)
}

// Len returns the number of colour fields.
func (s Style) Len() int {
	return len(s.fields)
}

// MarshalJSON encodes the style as one object: colour fields in order, then
// "syntax" and "players".
func (s Style) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range s.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, f.Name, f.Value, f.Valid); err != nil {
			return nil, err
		}
	}

	syntax := s.Syntax
	if syntax == nil {
		syntax = map[string]SyntaxStyle{}
	}
	players := s.Players
	if players == nil {
		players = []Player{}
	}
	if len(s.fields) > 0 {
		buf.WriteByte(',')
	}
	if err := writeMember(&buf, "syntax", syntax, true); err != nil {
		return nil, err
	}
	buf.WriteByte(',')
	if err := writeMember(&buf, "players", players, true); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeMember(buf *bytes.Buffer, key string, value any, valid bool) error {
	if err := writeJSON(buf, key); err != nil {
		return err
	}
	buf.WriteByte(':')
	if !valid {
		buf.WriteString("null")
		return nil
	}
	return writeJSON(buf, value)
}

// writeJSON encodes v without HTML escaping and without the trailing newline
// json.Encoder adds.
func writeJSON(buf *bytes.Buffer, v any) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}

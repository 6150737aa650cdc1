/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"slices"

	"bennypowers.dev/themeport/theme"
)

var players = []theme.Player{
	{Cursor: "#7aa2f7", Background: "#7aa2f7", Selection: "#364A82"},
	{Cursor: "#9ece6a", Background: "#9ece6a", Selection: "#4A572A"},
	{Cursor: "#e0af68", Background: "#e0af68", Selection: "#774A1A"},
	{Cursor: "#f7768e", Background: "#f7768e", Selection: "#7F3A3A"},
	{Cursor: "#bb9af7", Background: "#bb9af7", Selection: "#5A4A7A"},
	{Cursor: "#7dcfff", Background: "#7dcfff", Selection: "#2A4A5A"},
}

// Players returns a fresh copy of the fixed collaborator colour list every
// converted variant carries.
func Players() []theme.Player {
	return slices.Clone(players)
}

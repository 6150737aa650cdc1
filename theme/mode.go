/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package theme

// Mode is the light/dark classification of a theme variant.
type Mode string

const (
	// Dark is the default mode for anything other than "light".
	Dark Mode = "dark"
	// Light is selected only by the exact string "light".
	Light Mode = "light"
)

// ParseMode classifies a raw mode string. Only "light" yields Light;
// every other value, including the empty string, yields Dark.
func ParseMode(s string) Mode {
	if s == string(Light) {
		return Light
	}
	return Dark
}

// Appearance returns the target schema appearance for the mode.
func (m Mode) Appearance() string {
	return string(ParseMode(string(m)))
}

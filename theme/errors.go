/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package theme

import (
	"errors"
	"fmt"
)

// ErrStructural indicates a document does not have the minimal shape of a
// source theme document.
var ErrStructural = errors.New("malformed theme document")

// StructuralError describes where a source document departs from the
// required shape. It matches ErrStructural with errors.Is.
type StructuralError struct {
	// Path is the location of the offending value, e.g. "themes[2]".
	Path string
	// Message describes what was expected.
	Message string
}

// Error implements the error interface.
func (e *StructuralError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", ErrStructural, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", ErrStructural, e.Path, e.Message)
}

// Unwrap returns ErrStructural.
func (e *StructuralError) Unwrap() error {
	return ErrStructural
}

func structural(path, format string, args ...any) *StructuralError {
	return &StructuralError{Path: path, Message: fmt.Sprintf(format, args...)}
}

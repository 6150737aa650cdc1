/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mapfs

import (
	"errors"
	"io/fs"
	"slices"
	"testing"
)

func TestRename(t *testing.T) {
	mfs := New()
	mfs.AddFile("/themes/a.json.tmp", "{}", 0644)

	if err := mfs.Rename("/themes/a.json.tmp", "/themes/a.json"); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if mfs.Exists("/themes/a.json.tmp") {
		t.Error("old path still exists")
	}
	data, err := mfs.ReadFile("/themes/a.json")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("unexpected content %q", data)
	}

	err = mfs.Rename("/themes/missing", "/themes/b.json")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestFiles(t *testing.T) {
	mfs := New()
	mfs.AddFile("/b/two.json", "", 0644)
	mfs.AddFile("/a/one.json", "", 0644)
	mfs.AddDir("/empty", 0755)

	got := mfs.Files()
	want := []string{"/a/one.json", "/b/two.json"}
	if !slices.Equal(got, want) {
		t.Errorf("Files() = %v, want %v", got, want)
	}
}

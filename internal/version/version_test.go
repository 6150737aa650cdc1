/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import "testing"

func withBuildVars(t *testing.T, v, commit, tag, dirty string) {
	t.Helper()
	oldV, oldCommit, oldTag, oldDirty := Version, GitCommit, GitTag, GitDirty
	t.Cleanup(func() {
		Version, GitCommit, GitTag, GitDirty = oldV, oldCommit, oldTag, oldDirty
	})
	Version, GitCommit, GitTag, GitDirty = v, commit, tag, dirty
}

func TestGet(t *testing.T) {
	withBuildVars(t, "v1.2.3", "unknown", "unknown", "")
	if got := Get(); got != "v1.2.3" {
		t.Errorf("Get() = %q, want %q", got, "v1.2.3")
	}
}

func TestGitVersion(t *testing.T) {
	tests := []struct {
		name   string
		commit string
		tag    string
		dirty  string
		want   string
	}{
		{name: "unknown tag", commit: "abcdef1234", tag: "unknown", want: ""},
		{name: "unknown commit", commit: "unknown", tag: "v0.1.0", want: ""},
		{name: "tag and commit", commit: "abcdef1234", tag: "v0.1.0", want: "v0.1.0-abcdef1"},
		{name: "dirty tree", commit: "abcdef1234", tag: "v0.1.0", dirty: "dirty", want: "v0.1.0-abcdef1-dirty"},
		{name: "tag already carries commit", commit: "abcdef1", tag: "v0.1.0-abcdef1", want: "v0.1.0-abcdef1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBuildVars(t, "dev", tt.commit, tt.tag, tt.dirty)
			if got := gitVersion(); got != tt.want {
				t.Errorf("gitVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFull(t *testing.T) {
	withBuildVars(t, "v1.0.0", "abc123", "unknown", "")
	if got := Full(); got != "v1.0.0 (commit: abc123)" {
		t.Errorf("Full() = %q", got)
	}
}

func TestInfo(t *testing.T) {
	withBuildVars(t, "v1.0.0", "abc123", "v1.0.0", "")
	info := Info()
	for _, key := range []string{"version", "gitCommit", "gitTag", "buildTime", "gitDirty"} {
		if _, ok := info[key]; !ok {
			t.Errorf("Info() missing %q", key)
		}
	}
	if info["version"] != "v1.0.0" {
		t.Errorf("Info()[version] = %q", info["version"])
	}
}

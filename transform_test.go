package decompress

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripPath(t *testing.T) {
	tests := []struct {
		path   string
		n      int
		want   string
		wantOk bool
	}{
		{path: "package/index.js", n: 1, want: "index.js", wantOk: true},
		{path: "package/lib/util.js", n: 1, want: "lib/util.js", wantOk: true},
		{path: "package/lib/util.js", n: 2, want: "util.js", wantOk: true},
		{path: "package/lib/", n: 1, want: "lib/", wantOk: true},
		{path: "./package/index.js", n: 1, want: "index.js", wantOk: true},
		{path: "/package/index.js", n: 1, want: "index.js", wantOk: true},
		{path: "package/", n: 1, wantOk: false},
		{path: "package", n: 1, wantOk: false},
		{path: "package/index.js", n: 2, wantOk: false},
		{path: "package/index.js", n: 10, wantOk: false},
		{path: "./", n: 1, wantOk: false},
		{path: "package/./", n: 1, wantOk: false},
		{path: "package/sample../x", n: 1, want: "sample../x", wantOk: true},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			got, ok := stripPath(tc.path, tc.n)
			assert.Equal(t, tc.wantOk, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTransform(t *testing.T) {
	entries := []Entry{
		{Path: "package/", Type: TypeDirectory},
		{Path: "package/index.js", Type: TypeFile, Data: []byte("index")},
		{Path: "package/lib/", Type: TypeDirectory},
		{Path: "package/lib/util.js", Type: TypeFile, Data: []byte("util")},
		{Path: "package/README.md", Type: TypeFile, Data: []byte("readme")},
	}

	tests := []struct {
		name string
		opts []ConfigOption
		want []string
	}{
		{
			name: "defaults",
			want: []string{"package/", "package/index.js", "package/lib/", "package/lib/util.js", "package/README.md"},
		},
		{
			name: "strip",
			opts: []ConfigOption{WithStrip(1)},
			want: []string{"index.js", "lib/", "lib/util.js", "README.md"},
		},
		{
			name: "over stripping drops everything",
			opts: []ConfigOption{WithStrip(5)},
			want: []string{},
		},
		{
			name: "filter sees stripped path",
			opts: []ConfigOption{WithStrip(1), WithFilter(func(e Entry) bool {
				return strings.HasPrefix(e.Path, "lib")
			})},
			want: []string{"lib/", "lib/util.js"},
		},
		{
			name: "filter by type",
			opts: []ConfigOption{WithFilter(func(e Entry) bool { return !e.IsDir() })},
			want: []string{"package/index.js", "package/lib/util.js", "package/README.md"},
		},
		{
			name: "map after filter",
			opts: []ConfigOption{
				WithFilter(MatchPatterns("package/*.js")),
				WithMap(func(e Entry) Entry {
					e.Path = strings.ToUpper(e.Path)
					return e
				}),
			},
			want: []string{"PACKAGE/INDEX.JS"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := transform(entries, NewConfig(tc.opts...))
			assert.Equal(t, tc.want, entryPaths(got))
		})
	}

	// the input is never modified
	assert.Equal(t, "package/index.js", entries[1].Path)
}

func TestMatchPatterns(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		path     string
		want     bool
	}{
		{name: "no patterns", path: "foo", want: true},
		{name: "match", patterns: []string{"*.txt"}, path: "foo.txt", want: true},
		{name: "no match", patterns: []string{"*.txt"}, path: "foo.go", want: false},
		{name: "second pattern", patterns: []string{"*.txt", "*.go"}, path: "foo.go", want: true},
		{name: "directory", patterns: []string{"lib"}, path: "lib/", want: true},
		{name: "no separator match", patterns: []string{"*.txt"}, path: "dir/foo.txt", want: false},
		{name: "malformed", patterns: []string{"["}, path: "[", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MatchPatterns(tc.patterns...)(Entry{Path: tc.path})
			assert.Equal(t, tc.want, got)
		})
	}
}

// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package decompress

import (
	"path"
	"strings"
)

// transform applies strip, filter and map, in this order, to entries and returns a
// new slice. The input slice is not modified.
func transform(entries []Entry, cfg *Config) []Entry {
	out := make([]Entry, 0, len(entries))

	for _, e := range entries {

		// strip leading path segments
		if cfg.Strip() > 0 {
			stripped, ok := stripPath(e.Path, cfg.Strip())
			if !ok {
				continue
			}
			e.Path = stripped
		}

		// drop entries that do not pass the filter
		if f := cfg.Filter(); f != nil && !f(e) {
			continue
		}

		out = append(out, e)
	}

	// map survivors in order
	if m := cfg.Map(); m != nil {
		for i := range out {
			out[i] = m(out[i])
		}
	}

	return out
}

// stripPath removes the first n segments from p. Empty and "." segments in front of
// the first real segment are not counted. The second return value is false if
// nothing but the current directory remains.
func stripPath(p string, n int) (string, bool) {
	segments := strings.Split(p, "/")

	// skip leading "./" and "/" markers
	for len(segments) > 0 && (segments[0] == "" || segments[0] == ".") {
		segments = segments[1:]
	}

	if len(segments) <= n {
		return "", false
	}

	stripped := strings.Join(segments[n:], "/")
	if stripped == "" || stripped == "." || stripped == "./" {
		return "", false
	}
	return stripped, true
}

// MatchPatterns returns a filter that accepts an entry if its path, without trailing
// slash, matches at least one of the patterns. Patterns are matched using
// [path.Match]. Without patterns, every entry is accepted. Malformed patterns never match.
func MatchPatterns(patterns ...string) func(Entry) bool {
	return func(e Entry) bool {

		// no patterns given
		if len(patterns) == 0 {
			return true
		}

		// check if path matches any pattern
		name := strings.TrimSuffix(e.Path, "/")
		for _, pattern := range patterns {
			if match, err := path.Match(pattern, name); err == nil && match {
				return true
			}
		}
		return false
	}
}

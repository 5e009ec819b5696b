// Package glob wraps the doublestar matcher behind the two match shapes
// the resolver needs: exact candidate matching and full-path-or-basename
// matching.
package glob

import (
	"path"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Match reports whether candidate matches pattern. Patterns use
// doublestar syntax: *, ?, character classes, {a,b} alternates and **
// for any number of path segments. A malformed pattern matches nothing.
func Match(candidate, pattern string) bool {
	matched, err := doublestar.Match(pattern, candidate)
	if err != nil {
		return false
	}
	return matched
}

// MatchPath reports whether a file path matches pattern, testing the
// full slash-normalized path and, failing that, its base name. This
// lets a pattern target either a path shape ("src/**/*.css") or a bare
// filename ("*.css").
func MatchPath(candidate, pattern string) bool {
	normalized := filepath.ToSlash(candidate)
	if Match(normalized, pattern) {
		return true
	}
	return Match(path.Base(normalized), pattern)
}

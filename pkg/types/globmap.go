package types

// GlobEntry is one pattern→value binding in a GlobMap
type GlobEntry[T any] struct {
	Pattern string
	Value   T
}

// GlobMap is a pattern-keyed table whose entries are kept in declaration
// order. Pattern precedence is observable behavior (first match wins for
// single lookups, match order drives pipeline flattening), so this is a
// slice rather than a Go map.
type GlobMap[T any] []GlobEntry[T]

// Patterns returns the patterns in declaration order
func (m GlobMap[T]) Patterns() []string {
	patterns := make([]string, len(m))
	for i, entry := range m {
		patterns[i] = entry.Pattern
	}
	return patterns
}

// Lookup returns the value bound to an exact pattern key, mostly useful
// in tests and config dumps. Glob-aware lookups live in pkg/resolve.
func (m GlobMap[T]) Lookup(pattern string) (T, bool) {
	for _, entry := range m {
		if entry.Pattern == pattern {
			return entry.Value, true
		}
	}
	var zero T
	return zero, false
}

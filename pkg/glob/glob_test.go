package glob

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		pattern   string
		want      bool
	}{
		{
			name:      "simple star",
			candidate: "app.css",
			pattern:   "*.css",
			want:      true,
		},
		{
			name:      "star does not cross separators",
			candidate: "src/app.css",
			pattern:   "*.css",
			want:      false,
		},
		{
			name:      "brace alternates",
			candidate: "foo.ts",
			pattern:   "*.{js,ts}",
			want:      true,
		},
		{
			name:      "brace alternates negative",
			candidate: "foo.css",
			pattern:   "*.{js,ts}",
			want:      false,
		},
		{
			name:      "doublestar any depth",
			candidate: "src/styles/deep/app.css",
			pattern:   "src/**/*.css",
			want:      true,
		},
		{
			name:      "question mark",
			candidate: "a.js",
			pattern:   "?.js",
			want:      true,
		},
		{
			name:      "exact name",
			candidate: "Brewfile",
			pattern:   "Brewfile",
			want:      true,
		},
		{
			name:      "malformed pattern matches nothing",
			candidate: "foo.ts",
			pattern:   "[",
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.candidate, tt.pattern))
		})
	}
}

func TestMatchPath(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		pattern   string
		want      bool
	}{
		{
			name:      "basename fallback",
			candidate: "src/styles/app.css",
			pattern:   "*.css",
			want:      true,
		},
		{
			name:      "full path match",
			candidate: "src/styles/app.css",
			pattern:   "src/**/*.css",
			want:      true,
		},
		{
			name:      "no match on either shape",
			candidate: "src/styles/app.css",
			pattern:   "*.js",
			want:      false,
		},
		{
			name:      "brace set against basename",
			candidate: "lib/util/foo.ts",
			pattern:   "*.{js,ts}",
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchPath(tt.candidate, tt.pattern))
		})
	}
}

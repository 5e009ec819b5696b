package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePipeline(t *testing.T) {
	tests := []struct {
		name      string
		raw       []string
		wantRest  bool
		restIndex int
		names     []string
	}{
		{
			name:      "plain pipeline",
			raw:       []string{"babel-transformer", "minify-transformer"},
			wantRest:  false,
			restIndex: -1,
			names:     []string{"babel-transformer", "minify-transformer"},
		},
		{
			name:      "pipeline with rest marker",
			raw:       []string{"babel-transformer", "...", "minify-transformer"},
			wantRest:  true,
			restIndex: 1,
			names:     []string{"babel-transformer", "minify-transformer"},
		},
		{
			name:      "empty pipeline",
			raw:       nil,
			wantRest:  false,
			restIndex: -1,
			names:     []string{},
		},
		{
			name:      "rest marker only",
			raw:       []string{"..."},
			wantRest:  true,
			restIndex: 0,
			names:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParsePipeline(tt.raw)
			assert.Equal(t, tt.wantRest, p.HasRest())
			assert.Equal(t, tt.restIndex, p.RestIndex())
			assert.Equal(t, tt.names, p.Names())
		})
	}
}

func TestPipelineCountRest(t *testing.T) {
	assert.Equal(t, 0, ParsePipeline([]string{"a", "b"}).CountRest())
	assert.Equal(t, 1, ParsePipeline([]string{"a", "...", "b"}).CountRest())
	assert.Equal(t, 2, ParsePipeline([]string{"a", "...", "b", "...", "c"}).CountRest())
}

func TestPipelineStrings(t *testing.T) {
	raw := []string{"babel-transformer", "...", "minify-transformer"}
	assert.Equal(t, raw, ParsePipeline(raw).Strings())
}

func TestGlobMapOrder(t *testing.T) {
	m := GlobMap[string]{
		{Pattern: "*.ts", Value: "ts-loader"},
		{Pattern: "*.js", Value: "js-loader"},
	}
	assert.Equal(t, []string{"*.ts", "*.js"}, m.Patterns())

	v, ok := m.Lookup("*.js")
	assert.True(t, ok)
	assert.Equal(t, "js-loader", v)

	_, ok = m.Lookup("*.css")
	assert.False(t, ok)
}

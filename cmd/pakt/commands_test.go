package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pakt-build/pakt/pkg/config"
	"github.com/pakt-build/pakt/pkg/errors"
)

const testConfig = `{
  "resolvers": ["fs-resolver"],
  "transforms": {
    "*.ts": ["ts-transformer"],
    "*.{js,ts}": ["babel-transformer", "...", "minify-transformer"]
  },
  "loaders": {
    "*.wasm": "wasm-loader"
  },
  "bundler": "concat-bundler",
  "namers": ["hash-namer"],
  "runtimes": {
    "browser": ["banner-runtime"]
  },
  "packagers": {
    "*.js": "concat-packager"
  },
  "optimizers": {
    "*.js": ["trim-optimizer"]
  },
  "reporters": ["log-reporter"]
}`

func testCfg(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Parse([]byte(testConfig), ".paktrc")
	require.NoError(t, err)
	return cfg
}

func TestResolveStageNames(t *testing.T) {
	cfg := testCfg(t)

	tests := []struct {
		name       string
		stage      string
		filePath   string
		envContext string
		want       []string
	}{
		{
			name:     "transforms first match wins",
			stage:    "transforms",
			filePath: "foo.ts",
			want:     []string{"ts-transformer"},
		},
		{
			name:     "transforms rest with nothing left splices nothing",
			stage:    "transforms",
			filePath: "foo.js",
			want:     []string{"babel-transformer", "minify-transformer"},
		},
		{
			name:     "optimizers",
			stage:    "optimizers",
			filePath: "dist/app.js",
			want:     []string{"trim-optimizer"},
		},
		{
			name:     "optimizers no match is empty",
			stage:    "optimizers",
			filePath: "app.css",
			want:     nil,
		},
		{
			name:     "loaders single winner",
			stage:    "loaders",
			filePath: "lib/mod.wasm",
			want:     []string{"wasm-loader"},
		},
		{
			name:     "packagers",
			stage:    "packagers",
			filePath: "app.js",
			want:     []string{"concat-packager"},
		},
		{
			name:     "resolvers direct list",
			stage:    "resolvers",
			filePath: "anything",
			want:     []string{"fs-resolver"},
		},
		{
			name:       "runtimes known context",
			stage:      "runtimes",
			filePath:   "anything",
			envContext: "browser",
			want:       []string{"banner-runtime"},
		},
		{
			name:       "runtimes unknown context is empty",
			stage:      "runtimes",
			filePath:   "anything",
			envContext: "electron",
			want:       []string{},
		},
		{
			name:     "bundler",
			stage:    "bundler",
			filePath: "anything",
			want:     []string{"concat-bundler"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names, err := resolveStageNames(cfg, tt.stage, tt.filePath, tt.envContext)
			require.NoError(t, err)
			if len(tt.want) == 0 {
				assert.Empty(t, names)
			} else {
				assert.Equal(t, tt.want, names)
			}
		})
	}
}

func TestResolveStageNamesUnknownStage(t *testing.T) {
	cfg := testCfg(t)

	_, err := resolveStageNames(cfg, "minifiers", "foo.js", "")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

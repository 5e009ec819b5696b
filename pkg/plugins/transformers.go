package plugins

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/pakt-build/pakt/pkg/errors"
	"github.com/pakt-build/pakt/pkg/types"
)

const (
	RawTransformerName  = "raw-transformer"
	JSONTransformerName = "json-transformer"
)

// RawTransformer passes asset contents through unchanged. It exists so
// that file types without a dedicated transformer still have a valid
// transform pipeline.
type RawTransformer struct{}

func (t *RawTransformer) Transform(ctx context.Context, asset *types.Asset) (*types.Asset, error) {
	return asset, nil
}

// JSONTransformer validates and compacts JSON assets
type JSONTransformer struct{}

func (t *JSONTransformer) Transform(ctx context.Context, asset *types.Asset) (*types.Asset, error) {
	var compacted bytes.Buffer
	if err := json.Compact(&compacted, asset.Contents); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput,
			"%s is not valid JSON", asset.FilePath)
	}

	out := *asset
	out.Contents = compacted.Bytes()
	return &out, nil
}

func init() {
	MustRegister(&types.Plugin{
		PluginName:  RawTransformerName,
		Transformer: &RawTransformer{},
	})
	MustRegister(&types.Plugin{
		PluginName:  JSONTransformerName,
		Transformer: &JSONTransformer{},
	})
}

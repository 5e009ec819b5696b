package plugins

import (
	"context"

	"github.com/pakt-build/pakt/pkg/logging"
	"github.com/pakt-build/pakt/pkg/types"
)

const ConcatBundlerName = "concat-bundler"

// ConcatBundler produces a single bundle containing all assets in input
// order, with the first asset as the entry
type ConcatBundler struct{}

func (b *ConcatBundler) Bundle(ctx context.Context, assets []*types.Asset) ([]*types.Bundle, error) {
	logger := logging.GetLogger("plugins.concat-bundler")

	if len(assets) == 0 {
		return nil, nil
	}

	bundle := &types.Bundle{
		EntryPath: assets[0].FilePath,
		Assets:    assets,
	}

	logger.Debug().
		Str("entry", bundle.EntryPath).
		Int("assets", len(assets)).
		Msg("created bundle")

	return []*types.Bundle{bundle}, nil
}

func init() {
	MustRegister(&types.Plugin{
		PluginName: ConcatBundlerName,
		Bundler:    &ConcatBundler{},
	})
}

package plugins

import (
	"context"
	"fmt"

	"github.com/pakt-build/pakt/pkg/types"
)

const BannerRuntimeName = "banner-runtime"

// BannerRuntime contributes a comment banner asset identifying the
// bundle, as a minimal runtime injection
type BannerRuntime struct{}

func (r *BannerRuntime) Apply(ctx context.Context, bundle *types.Bundle) (*types.Asset, error) {
	banner := fmt.Sprintf("/* pakt bundle: %s */\n", bundle.EntryPath)
	return &types.Asset{
		FilePath: bundle.EntryPath + ".banner",
		Contents: []byte(banner),
	}, nil
}

func init() {
	MustRegister(&types.Plugin{
		PluginName: BannerRuntimeName,
		Runtime:    &BannerRuntime{},
	})
}

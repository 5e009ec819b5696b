package plugins

import (
	"bytes"
	"context"

	"github.com/pakt-build/pakt/pkg/types"
)

const ConcatPackagerName = "concat-packager"

// ConcatPackager serializes a bundle by concatenating its assets'
// contents in order, separated by newlines
type ConcatPackager struct{}

func (p *ConcatPackager) Package(ctx context.Context, bundle *types.Bundle) ([]byte, error) {
	var out bytes.Buffer
	for _, asset := range bundle.Assets {
		out.Write(asset.Contents)
		if len(asset.Contents) > 0 && asset.Contents[len(asset.Contents)-1] != '\n' {
			out.WriteByte('\n')
		}
	}
	return out.Bytes(), nil
}

func init() {
	MustRegister(&types.Plugin{
		PluginName: ConcatPackagerName,
		Packager:   &ConcatPackager{},
	})
}

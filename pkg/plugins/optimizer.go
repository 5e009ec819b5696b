package plugins

import (
	"bytes"
	"context"

	"github.com/pakt-build/pakt/pkg/types"
)

const TrimOptimizerName = "trim-optimizer"

// TrimOptimizer strips trailing whitespace from every line of the
// packaged output
type TrimOptimizer struct{}

func (o *TrimOptimizer) Optimize(ctx context.Context, bundle *types.Bundle, contents []byte) ([]byte, error) {
	lines := bytes.Split(contents, []byte("\n"))
	for i, line := range lines {
		lines[i] = bytes.TrimRight(line, " \t")
	}
	return bytes.Join(lines, []byte("\n")), nil
}

func init() {
	MustRegister(&types.Plugin{
		PluginName: TrimOptimizerName,
		Optimizer:  &TrimOptimizer{},
	})
}

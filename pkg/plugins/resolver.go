package plugins

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pakt-build/pakt/pkg/errors"
	"github.com/pakt-build/pakt/pkg/logging"
	"github.com/pakt-build/pakt/pkg/types"
)

const FSResolverName = "fs-resolver"

// FSResolver resolves import specifiers against the filesystem,
// relative to the importing file's directory
type FSResolver struct{}

// Resolve joins the specifier onto the importing file's directory and
// verifies the target exists
func (r *FSResolver) Resolve(ctx context.Context, specifier, fromPath string) (string, error) {
	logger := logging.GetLogger("plugins.fs-resolver")

	resolved := specifier
	if !filepath.IsAbs(specifier) {
		resolved = filepath.Join(filepath.Dir(fromPath), specifier)
	}

	if _, err := os.Stat(resolved); err != nil {
		return "", errors.Wrapf(err, errors.ErrNotFound,
			"cannot resolve %q from %q", specifier, fromPath)
	}

	logger.Debug().
		Str("specifier", specifier).
		Str("from", fromPath).
		Str("resolved", resolved).
		Msg("resolved specifier")

	return resolved, nil
}

func init() {
	MustRegister(&types.Plugin{
		PluginName: FSResolverName,
		Resolver:   &FSResolver{},
	})
}

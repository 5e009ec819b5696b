// Package loader resolves plugin names to their registered capability
// objects. It is the boundary between the resolution core, which only
// produces ordered name lists, and actual plugin code.
package loader

import (
	"context"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/pakt-build/pakt/pkg/errors"
	"github.com/pakt-build/pakt/pkg/logging"
	"github.com/pakt-build/pakt/pkg/plugins"
	"github.com/pakt-build/pakt/pkg/types"
)

// LookupFunc resolves a registered plugin name to its plugin
type LookupFunc func(name string) (*types.Plugin, error)

// Loader loads plugins by the names configuration refers to them with.
// Names prefixed with "./" or "../" are local plugins: they resolve
// relative to the configuration file's own directory, so a project can
// register plugins under project-relative keys.
type Loader struct {
	originPath string
	lookup     LookupFunc
}

// New creates a Loader resolving names against the default plugin
// registry. originPath is the path of the configuration file the names
// came from.
func New(originPath string) *Loader {
	return &Loader{
		originPath: originPath,
		lookup:     plugins.Lookup,
	}
}

// NewWithLookup creates a Loader with a custom lookup, used in tests
func NewWithLookup(originPath string, lookup LookupFunc) *Loader {
	return &Loader{
		originPath: originPath,
		lookup:     lookup,
	}
}

// LoadPlugin resolves a single plugin name
func (l *Loader) LoadPlugin(name string) (*types.Plugin, error) {
	logger := logging.GetLogger("loader")

	key := l.resolveName(name)
	plugin, err := l.lookup(key)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPluginNotFound,
			"plugin %q (resolved from %q) is not registered", key, l.originPath)
	}

	logger.Debug().
		Str("name", name).
		Str("key", key).
		Msg("loaded plugin")

	return plugin, nil
}

// LoadPlugins resolves a list of plugin names concurrently. The result
// preserves input order positionally regardless of load completion
// order. The first failure cancels the remaining loads.
func (l *Loader) LoadPlugins(ctx context.Context, names []string) ([]*types.Plugin, error) {
	loaded := make([]*types.Plugin, len(names))

	group, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			plugin, err := l.LoadPlugin(name)
			if err != nil {
				return err
			}
			loaded[i] = plugin
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return loaded, nil
}

// resolveName maps a configured name to its registry key. Local names
// resolve against the config file's directory; everything else is used
// verbatim.
func (l *Loader) resolveName(name string) string {
	if !strings.HasPrefix(name, "./") && !strings.HasPrefix(name, "../") {
		return name
	}
	origin := filepath.ToSlash(filepath.Dir(l.originPath))
	return path.Join(origin, name)
}

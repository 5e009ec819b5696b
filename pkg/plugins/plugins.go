// Package plugins holds the default plugin registry and pakt's built-in
// plugins. Built-ins register themselves in init() so that importing
// this package makes them resolvable by name.
package plugins

import (
	"fmt"

	"github.com/pakt-build/pakt/pkg/registry"
	"github.com/pakt-build/pakt/pkg/types"
)

// defaultRegistry holds every plugin known to this process, keyed by
// the name configuration refers to it with
var defaultRegistry = registry.New[*types.Plugin]()

// Register adds a plugin to the default registry
func Register(plugin *types.Plugin) error {
	if plugin == nil {
		return fmt.Errorf("cannot register nil plugin")
	}
	return defaultRegistry.Register(plugin.PluginName, plugin)
}

// MustRegister registers a plugin and panics on failure, for use in
// init() functions
func MustRegister(plugin *types.Plugin) {
	if err := Register(plugin); err != nil {
		panic(fmt.Sprintf("failed to register plugin: %v", err))
	}
}

// Lookup retrieves a plugin by name
func Lookup(name string) (*types.Plugin, error) {
	return defaultRegistry.Get(name)
}

// Has reports whether a plugin name is registered
func Has(name string) bool {
	return defaultRegistry.Has(name)
}

// Names returns all registered plugin names in sorted order
func Names() []string {
	return defaultRegistry.List()
}

package types

import "context"

// Asset is a single input file flowing through the transform stage
type Asset struct {
	// FilePath is the project-relative path of the asset
	FilePath string

	// Contents is the current (possibly transformed) file contents
	Contents []byte

	// Meta carries plugin-specific annotations between pipeline steps
	Meta map[string]interface{}
}

// Bundle is a group of assets destined for a single output file
type Bundle struct {
	// Name is the output name, empty until a namer has run
	Name string

	// EntryPath is the path of the bundle's entry asset
	EntryPath string

	// Assets are the bundle's members in dependency order
	Assets []*Asset
}

// Event is a build lifecycle notification delivered to reporters
type Event struct {
	Type    string
	Message string
	Fields  map[string]interface{}
}

// Resolver maps an import specifier to a file path
type Resolver interface {
	Resolve(ctx context.Context, specifier, fromPath string) (string, error)
}

// Transformer rewrites an asset's contents
type Transformer interface {
	Transform(ctx context.Context, asset *Asset) (*Asset, error)
}

// Bundler groups assets into bundles
type Bundler interface {
	Bundle(ctx context.Context, assets []*Asset) ([]*Bundle, error)
}

// Namer assigns an output name to a bundle. An empty name means the
// namer declines and the next namer in the pipeline is consulted.
type Namer interface {
	Name(ctx context.Context, bundle *Bundle) (string, error)
}

// Runtime contributes an extra asset to a bundle for a target environment
type Runtime interface {
	Apply(ctx context.Context, bundle *Bundle) (*Asset, error)
}

// Packager serializes a bundle into its final output bytes
type Packager interface {
	Package(ctx context.Context, bundle *Bundle) ([]byte, error)
}

// Optimizer rewrites packaged output bytes
type Optimizer interface {
	Optimize(ctx context.Context, bundle *Bundle, contents []byte) ([]byte, error)
}

// Reporter receives build lifecycle events
type Reporter interface {
	Report(ctx context.Context, event Event) error
}

// Plugin is the declared capability object a plugin exports. A plugin
// provides one or more capabilities; fields for capabilities it does not
// implement are nil.
type Plugin struct {
	// PluginName is the name the plugin is registered and resolved under
	PluginName string

	Resolver    Resolver
	Transformer Transformer
	Bundler     Bundler
	Namer       Namer
	Runtime     Runtime
	Packager    Packager
	Optimizer   Optimizer
	Reporter    Reporter
}

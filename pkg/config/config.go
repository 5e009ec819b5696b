package config

import "github.com/pakt-build/pakt/pkg/types"

// Stage key names as they appear in the configuration file
const (
	KeyResolvers  = "resolvers"
	KeyTransforms = "transforms"
	KeyLoaders    = "loaders"
	KeyBundler    = "bundler"
	KeyNamers     = "namers"
	KeyRuntimes   = "runtimes"
	KeyPackagers  = "packagers"
	KeyOptimizers = "optimizers"
	KeyReporters  = "reporters"
)

// Config is the declarative stage table of a pakt project. It is built
// once by Load and never mutated afterwards; resolution only reads it.
type Config struct {
	// FilePath is where the configuration was loaded from. Local plugin
	// names resolve relative to this location.
	FilePath string

	// Resolvers run in order for every specifier; at least one is
	// required for a build to function
	Resolvers types.Pipeline

	// Transforms selects transformer pipelines per file pattern
	Transforms types.GlobMap[types.Pipeline]

	// Loaders selects a single loader plugin per file pattern
	Loaders types.GlobMap[string]

	// Bundler is the single bundler plugin name
	Bundler string

	// Namers run in order until one produces a name
	Namers types.Pipeline

	// Runtimes maps an environment context to its runtime pipeline
	Runtimes map[string]types.Pipeline

	// Packagers selects a single packager plugin per file pattern
	Packagers types.GlobMap[string]

	// Optimizers selects optimizer pipelines per file pattern
	Optimizers types.GlobMap[types.Pipeline]

	// Reporters receive build events, in order
	Reporters types.Pipeline
}

// Package stages is the query surface the build driver consumes: for
// each pipeline stage it resolves the applicable plugin names from the
// configuration and loads them. The empty-vs-error policy differs per
// stage and is deliberately hard-coded here: resolvers, bundler, namers
// and per-file transformers/packagers are required, while optimizers
// and runtimes may legitimately resolve to nothing.
package stages

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pakt-build/pakt/pkg/config"
	"github.com/pakt-build/pakt/pkg/errors"
	"github.com/pakt-build/pakt/pkg/loader"
	"github.com/pakt-build/pakt/pkg/logging"
	"github.com/pakt-build/pakt/pkg/resolve"
	"github.com/pakt-build/pakt/pkg/types"
)

// StageSet binds a loaded configuration to a plugin loader
type StageSet struct {
	cfg    *config.Config
	loader *loader.Loader
	logger zerolog.Logger
}

// New creates a StageSet for a configuration, resolving plugin names
// relative to the configuration's location
func New(cfg *config.Config) *StageSet {
	return &StageSet{
		cfg:    cfg,
		loader: loader.New(cfg.FilePath),
		logger: logging.GetLogger("stages"),
	}
}

// NewWithLoader creates a StageSet with a custom loader, used in tests
func NewWithLoader(cfg *config.Config, l *loader.Loader) *StageSet {
	return &StageSet{
		cfg:    cfg,
		loader: l,
		logger: logging.GetLogger("stages"),
	}
}

// GetResolvers loads all configured resolvers. A build cannot function
// without at least one.
func (s *StageSet) GetResolvers(ctx context.Context) ([]types.Resolver, error) {
	names, err := directPipelineNames(s.cfg.Resolvers, config.KeyResolvers)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, errors.Newf(errors.ErrMissingStage,
			"no resolver plugins configured")
	}

	loaded, err := s.loader.LoadPlugins(ctx, names)
	if err != nil {
		return nil, err
	}

	resolvers := make([]types.Resolver, len(loaded))
	for i, plugin := range loaded {
		if plugin.Resolver == nil {
			return nil, capabilityError(plugin.PluginName, "resolver")
		}
		resolvers[i] = plugin.Resolver
	}
	return resolvers, nil
}

// GetTransformers resolves and loads the transformer pipeline for a
// file. An empty result is fatal: every file needs at least one
// transformer to enter the build.
func (s *StageSet) GetTransformers(ctx context.Context, filePath string) ([]types.Transformer, error) {
	pipeline, err := resolve.Pipeline(filePath, s.cfg.Transforms)
	if err != nil {
		return nil, err
	}
	if len(pipeline) == 0 {
		return nil, errors.Newf(errors.ErrNoMatch,
			"no transformers match %s", filePath).
			WithDetail("path", filePath)
	}

	loaded, err := s.loader.LoadPlugins(ctx, pipeline.Names())
	if err != nil {
		return nil, err
	}

	transformers := make([]types.Transformer, len(loaded))
	for i, plugin := range loaded {
		if plugin.Transformer == nil {
			return nil, capabilityError(plugin.PluginName, "transformer")
		}
		transformers[i] = plugin.Transformer
	}
	return transformers, nil
}

// GetBundler loads the configured bundler. Required.
func (s *StageSet) GetBundler(ctx context.Context) (types.Bundler, error) {
	if s.cfg.Bundler == "" {
		return nil, errors.Newf(errors.ErrMissingStage,
			"no bundler plugin configured")
	}

	plugin, err := s.loader.LoadPlugin(s.cfg.Bundler)
	if err != nil {
		return nil, err
	}
	if plugin.Bundler == nil {
		return nil, capabilityError(plugin.PluginName, "bundler")
	}
	return plugin.Bundler, nil
}

// GetNamers loads all configured namers. Required.
func (s *StageSet) GetNamers(ctx context.Context) ([]types.Namer, error) {
	names, err := directPipelineNames(s.cfg.Namers, config.KeyNamers)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, errors.Newf(errors.ErrMissingStage,
			"no namer plugins configured")
	}

	loaded, err := s.loader.LoadPlugins(ctx, names)
	if err != nil {
		return nil, err
	}

	namers := make([]types.Namer, len(loaded))
	for i, plugin := range loaded {
		if plugin.Namer == nil {
			return nil, capabilityError(plugin.PluginName, "namer")
		}
		namers[i] = plugin.Namer
	}
	return namers, nil
}

// GetRuntimes loads the runtime pipeline for an environment context. An
// unknown context yields an empty list, not an error.
func (s *StageSet) GetRuntimes(ctx context.Context, envContext string) ([]types.Runtime, error) {
	pipeline, ok := s.cfg.Runtimes[envContext]
	if !ok {
		s.logger.Debug().
			Str("context", envContext).
			Msg("no runtimes for context")
		return nil, nil
	}

	names, err := directPipelineNames(pipeline, config.KeyRuntimes)
	if err != nil {
		return nil, err
	}

	loaded, err := s.loader.LoadPlugins(ctx, names)
	if err != nil {
		return nil, err
	}

	runtimes := make([]types.Runtime, len(loaded))
	for i, plugin := range loaded {
		if plugin.Runtime == nil {
			return nil, capabilityError(plugin.PluginName, "runtime")
		}
		runtimes[i] = plugin.Runtime
	}
	return runtimes, nil
}

// GetPackager resolves and loads the single packager for a file.
// Exactly one pattern must match.
func (s *StageSet) GetPackager(ctx context.Context, filePath string) (types.Packager, error) {
	name, ok := resolve.One(filePath, s.cfg.Packagers)
	if !ok {
		return nil, errors.Newf(errors.ErrNoMatch,
			"no packager matches %s", filePath).
			WithDetail("path", filePath)
	}

	plugin, err := s.loader.LoadPlugin(name)
	if err != nil {
		return nil, err
	}
	if plugin.Packager == nil {
		return nil, capabilityError(plugin.PluginName, "packager")
	}
	return plugin.Packager, nil
}

// GetOptimizers resolves and loads the optimizer pipeline for a file.
// Zero matches is fine: optimization is optional.
func (s *StageSet) GetOptimizers(ctx context.Context, filePath string) ([]types.Optimizer, error) {
	pipeline, err := resolve.Pipeline(filePath, s.cfg.Optimizers)
	if err != nil {
		return nil, err
	}
	if len(pipeline) == 0 {
		return nil, nil
	}

	loaded, err := s.loader.LoadPlugins(ctx, pipeline.Names())
	if err != nil {
		return nil, err
	}

	optimizers := make([]types.Optimizer, len(loaded))
	for i, plugin := range loaded {
		if plugin.Optimizer == nil {
			return nil, capabilityError(plugin.PluginName, "optimizer")
		}
		optimizers[i] = plugin.Optimizer
	}
	return optimizers, nil
}

// GetReporters loads all configured reporters. Reporters are optional:
// an unconfigured stage reports to nobody.
func (s *StageSet) GetReporters(ctx context.Context) ([]types.Reporter, error) {
	names, err := directPipelineNames(s.cfg.Reporters, config.KeyReporters)
	if err != nil {
		return nil, err
	}

	loaded, err := s.loader.LoadPlugins(ctx, names)
	if err != nil {
		return nil, err
	}

	reporters := make([]types.Reporter, len(loaded))
	for i, plugin := range loaded {
		if plugin.Reporter == nil {
			return nil, capabilityError(plugin.PluginName, "reporter")
		}
		reporters[i] = plugin.Reporter
	}
	return reporters, nil
}

// directPipelineNames extracts the names of a pipeline configured
// directly (not through a glob map). The rest marker only has meaning
// during glob-map flattening, so here it is malformed.
func directPipelineNames(pipeline types.Pipeline, stage string) ([]string, error) {
	if pipeline.HasRest() {
		return nil, errors.Newf(errors.ErrMalformedPipeline,
			"%q entry in %q: the rest marker is only valid inside pattern-keyed pipelines",
			types.RestMarker, stage)
	}
	return pipeline.Names(), nil
}

func capabilityError(pluginName, capability string) error {
	return errors.Newf(errors.ErrPluginLoad,
		"plugin %q does not provide a %s", pluginName, capability)
}

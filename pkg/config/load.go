package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pakt-build/pakt/pkg/errors"
	"github.com/pakt-build/pakt/pkg/logging"
	"github.com/pakt-build/pakt/pkg/types"
)

// Load reads and parses a project configuration file. The file may be
// YAML or JSON (YAML is a superset); either way glob-map key order is
// preserved, because pattern precedence follows declaration order.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad,
			"cannot read config file %s", path)
	}

	cfg, err := Parse(data, path)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Int("transforms", len(cfg.Transforms)).
		Int("optimizers", len(cfg.Optimizers)).
		Msg("loaded config")

	return cfg, nil
}

// Parse decodes configuration bytes. Missing stage keys default to
// empty values; they only become errors when a required stage is
// actually queried.
func Parse(data []byte, path string) (*Config, error) {
	cfg := &Config{
		FilePath: path,
		Runtimes: make(map[string]types.Pipeline),
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse,
			"invalid config file %s", path)
	}

	// An empty file is a valid, empty configuration.
	if root.Kind == 0 || len(root.Content) == 0 {
		return cfg, nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, errors.Newf(errors.ErrConfigParse,
			"config file %s must contain a top-level mapping", path)
	}

	logger := logging.GetLogger("config")

	for i := 0; i+1 < len(doc.Content); i += 2 {
		key := doc.Content[i].Value
		value := doc.Content[i+1]

		var err error
		switch key {
		case KeyResolvers:
			cfg.Resolvers, err = decodePipeline(value, key)
		case KeyTransforms:
			cfg.Transforms, err = decodeGlobPipelines(value, key)
		case KeyLoaders:
			cfg.Loaders, err = decodeGlobNames(value, key)
		case KeyBundler:
			cfg.Bundler, err = decodeName(value, key)
		case KeyNamers:
			cfg.Namers, err = decodePipeline(value, key)
		case KeyRuntimes:
			cfg.Runtimes, err = decodeRuntimes(value, key)
		case KeyPackagers:
			cfg.Packagers, err = decodeGlobNames(value, key)
		case KeyOptimizers:
			cfg.Optimizers, err = decodeGlobPipelines(value, key)
		case KeyReporters:
			cfg.Reporters, err = decodePipeline(value, key)
		default:
			logger.Warn().
				Str("key", key).
				Str("path", path).
				Msg("ignoring unknown config key")
		}
		if err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// decodeName decodes a scalar plugin name
func decodeName(node *yaml.Node, key string) (string, error) {
	if node.Kind != yaml.ScalarNode {
		return "", errors.Newf(errors.ErrConfigParse,
			"%q must be a single plugin name", key)
	}
	var name string
	if err := node.Decode(&name); err != nil {
		return "", errors.Wrapf(err, errors.ErrConfigParse, "invalid %q value", key)
	}
	return name, nil
}

// decodeStringList decodes a sequence of plugin-name strings
func decodeStringList(node *yaml.Node, key string) ([]string, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, errors.Newf(errors.ErrConfigParse,
			"%q must be a list of plugin names", key)
	}
	var list []string
	if err := node.Decode(&list); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "invalid %q list", key)
	}
	return list, nil
}

// decodePipeline decodes a sequence into a Pipeline, recognizing the
// rest marker. Marker count is not validated here: a surplus marker is
// reported at flatten time, pointing at the offending pattern.
func decodePipeline(node *yaml.Node, key string) (types.Pipeline, error) {
	list, err := decodeStringList(node, key)
	if err != nil {
		return nil, err
	}
	return types.ParsePipeline(list), nil
}

// decodeGlobPipelines decodes a pattern→pipeline mapping, keeping the
// patterns in declaration order
func decodeGlobPipelines(node *yaml.Node, key string) (types.GlobMap[types.Pipeline], error) {
	if node.Kind != yaml.MappingNode {
		return nil, errors.Newf(errors.ErrConfigParse,
			"%q must be a mapping of glob patterns to pipelines", key)
	}

	table := make(types.GlobMap[types.Pipeline], 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		pattern := node.Content[i].Value
		pipeline, err := decodePipeline(node.Content[i+1], key+"."+pattern)
		if err != nil {
			return nil, err
		}
		table = append(table, types.GlobEntry[types.Pipeline]{
			Pattern: pattern,
			Value:   pipeline,
		})
	}
	return table, nil
}

// decodeGlobNames decodes a pattern→name mapping, keeping the patterns
// in declaration order
func decodeGlobNames(node *yaml.Node, key string) (types.GlobMap[string], error) {
	if node.Kind != yaml.MappingNode {
		return nil, errors.Newf(errors.ErrConfigParse,
			"%q must be a mapping of glob patterns to plugin names", key)
	}

	table := make(types.GlobMap[string], 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		pattern := node.Content[i].Value
		name, err := decodeName(node.Content[i+1], key+"."+pattern)
		if err != nil {
			return nil, err
		}
		table = append(table, types.GlobEntry[string]{
			Pattern: pattern,
			Value:   name,
		})
	}
	return table, nil
}

// decodeRuntimes decodes the context→pipeline mapping. Context keys are
// exact strings, not globs, so plain map semantics apply.
func decodeRuntimes(node *yaml.Node, key string) (map[string]types.Pipeline, error) {
	if node.Kind != yaml.MappingNode {
		return nil, errors.Newf(errors.ErrConfigParse,
			"%q must be a mapping of environment contexts to pipelines", key)
	}

	runtimes := make(map[string]types.Pipeline, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		context := node.Content[i].Value
		pipeline, err := decodePipeline(node.Content[i+1], key+"."+context)
		if err != nil {
			return nil, err
		}
		runtimes[context] = pipeline
	}
	return runtimes, nil
}

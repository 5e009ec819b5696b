package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pakt-build/pakt/pkg/config"
	"github.com/pakt-build/pakt/pkg/errors"
	"github.com/pakt-build/pakt/pkg/loader"
	"github.com/pakt-build/pakt/pkg/plugins"
	"github.com/pakt-build/pakt/pkg/resolve"
	"github.com/pakt-build/pakt/pkg/types"
)

var (
	resolveStage   string
	resolveContext string
	resolveCheck   bool
)

// loadProjectConfig loads the config named by --config, or searches
// upward from the working directory using the configured filenames
func loadProjectConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "cannot determine working directory")
	}

	found, err := config.Find(cwd, settings.Resolve.ConfigNames)
	if err != nil {
		return nil, err
	}
	return config.Load(found)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <file>",
	Short: "Show which plugins apply to a file for a stage",
	Long: `Resolve the ordered plugin list a stage would run for the given file,
from the project configuration. No plugins are executed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadProjectConfig()
		if err != nil {
			return err
		}

		if resolveStage == config.KeyRuntimes && resolveContext == "" {
			settings, err := config.LoadSettings()
			if err != nil {
				return err
			}
			resolveContext = settings.Resolve.DefaultContext
		}

		filePath := args[0]
		names, err := resolveStageNames(cfg, resolveStage, filePath, resolveContext)
		if err != nil {
			return err
		}

		if resolveCheck {
			l := loader.New(cfg.FilePath)
			if _, err := l.LoadPlugins(cmd.Context(), names); err != nil {
				return err
			}
		}

		if len(names) == 0 {
			fmt.Printf("no %s plugins for %s\n", resolveStage, filePath)
			return nil
		}
		for i, name := range names {
			fmt.Printf("%d. %s\n", i+1, name)
		}
		return nil
	},
}

// resolveStageNames answers the resolve command for one stage without
// loading anything
func resolveStageNames(cfg *config.Config, stage, filePath, envContext string) ([]string, error) {
	switch stage {
	case config.KeyTransforms:
		pipeline, err := resolve.Pipeline(filePath, cfg.Transforms)
		if err != nil {
			return nil, err
		}
		return pipeline.Names(), nil
	case config.KeyOptimizers:
		pipeline, err := resolve.Pipeline(filePath, cfg.Optimizers)
		if err != nil {
			return nil, err
		}
		return pipeline.Names(), nil
	case config.KeyLoaders:
		name, ok := resolve.One(filePath, cfg.Loaders)
		if !ok {
			return nil, nil
		}
		return []string{name}, nil
	case config.KeyPackagers:
		name, ok := resolve.One(filePath, cfg.Packagers)
		if !ok {
			return nil, nil
		}
		return []string{name}, nil
	case config.KeyResolvers:
		return cfg.Resolvers.Names(), nil
	case config.KeyNamers:
		return cfg.Namers.Names(), nil
	case config.KeyReporters:
		return cfg.Reporters.Names(), nil
	case config.KeyRuntimes:
		return cfg.Runtimes[envContext].Names(), nil
	case config.KeyBundler:
		if cfg.Bundler == "" {
			return nil, nil
		}
		return []string{cfg.Bundler}, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown stage %q", stage)
	}
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective stage table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadProjectConfig()
		if err != nil {
			return err
		}

		fmt.Printf("config: %s\n\n", cfg.FilePath)
		printPipeline(config.KeyResolvers, cfg.Resolvers)
		printGlobPipelines(config.KeyTransforms, cfg.Transforms)
		printGlobNames(config.KeyLoaders, cfg.Loaders)
		if cfg.Bundler != "" {
			fmt.Printf("%s: %s\n", config.KeyBundler, cfg.Bundler)
		}
		printPipeline(config.KeyNamers, cfg.Namers)
		for context, pipeline := range cfg.Runtimes {
			fmt.Printf("%s[%s]: %s\n", config.KeyRuntimes, context, strings.Join(pipeline.Strings(), ", "))
		}
		printGlobNames(config.KeyPackagers, cfg.Packagers)
		printGlobPipelines(config.KeyOptimizers, cfg.Optimizers)
		printPipeline(config.KeyReporters, cfg.Reporters)
		return nil
	},
}

func printPipeline(stage string, pipeline types.Pipeline) {
	if len(pipeline) == 0 {
		return
	}
	fmt.Printf("%s: %s\n", stage, strings.Join(pipeline.Strings(), ", "))
}

func printGlobPipelines(stage string, table types.GlobMap[types.Pipeline]) {
	if len(table) == 0 {
		return
	}
	fmt.Printf("%s:\n", stage)
	for _, entry := range table {
		fmt.Printf("  %s: %s\n", entry.Pattern, strings.Join(entry.Value.Strings(), ", "))
	}
}

func printGlobNames(stage string, table types.GlobMap[string]) {
	if len(table) == 0 {
		return
	}
	fmt.Printf("%s:\n", stage)
	for _, entry := range table {
		fmt.Printf("  %s: %s\n", entry.Pattern, entry.Value)
	}
}

var pluginsCmd = &cobra.Command{
	Use:   "plugins",
	Short: "List registered plugins",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range plugins.Names() {
			fmt.Println(name)
		}
	},
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveStage, "stage", "s", config.KeyTransforms, "Stage to resolve (resolvers, transforms, loaders, bundler, namers, runtimes, packagers, optimizers, reporters)")
	resolveCmd.Flags().StringVar(&resolveContext, "context", "", "Environment context for the runtimes stage")
	resolveCmd.Flags().BoolVar(&resolveCheck, "check", false, "Verify that every resolved plugin is registered")
}

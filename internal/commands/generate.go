package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/okra-platform/tlbind/internal/build"
	"github.com/okra-platform/tlbind/internal/config"
	"github.com/okra-platform/tlbind/internal/dev"
	"github.com/rs/zerolog"
)

// ErrUsage is returned when neither positional arguments nor a configuration file are given
var ErrUsage = errors.New("usage: tlbind [flags] <schema-path> <binding-output-dir> <declarations-output-dir>")

// GenerateDependencies for the generate command
type GenerateDependencies struct {
	ConfigLoader   ConfigLoader
	BuilderFactory BuilderFactory
	LoopFactory    LoopFactory
	SignalNotifier SignalNotifier
	Output         Output
}

// Interfaces for dependency injection
type ConfigLoader interface {
	LoadConfigFromPath(path string) (*config.Config, error)
}

type BuilderFactory interface {
	NewBuilder(cfg *config.Config, check bool, logger zerolog.Logger) build.Builder
}

type LoopFactory interface {
	NewLoop(cfg *config.Config, builder build.Builder, logger zerolog.Logger) WatchLoop
}

type WatchLoop interface {
	Run(ctx context.Context) error
}

// Default implementations
type defaultConfigLoader struct{}

func (l *defaultConfigLoader) LoadConfigFromPath(path string) (*config.Config, error) {
	return config.LoadConfigFromPath(path)
}

type defaultBuilderFactory struct{}

func (f *defaultBuilderFactory) NewBuilder(cfg *config.Config, check bool, logger zerolog.Logger) build.Builder {
	return build.NewSchemaBuilder(cfg, logger).WithCheck(check)
}

type defaultLoopFactory struct{}

func (f *defaultLoopFactory) NewLoop(cfg *config.Config, builder build.Builder, logger zerolog.Logger) WatchLoop {
	return dev.NewLoop(cfg, builder, logger)
}

// GenerateCommand encapsulates the generate logic with injected dependencies
type GenerateCommand struct {
	flags  *Flags
	logger zerolog.Logger
	deps   GenerateDependencies
}

// NewGenerateCommand creates a new generate command with default dependencies
func NewGenerateCommand(flags *Flags, logger zerolog.Logger) *GenerateCommand {
	return &GenerateCommand{
		flags:  flags,
		logger: logger,
		deps: GenerateDependencies{
			ConfigLoader:   &defaultConfigLoader{},
			BuilderFactory: &defaultBuilderFactory{},
			LoopFactory:    &defaultLoopFactory{},
			SignalNotifier: &defaultSignalNotifier{},
			Output:         &defaultOutput{},
		},
	}
}

// WithDependencies allows injecting custom dependencies for testing
func (gc *GenerateCommand) WithDependencies(deps GenerateDependencies) *GenerateCommand {
	gc.deps = deps
	return gc
}

// Execute runs the generate command. args holds the schema path and the two
// output directories; they may be omitted when a configuration file names them.
func (gc *GenerateCommand) Execute(ctx context.Context, args []string) error {
	cfg, err := gc.resolveConfig(args)
	if err != nil {
		return err
	}

	if gc.flags.Check && gc.flags.Watch {
		return errors.New("--check and --watch cannot be combined")
	}

	builder := gc.deps.BuilderFactory.NewBuilder(cfg, gc.flags.Check, gc.logger)

	if gc.flags.Watch {
		return gc.watch(ctx, cfg, builder)
	}

	artifacts, err := builder.Build(cfg.Schema)
	if artifacts != nil {
		gc.report(artifacts)
	}
	if err != nil {
		if errors.Is(err, build.ErrStale) {
			return err
		}
		return fmt.Errorf("failed to generate bindings: %w", err)
	}
	return nil
}

func (gc *GenerateCommand) resolveConfig(args []string) (*config.Config, error) {
	if len(args) != 0 && len(args) != 3 {
		return nil, fmt.Errorf("%w: expected 3 arguments, got %d", ErrUsage, len(args))
	}
	if len(args) == 0 && gc.flags.Config == "" {
		return nil, ErrUsage
	}

	cfg := config.Default()
	if gc.flags.Config != "" {
		loaded, err := gc.deps.ConfigLoader.LoadConfigFromPath(gc.flags.Config)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if len(args) == 3 {
		cfg.SetPaths(args[0], args[1], args[2])
		if gc.flags.Config == "" {
			cfg.Binding.Package = config.PackageName(args[1])
		}
	}

	gc.applyFlags(cfg)
	return cfg, nil
}

// applyFlags lets explicit flags override the configuration
func (gc *GenerateCommand) applyFlags(cfg *config.Config) {
	f := gc.flags
	if f.Package != "" {
		cfg.Binding.Package = f.Package
	}
	if f.APIImport != "" {
		cfg.Binding.APIImport = f.APIImport
	}
	if f.RuntimeImport != "" {
		cfg.Binding.RuntimeImport = f.RuntimeImport
	}
	if f.ClientName != "" {
		cfg.Declarations.ClientName = f.ClientName
	}
	if f.FileBase != "" {
		cfg.FileBase = f.FileBase
	}
	if f.Comments {
		cfg.Comments = true
	}
	if f.Verify {
		cfg.Verify.Enabled = true
	}
}

func (gc *GenerateCommand) watch(ctx context.Context, cfg *config.Config, builder build.Builder) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	gc.deps.SignalNotifier.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer gc.deps.SignalNotifier.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			gc.deps.Output.Println("Stopping watch mode")
			cancel()
		case <-ctx.Done():
		}
	}()

	gc.deps.Output.Printf("Watching %s\n", cfg.Schema)

	loop := gc.deps.LoopFactory.NewLoop(cfg, builder, gc.logger)
	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watch loop error: %w", err)
	}
	return nil
}

func (gc *GenerateCommand) report(artifacts *build.BuildArtifacts) {
	for _, unit := range artifacts.Units {
		gc.deps.Output.Printf("%-8s %s\n", unit.Status, unit.Path)
		if unit.Status == build.Stale {
			gc.deps.Output.Printf("%s", unit.Diff.Text)
		}
	}
	if v := artifacts.Verification; v != nil {
		gc.deps.Output.Printf("verified %d constructors and %d functions over %d samples\n",
			v.Constructors, v.Functions, v.Samples)
	}
}

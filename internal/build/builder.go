// Package build runs the generators of a schema and writes their units
package build

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/okra-platform/tlbind/internal/codegen"
	"github.com/okra-platform/tlbind/internal/codegen/binding"
	"github.com/okra-platform/tlbind/internal/codegen/typescript"
	"github.com/okra-platform/tlbind/internal/config"
	"github.com/okra-platform/tlbind/internal/convert"
	"github.com/okra-platform/tlbind/internal/schema"
	"github.com/rs/zerolog"
)

// ErrStale is returned by a check run when a generated unit differs from the file on disk
var ErrStale = errors.New("generated files are out of date")

// Status is the outcome of one generated unit
type Status int

const (
	// Written means the file was created or replaced
	Written Status = iota
	// Skipped means the file already held the generated content
	Skipped
	// Stale means a check run found the file differs from the generated content
	Stale
)

func (s Status) String() string {
	switch s {
	case Written:
		return "written"
	case Skipped:
		return "skipped"
	case Stale:
		return "stale"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Unit describes one generated file
type Unit struct {
	Artifact string
	Pass     codegen.Pass
	Path     string
	Status   Status

	// Diff holds the line diff between the file on disk and the generated
	// content; empty for skipped units
	Diff LineDiff
}

// BuildArtifacts contains the result of a build
type BuildArtifacts struct {
	// Schema contains the linked schema
	Schema *schema.Schema

	// Units lists every generated unit in emission order
	Units []Unit

	// Verification holds the reference converter report when verification ran
	Verification *convert.Report

	// BuildInfo contains build metadata
	BuildInfo BuildInfo
}

// Written returns the paths of the units that were written
func (a *BuildArtifacts) Written() []string {
	return a.paths(Written)
}

// Stale returns the paths of the units a check run found out of date
func (a *BuildArtifacts) Stale() []string {
	return a.paths(Stale)
}

func (a *BuildArtifacts) paths(status Status) []string {
	var paths []string
	for _, u := range a.Units {
		if u.Status == status {
			paths = append(paths, u.Path)
		}
	}
	return paths
}

// BuildInfo contains metadata about the build
type BuildInfo struct {
	// Timestamp when the build started
	Timestamp time.Time

	// Duration of the build
	Duration time.Duration

	// SchemaChecksum is the hex SHA-256 of the schema file
	SchemaChecksum string

	// FileBase is the base name used for every unit
	FileBase string
}

// Builder provides the interface for generating bindings
type Builder interface {
	// Build generates every unit of the schema at schemaPath
	Build(schemaPath string) (*BuildArtifacts, error)
}

// SchemaBuilder implements Builder over a generator registry
type SchemaBuilder struct {
	config   *config.Config
	registry *codegen.Registry
	outputs  map[string]string
	check    bool
	logger   zerolog.Logger
}

// NewSchemaBuilder creates a builder writing the binding and declaration
// artifacts to the directories of cfg
func NewSchemaBuilder(cfg *config.Config, logger zerolog.Logger) *SchemaBuilder {
	return &SchemaBuilder{
		config:   cfg,
		registry: codegen.DefaultRegistry,
		outputs: map[string]string{
			binding.Artifact:    cfg.Binding.Output,
			typescript.Artifact: cfg.Declarations.Output,
		},
		logger: logger.With().Str("component", "builder").Logger(),
	}
}

// WithRegistry replaces the generator registry
func (b *SchemaBuilder) WithRegistry(r *codegen.Registry) *SchemaBuilder {
	b.registry = r
	return b
}

// WithOutput sets the output directory of an artifact
func (b *SchemaBuilder) WithOutput(artifact, dir string) *SchemaBuilder {
	b.outputs[artifact] = dir
	return b
}

// WithCheck switches the builder to check mode: nothing is written and
// out-of-date units fail the build
func (b *SchemaBuilder) WithCheck(check bool) *SchemaBuilder {
	b.check = check
	return b
}

// Build loads and links the schema, optionally verifies the reference
// converter against it, then generates every unit of every artifact
func (b *SchemaBuilder) Build(schemaPath string) (*BuildArtifacts, error) {
	start := time.Now()

	content, err := os.ReadFile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", schemaPath, err)
	}

	b.logger.Debug().
		Str("path", schemaPath).
		Int("size", len(content)).
		Msg("read schema file")

	s, err := schema.Parse(content, schema.FormatFromPath(schemaPath))
	if err != nil {
		return nil, fmt.Errorf("failed to load schema %s: %w", schemaPath, err)
	}

	sum := sha256.Sum256(content)
	artifacts := &BuildArtifacts{
		Schema: s,
		BuildInfo: BuildInfo{
			Timestamp:      start,
			SchemaChecksum: hex.EncodeToString(sum[:]),
		},
	}

	if b.config.Verify.Enabled {
		rng := rand.New(rand.NewSource(b.config.Verify.Seed))
		report, err := convert.Verify(s, rng, b.config.Verify.Samples)
		if err != nil {
			return nil, fmt.Errorf("failed to verify converters: %w", err)
		}
		artifacts.Verification = &report
		b.logger.Info().
			Int("constructors", report.Constructors).
			Int("functions", report.Functions).
			Int("samples", report.Samples).
			Msg("verified reference converters")
	}

	opts := b.options(s)
	artifacts.BuildInfo.FileBase = opts.FileBase

	for _, artifact := range b.registry.Artifacts() {
		dir, ok := b.outputs[artifact]
		if !ok || dir == "" {
			b.logger.Debug().Str("artifact", artifact).Msg("no output directory, skipping artifact")
			continue
		}

		gen, err := b.registry.Get(artifact, opts)
		if err != nil {
			return nil, err
		}

		for _, pass := range gen.Passes() {
			unit, err := b.emit(gen, s, pass, dir)
			if err != nil {
				return nil, err
			}
			artifacts.Units = append(artifacts.Units, unit)
		}
	}

	artifacts.BuildInfo.Duration = time.Since(start)

	if stale := artifacts.Stale(); len(stale) > 0 {
		return artifacts, fmt.Errorf("%w: %s", ErrStale, strings.Join(stale, ", "))
	}

	b.logger.Info().
		Int("written", len(artifacts.Written())).
		Int("units", len(artifacts.Units)).
		Dur("duration", artifacts.BuildInfo.Duration).
		Msg("build complete")

	return artifacts, nil
}

func (b *SchemaBuilder) emit(gen codegen.Generator, s *schema.Schema, pass codegen.Pass, dir string) (Unit, error) {
	unit := Unit{
		Artifact: gen.Artifact(),
		Pass:     pass,
		Path:     filepath.Join(dir, gen.FileName(pass)),
	}

	content, err := gen.Generate(s, pass)
	if err != nil {
		return unit, fmt.Errorf("failed to generate %s %s: %w", unit.Artifact, pass, err)
	}

	existing, err := readExisting(unit.Path)
	if err != nil {
		return unit, err
	}

	if string(existing) == string(content) {
		unit.Status = Skipped
		b.logger.Debug().Str("path", unit.Path).Msg("unit unchanged")
		return unit, nil
	}

	unit.Diff = DiffLines(string(existing), string(content))

	if b.check {
		unit.Status = Stale
		b.logger.Warn().
			Str("path", unit.Path).
			Int("inserted", unit.Diff.Inserted).
			Int("deleted", unit.Diff.Deleted).
			Msg("unit out of date")
		return unit, nil
	}

	if err := writeUnit(unit.Path, content); err != nil {
		return unit, err
	}
	unit.Status = Written
	b.logger.Info().
		Str("path", unit.Path).
		Int("inserted", unit.Diff.Inserted).
		Int("deleted", unit.Diff.Deleted).
		Msg("wrote unit")
	return unit, nil
}

// options derives the generator options from the configuration. Without an
// explicit file base the schema name is used.
func (b *SchemaBuilder) options(s *schema.Schema) codegen.Options {
	base := b.config.FileBase
	if base == "" {
		base = fileBase(s.Meta.Name)
	}
	return codegen.Options{
		PackageName:     b.config.Binding.Package,
		APIImport:       b.config.Binding.APIImport,
		RuntimeImport:   b.config.Binding.RuntimeImport,
		ClientName:      b.config.Declarations.ClientName,
		FileBase:        base,
		IncludeComments: b.config.Comments,
	}.WithDefaults()
}

// fileBase turns a schema name into a file name stem
func fileBase(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			sb.WriteRune(r)
		case r == '-' || r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	return strings.Trim(sb.String(), "_")
}

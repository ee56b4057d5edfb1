package build

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/okra-platform/tlbind/internal/codegen"
	"github.com/okra-platform/tlbind/internal/config"
	"github.com/okra-platform/tlbind/internal/schema"
	"github.com/okra-platform/tlbind/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test plan for SchemaBuilder:
// 1. Build writes the binding signatures, binding bodies and declarations units
// 2. A second Build writes nothing
// 3. A changed unit is rewritten and reported with its diff
// 4. Check mode writes nothing and fails on stale units
// 5. Check mode succeeds on an up-to-date tree
// 6. Verification runs the reference converters when enabled
// 7. Missing and invalid schemas fail without writing
// 8. Artifacts without an output directory are skipped
// 9. Generator failures are wrapped with the artifact and pass

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Schema = testutil.TonlibPath()
	cfg.Binding.Output = filepath.Join(dir, "binding")
	cfg.Declarations.Output = filepath.Join(dir, "types")
	return cfg
}

func testLogger() zerolog.Logger {
	return zerolog.New(os.Stderr).Level(zerolog.ErrorLevel)
}

func TestSchemaBuilder_Build(t *testing.T) {
	// Test: first build writes every unit named after the schema

	cfg := testConfig(t)
	builder := NewSchemaBuilder(cfg, testLogger())

	artifacts, err := builder.Build(cfg.Schema)
	require.NoError(t, err)

	require.Len(t, artifacts.Units, 3)
	assert.Equal(t, "tonlib_api", artifacts.BuildInfo.FileBase)
	assert.Len(t, artifacts.BuildInfo.SchemaChecksum, 64)
	assert.Nil(t, artifacts.Verification)

	expected := []struct {
		artifact string
		pass     codegen.Pass
		path     string
	}{
		{"binding", codegen.PassSignatures, filepath.Join(cfg.Binding.Output, "tonlib_api_types.go")},
		{"binding", codegen.PassBodies, filepath.Join(cfg.Binding.Output, "tonlib_api_convert.go")},
		{"declarations", codegen.PassSignatures, filepath.Join(cfg.Declarations.Output, "tonlib_api.d.ts")},
	}
	for i, want := range expected {
		unit := artifacts.Units[i]
		assert.Equal(t, want.artifact, unit.Artifact)
		assert.Equal(t, want.pass, unit.Pass)
		assert.Equal(t, want.path, unit.Path)
		assert.Equal(t, Written, unit.Status)
		assert.Zero(t, unit.Diff.Deleted)
		assert.Positive(t, unit.Diff.Inserted)
		assert.FileExists(t, unit.Path)
	}

	types, err := os.ReadFile(expected[0].path)
	require.NoError(t, err)
	assert.Contains(t, string(types), "package binding")

	decls, err := os.ReadFile(expected[2].path)
	require.NoError(t, err)
	assert.Contains(t, string(decls), "export declare class Client")
}

func TestSchemaBuilder_SecondBuildWritesNothing(t *testing.T) {
	// Test: identical output leaves every file untouched

	cfg := testConfig(t)
	builder := NewSchemaBuilder(cfg, testLogger())

	first, err := builder.Build(cfg.Schema)
	require.NoError(t, err)

	// Backdate the files so a rewrite would be visible
	past := time.Now().Add(-time.Hour).Truncate(time.Second)
	for _, u := range first.Units {
		require.NoError(t, os.Chtimes(u.Path, past, past))
	}

	second, err := builder.Build(cfg.Schema)
	require.NoError(t, err)

	assert.Empty(t, second.Written())
	for _, u := range second.Units {
		assert.Equal(t, Skipped, u.Status)
		assert.True(t, u.Diff.Empty())
		info, err := os.Stat(u.Path)
		require.NoError(t, err)
		assert.True(t, info.ModTime().Equal(past), "file %s was rewritten", u.Path)
	}
	assert.Equal(t, first.BuildInfo.SchemaChecksum, second.BuildInfo.SchemaChecksum)
}

func TestSchemaBuilder_RewritesChangedUnit(t *testing.T) {
	// Test: a hand-edited unit is replaced and only that unit is written

	cfg := testConfig(t)
	builder := NewSchemaBuilder(cfg, testLogger())

	first, err := builder.Build(cfg.Schema)
	require.NoError(t, err)

	path := first.Units[2].Path
	original, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, append(original, []byte("// edited\n")...), 0644))

	second, err := builder.Build(cfg.Schema)
	require.NoError(t, err)

	assert.Equal(t, []string{path}, second.Written())
	assert.Equal(t, 1, second.Units[2].Diff.Deleted)
	assert.Zero(t, second.Units[2].Diff.Inserted)
	assert.Contains(t, second.Units[2].Diff.Text, "-// edited")

	restored, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, restored)
}

func TestSchemaBuilder_CheckStale(t *testing.T) {
	// Test: check mode reports missing files without creating them

	cfg := testConfig(t)
	builder := NewSchemaBuilder(cfg, testLogger()).WithCheck(true)

	artifacts, err := builder.Build(cfg.Schema)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStale))
	require.NotNil(t, artifacts)
	assert.Len(t, artifacts.Stale(), 3)
	assert.Empty(t, artifacts.Written())

	assert.NoDirExists(t, cfg.Binding.Output)
	assert.NoDirExists(t, cfg.Declarations.Output)
}

func TestSchemaBuilder_CheckReportsDiff(t *testing.T) {
	// Test: check mode leaves an edited unit alone and reports the change

	cfg := testConfig(t)
	_, err := NewSchemaBuilder(cfg, testLogger()).Build(cfg.Schema)
	require.NoError(t, err)

	path := filepath.Join(cfg.Binding.Output, "tonlib_api_types.go")
	edited := []byte("package binding\n")
	require.NoError(t, os.WriteFile(path, edited, 0644))

	artifacts, err := NewSchemaBuilder(cfg, testLogger()).WithCheck(true).Build(cfg.Schema)
	require.ErrorIs(t, err, ErrStale)
	assert.Contains(t, err.Error(), path)
	assert.Equal(t, []string{path}, artifacts.Stale())

	unit := artifacts.Units[0]
	assert.Equal(t, Stale, unit.Status)
	assert.Positive(t, unit.Diff.Inserted)
	assert.Contains(t, unit.Diff.Text, "+// Code generated by tlbind. DO NOT EDIT.")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, edited, content)
}

func TestSchemaBuilder_CheckUpToDate(t *testing.T) {
	// Test: check mode succeeds right after a build

	cfg := testConfig(t)
	_, err := NewSchemaBuilder(cfg, testLogger()).Build(cfg.Schema)
	require.NoError(t, err)

	artifacts, err := NewSchemaBuilder(cfg, testLogger()).WithCheck(true).Build(cfg.Schema)
	require.NoError(t, err)
	assert.Empty(t, artifacts.Stale())
	assert.Len(t, artifacts.Units, 3)
}

func TestSchemaBuilder_Verify(t *testing.T) {
	// Test: enabled verification attaches the converter report

	cfg := testConfig(t)
	cfg.Verify.Enabled = true
	cfg.Verify.Samples = 4

	artifacts, err := NewSchemaBuilder(cfg, testLogger()).Build(cfg.Schema)
	require.NoError(t, err)
	require.NotNil(t, artifacts.Verification)
	assert.Equal(t, 5, artifacts.Verification.Constructors)
	assert.Equal(t, 2, artifacts.Verification.Functions)
	assert.Equal(t, 28, artifacts.Verification.Samples)
}

func TestSchemaBuilder_ExplicitOptions(t *testing.T) {
	// Test: configured file base and package override the defaults

	cfg := testConfig(t)
	cfg.FileBase = "api"
	cfg.Binding.Package = "tonbind"

	artifacts, err := NewSchemaBuilder(cfg, testLogger()).Build(cfg.Schema)
	require.NoError(t, err)

	assert.Equal(t, "api", artifacts.BuildInfo.FileBase)
	content, err := os.ReadFile(filepath.Join(cfg.Binding.Output, "api_convert.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "package tonbind")
	assert.FileExists(t, filepath.Join(cfg.Declarations.Output, "api.d.ts"))
}

func TestSchemaBuilder_SchemaErrors(t *testing.T) {
	// Test: unreadable or invalid schemas fail before anything is written

	dir := t.TempDir()
	invalid := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("types: [\n"), 0644))
	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, nil, 0644))

	tests := []struct {
		name string
		path string
		is   error
	}{
		{"missing", filepath.Join(dir, "missing.json"), os.ErrNotExist},
		{"invalid", invalid, nil},
		{"empty", empty, schema.ErrEmptySchema},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			_, err := NewSchemaBuilder(cfg, testLogger()).Build(tt.path)
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
			assert.NoDirExists(t, cfg.Binding.Output)
		})
	}
}

type stubGenerator struct {
	artifact string
	err      error
}

func (g *stubGenerator) Artifact() string { return g.artifact }
func (g *stubGenerator) Passes() []codegen.Pass { return []codegen.Pass{codegen.PassSignatures} }
func (g *stubGenerator) FileName(pass codegen.Pass) string { return g.artifact + ".txt" }
func (g *stubGenerator) Generate(s *schema.Schema, pass codegen.Pass) ([]byte, error) {
	if g.err != nil {
		return nil, g.err
	}
	return []byte(s.Meta.Name + "\n"), nil
}

func TestSchemaBuilder_CustomRegistry(t *testing.T) {
	// Test: only artifacts with an output directory are generated

	cfg := testConfig(t)
	out := t.TempDir()

	registry := codegen.NewRegistry()
	registry.Register("notes", func(opts codegen.Options) codegen.Generator {
		return &stubGenerator{artifact: "notes"}
	})
	registry.Register("orphan", func(opts codegen.Options) codegen.Generator {
		return &stubGenerator{artifact: "orphan"}
	})

	artifacts, err := NewSchemaBuilder(cfg, testLogger()).
		WithRegistry(registry).
		WithOutput("notes", out).
		Build(cfg.Schema)
	require.NoError(t, err)

	require.Len(t, artifacts.Units, 1)
	content, err := os.ReadFile(filepath.Join(out, "notes.txt"))
	require.NoError(t, err)
	assert.Equal(t, "tonlib_api\n", string(content))
	assert.NoFileExists(t, filepath.Join(out, "orphan.txt"))
}

func TestSchemaBuilder_GeneratorError(t *testing.T) {
	// Test: generator failures name the artifact and pass

	cfg := testConfig(t)
	out := t.TempDir()
	failure := errors.New("boom")

	registry := codegen.NewRegistry()
	registry.Register("notes", func(opts codegen.Options) codegen.Generator {
		return &stubGenerator{artifact: "notes", err: failure}
	})

	_, err := NewSchemaBuilder(cfg, testLogger()).
		WithRegistry(registry).
		WithOutput("notes", out).
		Build(cfg.Schema)
	require.ErrorIs(t, err, failure)
	assert.Contains(t, err.Error(), "failed to generate notes signatures")
}

func TestFileBase(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"tonlib_api", "tonlib_api"},
		{"Tonlib API", "tonlib_api"},
		{"lite-api.v2", "lite-api_v2"},
		{"", ""},
		{"__", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, fileBase(tt.name))
		})
	}
}

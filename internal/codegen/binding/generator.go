// Package binding emits the Go binding of a schema: wrapper types, value
// converters, dispatch tables, the client entry point and the registration
// routine. Output is split into a signatures unit and a bodies unit.
package binding

import (
	"bytes"
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/okra-platform/tlbind/internal/codegen"
	"github.com/okra-platform/tlbind/internal/schema"
)

// Artifact is the registry name of the binding generator
const Artifact = "binding"

func init() {
	codegen.DefaultRegistry.Register(Artifact, func(opts codegen.Options) codegen.Generator {
		return NewGenerator(opts)
	})
}

// Generator generates the Go binding from a linked schema
type Generator struct {
	opts codegen.Options
}

// NewGenerator creates a new binding generator
func NewGenerator(opts codegen.Options) *Generator {
	return &Generator{opts: opts.WithDefaults()}
}

// Artifact returns the registry name of the generator
func (g *Generator) Artifact() string {
	return Artifact
}

// Passes returns the signatures pass followed by the bodies pass
func (g *Generator) Passes() []codegen.Pass {
	return []codegen.Pass{codegen.PassSignatures, codegen.PassBodies}
}

// FileName returns the output file name of a pass
func (g *Generator) FileName(pass codegen.Pass) string {
	if pass == codegen.PassBodies {
		return g.opts.FileBase + "_convert.go"
	}
	return g.opts.FileBase + "_types.go"
}

// Generate emits the unit of pass
func (g *Generator) Generate(s *schema.Schema, pass codegen.Pass) ([]byte, error) {
	m, err := newModel(s, g.opts)
	if err != nil {
		return nil, err
	}

	f := jen.NewFile(g.opts.PackageName)
	f.HeaderComment("Code generated by tlbind. DO NOT EDIT.")
	f.ImportAlias(g.opts.APIImport, "api")
	f.ImportName(g.opts.RuntimeImport, "tlrt")

	e := &emitter{m: m, opts: g.opts}
	switch pass {
	case codegen.PassSignatures:
		e.classes(f)
		e.tables(f)
		e.clientType(f)
		e.register(f)
	case codegen.PassBodies:
		e.dispatchInit(f)
		e.converters(f)
		e.categories(f)
		e.clientMethods(f)
	default:
		return nil, fmt.Errorf("unsupported pass: %s", pass)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render %s unit: %w", pass, err)
	}
	return buf.Bytes(), nil
}

// emitter holds what every emission step needs
type emitter struct {
	m    *model
	opts codegen.Options
}

func (e *emitter) api(name string) *jen.Statement {
	return jen.Qual(e.opts.APIImport, name)
}

func (e *emitter) rt(name string) *jen.Statement {
	return jen.Qual(e.opts.RuntimeImport, name)
}

// Package typescript emits the external type declarations (.d.ts) of a schema.
package typescript

import (
	"github.com/okra-platform/tlbind/internal/classify"
	"github.com/okra-platform/tlbind/internal/codegen"
	"github.com/okra-platform/tlbind/internal/codegen/writer"
	"github.com/okra-platform/tlbind/internal/naming"
	"github.com/okra-platform/tlbind/internal/schema"
)

// Artifact is the registry name of the declarations generator
const Artifact = "declarations"

func init() {
	codegen.DefaultRegistry.Register(Artifact, func(opts codegen.Options) codegen.Generator {
		return NewGenerator(opts)
	})
}

// Generator generates TypeScript declarations from a linked schema
type Generator struct {
	opts codegen.Options
}

// NewGenerator creates a new TypeScript declaration generator
func NewGenerator(opts codegen.Options) *Generator {
	return &Generator{opts: opts.WithDefaults()}
}

// Artifact returns the registry name of the generator
func (g *Generator) Artifact() string {
	return Artifact
}

// Passes returns the single declarations pass
func (g *Generator) Passes() []codegen.Pass {
	return []codegen.Pass{codegen.PassSignatures}
}

// FileName returns the declarations file name
func (g *Generator) FileName(codegen.Pass) string {
	return g.opts.FileBase + ".d.ts"
}

// Generate emits the declarations unit. Declarations have no bodies, so
// every pass produces the same output.
func (g *Generator) Generate(s *schema.Schema, _ codegen.Pass) ([]byte, error) {
	w := writer.NewWriter("  ") // TypeScript typically uses 2 spaces

	w.WriteComment("Code generated by tlbind. DO NOT EDIT.")
	if s.Meta.Name != "" {
		w.WriteComment("Schema: " + s.Meta.Name)
	}

	for _, typ := range s.Types {
		for _, ctor := range typ.Constructors {
			doc := ctor.Doc
			if doc == "" && typ.IsProduct() {
				doc = typ.Doc
			}
			g.generateClass(w, ctor, doc)
		}
		if typ.IsSum() {
			w.BlankLine()
			g.writeDoc(w, typ.Doc)
			w.WriteUnion(naming.BasicClassName(typ.Name), classNames(typ.Constructors))
		}
	}

	for _, fn := range s.FunctionConstructors() {
		g.generateClass(w, fn, fn.Doc)
	}

	w.BlankLine()
	w.WriteUnion(classify.AnyDataObject, classNames(s.Constructors()))
	w.WriteUnion(classify.AnyFunction, classNames(s.FunctionConstructors()))

	g.generateClient(w, s)

	return w.Bytes(), nil
}

// generateClass emits the property interface and wrapper class of a
// constructor or function
func (g *Generator) generateClass(w *writer.Writer, ctor *schema.Constructor, doc string) {
	name := naming.BasicClassName(ctor.Name)

	w.BlankLine()
	if len(ctor.Fields) == 0 {
		g.writeDoc(w, doc)
		w.WriteBlock("export declare class "+name+" {", "}", func() {
			w.WriteLine("constructor();")
		})
		return
	}

	props := name + "Props"
	w.WriteBlock("export interface "+props+" {", "}", func() {
		for _, f := range ctor.Fields {
			g.writeDoc(w, f.Doc)
			rule := classify.Classify(f.Type)
			if rule.Nullable() {
				w.WriteLinef("%s?: %s | null;", naming.FieldName(f.Name), classify.TSType(rule))
			} else {
				w.WriteLinef("%s: %s;", naming.FieldName(f.Name), classify.TSType(rule))
			}
		}
	})

	w.BlankLine()
	g.writeDoc(w, doc)
	w.WriteBlock("export declare class "+name+" {", "}", func() {
		w.WriteLinef("constructor(props: %s);", props)
		for _, f := range ctor.Fields {
			w.WriteLinef("readonly %s: %s;", naming.FieldName(f.Name), fieldType(f))
		}
		w.WriteLinef("readonly props: %s;", props)
	})
}

// generateClient emits the client entry point with one method per function
func (g *Generator) generateClient(w *writer.Writer, s *schema.Schema) {
	w.BlankLine()
	w.WriteBlock("export declare class "+g.opts.ClientName+" {", "}", func() {
		w.WriteLine("constructor();")
		for _, fn := range s.Functions {
			g.writeDoc(w, fn.Doc)
			result := classify.TSType(classify.Classify(fn.Returns))
			w.WriteLinef("%s(request: %s): Promise<%s>;",
				naming.FieldName(fn.Name), naming.BasicClassName(fn.Name), result)
		}
		w.WriteLinef("execute(request: %s): %s;", classify.AnyDataObject, classify.AnyDataObject)
	})
}

func (g *Generator) writeDoc(w *writer.Writer, doc string) {
	if g.opts.IncludeComments {
		w.WriteJSDoc(doc)
	}
}

// fieldType is the declared type of a wrapper property
func fieldType(f schema.Field) string {
	rule := classify.Classify(f.Type)
	if rule.Nullable() {
		return classify.TSType(rule) + " | null"
	}
	return classify.TSType(rule)
}

// classNames lists the wrapper classes of ctors
func classNames(ctors []*schema.Constructor) []string {
	names := make([]string, len(ctors))
	for i, c := range ctors {
		names[i] = naming.BasicClassName(c.Name)
	}
	return names
}

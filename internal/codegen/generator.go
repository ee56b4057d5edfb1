package codegen

import (
	"fmt"

	"github.com/okra-platform/tlbind/internal/schema"
)

// Pass identifies one generated unit of an artifact. Every artifact emits its
// signatures first; artifacts with a separate implementation unit emit it in
// the bodies pass.
type Pass int

const (
	// PassSignatures emits types, tables and declarations
	PassSignatures Pass = iota
	// PassBodies emits converter, dispatch and client implementations
	PassBodies
)

func (p Pass) String() string {
	switch p {
	case PassSignatures:
		return "signatures"
	case PassBodies:
		return "bodies"
	default:
		return fmt.Sprintf("Pass(%d)", int(p))
	}
}

// Generator is the interface every artifact generator implements
type Generator interface {
	// Artifact returns the name of the generated artifact (e.g., "binding")
	Artifact() string

	// Passes returns the passes of the artifact in emission order
	Passes() []Pass

	// FileName returns the output file name of the unit emitted by pass
	FileName(pass Pass) string

	// Generate emits the unit of pass for a linked schema
	Generate(s *schema.Schema, pass Pass) ([]byte, error)
}

// Options contains common options for code generation
type Options struct {
	// PackageName is the Go package of the generated binding
	PackageName string

	// APIImport is the import path of the internal representation produced by
	// the external schema compiler
	APIImport string

	// RuntimeImport is the import path of the runtime support package
	RuntimeImport string

	// ClientName is the name of the client entry point class
	ClientName string

	// FileBase is the base name of every generated file
	FileBase string

	// IncludeComments determines whether schema docs are carried into the output
	IncludeComments bool
}

// Default option values
const (
	DefaultPackageName   = "binding"
	DefaultAPIImport     = "github.com/okra-platform/tlbind/api"
	DefaultRuntimeImport = "github.com/okra-platform/tlbind/pkg/tlrt"
	DefaultClientName    = "Client"
	DefaultFileBase      = "tl"
)

// WithDefaults returns o with every empty option set to its default
func (o Options) WithDefaults() Options {
	if o.PackageName == "" {
		o.PackageName = DefaultPackageName
	}
	if o.APIImport == "" {
		o.APIImport = DefaultAPIImport
	}
	if o.RuntimeImport == "" {
		o.RuntimeImport = DefaultRuntimeImport
	}
	if o.ClientName == "" {
		o.ClientName = DefaultClientName
	}
	if o.FileBase == "" {
		o.FileBase = DefaultFileBase
	}
	return o
}

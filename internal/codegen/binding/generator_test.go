package binding

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okra-platform/tlbind/internal/codegen"
	"github.com/okra-platform/tlbind/internal/naming"
	"github.com/okra-platform/tlbind/internal/schema"
	"github.com/okra-platform/tlbind/internal/testutil"
)

// Test plan:
// 1. Both units are valid Go and declare every expected identifier
// 2. Field rules compose runtime functions for any vector depth
// 3. Nullable references are omitted when they encode to null and optional on decode
// 4. Dispatch tables cover every sum type and both umbrellas
// 5. Identifier collisions are reported instead of emitting broken code
// 6. Output is deterministic
// 7. Random schemas always produce parseable units

const apiImport = "example.com/tonlib/tonlib_api"

func generate(t *testing.T, s *schema.Schema, pass codegen.Pass, opts codegen.Options) string {
	t.Helper()
	if opts.APIImport == "" {
		opts.APIImport = apiImport
	}
	code, err := NewGenerator(opts).Generate(s, pass)
	require.NoError(t, err)
	return string(code)
}

// parseUnit parses a generated unit and returns its package-level names
func parseUnit(t *testing.T, code string) (*ast.File, map[string]bool) {
	t.Helper()
	file, err := parser.ParseFile(token.NewFileSet(), "generated.go", code, parser.ParseComments|parser.AllErrors)
	if err != nil {
		t.Logf("Generated code:\n%s", code)
		t.Fatalf("Generated code is not valid Go: %v", err)
	}

	names := make(map[string]bool)
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv != nil {
				recv := d.Recv.List[0].Type.(*ast.StarExpr).X.(*ast.Ident).Name
				names[recv+"."+d.Name.Name] = true
			} else {
				names[d.Name.Name] = true
			}
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch sp := spec.(type) {
				case *ast.TypeSpec:
					names[sp.Name.Name] = true
				case *ast.ValueSpec:
					for _, n := range sp.Names {
						names[n.Name] = true
					}
				}
			}
		}
	}
	return file, names
}

func imports(file *ast.File) map[string]string {
	out := make(map[string]string)
	for _, imp := range file.Imports {
		path, _ := strconv.Unquote(imp.Path.Value)
		name := ""
		if imp.Name != nil {
			name = imp.Name.Name
		}
		out[path] = name
	}
	return out
}

func TestGenerator_Signatures(t *testing.T) {
	code := generate(t, testutil.Tonlib(t), codegen.PassSignatures, codegen.Options{PackageName: "tonlib"})
	file, names := parseUnit(t, code)

	assert.Equal(t, "tonlib", file.Name.Name)
	assert.Regexp(t, `^// Code generated by tlbind\. DO NOT EDIT\.\n`, code)

	for _, name := range []string{
		"AccountAddress", "NewAccountAddress", "AccountAddress.AccountAddress",
		"AccountAddress.Props", "AccountAddress.ClassName", "AccountAddress.Class",
		"KeyStoreTypeInMemory", "NewKeyStoreTypeInMemory", "KeyStoreTypeInMemory.Props",
		"InternalTransactionId", "FullAccountState.LastTransactionId", "FullAccountState.Extra",
		"GetAccountState", "Init.Options",
		"accountAddressClass", "getAccountStateClass",
		"keyStoreTypeNames", "keyStoreTypeDispatch",
		"objectNames", "objectDispatch", "functionNames", "functionDispatch",
		"Client", "NewClient", "Register", "registerOnce", "registerErr",
	} {
		assert.True(t, names[name], "missing %s", name)
	}

	assert.Contains(t, code, "type KeyStoreTypeInMemory struct{}")
	assert.Contains(t, code, "func NewKeyStoreTypeInMemory() *KeyStoreTypeInMemory {")
	assert.Contains(t, code, "func NewAccountAddress(props tlrt.Props) *AccountAddress {")
	assert.Contains(t, code, `return w.props["lastTransactionId"]`)
	assert.Contains(t, code, `return "InternalTransactionId"`)
	assert.Contains(t, code, "var keyStoreTypeDispatch *tlrt.Dispatch[api.KeyStoreType]")
	assert.Contains(t, code, "var objectDispatch *tlrt.Dispatch[tlrt.Object]")
	assert.Contains(t, code, "var functionDispatch *tlrt.Dispatch[tlrt.Function]")
	assert.Contains(t, code, "// Balance returns the balance property (int64 internally).")
	assert.Contains(t, code, "// Extra returns the extra property ([][][]byte internally).")
	assert.Regexp(t, `"KeyStoreTypeInMemory":\s+-1940211240,`, code)
	assert.Regexp(t, `"GetAccountState":\s+1860818087,`, code)
	assert.Regexp(t, `Methods:\s+\[\]string\{"getAccountState", "init"\}`, code)
	assert.Contains(t, code, "registerOnce.Do(func() {")
	assert.Contains(t, code, "if keyStoreTypeInMemoryClass, err = h.DefineClass(tlrt.ClassSpec{")
	assert.Contains(t, code, "return NewKeyStoreTypeInMemory()")

	imps := imports(file)
	assert.Equal(t, "api", imps[apiImport])
	assert.Contains(t, imps, "sync")
	assert.Contains(t, imps, codegen.DefaultRuntimeImport)
}

func TestGenerator_Bodies(t *testing.T) {
	code := generate(t, testutil.Tonlib(t), codegen.PassBodies, codegen.Options{})
	file, names := parseUnit(t, code)

	for _, name := range []string{
		"init",
		"EncodeFullAccountState", "DecodeFullAccountState",
		"EncodeKeyStoreTypeInMemory", "DecodeKeyStoreTypeInMemory",
		"EncodeKeyStoreType", "DecodeKeyStoreType",
		"EncodeObject", "DecodeObject", "EncodeFunction", "DecodeFunction",
		"EncodeGetAccountState", "DecodeInit",
		"Client.GetAccountState", "Client.Init", "Client.Execute", "Client.Call",
		"clientMethods",
	} {
		assert.True(t, names[name], "missing %s", name)
	}

	for _, line := range []string{
		// field rules
		`to["balance"] = tlrt.EncodeInt64(from.Balance)`,
		`to["syncUtime"] = tlrt.EncodeInt64(from.SyncUtime)`,
		`to["frozenHash"] = tlrt.EncodeInt256(from.FrozenHash)`,
		`to["seqnos"] = tlrt.VectorEncoder(tlrt.EncodeInt32)(from.Seqnos)`,
		`to["extra"] = tlrt.VectorEncoder(tlrt.VectorEncoder(tlrt.EncodeBytes))(from.Extra)`,
		`to["isActive"] = tlrt.EncodeBool(from.IsActive)`,
		`if err := tlrt.DecodeField(props, "extra", &to.Extra, tlrt.VectorOf(tlrt.VectorOf(tlrt.DecodeBytes))); err != nil {`,
		`if err := tlrt.DecodeField(props, "hash", &to.Hash, tlrt.DecodeBytes); err != nil {`,
		// nullable references
		`if v := EncodeAccountAddress(from.Address); v != nil {`,
		`to["address"] = v`,
		`if v := EncodeKeyStoreType(from.KeyStoreType); v != nil {`,
		`if v := EncodeObject(from.Options); v != nil {`,
		`if err := tlrt.DecodeOptionalField(props, "lastTransactionId", &to.LastTransactionId, DecodeInternalTransactionId); err != nil {`,
		`if err := tlrt.DecodeOptionalField(props, "keyStoreType", &to.KeyStoreType, DecodeKeyStoreType); err != nil {`,
		// converters
		`func EncodeFullAccountState(from *api.FullAccountState) tlrt.Value {`,
		`func DecodeFullAccountState(from tlrt.Value) (*api.FullAccountState, error) {`,
		`to := new(api.FullAccountState)`,
		`return new(api.KeyStoreTypeInMemory), nil`,
		// dispatch
		`func EncodeKeyStoreType(from api.KeyStoreType) tlrt.Value {`,
		`func DecodeKeyStoreType(from tlrt.Value) (api.KeyStoreType, error) {`,
		`return keyStoreTypeDispatch.Decode(from)`,
		`tlrt.Bind[api.KeyStoreType](EncodeKeyStoreTypeDirectory, DecodeKeyStoreTypeDirectory)`,
		`tlrt.Bind[tlrt.Object](EncodeAccountAddress, DecodeAccountAddress)`,
		`tlrt.Bind[tlrt.Function](EncodeInit, DecodeInit)`,
		`keyStoreTypeDispatch = tlrt.NewDispatch("KeyStoreType", keyStoreTypeNames, map[int32]tlrt.Codec[api.KeyStoreType]{`,
		// client
		`func (c *Client) GetAccountState(ctx context.Context, request tlrt.Value) (tlrt.Value, error) {`,
		`fn, err := DecodeGetAccountState(request)`,
		`return nil, tlrt.ErrInvalidRequest`,
		`result, err := c.engine.Send(ctx, fn)`,
		`func (c *Client) Execute(request tlrt.Value) (tlrt.Value, error) {`,
		`result, err := c.engine.Execute(obj)`,
		`return objectDispatch.EncodeChecked(result)`,
		`func (c *Client) Call(ctx context.Context, method string, request tlrt.Value) (tlrt.Value, error) {`,
		`return nil, &tlrt.UnknownMethodError{Method: method}`,
	} {
		assert.Contains(t, code, line)
	}
	assert.Regexp(t, `"getAccountState":\s+\(\*Client\)\.GetAccountState,`, code)
	assert.NotContains(t, code, `if from.Balance != nil`)
	// Test: typed nil interfaces are caught by the encoded value, not the field
	assert.NotContains(t, code, `if from.KeyStoreType != nil`)
	assert.NotContains(t, code, `EncodeObject(result)`)

	imps := imports(file)
	assert.Contains(t, imps, "context")
	assert.NotContains(t, imps, "sync")
}

func TestGenerator_Comments(t *testing.T) {
	s := testutil.Tonlib(t)

	code := generate(t, s, codegen.PassSignatures, codegen.Options{IncludeComments: true})
	assert.Contains(t, code, "// Address of an account in user-friendly form")

	code = generate(t, s, codegen.PassSignatures, codegen.Options{})
	assert.NotContains(t, code, "user-friendly")
}

func TestGenerator_NoFunctions(t *testing.T) {
	s, err := schema.Parse([]byte(`
types:
  - {name: Unit, constructors: [{name: unit, tag: 9, fields: [{name: class, type: int32}]}]}
`), schema.FormatYAML)
	require.NoError(t, err)

	sig := generate(t, s, codegen.PassSignatures, codegen.Options{})
	_, names := parseUnit(t, sig)
	assert.True(t, names["Unit.ClassField"], "accessor renamed away from Class")
	assert.Contains(t, sig, "var functionNames = map[string]int32{}")
	assert.Regexp(t, `Methods:\s+\[\]string\{\}`, sig)

	bodies := generate(t, s, codegen.PassBodies, codegen.Options{})
	_, names = parseUnit(t, bodies)
	assert.True(t, names["Client.Call"])
	assert.Contains(t, bodies, "var clientMethods = map[string]func(*Client, context.Context, tlrt.Value) (tlrt.Value, error){}")
}

func TestGenerator_NameCollisions(t *testing.T) {
	testCases := []struct {
		name string
		src  string
	}{
		{
			name: "constructor named like the client",
			src:  `types: [{name: C, constructors: [{name: client, tag: 1, fields: []}]}]`,
		},
		{
			name: "constructor producing another constructor's New function",
			src: `types: [{name: A, constructors: [{name: foo, tag: 1, fields: []}]},
                          {name: B, constructors: [{name: newFoo, tag: 2, fields: []}]}]`,
		},
		{
			name: "sum type named like an umbrella",
			src: `types: [{name: Object, constructors: [{name: a, tag: 1, fields: []},
                                                            {name: b, tag: 2, fields: []}]}]`,
		},
		{
			name: "function named like a client method",
			src: `types: [{name: A, constructors: [{name: a, tag: 1, fields: []}]}]
functions: [{name: call, tag: 2, fields: [], returns: A}]`,
		},
		{
			name: "accessor renamed onto another field",
			src:  `types: [{name: A, constructors: [{name: a, tag: 1, fields: [{name: props, type: int32}, {name: props_field, type: int32}]}]}]`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := schema.Parse([]byte(tc.src), schema.FormatYAML)
			require.NoError(t, err)

			_, err = NewGenerator(codegen.Options{}).Generate(s, codegen.PassSignatures)
			assert.ErrorIs(t, err, ErrNameCollision)
		})
	}
}

func TestGenerator_Metadata(t *testing.T) {
	g := NewGenerator(codegen.Options{FileBase: "tonlib_api"})
	assert.Equal(t, Artifact, g.Artifact())
	assert.Equal(t, []codegen.Pass{codegen.PassSignatures, codegen.PassBodies}, g.Passes())
	assert.Equal(t, "tonlib_api_types.go", g.FileName(codegen.PassSignatures))
	assert.Equal(t, "tonlib_api_convert.go", g.FileName(codegen.PassBodies))

	_, err := g.Generate(testutil.Tonlib(t), codegen.Pass(7))
	assert.Error(t, err)

	// Test: importing the package registers the generator
	gen, err := codegen.DefaultRegistry.Get(Artifact, codegen.Options{})
	require.NoError(t, err)
	assert.Equal(t, "tl_types.go", gen.FileName(codegen.PassSignatures))
}

func TestGenerator_Deterministic(t *testing.T) {
	s := testutil.Tonlib(t)
	for _, pass := range []codegen.Pass{codegen.PassSignatures, codegen.PassBodies} {
		first := generate(t, s, pass, codegen.Options{})
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, generate(t, s, pass, codegen.Options{}))
		}
	}
}

func TestGenerator_PropertyRandomSchemas(t *testing.T) {
	// Test: All generated code should be valid Go syntax
	rng := rand.New(rand.NewSource(5))

	for i := 0; i < 50; i++ {
		t.Run(fmt.Sprintf("random_schema_%d", i), func(t *testing.T) {
			s := testutil.RandomSchema(rng)

			sig := generate(t, s, codegen.PassSignatures, codegen.Options{})
			_, sigNames := parseUnit(t, sig)
			bodies := generate(t, s, codegen.PassBodies, codegen.Options{})
			_, bodyNames := parseUnit(t, bodies)

			for _, ctor := range append(s.Constructors(), s.FunctionConstructors()...) {
				goName := naming.GoName(ctor.Name)
				assert.True(t, sigNames[goName], "missing wrapper %s", goName)
				assert.True(t, bodyNames["Encode"+goName], "missing encoder %s", goName)
				assert.True(t, bodyNames["Decode"+goName], "missing decoder %s", goName)
			}
			for _, typ := range s.SumTypes() {
				assert.True(t, bodyNames["Decode"+naming.GoName(typ.Name)])
			}

			// every constructor appears once in its sum table and once in an umbrella
			sums := 0
			for _, typ := range s.SumTypes() {
				sums += len(typ.Constructors)
			}
			expected := sums + len(s.Constructors()) + len(s.Functions)
			assert.Equal(t, expected, strings.Count(bodies, "tlrt.Bind["))
		})
	}
}

// Package testutil holds schema fixtures shared by package tests.
package testutil

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/okra-platform/tlbind/internal/schema"
)

var scalarKinds = []schema.Kind{
	schema.KindInt32,
	schema.KindInt53,
	schema.KindInt64,
	schema.KindDouble,
	schema.KindString,
	schema.KindSecureString,
	schema.KindBytes,
	schema.KindSecureBytes,
	schema.KindInt128,
	schema.KindInt256,
	schema.KindBool,
	schema.KindTrue,
}

// TonlibPath returns the path of the YAML schema fixture
func TonlibPath() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "schema", "testdata", "tonlib.yaml")
}

// Tonlib loads the linked YAML schema fixture
func Tonlib(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.Load(TonlibPath())
	if err != nil {
		t.Fatalf("Failed to load schema fixture: %v", err)
	}
	return s
}

// RandomSchema builds a linked schema with random types, constructors,
// functions and field types. Names are unique after mangling and tags are
// unique schema-wide.
func RandomSchema(rng *rand.Rand) *schema.Schema {
	s := &schema.Schema{Meta: schema.Metadata{Name: "random"}}
	tags := make(map[schema.Tag]bool)
	nextTag := func() schema.Tag {
		for {
			tag := schema.Tag(rng.Int31())
			if rng.Intn(2) == 0 {
				tag = -tag
			}
			if !tags[tag] {
				tags[tag] = true
				return tag
			}
		}
	}

	numTypes := 1 + rng.Intn(6)
	names := make([]string, numTypes)
	for i := range names {
		names[i] = fmt.Sprintf("Kind%d", i)
	}

	for i := 0; i < numTypes; i++ {
		typ := &schema.CustomType{Name: names[i]}
		numCtors := 1 + rng.Intn(3)
		for j := 0; j < numCtors; j++ {
			typ.Constructors = append(typ.Constructors, &schema.Constructor{
				Name:   fmt.Sprintf("item%d.v%d", i, j),
				Tag:    nextTag(),
				Fields: randomFields(rng, names),
			})
		}
		s.Types = append(s.Types, typ)
	}

	numFuncs := rng.Intn(4)
	for i := 0; i < numFuncs; i++ {
		s.Functions = append(s.Functions, &schema.Function{
			Constructor: schema.Constructor{
				Name:   fmt.Sprintf("call_%d", i),
				Tag:    nextTag(),
				Fields: randomFields(rng, names),
			},
			Returns: schema.Custom(names[rng.Intn(len(names))]),
		})
	}

	if err := schema.Link(s); err != nil {
		panic(fmt.Sprintf("random schema does not link: %v", err))
	}
	return s
}

func randomFields(rng *rand.Rand, types []string) []schema.Field {
	n := rng.Intn(5)
	fields := make([]schema.Field, n)
	for i := range fields {
		fields[i] = schema.Field{
			Name: fmt.Sprintf("field_%d", i),
			Type: randomType(rng, types, 0),
		}
	}
	return fields
}

func randomType(rng *rand.Rand, types []string, depth int) schema.TypeRef {
	switch n := rng.Intn(10); {
	case n < 5:
		return schema.Scalar(scalarKinds[rng.Intn(len(scalarKinds))])
	case n < 7 && depth < 2:
		return schema.Vector(randomType(rng, types, depth+1))
	case n < 9:
		return schema.Custom(types[rng.Intn(len(types))])
	case n == 9 && rng.Intn(2) == 0:
		return schema.Scalar(schema.KindObject)
	default:
		return schema.Scalar(schema.KindFunction)
	}
}

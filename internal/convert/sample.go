package convert

import (
	"math"
	"math/rand"

	"github.com/okra-platform/tlbind/internal/classify"
	"github.com/okra-platform/tlbind/internal/schema"
)

// Sampler generates random instances of schema constructors
type Sampler struct {
	rng       *rand.Rand
	schema    *schema.Schema
	objects   []*schema.Constructor
	functions []*schema.Constructor

	// MaxDepth bounds reference nesting; deeper references are left unset
	MaxDepth int
	// MaxLen bounds vector and buffer lengths
	MaxLen int
}

// NewSampler creates a sampler for a linked schema
func NewSampler(s *schema.Schema, rng *rand.Rand) *Sampler {
	return &Sampler{
		rng:       rng,
		schema:    s,
		objects:   s.Constructors(),
		functions: s.FunctionConstructors(),
		MaxDepth:  3,
		MaxLen:    4,
	}
}

// Instance returns a random instance of ctor
func (s *Sampler) Instance(ctor *schema.Constructor) *Instance {
	return s.instance(ctor, 0)
}

func (s *Sampler) instance(ctor *schema.Constructor, depth int) *Instance {
	inst := &Instance{Constructor: ctor, Fields: make([]any, len(ctor.Fields))}
	for i, f := range ctor.Fields {
		inst.Fields[i] = s.value(classify.Classify(f.Type), depth)
	}
	return inst
}

// Value returns a random internal value for rule
func (s *Sampler) Value(rule classify.Rule) any {
	return s.value(rule, 0)
}

func (s *Sampler) value(rule classify.Rule, depth int) any {
	switch rule.Transport {
	case classify.Container:
		n := s.rng.Intn(s.MaxLen + 1)
		if n == 0 {
			return []any(nil)
		}
		elems := make([]any, n)
		for i := range elems {
			elems[i] = s.value(*rule.Elem, depth)
		}
		return elems
	case classify.NullableRef:
		if depth >= s.MaxDepth || s.rng.Intn(4) == 0 {
			return (*Instance)(nil)
		}
		candidates := s.candidates(rule)
		if len(candidates) == 0 {
			return (*Instance)(nil)
		}
		return s.instance(candidates[s.rng.Intn(len(candidates))], depth+1)
	}

	switch rule.Runtime() {
	case "Int32":
		return s.rng.Int31() - s.rng.Int31()
	case "Int64":
		switch s.rng.Intn(5) {
		case 0:
			return int64(math.MaxInt64)
		case 1:
			return int64(math.MinInt64)
		}
		return s.rng.Int63() - s.rng.Int63()
	case "Double":
		return s.rng.NormFloat64() * 1e6
	case "String":
		return s.text()
	case "Bool":
		return s.rng.Intn(2) == 0
	case "Bytes":
		n := s.rng.Intn(s.MaxLen*4 + 1)
		if n == 0 {
			return []byte(nil)
		}
		b := make([]byte, n)
		s.rng.Read(b)
		return b
	case "Int128":
		var b [16]byte
		s.rng.Read(b[:])
		return b
	case "Int256":
		var b [32]byte
		s.rng.Read(b[:])
		return b
	}
	return nil
}

// candidates lists the constructors a reference of rule may hold
func (s *Sampler) candidates(rule classify.Rule) []*schema.Constructor {
	switch rule.Kind {
	case schema.KindObject:
		return s.objects
	case schema.KindFunction:
		return s.functions
	}
	if rule.Type == nil {
		return nil
	}
	return rule.Type.Constructors
}

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789 _-ÿ€"

func (s *Sampler) text() string {
	runes := []rune(alphabet)
	n := s.rng.Intn(12)
	out := make([]rune, n)
	for i := range out {
		out[i] = runes[s.rng.Intn(len(runes))]
	}
	return string(out)
}

package convert

import (
	"fmt"
	"math/rand"
	"reflect"

	"github.com/okra-platform/tlbind/internal/naming"
	"github.com/okra-platform/tlbind/internal/schema"
	"github.com/okra-platform/tlbind/pkg/tlrt"
)

// Register defines a dynamic wrapper class for every constructor and function
// on h, mirroring the classes the generated Register routine defines.
func (c *Converter) Register(h tlrt.Host) error {
	all := append(c.schema.Constructors(), c.schema.FunctionConstructors()...)
	for _, ctor := range all {
		name := naming.BasicClassName(ctor.Name)
		props := make([]string, len(ctor.Fields))
		for i, f := range ctor.Fields {
			props[i] = naming.FieldName(f.Name)
		}
		_, err := h.DefineClass(tlrt.ClassSpec{
			Name:       name,
			Tag:        int32(ctor.Tag),
			Properties: props,
			New: func(p tlrt.Props) tlrt.Wrapper {
				return &dynamicWrapper{name: name, props: p}
			},
		})
		if err != nil {
			return fmt.Errorf("failed to define class %s: %w", name, err)
		}
	}
	return nil
}

type dynamicWrapper struct {
	name  string
	props tlrt.Props
}

func (w *dynamicWrapper) ClassName() string { return w.name }
func (w *dynamicWrapper) Props() tlrt.Props { return w.props }

// MismatchError reports a value that did not survive a round trip
type MismatchError struct {
	Constructor string
	Via         string
	Expected    *Instance
	Got         *Instance
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("round trip of %s via %s changed the value", e.Constructor, e.Via)
}

// Report summarizes a verification run
type Report struct {
	Constructors int
	Functions    int
	Samples      int
}

// Verify round-trips samples random instances of every constructor and
// function: through the plain property bags, through the umbrella decoders
// and through registered wrapper instances.
func Verify(s *schema.Schema, rng *rand.Rand, samples int) (Report, error) {
	c := New(s)
	sampler := NewSampler(s, rng)
	registry := tlrt.NewRegistry()
	if err := c.Register(registry); err != nil {
		return Report{}, err
	}

	report := Report{
		Constructors: len(c.objects),
		Functions:    len(c.functions),
	}

	check := func(ctor *schema.Constructor, umbrella func(tlrt.Value) (*Instance, error)) error {
		for i := 0; i < samples; i++ {
			inst := sampler.Instance(ctor)
			encoded := c.Encode(inst)

			direct, err := c.Decode(ctor, encoded)
			if err != nil {
				return fmt.Errorf("failed to decode %s: %w", ctor.Name, err)
			}
			if !reflect.DeepEqual(inst, direct) {
				return &MismatchError{Constructor: ctor.Name, Via: "properties", Expected: inst, Got: direct}
			}

			byName, err := umbrella(encoded)
			if err != nil {
				return fmt.Errorf("failed to decode %s by name: %w", ctor.Name, err)
			}
			if !reflect.DeepEqual(inst, byName) {
				return &MismatchError{Constructor: ctor.Name, Via: "name", Expected: inst, Got: byName}
			}

			wrapped, err := registry.Wrap(encoded)
			if err != nil {
				return fmt.Errorf("failed to wrap %s: %w", ctor.Name, err)
			}
			viaWrapper, err := umbrella(wrapped)
			if err != nil {
				return fmt.Errorf("failed to decode wrapped %s: %w", ctor.Name, err)
			}
			if !reflect.DeepEqual(inst, viaWrapper) {
				return &MismatchError{Constructor: ctor.Name, Via: "wrapper", Expected: inst, Got: viaWrapper}
			}
			report.Samples++
		}
		return nil
	}

	for _, ctor := range s.Constructors() {
		if err := check(ctor, c.DecodeObject); err != nil {
			return report, err
		}
	}
	for _, fn := range s.FunctionConstructors() {
		if err := check(fn, c.DecodeFunction); err != nil {
			return report, err
		}
	}
	return report, nil
}

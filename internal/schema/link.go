package schema

import (
	"fmt"

	"github.com/okra-platform/tlbind/internal/naming"
)

// Link resolves custom type references, sets constructor back-references and
// validates the schema invariants. It must run once before the schema is used.
func Link(s *Schema) error {
	types := make(map[string]*CustomType, len(s.Types))
	bare := make(map[string]*CustomType)
	tags := make(map[Tag]string)
	classes := make(map[string]string)

	claimClass := func(raw, what string) error {
		name := naming.BasicClassName(raw)
		if prev, exists := classes[name]; exists {
			return fmt.Errorf("%w: %s %q and %s both map to %s", ErrDuplicateName, prev, raw, what, name)
		}
		classes[name] = fmt.Sprintf("%s %q", what, raw)
		return nil
	}

	claimTag := func(c *Constructor) error {
		if prev, exists := tags[c.Tag]; exists {
			return fmt.Errorf("%w: %s used by %s and %s", ErrDuplicateTag, c.Tag, prev, c.Name)
		}
		tags[c.Tag] = c.Name
		return nil
	}

	for _, typ := range s.Types {
		if typ.Name == "" {
			return fmt.Errorf("%w: custom type", ErrMissingName)
		}
		if _, exists := types[typ.Name]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateType, typ.Name)
		}
		if len(typ.Constructors) == 0 {
			return fmt.Errorf("%w: %s", ErrNoConstructors, typ.Name)
		}
		types[typ.Name] = typ

		if typ.IsSum() {
			if err := claimClass(typ.Name, "type"); err != nil {
				return err
			}
		}

		for _, c := range typ.Constructors {
			if c.Name == "" {
				return fmt.Errorf("%w: constructor of %s", ErrMissingName, typ.Name)
			}
			c.Type = typ
			bare[c.Name] = typ
			if err := claimTag(c); err != nil {
				return err
			}
			if err := claimClass(c.Name, "constructor"); err != nil {
				return err
			}
		}
	}

	for _, fn := range s.Functions {
		if fn.Name == "" {
			return fmt.Errorf("%w: function", ErrMissingName)
		}
		fn.Type = nil
		if err := claimTag(&fn.Constructor); err != nil {
			return err
		}
		if err := claimClass(fn.Name, "function"); err != nil {
			return err
		}
	}

	resolve := func(owner string, ref *TypeRef) error {
		return resolveRef(owner, ref, types, bare)
	}

	for _, c := range s.Constructors() {
		if err := linkFields(c, resolve); err != nil {
			return err
		}
	}
	for _, fn := range s.Functions {
		if err := linkFields(&fn.Constructor, resolve); err != nil {
			return err
		}
		if err := resolve(fn.Name+" result", &fn.Returns); err != nil {
			return err
		}
	}

	return nil
}

func linkFields(c *Constructor, resolve func(string, *TypeRef) error) error {
	seen := make(map[string]bool, len(c.Fields))
	for i := range c.Fields {
		f := &c.Fields[i]
		if f.Name == "" {
			return fmt.Errorf("%w: field %d of %s", ErrMissingName, i, c.Name)
		}
		// Fields that differ only in separators would collide once mangled
		key := naming.FieldName(f.Name)
		if seen[key] {
			return fmt.Errorf("%w: %s.%s", ErrDuplicateField, c.Name, f.Name)
		}
		seen[key] = true

		if err := resolve(c.Name+"."+f.Name, &f.Type); err != nil {
			return err
		}
	}
	return nil
}

func resolveRef(owner string, ref *TypeRef, types, bare map[string]*CustomType) error {
	switch ref.Kind {
	case KindVector:
		if ref.Elem == nil {
			return fmt.Errorf("%w: %s: vector without element type", ErrInvalidType, owner)
		}
		return resolveRef(owner, ref.Elem, types, bare)
	case KindCustom:
		if typ, ok := types[ref.Name]; ok {
			ref.Custom = typ
			return nil
		}
		// Bare references name a constructor instead of its type
		if typ, ok := bare[ref.Name]; ok {
			ref.Custom = typ
			return nil
		}
		return fmt.Errorf("%w: %s refers to %q", ErrUnresolvedType, owner, ref.Name)
	}
	return nil
}

package binding

import (
	"fmt"

	"github.com/okra-platform/tlbind/internal/classify"
	"github.com/okra-platform/tlbind/internal/codegen"
	"github.com/okra-platform/tlbind/internal/naming"
	"github.com/okra-platform/tlbind/internal/schema"
)

// class is a constructor or function together with its generated names
type class struct {
	ctor     *schema.Constructor
	name     string // host class name, also stored under the type key
	goName   string // wrapper type, api struct and converter suffix
	handle   string // package variable holding the registered class
	fields   []field
	function bool
	doc      string
}

type field struct {
	raw      string
	key      string // host property name
	goName   string // api struct field
	accessor string // wrapper accessor method
	rule     classify.Rule
	doc      string
}

// category is a sum type or one of the Object and Function umbrellas
type category struct {
	name     string // category name used in errors
	goName   string // converter suffix
	iface    string // api interface name; empty for umbrellas
	names    string // name table variable
	dispatch string // dispatch table variable
	members  []*class
	doc      string
}

type model struct {
	schema    *schema.Schema
	classes   []*class
	functions []*class
	sums      []*category
	object    *category
	function  *category
}

// reserved method names of wrapper types
var wrapperMethods = map[string]bool{"Props": true, "ClassName": true, "Class": true}

func newModel(s *schema.Schema, opts codegen.Options) (*model, error) {
	m := &model{schema: s}
	byCtor := make(map[*schema.Constructor]*class)

	for _, typ := range s.Types {
		for _, ctor := range typ.Constructors {
			c, err := newClass(ctor, false)
			if err != nil {
				return nil, err
			}
			if c.doc == "" && typ.IsProduct() {
				c.doc = typ.Doc
			}
			m.classes = append(m.classes, c)
			byCtor[ctor] = c
		}
	}
	for _, fn := range s.Functions {
		c, err := newClass(&fn.Constructor, true)
		if err != nil {
			return nil, err
		}
		m.functions = append(m.functions, c)
	}

	for _, typ := range s.SumTypes() {
		goName := naming.GoName(typ.Name)
		cat := newCategory(naming.BasicClassName(typ.Name), goName, typ.Doc)
		cat.iface = goName
		for _, ctor := range typ.Constructors {
			cat.members = append(cat.members, byCtor[ctor])
		}
		m.sums = append(m.sums, cat)
	}

	m.object = newCategory("Object", "Object", "")
	m.object.members = m.classes
	m.function = newCategory("Function", "Function", "")
	m.function.members = m.functions

	if !opts.IncludeComments {
		for _, c := range m.all() {
			c.doc = ""
			for i := range c.fields {
				c.fields[i].doc = ""
			}
		}
		for _, cat := range m.sums {
			cat.doc = ""
		}
	}

	if err := m.checkIdentifiers(); err != nil {
		return nil, err
	}
	return m, nil
}

func newClass(ctor *schema.Constructor, function bool) (*class, error) {
	goName := naming.GoName(ctor.Name)
	c := &class{
		ctor:     ctor,
		name:     naming.BasicClassName(ctor.Name),
		goName:   goName,
		handle:   naming.Unexported(goName) + "Class",
		function: function,
		doc:      ctor.Doc,
	}

	accessors := make(map[string]string)
	for _, f := range ctor.Fields {
		accessor := naming.GoName(f.Name)
		if wrapperMethods[accessor] {
			accessor += "Field"
		}
		if prev, exists := accessors[accessor]; exists {
			return nil, fmt.Errorf("%w: fields %q and %q of %s both map to %s", ErrNameCollision, prev, f.Name, ctor.Name, accessor)
		}
		accessors[accessor] = f.Name

		c.fields = append(c.fields, field{
			raw:      f.Name,
			key:      naming.FieldName(f.Name),
			goName:   naming.GoName(f.Name),
			accessor: accessor,
			rule:     classify.Classify(f.Type),
			doc:      f.Doc,
		})
	}
	return c, nil
}

func newCategory(name, goName, doc string) *category {
	return &category{
		name:     name,
		goName:   goName,
		names:    naming.Unexported(goName) + "Names",
		dispatch: naming.Unexported(goName) + "Dispatch",
		doc:      doc,
	}
}

// all returns every class, constructors first
func (m *model) all() []*class {
	all := make([]*class, 0, len(m.classes)+len(m.functions))
	all = append(all, m.classes...)
	return append(all, m.functions...)
}

// categories returns the sum types followed by the two umbrellas
func (m *model) categories() []*category {
	return append(append([]*category(nil), m.sums...), m.object, m.function)
}

// checkIdentifiers rejects schemas whose names produce the same package-level
// identifier or client method twice
func (m *model) checkIdentifiers() error {
	owners := map[string]string{
		"Client":        "client type",
		"NewClient":     "client constructor",
		"Register":      "registration routine",
		"registerOnce":  "registration routine",
		"registerErr":   "registration routine",
		"clientMethods": "client method table",
	}
	claim := func(id, owner string) error {
		if prev, exists := owners[id]; exists {
			return fmt.Errorf("%w: %s and %s both generate %s", ErrNameCollision, prev, owner, id)
		}
		owners[id] = owner
		return nil
	}

	for _, c := range m.all() {
		owner := fmt.Sprintf("%q", c.ctor.Name)
		for _, id := range []string{c.goName, "New" + c.goName, "Encode" + c.goName, "Decode" + c.goName, c.handle} {
			if err := claim(id, owner); err != nil {
				return err
			}
		}
	}
	for _, cat := range m.categories() {
		owner := fmt.Sprintf("category %q", cat.name)
		for _, id := range []string{"Encode" + cat.goName, "Decode" + cat.goName, cat.names, cat.dispatch} {
			if err := claim(id, owner); err != nil {
				return err
			}
		}
	}

	methods := map[string]string{"Call": "client", "Execute": "client"}
	for _, fn := range m.functions {
		if prev, exists := methods[fn.goName]; exists {
			return fmt.Errorf("%w: function %q and %s both generate method %s", ErrNameCollision, fn.ctor.Name, prev, fn.goName)
		}
		methods[fn.goName] = fmt.Sprintf("function %q", fn.ctor.Name)
	}
	return nil
}

package binding

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/okra-platform/tlbind/internal/classify"
)

// classes emits one wrapper type per constructor and function. Wrappers hold
// the raw external properties; they carry no conversion logic.
func (e *emitter) classes(f *jen.File) {
	for _, c := range e.m.all() {
		e.class(f, c)
	}
}

func (e *emitter) class(f *jen.File, c *class) {
	recv := jen.Id("w").Op("*").Id(c.goName)

	what := "constructor"
	if c.function {
		what = "function"
	}
	f.Commentf("%s wraps a %s %s (tag %s).", c.goName, c.ctor.Name, what, tagComment(int32(c.ctor.Tag)))
	if c.doc != "" {
		f.Comment("")
		f.Comment(c.doc)
	}

	if len(c.fields) == 0 {
		f.Type().Id(c.goName).Struct()
		f.Line()
		f.Commentf("New%s creates a %s instance.", c.goName, c.name)
		f.Func().Id("New" + c.goName).Params().Op("*").Id(c.goName).Block(
			jen.Return(jen.Op("&").Id(c.goName).Values()),
		)
		f.Line()
		f.Comment("Props returns nil; the class has no properties.")
		f.Func().Params(recv.Clone()).Id("Props").Params().Add(e.rt("Props")).Block(
			jen.Return(jen.Nil()),
		)
	} else {
		f.Type().Id(c.goName).Struct(
			jen.Id("props").Add(e.rt("Props")),
		)
		f.Line()
		f.Commentf("New%s creates a %s instance from its properties.", c.goName, c.name)
		f.Func().Id("New"+c.goName).Params(jen.Id("props").Add(e.rt("Props"))).Op("*").Id(c.goName).Block(
			jen.Return(jen.Op("&").Id(c.goName).Values(jen.Dict{
				jen.Id("props"): jen.Id("props"),
			})),
		)

		for _, fd := range c.fields {
			f.Line()
			f.Commentf("%s returns the %s property (%s internally).", fd.accessor, fd.key,
				classify.GoType(fd.rule, "api", "tlrt"))
			if fd.doc != "" {
				f.Comment(fd.doc)
			}
			f.Func().Params(recv.Clone()).Id(fd.accessor).Params().Add(e.rt("Value")).Block(
				jen.Return(jen.Id("w").Dot("props").Index(jen.Lit(fd.key))),
			)
		}

		f.Line()
		f.Comment("Props returns every property of the instance.")
		f.Func().Params(recv.Clone()).Id("Props").Params().Add(e.rt("Props")).Block(
			jen.Return(jen.Id("w").Dot("props")),
		)
	}

	f.Line()
	f.Comment("ClassName returns the constructor name of the instance.")
	f.Func().Params(recv.Clone()).Id("ClassName").Params().String().Block(
		jen.Return(jen.Lit(c.name)),
	)

	f.Line()
	f.Comment("Class returns the registered class handle, nil before Register.")
	f.Func().Params(recv.Clone()).Id("Class").Params().Op("*").Add(e.rt("Class")).Block(
		jen.Return(jen.Id(c.handle)),
	)
	f.Line()
}

// tables emits the class handles, the name tables and the dispatch tables of
// every category
func (e *emitter) tables(f *jen.File) {
	all := e.m.all()
	if len(all) > 0 {
		f.Comment("Class handles, set by Register.")
		handles := make([]jen.Code, len(all))
		for i, c := range all {
			handles[i] = jen.Id(c.handle).Op("*").Add(e.rt("Class"))
		}
		f.Var().Defs(handles...)
		f.Line()
	}

	for _, cat := range e.m.categories() {
		f.Commentf("%s maps the constructor names of %s to their tags.", cat.names, cat.name)
		f.Var().Id(cat.names).Op("=").Map(jen.String()).Int32().Values(jen.DictFunc(func(d jen.Dict) {
			for _, c := range cat.members {
				d[jen.Lit(c.name)] = jen.Lit(int(c.ctor.Tag))
			}
		}))
		f.Line()
		f.Commentf("%s is the tag-keyed table of %s, built in init.", cat.dispatch, cat.name)
		f.Var().Id(cat.dispatch).Op("*").Add(e.rt("Dispatch")).Types(e.categoryType(cat))
		f.Line()
	}
}

// categoryType is the internal type a category converts
func (e *emitter) categoryType(cat *category) jen.Code {
	switch cat {
	case e.m.object:
		return e.rt("Object")
	case e.m.function:
		return e.rt("Function")
	}
	return e.api(cat.iface)
}

func tagComment(tag int32) string {
	return fmt.Sprintf("0x%08x", uint32(tag))
}

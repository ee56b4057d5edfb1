package binding

import (
	"github.com/dave/jennifer/jen"

	"github.com/okra-platform/tlbind/internal/classify"
	"github.com/okra-platform/tlbind/internal/naming"
)

// dispatchInit builds every dispatch table in init so the tables and the
// converters that use them do not form an initialization cycle
func (e *emitter) dispatchInit(f *jen.File) {
	var body []jen.Code
	for _, cat := range e.m.categories() {
		typ := e.categoryType(cat)
		codecs := jen.DictFunc(func(d jen.Dict) {
			for _, c := range cat.members {
				d[jen.Lit(int(c.ctor.Tag))] = e.rt("Bind").Types(typ).Call(
					jen.Id("Encode"+c.goName),
					jen.Id("Decode"+c.goName),
				)
			}
		})
		body = append(body, jen.Id(cat.dispatch).Op("=").Add(e.rt("NewDispatch")).Call(
			jen.Lit(cat.name),
			jen.Id(cat.names),
			jen.Map(jen.Int32()).Add(e.rt("Codec")).Types(typ).Values(codecs),
		))
	}
	f.Func().Id("init").Params().Block(body...)
	f.Line()
}

// converters emits the encoder and decoder of every constructor and function
func (e *emitter) converters(f *jen.File) {
	for _, c := range e.m.all() {
		e.encoder(f, c)
		e.decoder(f, c)
	}
}

func (e *emitter) encoder(f *jen.File, c *class) {
	body := []jen.Code{
		jen.If(jen.Id("from").Op("==").Nil()).Block(jen.Return(jen.Nil())),
		jen.Id("to").Op(":=").Add(e.rt("Props")).Values(jen.Dict{
			e.rt("TypeKey"): jen.Lit(c.name),
		}),
	}
	for _, fd := range c.fields {
		value := e.encodeFunc(fd.rule).Call(jen.Id("from").Dot(fd.goName))
		if fd.rule.Nullable() {
			// unset references are omitted, typed nil interfaces included
			body = append(body, jen.If(
				jen.Id("v").Op(":=").Add(value),
				jen.Id("v").Op("!=").Nil(),
			).Block(jen.Id("to").Index(jen.Lit(fd.key)).Op("=").Id("v")))
			continue
		}
		body = append(body, jen.Id("to").Index(jen.Lit(fd.key)).Op("=").Add(value))
	}
	body = append(body, jen.Return(jen.Id("to")))

	f.Commentf("Encode%s converts a %s value to its external form.", c.goName, c.ctor.Name)
	f.Func().Id("Encode"+c.goName).Params(
		jen.Id("from").Op("*").Add(e.api(c.goName)),
	).Add(e.rt("Value")).Block(body...)
	f.Line()
}

func (e *emitter) decoder(f *jen.File, c *class) {
	ret := jen.Params(jen.Op("*").Add(e.api(c.goName)), jen.Error())
	body := []jen.Code{
		jen.If(jen.Id("from").Op("==").Nil()).Block(jen.Return(jen.Nil(), jen.Nil())),
	}

	if len(c.fields) == 0 {
		body = append(body,
			jen.If(
				jen.List(jen.Id("_"), jen.Id("_"), jen.Err()).Op(":=").Add(e.rt("Unwrap")).Call(jen.Id("from")),
				jen.Err().Op("!=").Nil(),
			).Block(jen.Return(jen.Nil(), jen.Err())),
			jen.Return(jen.New(e.api(c.goName)), jen.Nil()),
		)
	} else {
		body = append(body,
			jen.List(jen.Id("_"), jen.Id("props"), jen.Err()).Op(":=").Add(e.rt("Unwrap")).Call(jen.Id("from")),
			jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Nil(), jen.Err())),
			jen.Id("to").Op(":=").New(e.api(c.goName)),
		)
		for _, fd := range c.fields {
			decodeField := "DecodeField"
			if fd.rule.Nullable() {
				decodeField = "DecodeOptionalField"
			}
			body = append(body, jen.If(
				jen.Err().Op(":=").Add(e.rt(decodeField)).Call(
					jen.Id("props"),
					jen.Lit(fd.key),
					jen.Op("&").Id("to").Dot(fd.goName),
					e.decodeFunc(fd.rule),
				),
				jen.Err().Op("!=").Nil(),
			).Block(jen.Return(jen.Nil(), jen.Err())))
		}
		body = append(body, jen.Return(jen.Id("to"), jen.Nil()))
	}

	f.Commentf("Decode%s converts the external form of a %s value. Null decodes to nil.", c.goName, c.ctor.Name)
	f.Func().Id("Decode"+c.goName).Params(jen.Id("from").Add(e.rt("Value"))).Add(ret).Block(body...)
	f.Line()
}

// categories emits the dispatch wrappers of every sum type and umbrella
func (e *emitter) categories(f *jen.File) {
	for _, cat := range e.m.categories() {
		typ := e.categoryType(cat)

		f.Commentf("Encode%s converts any %s value to its external form.", cat.goName, cat.name)
		if cat.doc != "" {
			f.Comment(cat.doc)
		}
		f.Func().Id("Encode"+cat.goName).Params(jen.Id("from").Add(typ)).Add(e.rt("Value")).Block(
			jen.Return(jen.Id(cat.dispatch).Dot("Encode").Call(jen.Id("from"))),
		)
		f.Line()

		f.Commentf("Decode%s resolves the constructor of an external %s value by name.", cat.goName, cat.name)
		f.Func().Id("Decode"+cat.goName).Params(jen.Id("from").Add(e.rt("Value"))).Params(typ, jen.Error()).Block(
			jen.Return(jen.Id(cat.dispatch).Dot("Decode").Call(jen.Id("from"))),
		)
		f.Line()
	}
}

// encodeFunc returns the encoder expression of a field rule. Vectors compose
// the encoder of their element, so nesting of any depth is one expression.
func (e *emitter) encodeFunc(r classify.Rule) *jen.Statement {
	switch r.Transport {
	case classify.Container:
		return e.rt("VectorEncoder").Call(e.encodeFunc(*r.Elem))
	case classify.NullableRef:
		return jen.Id("Encode" + naming.GoName(r.Category()))
	}
	return e.rt("Encode" + r.Runtime())
}

// decodeFunc returns the decoder expression of a field rule
func (e *emitter) decodeFunc(r classify.Rule) jen.Code {
	switch r.Transport {
	case classify.Container:
		return e.rt("VectorOf").Call(e.decodeFunc(*r.Elem))
	case classify.NullableRef:
		return jen.Id("Decode" + naming.GoName(r.Category()))
	}
	return e.rt("Decode" + r.Runtime())
}

package binding

import (
	"github.com/dave/jennifer/jen"

	"github.com/okra-platform/tlbind/internal/naming"
)

// methodName is the host method name of a function
func (c *class) methodName() string {
	return naming.FieldName(c.ctor.Name)
}

// clientType emits the client entry point type
func (e *emitter) clientType(f *jen.File) {
	f.Commentf("Client is the %s entry point. It converts requests and results and", e.opts.ClientName)
	f.Comment("forwards every call to the engine.")
	f.Type().Id("Client").Struct(
		jen.Id("engine").Add(e.rt("Engine")),
	)
	f.Line()
	f.Comment("NewClient binds a client to an engine.")
	f.Func().Id("NewClient").Params(jen.Id("engine").Add(e.rt("Engine"))).Op("*").Id("Client").Block(
		jen.Return(jen.Op("&").Id("Client").Values(jen.Dict{
			jen.Id("engine"): jen.Id("engine"),
		})),
	)
	f.Line()
}

// clientMethods emits one method per function, the synchronous Execute and
// the name-keyed Call. Engine results are encoded with a checked lookup so a
// result outside the schema is an error rather than a panic.
func (e *emitter) clientMethods(f *jen.File) {
	recv := jen.Id("c").Op("*").Id("Client")
	ctx := jen.Qual("context", "Context")
	ret := jen.Params(e.rt("Value"), jen.Error())

	for _, fn := range e.m.functions {
		f.Commentf("%s sends a %s request and waits for its result.", fn.goName, fn.ctor.Name)
		if fn.doc != "" {
			f.Comment(fn.doc)
		}
		f.Func().Params(recv.Clone()).Id(fn.goName).Params(
			jen.Id("ctx").Add(ctx.Clone()),
			jen.Id("request").Add(e.rt("Value")),
		).Add(ret.Clone()).Block(
			jen.List(jen.Id("fn"), jen.Err()).Op(":=").Id("Decode"+fn.goName).Call(jen.Id("request")),
			jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Nil(), jen.Err())),
			jen.If(jen.Id("fn").Op("==").Nil()).Block(jen.Return(jen.Nil(), e.rt("ErrInvalidRequest"))),
			jen.List(jen.Id("result"), jen.Err()).Op(":=").Id("c").Dot("engine").Dot("Send").Call(jen.Id("ctx"), jen.Id("fn")),
			jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Nil(), jen.Err())),
			jen.Return(jen.Id(e.m.object.dispatch).Dot("EncodeChecked").Call(jen.Id("result"))),
		)
		f.Line()
	}

	f.Comment("Execute runs any data object synchronously on the engine.")
	f.Func().Params(recv.Clone()).Id("Execute").Params(jen.Id("request").Add(e.rt("Value"))).Add(ret.Clone()).Block(
		jen.List(jen.Id("obj"), jen.Err()).Op(":=").Id("DecodeObject").Call(jen.Id("request")),
		jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Nil(), jen.Err())),
		jen.If(jen.Id("obj").Op("==").Nil()).Block(jen.Return(jen.Nil(), e.rt("ErrInvalidRequest"))),
		jen.List(jen.Id("result"), jen.Err()).Op(":=").Id("c").Dot("engine").Dot("Execute").Call(jen.Id("obj")),
		jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Nil(), jen.Err())),
		jen.Return(jen.Id(e.m.object.dispatch).Dot("EncodeChecked").Call(jen.Id("result"))),
	)
	f.Line()

	f.Comment("clientMethods maps host method names to client methods.")
	f.Var().Id("clientMethods").Op("=").Map(jen.String()).Func().Params(
		jen.Op("*").Id("Client"), ctx.Clone(), e.rt("Value"),
	).Add(ret.Clone()).Values(jen.DictFunc(func(d jen.Dict) {
		for _, fn := range e.m.functions {
			d[jen.Lit(fn.methodName())] = jen.Parens(jen.Op("*").Id("Client")).Dot(fn.goName)
		}
	}))
	f.Line()

	f.Comment("Call sends the request of the named method.")
	f.Func().Params(recv.Clone()).Id("Call").Params(
		jen.Id("ctx").Add(ctx.Clone()),
		jen.Id("method").String(),
		jen.Id("request").Add(e.rt("Value")),
	).Add(ret.Clone()).Block(
		jen.List(jen.Id("call"), jen.Id("ok")).Op(":=").Id("clientMethods").Index(jen.Id("method")),
		jen.If(jen.Op("!").Id("ok")).Block(
			jen.Return(jen.Nil(), jen.Op("&").Add(e.rt("UnknownMethodError")).Values(jen.Dict{
				jen.Id("Method"): jen.Id("method"),
			})),
		),
		jen.Return(jen.Id("call").Call(jen.Id("c"), jen.Id("ctx"), jen.Id("request"))),
	)
}

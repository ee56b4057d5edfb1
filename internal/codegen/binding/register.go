package binding

import (
	"github.com/dave/jennifer/jen"
)

// register emits the registration routine. It defines every wrapper class and
// the client entry point on the host once, keeping the class handles.
func (e *emitter) register(f *jen.File) {
	f.Var().Defs(
		jen.Id("registerOnce").Qual("sync", "Once"),
		jen.Id("registerErr").Error(),
	)
	f.Line()

	var steps []jen.Code
	if len(e.m.all()) > 0 {
		steps = append(steps, jen.Var().Err().Error())
	}
	for _, c := range e.m.all() {
		props := make([]jen.Code, len(c.fields))
		for i, fd := range c.fields {
			props[i] = jen.Lit(fd.key)
		}

		var construct jen.Code
		if len(c.fields) == 0 {
			construct = jen.Return(jen.Id("New" + c.goName).Call())
		} else {
			construct = jen.Return(jen.Id("New" + c.goName).Call(jen.Id("props")))
		}

		spec := e.rt("ClassSpec").Values(jen.Dict{
			jen.Id("Name"):       jen.Lit(c.name),
			jen.Id("Tag"):        jen.Lit(int(c.ctor.Tag)),
			jen.Id("Properties"): jen.Index().String().Values(props...),
			jen.Id("New"): jen.Func().Params(jen.Id("props").Add(e.rt("Props"))).Add(e.rt("Wrapper")).Block(
				construct,
			),
		})
		steps = append(steps,
			jen.If(
				jen.List(jen.Id(c.handle), jen.Err()).Op("=").Id("h").Dot("DefineClass").Call(spec),
				jen.Err().Op("!=").Nil(),
			).Block(
				jen.Id("registerErr").Op("=").Err(),
				jen.Return(),
			),
		)
	}

	methods := make([]jen.Code, len(e.m.functions))
	for i, fn := range e.m.functions {
		methods[i] = jen.Lit(fn.methodName())
	}
	steps = append(steps, jen.Id("registerErr").Op("=").Id("h").Dot("DefineClient").Call(
		e.rt("ClientSpec").Values(jen.Dict{
			jen.Id("Name"):    jen.Lit(e.opts.ClientName),
			jen.Id("Methods"): jen.Index().String().Values(methods...),
			jen.Id("New"): jen.Func().Params(jen.Id("engine").Add(e.rt("Engine"))).Add(e.rt("ClientInstance")).Block(
				jen.Return(jen.Id("NewClient").Call(jen.Id("engine"))),
			),
		}),
	))

	f.Comment("Register defines every wrapper class and the client entry point on h.")
	f.Comment("Only the first call has an effect; later calls return its result.")
	f.Func().Id("Register").Params(jen.Id("h").Add(e.rt("Host"))).Error().Block(
		jen.Id("registerOnce").Dot("Do").Call(jen.Func().Params().Block(steps...)),
		jen.Return(jen.Id("registerErr")),
	)
}

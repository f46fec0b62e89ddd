// Package cpp generates C++ class hierarchies from parsed generator
// descriptions: one abstract base class per abstract type and one final
// subclass per variant, with all opaque payloads emitted verbatim.
package cpp

import (
	"strings"

	"github.com/Backseating-Committee-2k/ast-node-generator-for-seatbelt2/dsl"
)

// Options configures the emitter.
type Options struct {
	// Namespace wraps the generated type definitions and classes. The
	// prelude and postlude stay outside it, since preludes are typically
	// include blocks.
	Namespace string
}

// Generate produces C++ source from a generator description.
func Generate(desc *dsl.GeneratorDescription, opts Options) string {
	g := &generator{desc: desc, opts: opts}
	return g.generate()
}

type generator struct {
	desc *dsl.GeneratorDescription
	opts Options
	b    strings.Builder
}

func (g *generator) generate() string {
	g.b.WriteString("// Generated by astgen. Do not edit.\n\n")

	if g.desc.Prelude != "" {
		g.b.WriteString(g.desc.Prelude + "\n\n")
	}

	if g.opts.Namespace != "" {
		g.b.WriteString("namespace " + g.opts.Namespace + " {\n\n")
	}

	for _, def := range g.desc.TypeDefinitions {
		g.b.WriteString("// type definition: " + def.Name + "\n")
		g.b.WriteString(def.Body + "\n\n")
	}

	for _, abstract := range g.desc.AbstractTypes {
		g.generateAbstractType(abstract)
	}

	if g.opts.Namespace != "" {
		g.b.WriteString("} // namespace " + g.opts.Namespace + "\n")
	}

	if g.desc.Postlude != "" {
		g.b.WriteString("\n" + g.desc.Postlude + "\n")
	}

	return g.b.String()
}

func (g *generator) generateAbstractType(abstract *dsl.AbstractType) {
	g.b.WriteString("class " + abstract.Name + " {\npublic:\n")

	if len(abstract.Members) > 0 {
		g.b.WriteString("    " + constructorSignature(abstract.Name, abstract.Members) + "\n")
		g.b.WriteString("        : " + initializerList(abstract.Members) + " { }\n\n")
	}

	g.b.WriteString("    virtual ~" + abstract.Name + "() = default;\n")

	for _, op := range abstract.Operations {
		g.b.WriteString("\n    virtual " + returnType(op) + " " + op.Name + "() = 0;\n")
	}

	if len(abstract.Members) > 0 {
		g.b.WriteString("\n")
		for _, m := range abstract.Members {
			g.b.WriteString("    " + m.Type + " " + m.Name + ";\n")
		}
	}

	g.b.WriteString("};\n\n")

	for _, v := range abstract.Variants {
		g.generateVariant(abstract, v)
	}
}

func (g *generator) generateVariant(abstract *dsl.AbstractType, named dsl.NamedVariant) {
	variant := named.Variant
	g.b.WriteString("class " + named.Name + " final : public " + abstract.Name + " {\npublic:\n")

	if len(abstract.Members)+len(variant.Members) > 0 {
		params := append(append([]dsl.Member{}, abstract.Members...), variant.Members...)
		g.b.WriteString("    " + constructorSignature(named.Name, params) + "\n")
		g.b.WriteString("        : " + variantInitializerList(abstract, variant) + " { }\n")
	}

	if len(variant.Members) > 0 {
		g.b.WriteString("\n")
		for _, m := range variant.Members {
			g.b.WriteString("    " + m.Type + " " + m.Name + ";\n")
		}
	}

	// One override per declared operation, in declaration order. Variant
	// validation guarantees the implementation exists.
	for _, op := range abstract.Operations {
		body := implementationBody(variant, op.Name)
		g.b.WriteString("\n    " + returnType(op) + " " + op.Name + "() override {\n")
		for _, line := range strings.Split(body, "\n") {
			g.b.WriteString("        " + line + "\n")
		}
		g.b.WriteString("    }\n")
	}

	g.b.WriteString("};\n\n")
}

func implementationBody(variant *dsl.Variant, name string) string {
	for _, impl := range variant.Implementations {
		if impl.Name == name {
			return impl.Body
		}
	}
	return ""
}

// constructorSignature renders a constructor taking one parameter per
// member: by-move members by value (moved in the initializer list), the
// rest by const reference.
func constructorSignature(class string, members []dsl.Member) string {
	params := make([]string, len(members))
	for i, m := range members {
		if m.ByMove {
			params[i] = m.Type + " " + m.Name
		} else {
			params[i] = "const " + m.Type + "& " + m.Name
		}
	}
	prefix := ""
	if len(members) == 1 {
		prefix = "explicit "
	}
	return prefix + class + "(" + strings.Join(params, ", ") + ")"
}

func initializerList(members []dsl.Member) string {
	inits := make([]string, len(members))
	for i, m := range members {
		inits[i] = m.Name + "(" + paramExpr(m) + ")"
	}
	return strings.Join(inits, ", ")
}

// variantInitializerList forwards shared members to the base constructor
// and initializes the variant's own members directly.
func variantInitializerList(abstract *dsl.AbstractType, variant *dsl.Variant) string {
	var inits []string
	if len(abstract.Members) > 0 {
		args := make([]string, len(abstract.Members))
		for i, m := range abstract.Members {
			args[i] = paramExpr(m)
		}
		inits = append(inits, abstract.Name+"("+strings.Join(args, ", ")+")")
	}
	for _, m := range variant.Members {
		inits = append(inits, m.Name+"("+paramExpr(m)+")")
	}
	return strings.Join(inits, ", ")
}

func paramExpr(m dsl.Member) string {
	if m.ByMove {
		return "std::move(" + m.Name + ")"
	}
	return m.Name
}

func returnType(op dsl.Operation) string {
	if op.HasReturnType {
		return op.ReturnType
	}
	return "void"
}

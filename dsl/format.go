package dsl

import "strings"

// Format renders a generator description as canonical DSL source. Parsing
// the result reproduces a structurally identical description, since every
// stored payload is already quote-stripped and trimmed.
func Format(desc *GeneratorDescription) string {
	var b strings.Builder

	if desc.Prelude != "" {
		b.WriteString("\"" + desc.Prelude + "\"\n\n")
	}

	for _, def := range desc.TypeDefinitions {
		b.WriteString("type " + def.Name + " \"" + def.Body + "\"\n")
	}
	if len(desc.TypeDefinitions) > 0 {
		b.WriteString("\n")
	}

	for _, abstract := range desc.AbstractTypes {
		b.WriteString(abstract.Name + " (\n")
		for _, m := range abstract.Members {
			b.WriteString("    " + formatMember(m) + "\n")
		}
		for _, op := range abstract.Operations {
			ret := ""
			if op.HasReturnType {
				ret = op.ReturnType
			}
			b.WriteString("    function " + op.Name + " \"" + ret + "\"\n")
		}
		b.WriteString(") =\n")
		for i, v := range abstract.Variants {
			if i > 0 {
				b.WriteString("|\n")
			}
			b.WriteString(v.Name + " (\n")
			for _, m := range v.Variant.Members {
				b.WriteString("    " + formatMember(m) + "\n")
			}
			for _, impl := range v.Variant.Implementations {
				b.WriteString("    implement " + impl.Name + " \"" + impl.Body + "\"\n")
			}
			b.WriteString(")\n")
		}
		b.WriteString("\n")
	}

	if desc.Postlude != "" {
		b.WriteString("\"" + desc.Postlude + "\"\n")
	}

	return b.String()
}

func formatMember(m Member) string {
	if m.ByMove {
		return m.Name + " by_move \"" + m.Type + "\""
	}
	return m.Name + ": \"" + m.Type + "\""
}

package dsl

import "fmt"

// Member is a named data field of an abstract type or a variant. Type is
// opaque target-language text; ByMove marks fields the generated code
// consumes by ownership transfer instead of copy.
type Member struct {
	Name   string
	ByMove bool
	Type   string
}

// Operation is a pure virtual function shared by every variant of an
// abstract type. A return type that lexed as an empty payload is absent,
// not the empty string: HasReturnType distinguishes the two.
type Operation struct {
	Name          string
	ReturnType    string
	HasReturnType bool
}

// Implementation is the body one variant supplies for one operation. Body
// is verbatim target-language text.
type Implementation struct {
	Name string
	Body string
}

// Variant is one concrete case of an abstract type.
type Variant struct {
	Members         []Member
	Implementations []Implementation
}

// NewVariant validates a variant against the operations declared by its
// owning abstract type. Checks run in a fixed order so diagnostics are
// deterministic: duplicate operation declarations first, then duplicate
// implementations, then exact coverage of the declared operations. A
// Variant violating any of these is never constructed.
func NewVariant(operations []Operation, members []Member, implementations []Implementation) (*Variant, error) {
	declared := make(map[string]bool, len(operations))
	for _, op := range operations {
		if declared[op.Name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateOperation, op.Name)
		}
		declared[op.Name] = true
	}

	implemented := make(map[string]bool, len(implementations))
	for _, impl := range implementations {
		if implemented[impl.Name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateImplementation, impl.Name)
		}
		implemented[impl.Name] = true
	}

	if len(declared) != len(implemented) {
		return nil, ErrIncompleteImplementation
	}
	for name := range declared {
		if !implemented[name] {
			return nil, fmt.Errorf("%w: missing %s", ErrIncompleteImplementation, name)
		}
	}

	return &Variant{Members: members, Implementations: implementations}, nil
}

// NamedVariant pairs a variant with its name. Variants live in an ordered
// slice, not a map: declaration order drives generation order.
type NamedVariant struct {
	Name    string
	Variant *Variant
}

// AbstractType is a named polymorphic family: shared members and operation
// declarations, plus one entry per variant in declaration order.
type AbstractType struct {
	Name       string
	Members    []Member
	Operations []Operation
	Variants   []NamedVariant
}

// NewAbstractType assembles an abstract type from production output. Variant
// validation already happened in NewVariant; the only check added here is
// that no two variants share a name.
func NewAbstractType(name string, members []Member, operations []Operation, variants []NamedVariant) (*AbstractType, error) {
	seen := make(map[string]bool, len(variants))
	for _, v := range variants {
		if seen[v.Name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateVariant, v.Name)
		}
		seen[v.Name] = true
	}
	return &AbstractType{
		Name:       name,
		Members:    members,
		Operations: operations,
		Variants:   variants,
	}, nil
}

// Variant returns the named variant, if declared.
func (a *AbstractType) Variant(name string) (*Variant, bool) {
	for _, v := range a.Variants {
		if v.Name == name {
			return v.Variant, true
		}
	}
	return nil, false
}

// TypeDefinition is a named verbatim snippet emitted before the generated
// hierarchies. Order matters: later definitions may reference earlier ones.
type TypeDefinition struct {
	Name string
	Body string
}

// GeneratorDescription is the root of the parsed tree, a pure value tree
// owned by the caller. Prelude and Postlude are verbatim blocks, empty when
// absent from the source.
type GeneratorDescription struct {
	Prelude         string
	TypeDefinitions []TypeDefinition
	AbstractTypes   []*AbstractType
	Postlude        string
}

// AbstractType returns the named abstract type, if declared.
func (d *GeneratorDescription) AbstractType(name string) (*AbstractType, bool) {
	for _, a := range d.AbstractTypes {
		if a.Name == name {
			return a, true
		}
	}
	return nil, false
}

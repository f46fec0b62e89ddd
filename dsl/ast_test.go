package dsl

import (
	"errors"
	"testing"
)

func TestNewVariant_EmptySetsAreValid(t *testing.T) {
	v, err := NewVariant(nil, nil, nil)
	if err != nil {
		t.Fatalf("empty variant must be valid: %v", err)
	}
	if len(v.Members) != 0 || len(v.Implementations) != 0 {
		t.Errorf("expected empty variant, got %+v", v)
	}
}

func TestNewVariant_ValidationOrder(t *testing.T) {
	ops := []Operation{{Name: "area"}, {Name: "area"}}
	impls := []Implementation{{Name: "area"}, {Name: "area"}}

	// Both violations present: the duplicate declaration must win.
	_, err := NewVariant(ops, nil, impls)
	if !errors.Is(err, ErrDuplicateOperation) {
		t.Fatalf("expected ErrDuplicateOperation first, got %v", err)
	}

	// Only the implementations are duplicated.
	_, err = NewVariant([]Operation{{Name: "area"}}, nil, impls)
	if !errors.Is(err, ErrDuplicateImplementation) {
		t.Fatalf("expected ErrDuplicateImplementation second, got %v", err)
	}
}

func TestNewVariant_CoverageMismatch(t *testing.T) {
	ops := []Operation{{Name: "area"}, {Name: "perimeter"}}

	_, err := NewVariant(ops, nil, []Implementation{{Name: "area"}})
	if !errors.Is(err, ErrIncompleteImplementation) {
		t.Fatalf("missing implementation: expected ErrIncompleteImplementation, got %v", err)
	}

	_, err = NewVariant(ops, nil, []Implementation{
		{Name: "area"}, {Name: "perimeter"}, {Name: "render"},
	})
	if !errors.Is(err, ErrIncompleteImplementation) {
		t.Fatalf("spurious implementation: expected ErrIncompleteImplementation, got %v", err)
	}
}

func TestNewVariant_ExactCoverage(t *testing.T) {
	ops := []Operation{{Name: "area"}, {Name: "perimeter"}}
	impls := []Implementation{
		{Name: "perimeter", Body: "return 4 * side;"},
		{Name: "area", Body: "return side * side;"},
	}
	v, err := NewVariant(ops, []Member{{Name: "side", Type: "double"}}, impls)
	if err != nil {
		t.Fatalf("coverage is exact, expected success: %v", err)
	}
	// Implementations keep their source order.
	if v.Implementations[0].Name != "perimeter" {
		t.Errorf("implementation order changed: %+v", v.Implementations)
	}
}

func TestNewAbstractType_DuplicateVariantName(t *testing.T) {
	v, err := NewVariant(nil, nil, nil)
	if err != nil {
		t.Fatalf("variant construction failed: %v", err)
	}
	_, err = NewAbstractType("Shape", nil, nil, []NamedVariant{
		{Name: "Circle", Variant: v},
		{Name: "Circle", Variant: v},
	})
	if !errors.Is(err, ErrDuplicateVariant) {
		t.Fatalf("expected ErrDuplicateVariant, got %v", err)
	}
}

func TestAbstractType_VariantLookup(t *testing.T) {
	v, _ := NewVariant(nil, nil, nil)
	a, err := NewAbstractType("Shape", nil, nil, []NamedVariant{{Name: "Circle", Variant: v}})
	if err != nil {
		t.Fatalf("abstract type construction failed: %v", err)
	}
	if _, ok := a.Variant("Circle"); !ok {
		t.Error("expected Circle to be found")
	}
	if _, ok := a.Variant("Square"); ok {
		t.Error("Square must not be found")
	}
}

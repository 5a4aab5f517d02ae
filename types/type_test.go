package types

import (
	"testing"
)

func TestTypeString(t *testing.T) {
	cases := []struct {
		typ      Type
		expected string
	}{
		{Undefined, "-"},
		{Int, "int"},
		{Bool, "boolean"},
		{String, "string"},
		{Void, "void"},
		{Ok, "ok"},
		{Type(42), "?unknown type 42?"},
	}

	for _, c := range cases {
		if c.typ.String() != c.expected {
			t.Errorf("%d: expected %q, found %q", int(c.typ), c.expected, c.typ)
		}
	}
}

func TestIsValue(t *testing.T) {
	for _, typ := range []Type{Int, Bool, String} {
		if !typ.IsValue() {
			t.Errorf("expected %s to be a value type", typ)
		}
	}

	for _, typ := range []Type{Undefined, Void, Ok} {
		if typ.IsValue() {
			t.Errorf("expected %s to not be a value type", typ)
		}
	}
}

func TestParameterModeString(t *testing.T) {
	if Value.String() != "value" {
		t.Errorf("unexpected mode string %q", Value)
	}
}

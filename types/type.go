package types

import (
	"fmt"
)

// Type is the inferred type of an expression, statement, or symbol.
//
// Ok is internal: it marks a well-typed statement that yields no value and
// never appears on a symbol.
type Type int

const (
	Undefined = Type(0)
	Int       = Type(1)
	Bool      = Type(2)
	String    = Type(3)
	Void      = Type(4)
	Ok        = Type(5)
)

func (t Type) String() string {
	switch t {
	case Undefined:
		return "-"
	case Int:
		return "int"
	case Bool:
		return "boolean"
	case String:
		return "string"
	case Void:
		return "void"
	case Ok:
		return "ok"
	default:
		return fmt.Sprintf("?unknown type %d?", int(t))
	}
}

func (t Type) IsDefined() bool {
	return t != Undefined
}

// IsValue reports whether t can be held by a variable or produced by an
// expression.
func (t Type) IsValue() bool {
	return t == Int || t == Bool || t == String
}

type ParameterMode int

const (
	Value = ParameterMode(0)
)

func (mode ParameterMode) String() string {
	switch mode {
	case Value:
		return "value"
	default:
		return fmt.Sprintf("?unknown mode %d?", int(mode))
	}
}

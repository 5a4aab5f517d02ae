package architecture

import (
	"github.com/pattyshack/wren/types"
)

const (
	// The target machine addresses memory in 2 byte words.
	WordByteSize = 2

	// Strings are stored inline in a fixed size slot.
	StringByteSize = 128
)

func ByteSize(valType types.Type) int {
	switch valType {
	case types.Int:
		return WordByteSize
	case types.Bool:
		return WordByteSize
	case types.String:
		return StringByteSize
	case types.Void:
		return 0
	case types.Undefined:
		panic("undefined type has no size")
	case types.Ok:
		panic("ok type has no size")
	default:
		panic("unhandled type")
	}
}

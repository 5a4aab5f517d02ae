package architecture

import (
	"github.com/pattyshack/wren/types"
)

// Frame layout from low address to high address:
//
// |--------------| <- offset 0
// |variable 1    | first variable assigned a type in the scope
// |--------------|
// |...           |
// |--------------|
// |variable n    |
// |--------------| <- Size
//
// Offsets are handed out in type assignment order and never reclaimed.
// Zero sized entries (void) share the offset of the next entry.
type Frame struct {
	// In allocation order.
	Layout []*DataLocation

	// Running offset, i.e., the next free byte.
	Size int
}

func NewFrame() *Frame {
	return &Frame{}
}

func (frame *Frame) Allocate(name string, valType types.Type) *DataLocation {
	size := ByteSize(valType)
	loc := &DataLocation{
		Name:   name,
		Type:   valType,
		Size:   size,
		Offset: frame.Size,
	}
	frame.Size += size
	frame.Layout = append(frame.Layout, loc)
	return loc
}

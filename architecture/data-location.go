package architecture

import (
	"fmt"

	"github.com/pattyshack/wren/types"
)

// DataLocation is the storage slot of a single variable within its scope's
// frame.
type DataLocation struct {
	Name string
	Type types.Type
	Size int

	// Relative to the start of the owning frame.
	Offset int
}

func (loc *DataLocation) String() string {
	return fmt.Sprintf(
		"%s: %s [%d, %d)",
		loc.Name,
		loc.Type,
		loc.Offset,
		loc.Offset+loc.Size)
}

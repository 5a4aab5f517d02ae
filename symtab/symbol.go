package symtab

import (
	"github.com/pattyshack/wren/architecture"
	"github.com/pattyshack/wren/types"
)

type Parameter struct {
	Type types.Type
	Mode types.ParameterMode
}

type FunctionInfo struct {
	ReturnType types.Type

	// In declaration order.  nil until the parameter list is closed.
	Parameters []Parameter

	Label string
}

// SetParameters records the function's parameters.  Parameters can only be
// set once.
func (info *FunctionInfo) SetParameters(params []Parameter) bool {
	if info.Parameters != nil {
		return false
	}

	if params == nil {
		params = []Parameter{}
	}
	info.Parameters = params
	return true
}

func (info *FunctionInfo) NumParameters() int {
	return len(info.Parameters)
}

// Symbol is owned by the scope that created it.  Lookups from nested scopes
// share the same *Symbol.
type Symbol struct {
	Name string

	// Insertion order within the owning scope.
	Position int

	Type types.Type
	Size int

	// nil until storage is allocated.  Function symbols have no storage.
	Location *architecture.DataLocation

	// Only set for function symbols.
	Function *FunctionInfo

	owner *Scope
}

func (symbol *Symbol) Owner() *Scope {
	return symbol.owner
}

func (symbol *Symbol) IsTyped() bool {
	return symbol.Type.IsDefined()
}

func (symbol *Symbol) IsFunction() bool {
	return symbol.Function != nil
}

func (symbol *Symbol) Offset() (int, bool) {
	if symbol.Location == nil {
		return 0, false
	}
	return symbol.Location.Offset, true
}

package symtab

import (
	"github.com/pattyshack/wren/architecture"
)

const GlobalScopeId = 0

// Scope is a single symbol table.  Symbols are kept in insertion order.
type Scope struct {
	Id int

	Symbols []*Symbol
	names   map[string]*Symbol

	*architecture.Frame
}

func newScope(id int) *Scope {
	return &Scope{
		Id:    id,
		names: map[string]*Symbol{},
		Frame: architecture.NewFrame(),
	}
}

func (scope *Scope) IsGlobal() bool {
	return scope.Id == GlobalScopeId
}

func (scope *Scope) Lookup(name string) (*Symbol, bool) {
	symbol, ok := scope.names[name]
	return symbol, ok
}

func (scope *Scope) add(name string) *Symbol {
	_, ok := scope.names[name]
	if ok {
		panic("duplicate symbol: " + name)
	}

	symbol := &Symbol{
		Name:     name,
		Position: len(scope.Symbols),
		owner:    scope,
	}
	scope.Symbols = append(scope.Symbols, symbol)
	scope.names[name] = symbol
	return symbol
}

// NextOffset is the scope's running storage offset.
func (scope *Scope) NextOffset() int {
	return scope.Frame.Size
}

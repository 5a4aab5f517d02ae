package symtab

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/pattyshack/wren/architecture"
	"github.com/pattyshack/wren/types"
)

var ErrAlreadyTyped = errors.New("symbol already typed")

// Zones select the identifier resolution rule.
type Zones struct {
	// Between `let` and the declared identifier.
	Declaration bool

	// Within a function's parameter list.
	Parameters bool
}

// Manager owns the scope stack.  The bottom scope is the global scope.
// Nested functions are not supported, so the stack is at most two deep.
type Manager struct {
	Zones

	scopes []*Scope
	nextId int

	// Scopes in closing order.
	closed []*Scope
	dump   bytes.Buffer
}

func NewManager() *Manager {
	return &Manager{
		scopes: []*Scope{newScope(GlobalScopeId)},
		nextId: GlobalScopeId + 1,
	}
}

func (manager *Manager) Depth() int {
	return len(manager.scopes)
}

func (manager *Manager) Current() *Scope {
	if len(manager.scopes) == 0 {
		panic("all scopes are closed")
	}
	return manager.scopes[len(manager.scopes)-1]
}

func (manager *Manager) Global() *Scope {
	if len(manager.scopes) == 0 {
		panic("all scopes are closed")
	}
	return manager.scopes[0]
}

func (manager *Manager) IsCurrentScopeGlobal() bool {
	return manager.Current().IsGlobal()
}

func (manager *Manager) OpenScope() *Scope {
	if len(manager.scopes) != 1 {
		panic("nested scopes are not supported")
	}

	scope := newScope(manager.nextId)
	manager.nextId++
	manager.scopes = append(manager.scopes, scope)
	return scope
}

// CloseScope pops the current scope and appends its contents to the dump.
func (manager *Manager) CloseScope() *Scope {
	scope := manager.Current()
	manager.scopes = manager.scopes[:len(manager.scopes)-1]
	manager.closed = append(manager.closed, scope)

	// bytes.Buffer writes never fail
	_ = PrintScope(&manager.dump, scope)
	return scope
}

func (manager *Manager) ClosedScopes() []*Scope {
	return manager.closed
}

// Dump returns the contents of all closed scopes, in closing order.
func (manager *Manager) Dump() string {
	return manager.dump.String()
}

// Resolve returns the symbol an identifier refers to.  A symbol in the
// current scope always wins.  A global symbol is only visible outside of
// declaration and parameter zones; otherwise the identifier introduces a new
// untyped symbol in the current scope.
func (manager *Manager) Resolve(name string) *Symbol {
	current := manager.Current()
	symbol, ok := current.Lookup(name)
	if ok {
		return symbol
	}

	if !manager.Declaration && !manager.Parameters {
		symbol, ok = manager.Global().Lookup(name)
		if ok {
			return symbol
		}
	}

	return current.add(name)
}

// AssignType types the symbol and allocates its storage in the owning scope.
func (manager *Manager) AssignType(symbol *Symbol, valType types.Type) error {
	if symbol.IsTyped() {
		return fmt.Errorf("%w: %s", ErrAlreadyTyped, symbol.Name)
	}

	symbol.Type = valType
	symbol.Size = architecture.ByteSize(valType)
	if symbol.Location == nil {
		symbol.Location = symbol.owner.Allocate(symbol.Name, valType)
	}
	return nil
}

// AssignFunctionType marks the symbol as a function returning returnType.
// Functions occupy no storage.
func (manager *Manager) AssignFunctionType(
	symbol *Symbol,
	returnType types.Type,
) error {
	if symbol.IsTyped() {
		return fmt.Errorf("%w: %s", ErrAlreadyTyped, symbol.Name)
	}

	symbol.Type = returnType
	symbol.Function = &FunctionInfo{
		ReturnType: returnType,
		Label:      symbol.Name,
	}
	return nil
}

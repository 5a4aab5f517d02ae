package lr

import (
	"sort"
)

type Rule struct {
	Lhs string

	// Excludes the left hand side.  Empty for epsilon rules.
	Rhs []string
}

// Table is the parsed grammar report.  A table is read-only once loaded and
// may be shared by concurrent engines.
type Table struct {
	// Keyed by report rule number.
	Rules map[int]Rule

	// Indexed by state.  Terminal keys are normalized (see NormalizeTerminal).
	Actions []map[string]Action
	Gotos   []map[string]int
}

func (table *Table) NumStates() int {
	return len(table.Actions)
}

// Action returns the state's action for key, falling back on the state's
// default action.
func (table *Table) Action(state int, key string) (Action, bool) {
	if state < 0 || state >= len(table.Actions) {
		return nil, false
	}

	actions := table.Actions[state]
	action, ok := actions[key]
	if ok {
		return action, true
	}

	action, ok = actions[DefaultSymbol]
	return action, ok
}

func (table *Table) Goto(state int, nonterminal string) (int, bool) {
	if state < 0 || state >= len(table.Gotos) {
		return 0, false
	}

	next, ok := table.Gotos[state][nonterminal]
	return next, ok
}

// ExpectedTerminals returns the terminals with explicit actions in the given
// state, sorted.
func (table *Table) ExpectedTerminals(state int) []string {
	if state < 0 || state >= len(table.Actions) {
		return nil
	}

	result := []string{}
	for key := range table.Actions[state] {
		if key == DefaultSymbol {
			continue
		}
		result = append(result, key)
	}
	sort.Strings(result)
	return result
}

package lr

import (
	"github.com/pattyshack/wren/diagnostic"
)

const (
	startState = 0

	endSymbol = "$end"
)

// Engine is the shift-reduce automaton.  The engine is fed one token at a
// time and reports each applied production; a token that is not consumed
// must be offered again.
type Engine struct {
	table *Table

	// Parallel stacks.  The bottom entries are the start state and the end
	// marker.
	states  []int
	symbols []string

	accepted bool
}

func NewEngine(table *Table) *Engine {
	return &Engine{
		table:   table,
		states:  []int{startState},
		symbols: []string{endSymbol},
	}
}

func (engine *Engine) State() int {
	return engine.states[len(engine.states)-1]
}

func (engine *Engine) Depth() int {
	return len(engine.states)
}

func (engine *Engine) Accepted() bool {
	return engine.accepted
}

func (engine *Engine) ExpectedTerminals() []string {
	return engine.table.ExpectedTerminals(engine.State())
}

// Process performs a single automaton step on the token.  The returned
// production is NoProduction for shifts.  The end token is never consumed
// by a shift; it is only consumed by accept.
func (engine *Engine) Process(token *Token) (Production, bool, error) {
	if engine.accepted {
		return NoProduction, false, diagnostic.New(
			diagnostic.UnexpectedToken,
			token.Loc(),
			"unexpected token %s after end of input",
			token)
	}

	key := token.Key()
	action, ok := engine.table.Action(engine.State(), key)
	if !ok {
		return NoProduction, false, diagnostic.New(
			diagnostic.UnexpectedToken,
			token.Loc(),
			"unexpected token %s. expecting %v",
			token,
			engine.ExpectedTerminals())
	}

	switch act := action.(type) {
	case Shift:
		engine.states = append(engine.states, act.State)
		engine.symbols = append(engine.symbols, key)
		return NoProduction, token.Kind != EndToken, nil
	case Reduce:
		err := engine.reduce(token, act)
		if err != nil {
			return NoProduction, false, err
		}
		return ProductionFromReportRule(act.Rule), false, nil
	case Accept:
		engine.accepted = true
		return AcceptProgram, true, nil
	default:
		panic("unknown action type: " + action.String())
	}
}

func (engine *Engine) reduce(token *Token, act Reduce) error {
	rule := engine.table.Rules[act.Rule]

	size := len(rule.Rhs)
	if size >= len(engine.states) {
		panic("should never happen")
	}

	engine.states = engine.states[:len(engine.states)-size]
	engine.symbols = engine.symbols[:len(engine.symbols)-size]

	next, ok := engine.table.Goto(engine.State(), rule.Lhs)
	if !ok {
		return diagnostic.New(
			diagnostic.MalformedGrammar,
			token.Loc(),
			"no goto for %s in state %d",
			rule.Lhs,
			engine.State())
	}

	engine.states = append(engine.states, next)
	engine.symbols = append(engine.symbols, rule.Lhs)
	return nil
}

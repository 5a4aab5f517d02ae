package lr

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/pattyshack/wren/diagnostic"
)

func TestDefaultTable(t *testing.T) {
	table, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if table.NumStates() != 97 {
		t.Errorf("expected 97 states, found %d", table.NumStates())
	}

	if len(table.Rules) != NumProductions {
		t.Errorf(
			"expected %d rules, found %d",
			NumProductions,
			len(table.Rules))
	}

	start := table.Rules[0]
	if start.Lhs != "$accept" || strings.Join(start.Rhs, " ") != "program $end" {
		t.Errorf("unexpected start rule: %v", start)
	}

	empty := table.Rules[3]
	if empty.Lhs != "program" || len(empty.Rhs) != 0 {
		t.Errorf("unexpected epsilon rule: %v", empty)
	}

	while := table.Rules[5]
	if while.Lhs != "statement" || len(while.Rhs) != 7 {
		t.Errorf("unexpected while rule: %v", while)
	}

	// continuation line inherits the left hand side
	call := table.Rules[31]
	if call.Lhs != "operand" || strings.Join(call.Rhs, " ") != "ID '(' arguments ')'" {
		t.Errorf("unexpected call rule: %v", call)
	}
}

func TestDefaultTableIsShared(t *testing.T) {
	first, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	second, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if first != second {
		t.Errorf("expected the embedded report to be parsed once")
	}
}

func TestDefaultTableActions(t *testing.T) {
	table, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	cases := []struct {
		state    int
		key      string
		expected Action
	}{
		{0, "LET", Shift{State: 3}},
		{0, "IDENTIFIER", Shift{State: 8}},
		{0, "END", Reduce{Rule: 3, Lhs: "program"}},  // via $default
		{0, "RBRACE", Reduce{Rule: 3, Lhs: "program"}}, // via $default
		{2, "LPAREN", Shift{State: 16}},
		{9, "END", Shift{State: 34}},
		{34, "END", Accept{}},
	}

	for _, c := range cases {
		action, ok := table.Action(c.state, c.key)
		if !ok {
			t.Errorf("state %d, %s: expected %s, found nothing", c.state, c.key, c.expected)
			continue
		}
		if action != c.expected {
			t.Errorf("state %d, %s: expected %s, found %s", c.state, c.key, c.expected, action)
		}
	}

	_, ok := table.Action(2, "SEMICOLON")
	if ok {
		t.Errorf("expected no action")
	}

	_, ok = table.Action(1000, "LET")
	if ok {
		t.Errorf("expected no action for unknown state")
	}

	next, ok := table.Goto(0, "program")
	if !ok || next != 9 {
		t.Errorf("expected goto 9, found %d (%v)", next, ok)
	}

	expected := "FUNCTION GET IDENTIFIER IF LET PUT RETURN WHILE"
	found := strings.Join(table.ExpectedTerminals(0), " ")
	if found != expected {
		t.Errorf("expected %q, found %q", expected, found)
	}
}

func TestNormalizeTerminal(t *testing.T) {
	cases := map[string]string{
		"$end":            "END",
		"'!'":             "NOT",
		"';'":             "SEMICOLON",
		"'+'":             "PLUS",
		"ADD_OP":          "PLUS_ASSIGN",
		"EQ_OP":           "EQUAL",
		"id":              "IDENTIFIER",
		"INTEGER_LITERAL": "INTEGER_LITERAL",
		"while":           "WHILE",
		"STRING":          "STRING",
		"$default":        DefaultSymbol,
	}

	for symbol, expected := range cases {
		found := NormalizeTerminal(symbol)
		if found != expected {
			t.Errorf("%s: expected %s, found %s", symbol, expected, found)
		}
	}
}

const smallReport = `Grammar

    0 $accept: list $end

    1 list: list ID
    2     | ε


Terminals, with rules where they appear

    $end (0) 0
    error (256)
    ID (258) 1


Nonterminals, with rules where they appear

    $accept (4)
        on left: 0
    list (5)
        on left: 1 2
        on right: 0 1


State 0 conflicts: 1 shift/reduce

State 0

    0 $accept: • list $end

    $default  reduce using rule 2 (list)

    list  go to state 1


State 1

    0 $accept: list • $end
    1 list: list • ID

    $end  shift, and go to state 2
    ID    shift, and go to state 3


State 2

    0 $accept: list $end •

    $default  accept


State 3

    1 list: list ID •

    $default  reduce using rule 1 (list)


`

func TestLoadSmallReport(t *testing.T) {
	table, err := Load("small.output", strings.NewReader(smallReport))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if table.NumStates() != 4 {
		t.Errorf("expected 4 states, found %d", table.NumStates())
	}

	if len(table.Rules[2].Rhs) != 0 || table.Rules[2].Lhs != "list" {
		t.Errorf("unexpected rule 2: %v", table.Rules[2])
	}

	engine := NewEngine(table)
	tokens := []*Token{
		{Kind: IdentifierToken},
		{Kind: IdentifierToken},
		{Kind: EndToken},
	}

	productions, err := drive(engine, tokens)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	expected := []Production{3, 2, 2, 1}
	if !equalProductions(productions, expected) {
		t.Errorf("expected %v, found %v", expected, productions)
	}
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name   string
		report string
	}{
		{"empty", ""},
		{"no states", "Grammar\n\n    0 $accept: x $end\n\n\n"},
		{
			"bad rule number",
			"Grammar\n\n    x $accept: x $end\n\n\n",
		},
		{
			"continuation without lhs",
			"Grammar\n\n    1 | a\n\n\n",
		},
		{
			"unknown reduce rule",
			"Grammar\n\n    0 $accept: x $end\n\n\nState 0\n\n    $default  reduce using rule 7 (x)\n\n\n",
		},
		{
			"unknown shift target",
			"Grammar\n\n    0 $accept: x $end\n\n\nState 0\n\n    x  shift, and go to state 5\n\n\n",
		},
		{
			"missing state",
			"Grammar\n\n    0 $accept: x $end\n\n\nState 1\n\n    $default  accept\n\n\n",
		},
		{
			"duplicate action",
			"Grammar\n\n    0 $accept: x $end\n\n\nState 0\n\n    $default  accept\n    $default  accept\n\n\n",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Load(c.name, strings.NewReader(c.report))
			if err == nil {
				t.Fatalf("expected error")
			}

			code, ok := diagnostic.CodeOf(err)
			if !ok || code != diagnostic.MalformedGrammar {
				t.Errorf("expected MalformedGrammar, found %v", err)
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.output"))
	if err == nil {
		t.Fatalf("expected error")
	}

	code, ok := diagnostic.CodeOf(err)
	if !ok || code != diagnostic.MissingGrammar {
		t.Errorf("expected MissingGrammar, found %v", err)
	}
}

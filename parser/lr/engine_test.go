package lr

import (
	"testing"

	"github.com/pattyshack/wren/diagnostic"
)

func drive(engine *Engine, tokens []*Token) ([]Production, error) {
	result := []Production{}
	for _, token := range tokens {
		for {
			production, consumed, err := engine.Process(token)
			if err != nil {
				return result, err
			}

			if production != NoProduction {
				result = append(result, production)
			}

			if consumed {
				break
			}
		}
	}
	return result, nil
}

func equalProductions(a []Production, b []Production) bool {
	if len(a) != len(b) {
		return false
	}
	for idx := range a {
		if a[idx] != b[idx] {
			return false
		}
	}
	return true
}

func keyword(word string) *Token {
	return &Token{Kind: KeywordToken, Value: word, Lexeme: word}
}

func token(kind Kind) *Token {
	return &Token{Kind: kind}
}

func TestEngineDeclarationAndPut(t *testing.T) {
	table, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	// let x int = 5; put x;
	tokens := []*Token{
		keyword("let"),
		token(IdentifierToken),
		keyword("int"),
		token(AssignToken),
		token(IntegerLiteralToken),
		token(SemicolonToken),
		keyword("put"),
		token(IdentifierToken),
		token(SemicolonToken),
		token(EndToken),
	}

	engine := NewEngine(table)
	productions, err := drive(engine, tokens)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	expected := []Production{
		ReduceIntToType,
		ReduceIntegerLiteralToOperand,
		ReduceOperandToUnary,
		ReduceUnaryToSum,
		ReduceSumToExpression,
		ReduceInitializedDeclarationToStatement,
		ReduceIdentifierToOperand,
		ReduceOperandToUnary,
		ReduceUnaryToSum,
		ReduceSumToExpression,
		ReducePutToSimpleStatement,
		ReduceSimpleStatementToStatement,
		ReduceNilToProgram,
		ReduceAddStatementToProgram,
		ReduceAddStatementToProgram,
		AcceptProgram,
	}

	if !equalProductions(productions, expected) {
		t.Errorf("expected %v, found %v", expected, productions)
	}

	if !engine.Accepted() {
		t.Errorf("expected engine to accept")
	}

	if engine.Depth() != 3 {
		t.Errorf("expected depth 3 (start, program, $end), found %d", engine.Depth())
	}
}

func TestEngineEmptyProgram(t *testing.T) {
	table, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	engine := NewEngine(table)
	productions, err := drive(engine, []*Token{token(EndToken)})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	expected := []Production{ReduceNilToProgram, AcceptProgram}
	if !equalProductions(productions, expected) {
		t.Errorf("expected %v, found %v", expected, productions)
	}
}

func TestEngineEndIsNotConsumedByShift(t *testing.T) {
	table, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	engine := NewEngine(table)
	end := token(EndToken)

	production, consumed, err := engine.Process(end)
	if err != nil || production != ReduceNilToProgram || consumed {
		t.Fatalf("unexpected result: %s %v %v", production, consumed, err)
	}

	production, consumed, err = engine.Process(end)
	if err != nil || production != NoProduction || consumed {
		t.Fatalf("unexpected result: %s %v %v", production, consumed, err)
	}

	production, consumed, err = engine.Process(end)
	if err != nil || production != AcceptProgram || !consumed {
		t.Fatalf("unexpected result: %s %v %v", production, consumed, err)
	}

	_, _, err = engine.Process(end)
	if err == nil {
		t.Errorf("expected error after accept")
	}
}

func TestEngineUnexpectedToken(t *testing.T) {
	table, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	// let ;
	engine := NewEngine(table)
	_, err = drive(engine, []*Token{keyword("let"), token(SemicolonToken)})
	if err == nil {
		t.Fatalf("expected error")
	}

	code, ok := diagnostic.CodeOf(err)
	if !ok || code != diagnostic.UnexpectedToken {
		t.Errorf("expected UnexpectedToken, found %v", err)
	}

	if engine.State() != 3 {
		t.Errorf("expected engine to remain in state 3, found %d", engine.State())
	}
}

func TestProductionNumbering(t *testing.T) {
	if ProductionFromReportRule(0) != AcceptProgram {
		t.Errorf("report rule 0 must map to the accept production")
	}

	if ReduceNilToReturnValue != Production(NumProductions) {
		t.Errorf("last production must be %d", NumProductions)
	}

	if ReduceCallToOperand.ReportRule() != 31 {
		t.Errorf("unexpected report rule %d", ReduceCallToOperand.ReportRule())
	}

	for p := AcceptProgram; p <= Production(NumProductions); p++ {
		if p.String()[0] == '?' {
			t.Errorf("production %d has no name", int(p))
		}
	}
}

func TestTokenString(t *testing.T) {
	cases := []struct {
		token    *Token
		expected string
	}{
		{keyword("let"), "<KEYWORD, let>"},
		{&Token{Kind: IdentifierToken, Int: 3}, "<IDENTIFIER, 3>"},
		{&Token{Kind: IntegerLiteralToken, Int: 32767}, "<INTEGER_LITERAL, 32767>"},
		{&Token{Kind: StringLiteralToken, Value: "hi"}, "<STRING_LITERAL, \"hi\">"},
		{token(SemicolonToken), "<SEMICOLON, >"},
		{token(PlusAssignToken), "<PLUS_ASSIGN, >"},
		{token(EndToken), "<END, >"},
	}

	for _, c := range cases {
		if c.token.String() != c.expected {
			t.Errorf("expected %s, found %s", c.expected, c.token)
		}
	}

	if keyword("while").Key() != "WHILE" {
		t.Errorf("unexpected keyword key %s", keyword("while").Key())
	}

	if token(EqualToken).Key() != "EQUAL" {
		t.Errorf("unexpected key %s", token(EqualToken).Key())
	}
}

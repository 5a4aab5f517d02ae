package lexer

import (
	"strings"
	"testing"

	"github.com/pattyshack/gt/parseutil"

	"github.com/pattyshack/wren/diagnostic"
	"github.com/pattyshack/wren/parser/lr"
	"github.com/pattyshack/wren/symtab"
)

type harness struct {
	*Lexer
	symbols *symtab.Manager
	pending *symtab.Pending
}

func newHarness() *harness {
	symbols := symtab.NewManager()
	pending := symtab.NewPending()
	return &harness{
		Lexer:   NewLexer(NewTokenGenerator(symbols, pending)),
		symbols: symbols,
		pending: pending,
	}
}

// lex feeds the whole source followed by EndOfInput.
func (h *harness) lex(source string) ([]*lr.Token, error) {
	tokens := []*lr.Token{}
	loc := parseutil.Location{FileName: "test", Line: 1, Column: 1}

	idx := 0
	for {
		char := EndOfInput
		if idx < len(source) {
			char = rune(source[idx])
		}

		token, consumed, err := h.Step(char, loc)
		if err != nil {
			return tokens, err
		}

		if token != nil {
			tokens = append(tokens, token)
			if token.Kind == lr.EndToken {
				return tokens, nil
			}
		}

		if consumed {
			idx++
			loc.Column++
			if char == '\n' {
				loc.Line++
				loc.Column = 1
			}
		}
	}
}

func tokenStrings(tokens []*lr.Token) []string {
	result := []string{}
	for _, token := range tokens {
		result = append(result, token.String())
	}
	return result
}

func TestLexDeclarationAndPut(t *testing.T) {
	tokens, err := newHarness().lex("let x int = 5; put x;")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	expected := []string{
		"<KEYWORD, let>",
		"<IDENTIFIER, 0>",
		"<KEYWORD, int>",
		"<ASSIGN, >",
		"<INTEGER_LITERAL, 5>",
		"<SEMICOLON, >",
		"<KEYWORD, put>",
		"<IDENTIFIER, 0>",
		"<SEMICOLON, >",
		"<END, >",
	}

	found := tokenStrings(tokens)
	if strings.Join(found, " ") != strings.Join(expected, " ") {
		t.Errorf("expected %v, found %v", expected, found)
	}
}

func TestLexOperators(t *testing.T) {
	tokens, err := newHarness().lex("a+=b==c+d=!e,(){};")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	expected := []lr.Kind{
		lr.IdentifierToken,
		lr.PlusAssignToken,
		lr.IdentifierToken,
		lr.EqualToken,
		lr.IdentifierToken,
		lr.PlusToken,
		lr.IdentifierToken,
		lr.AssignToken,
		lr.NotToken,
		lr.IdentifierToken,
		lr.CommaToken,
		lr.LparenToken,
		lr.RparenToken,
		lr.LbraceToken,
		lr.RbraceToken,
		lr.SemicolonToken,
		lr.EndToken,
	}

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, found %v", len(expected), tokenStrings(tokens))
	}

	for idx, token := range tokens {
		if token.Kind != expected[idx] {
			t.Errorf("%d: expected %s, found %s", idx, expected[idx], token.Kind)
		}
	}
}

func TestLexemesReconstructSource(t *testing.T) {
	source := "let s string = \"a b\";  // trailing comment\n" +
		"function f int (int a) {\n\treturn a+=1;\n}\nx == 10"

	tokens, err := newHarness().lex(source)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	builder := strings.Builder{}
	for _, token := range tokens {
		builder.WriteString(token.Lexeme)
	}

	expected := "letsstring=\"a b\";functionfint(inta){returna+=1;}x==10"
	if builder.String() != expected {
		t.Errorf("expected %q, found %q", expected, builder.String())
	}
}

func TestLexIdentifierPositions(t *testing.T) {
	tokens, err := newHarness().lex("a b a c")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	expected := []int{0, 1, 0, 2}
	for idx, position := range expected {
		if tokens[idx].Int != position {
			t.Errorf("%d: expected position %d, found %d", idx, position, tokens[idx].Int)
		}
	}
}

func TestLexLiteralLimits(t *testing.T) {
	cases := []struct {
		name   string
		source string
		code   diagnostic.Code // -1 for success
		value  string
	}{
		{"max integer", "32767", -1, "<INTEGER_LITERAL, 32767>"},
		{"integer overflow", "32768", diagnostic.IntegerOverflow, ""},
		{"huge integer", "99999999999999999999999", diagnostic.IntegerOverflow, ""},
		{
			"63 character string",
			"\"" + strings.Repeat("x", 63) + "\"",
			-1,
			"<STRING_LITERAL, \"" + strings.Repeat("x", 63) + "\">",
		},
		{
			"64 character string",
			"\"" + strings.Repeat("x", 64) + "\"",
			diagnostic.StringTooLong,
			"",
		},
		{
			"63 multi-byte character string",
			"\"" + strings.Repeat("é", 63) + "\"",
			-1,
			"<STRING_LITERAL, \"" + strings.Repeat("é", 63) + "\">",
		},
		{
			"64 multi-byte character string",
			"\"" + strings.Repeat("é", 64) + "\"",
			diagnostic.StringTooLong,
			"",
		},
		{"empty string", "\"\"", -1, "<STRING_LITERAL, \"\">"},
		{"string with newline", "\"a\nb\"", diagnostic.StringNewline, ""},
		{"unterminated string", "\"abc", diagnostic.UnterminatedString, ""},
		{"capitalized keyword", "Let", diagnostic.KeywordCase, ""},
		{"upper case keyword", "WHILE", diagnostic.KeywordCase, ""},
		{"keyword prefix", "lets", -1, "<IDENTIFIER, 0>"},
		{"malformed comment", "/x", diagnostic.MalformedComment, ""},
		{"comment at end of input", "// done", -1, "<END, >"},
		{"unexpected character", "#", diagnostic.UnexpectedCharacter, ""},
		{"non ascii identifier", "é", diagnostic.UnexpectedCharacter, ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tokens, err := newHarness().lex(c.source)
			if c.code == -1 {
				if err != nil {
					t.Fatalf("unexpected error: %s", err)
				}
				if tokens[0].String() != c.value {
					t.Errorf("expected %s, found %s", c.value, tokens[0])
				}
				return
			}

			if err == nil {
				t.Fatalf("expected error, found %v", tokenStrings(tokens))
			}

			code, ok := diagnostic.CodeOf(err)
			if !ok || code != c.code {
				t.Errorf("expected %s, found %v", c.code, err)
			}
		})
	}
}

func TestLexErrorLocation(t *testing.T) {
	_, err := newHarness().lex("let x int;\nlet y int = 40000;")
	if err == nil {
		t.Fatalf("expected error")
	}

	located, ok := err.(parseutil.Locatable)
	if !ok {
		t.Fatalf("expected locatable error, found %T", err)
	}

	if located.Loc().Line != 2 {
		t.Errorf("expected error on line 2, found %s", located.Loc())
	}
}

func TestLexDeclarationZone(t *testing.T) {
	h := newHarness()

	global := h.symbols.Resolve("x")
	h.symbols.OpenScope()

	tokens, err := h.lex("x; let x")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	// the first x refers to the global symbol, the declared x is local
	if h.symbols.Resolve("x") == global {
		t.Errorf("expected local x")
	}

	if tokens[0].Int != global.Position || tokens[3].Int != 0 {
		t.Errorf("unexpected positions %d %d", tokens[0].Int, tokens[3].Int)
	}

	if h.symbols.Declaration {
		t.Errorf("identifier must close the declaration zone")
	}
}

func TestDeferredIdentifiers(t *testing.T) {
	h := newHarness()
	loc := parseutil.Location{}

	steps := []struct {
		char   rune
		recent int
	}{
		{';', 0},
		{'x', 0},
		{' ', 0}, // identifier follows a terminator: deferred
		{'=', 0},
		{' ', 0}, // assign token itself does not flush
		{'1', 1},
	}

	for idx, step := range steps {
		_, _, err := h.Step(step.char, loc)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}

		if h.pending.NumRecent() != step.recent {
			t.Errorf(
				"step %d (%q): expected %d recent symbols, found %d",
				idx,
				step.char,
				step.recent,
				h.pending.NumRecent())
		}
	}

	if h.pending.NumUntyped() != 1 {
		t.Errorf("expected 1 untyped symbol, found %d", h.pending.NumUntyped())
	}
}

func TestStep(t *testing.T) {
	cases := []struct {
		state    State
		char     rune
		lexeme   string
		category Category
		next     State
		consumed bool
	}{
		{Start, ';', "", Semicolon, Start, true},
		{Start, ' ', "", Pending, Start, true},
		{Start, 'a', "", Pending, WordBody, true},
		{Start, EndOfInput, "", End, Start, true},
		{WordBody, '1', "a", Pending, WordBody, true},
		{WordBody, ' ', "if", Keyword, Start, false},
		{WordBody, '(', "iff", Identifier, Start, false},
		{WordBody, EndOfInput, "If", Keyword, Start, false},
		{DigitBody, ';', "12", Integer, Start, false},
		{EqualSeen, '=', "=", Equal, Start, true},
		{EqualSeen, 'x', "=", Assign, Start, false},
		{PlusSeen, '=', "+", PlusAssign, Start, true},
		{PlusSeen, '1', "+", Plus, Start, false},
		{CommentBody, '\n', "//", CommentEnd, Start, true},
		{CommentBody, 'x', "//", Pending, CommentBody, true},
		{StringBody, '"', "\"ab", String, Start, true},
	}

	for _, c := range cases {
		category, next, err := Step(c.state, c.char, c.lexeme)
		if err != nil {
			t.Errorf("%s %q: unexpected error: %s", c.state, c.char, err)
			continue
		}

		if category != c.category ||
			next != c.next ||
			category.Consumes() != c.consumed {

			t.Errorf(
				"%s %q: expected (%s, %s, %v), found (%s, %s, %v)",
				c.state,
				c.char,
				c.category,
				c.next,
				c.consumed,
				category,
				next,
				category.Consumes())
		}
	}
}

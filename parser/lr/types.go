package lr

import (
	"fmt"
	"strings"

	"github.com/pattyshack/gt/parseutil"
)

type Kind int

const (
	PlusToken = Kind(iota)
	PlusAssignToken
	AssignToken
	EqualToken
	NotToken
	CommaToken
	SemicolonToken
	LparenToken
	RparenToken
	LbraceToken
	RbraceToken
	KeywordToken
	IdentifierToken
	IntegerLiteralToken
	StringLiteralToken
	EndToken
)

var kinds = []struct {
	name string

	// How the grammar report spells the terminal.
	reportSymbol string
}{
	PlusToken:           {"PLUS", "'+'"},
	PlusAssignToken:     {"PLUS_ASSIGN", "ADD_OP"},
	AssignToken:         {"ASSIGN", "'='"},
	EqualToken:          {"EQUAL", "EQ_OP"},
	NotToken:            {"NOT", "'!'"},
	CommaToken:          {"COMMA", "','"},
	SemicolonToken:      {"SEMICOLON", "';'"},
	LparenToken:         {"LPAREN", "'('"},
	RparenToken:         {"RPAREN", "')'"},
	LbraceToken:         {"LBRACE", "'{'"},
	RbraceToken:         {"RBRACE", "'}'"},
	KeywordToken:        {"KEYWORD", ""},
	IdentifierToken:     {"IDENTIFIER", "ID"},
	IntegerLiteralToken: {"INTEGER_LITERAL", "INTEGER_LITERAL"},
	StringLiteralToken:  {"STRING_LITERAL", "STRING_LITERAL"},
	EndToken:            {"END", "$end"},
}

func (kind Kind) String() string {
	if kind < 0 || int(kind) >= len(kinds) {
		return fmt.Sprintf("?unknown kind %d?", int(kind))
	}
	return kinds[kind].name
}

// DefaultSymbol is the action table key used when a state has no entry for
// the lookahead.
const DefaultSymbol = "$DEFAULT"

// NormalizeTerminal maps a terminal as spelled by the grammar report to the
// action table key used by the engine.  Terminals that are not token kinds
// are reserved words and are upper-cased.
func NormalizeTerminal(symbol string) string {
	for _, kind := range kinds {
		if kind.reportSymbol != "" && strings.EqualFold(kind.reportSymbol, symbol) {
			return kind.name
		}
	}
	return strings.ToUpper(symbol)
}

// Token is an immutable lexical unit.  The attribute is Value for keywords
// (the reserved word) and string literals (the payload), and Int for integer
// literals (the value) and identifiers (the symbol's position within its
// scope).
type Token struct {
	parseutil.StartEndPos

	Kind Kind

	// Raw source text, including delimiters.
	Lexeme string

	Value string
	Int   int
}

// Key returns the action table key of the token.
func (token *Token) Key() string {
	if token.Kind == KeywordToken {
		return strings.ToUpper(token.Value)
	}
	return token.Kind.String()
}

func (token *Token) String() string {
	switch token.Kind {
	case KeywordToken:
		return fmt.Sprintf("<%s, %s>", token.Kind, token.Value)
	case IdentifierToken, IntegerLiteralToken:
		return fmt.Sprintf("<%s, %d>", token.Kind, token.Int)
	case StringLiteralToken:
		return fmt.Sprintf("<%s, \"%s\">", token.Kind, token.Value)
	default:
		return fmt.Sprintf("<%s, >", token.Kind)
	}
}

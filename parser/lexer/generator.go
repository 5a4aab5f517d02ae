package lexer

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pattyshack/gt/parseutil"
	"github.com/pattyshack/gt/stringutil"

	"github.com/pattyshack/wren/diagnostic"
	"github.com/pattyshack/wren/parser/lr"
	"github.com/pattyshack/wren/symtab"
)

const (
	MaxIntegerLiteral = 32767

	// Payload length limit in characters, excluding the quotes.
	MaxStringLiteralLength = 63
)

var (
	simpleKinds = map[Category]lr.Kind{
		End:        lr.EndToken,
		Not:        lr.NotToken,
		Comma:      lr.CommaToken,
		Semicolon:  lr.SemicolonToken,
		Lparen:     lr.LparenToken,
		Rparen:     lr.RparenToken,
		Lbrace:     lr.LbraceToken,
		Rbrace:     lr.RbraceToken,
		Equal:      lr.EqualToken,
		Assign:     lr.AssignToken,
		PlusAssign: lr.PlusAssignToken,
		Plus:       lr.PlusToken,
	}
)

// TokenGenerator validates finalized lexemes and materializes tokens.
// Identifiers are resolved against the symbol tables as they are seen.
type TokenGenerator struct {
	*stringutil.InternPool

	symbols *symtab.Manager
	pending *symtab.Pending

	// Identifiers seen right after a terminator or another identifier are
	// held back until the following token is generated.
	deferred          []*symtab.Symbol
	lastWasTerminator bool
}

func NewTokenGenerator(
	symbols *symtab.Manager,
	pending *symtab.Pending,
) *TokenGenerator {
	return &TokenGenerator{
		InternPool: stringutil.NewInternPool(),
		symbols:    symbols,
		pending:    pending,
	}
}

// Generate returns the token for a finalized lexeme, or nil for pending and
// comment categories.  lexeme is the complete token text.
func (gen *TokenGenerator) Generate(
	category Category,
	lexeme string,
	pos parseutil.StartEndPos,
) (
	*lr.Token,
	error,
) {
	var token *lr.Token
	var err error

	switch category {
	case Pending, CommentEnd:
	case Keyword:
		token, err = gen.keyword(lexeme, pos)
	case Identifier:
		token = gen.identifier(lexeme, pos)
	case Integer:
		token, err = gen.integer(lexeme, pos)
	case String:
		token, err = gen.stringLiteral(lexeme, pos)
	default:
		kind, ok := simpleKinds[category]
		if !ok {
			return nil, diagnostic.New(
				diagnostic.UnhandledState,
				pos.Loc(),
				"unhandled category %s",
				category)
		}
		token = &lr.Token{
			StartEndPos: pos,
			Kind:        kind,
			Lexeme:      lexeme,
		}
	}

	if err != nil {
		return nil, err
	}

	if !gen.lastWasTerminator {
		gen.flushDeferred()
	}

	if token != nil {
		gen.updateZones(token)
	}

	return token, nil
}

func (gen *TokenGenerator) keyword(
	lexeme string,
	pos parseutil.StartEndPos,
) (
	*lr.Token,
	error,
) {
	if lexeme != strings.ToLower(lexeme) {
		return nil, diagnostic.New(
			diagnostic.KeywordCase,
			pos.Loc(),
			"reserved word %s must be lowercase",
			lexeme)
	}

	value := gen.Intern(lexeme)
	return &lr.Token{
		StartEndPos: pos,
		Kind:        lr.KeywordToken,
		Lexeme:      value,
		Value:       value,
	}, nil
}

func (gen *TokenGenerator) identifier(
	lexeme string,
	pos parseutil.StartEndPos,
) *lr.Token {
	name := gen.Intern(lexeme)
	symbol := gen.symbols.Resolve(name)

	if gen.lastWasTerminator {
		gen.deferred = append(gen.deferred, symbol)
	} else {
		gen.pending.Note(symbol)
	}

	return &lr.Token{
		StartEndPos: pos,
		Kind:        lr.IdentifierToken,
		Lexeme:      name,
		Int:         symbol.Position,
	}
}

func (gen *TokenGenerator) integer(
	lexeme string,
	pos parseutil.StartEndPos,
) (
	*lr.Token,
	error,
) {
	value, err := strconv.Atoi(lexeme)
	if err != nil || value > MaxIntegerLiteral {
		return nil, diagnostic.New(
			diagnostic.IntegerOverflow,
			pos.Loc(),
			"integer literal %s exceeds %d",
			lexeme,
			MaxIntegerLiteral)
	}

	return &lr.Token{
		StartEndPos: pos,
		Kind:        lr.IntegerLiteralToken,
		Lexeme:      lexeme,
		Int:         value,
	}, nil
}

func (gen *TokenGenerator) stringLiteral(
	lexeme string,
	pos parseutil.StartEndPos,
) (
	*lr.Token,
	error,
) {
	payload := strings.TrimSuffix(strings.TrimPrefix(lexeme, "\""), "\"")

	length := utf8.RuneCountInString(payload)
	if length > MaxStringLiteralLength {
		return nil, diagnostic.New(
			diagnostic.StringTooLong,
			pos.Loc(),
			"string literal has %d characters (limit %d)",
			length,
			MaxStringLiteralLength)
	}

	if strings.Contains(payload, "\n") {
		return nil, diagnostic.New(diagnostic.StringNewline, pos.Loc(), "")
	}

	return &lr.Token{
		StartEndPos: pos,
		Kind:        lr.StringLiteralToken,
		Lexeme:      lexeme,
		Value:       gen.Intern(payload),
	}, nil
}

func (gen *TokenGenerator) flushDeferred() {
	for _, symbol := range gen.deferred {
		gen.pending.Note(symbol)
	}
	gen.deferred = gen.deferred[:0]
}

func (gen *TokenGenerator) updateZones(token *lr.Token) {
	if token.Kind == lr.KeywordToken && token.Value == "let" {
		gen.symbols.Declaration = true
	}

	if token.Kind == lr.SemicolonToken || token.Kind == lr.IdentifierToken {
		gen.lastWasTerminator = true
		gen.symbols.Declaration = false
	} else {
		gen.lastWasTerminator = false
	}
}

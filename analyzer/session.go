package analyzer

import (
	"io"

	"github.com/pattyshack/gt/parseutil"

	"github.com/pattyshack/wren/diagnostic"
	"github.com/pattyshack/wren/parser/lexer"
	"github.com/pattyshack/wren/parser/lr"
	"github.com/pattyshack/wren/symtab"
)

// Result holds everything a session produced.  On error, the result covers
// the input up to the failing token.
type Result struct {
	FileName string

	Tokens      []*lr.Token
	Productions []lr.Production

	// Closed scopes in closing order, and their rendered dump.
	Scopes       []*symtab.Scope
	SymbolTables string

	// The first error, if any.
	Err error
}

// Session analyzes a single source in one pass: each character is fed to
// the lexer, each token is fed to the parser, and each applied production is
// fed to the semantic engine.  Sessions share nothing except the read-only
// parse table.
type Session struct {
	parseutil.BufferedByteLocationReader

	symbols  *symtab.Manager
	lexer    *lexer.Lexer
	parser   *lr.Engine
	semantic *SemanticEngine

	result *Result
}

func NewSession(fileName string, content []byte, table *lr.Table) *Session {
	symbols := symtab.NewManager()
	pending := symtab.NewPending()

	return &Session{
		BufferedByteLocationReader: parseutil.NewBufferedByteLocationReaderFromSlice(
			fileName,
			content),
		symbols:  symbols,
		lexer:    lexer.NewLexer(lexer.NewTokenGenerator(symbols, pending)),
		parser:   lr.NewEngine(table),
		semantic: NewSemanticEngine(symbols, pending),
		result: &Result{
			FileName: fileName,
		},
	}
}

func (session *Session) peek() (rune, error) {
	peeked, err := session.Peek(1)
	if len(peeked) > 0 {
		return rune(peeked[0]), nil
	}

	if err == nil || err == io.EOF {
		return lexer.EndOfInput, nil
	}

	return 0, diagnostic.Wrap(diagnostic.IOFailure, session.Location, err)
}

// Run analyzes the source until the program is accepted or the first error.
func (session *Session) Run() (*Result, error) {
	err := session.run()

	session.result.Scopes = session.symbols.ClosedScopes()
	session.result.SymbolTables = session.symbols.Dump()
	session.result.Err = err
	return session.result, err
}

func (session *Session) run() error {
	for !session.parser.Accepted() {
		loc := session.Location

		char, err := session.peek()
		if err != nil {
			return err
		}

		token, consumed, err := session.lexer.Step(char, loc)
		if err != nil {
			return err
		}

		if token != nil {
			session.result.Tokens = append(session.result.Tokens, token)

			err = session.parse(token)
			if err != nil {
				return err
			}
		}

		if consumed && char != lexer.EndOfInput {
			_, err = session.Discard(1)
			if err != nil {
				return diagnostic.Wrap(diagnostic.IOFailure, loc, err)
			}
		}
	}

	return nil
}

// parse feeds the token to the parser until the token is consumed.
func (session *Session) parse(token *lr.Token) error {
	for {
		production, consumed, err := session.parser.Process(token)
		if err != nil {
			return err
		}

		if production != lr.NoProduction {
			session.result.Productions = append(
				session.result.Productions,
				production)

			err = session.semantic.Apply(production, token.Loc())
			if err != nil {
				return err
			}
		}

		if consumed {
			return nil
		}
	}
}

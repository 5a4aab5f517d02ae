package lexer

import (
	"github.com/pattyshack/gt/parseutil"

	"github.com/pattyshack/wren/parser/lr"
)

// Lexer drives the state machine one character at a time and applies the
// buffer policy: the buffer is cleared whenever the machine returns to Start,
// otherwise the current character is appended.
type Lexer struct {
	*TokenGenerator

	state  State
	buffer []byte

	// Location of the current lexeme's first character.
	start parseutil.Location
}

func NewLexer(generator *TokenGenerator) *Lexer {
	return &Lexer{
		TokenGenerator: generator,
		state:          Start,
	}
}

func (lexer *Lexer) State() State {
	return lexer.state
}

// Step feeds one character (a source byte or EndOfInput) at the given
// location.  It returns the completed token, if any, and whether the
// character was consumed.  An unconsumed character must be fed again.
func (lexer *Lexer) Step(
	char rune,
	loc parseutil.Location,
) (
	*lr.Token,
	bool,
	error,
) {
	if lexer.state == Start {
		lexer.start = loc
	}

	lexeme := string(lexer.buffer)
	category, next, stepErr := Step(lexer.state, char, lexeme)
	if stepErr != nil {
		stepErr.Location = loc
		return nil, false, stepErr
	}

	consumed := category.Consumes()
	if category.IsFinal() && consumed && char != EndOfInput {
		lexeme += string([]byte{byte(char)})
	}

	token, err := lexer.Generate(
		category,
		lexeme,
		parseutil.NewStartEndPos(lexer.start, loc))
	if err != nil {
		return nil, false, err
	}

	lexer.state = next
	if next == Start {
		lexer.buffer = lexer.buffer[:0]
	} else {
		lexer.buffer = append(lexer.buffer, byte(char))
	}

	return token, consumed, nil
}

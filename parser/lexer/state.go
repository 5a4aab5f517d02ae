package lexer

import (
	"fmt"
	"strings"

	"github.com/pattyshack/gt/parseutil"

	"github.com/pattyshack/wren/diagnostic"
)

// EndOfInput is fed to the state machine after the last character.
const EndOfInput = rune(-1)

var (
	keywords = map[string]struct{}{
		"boolean":  {},
		"function": {},
		"if":       {},
		"int":      {},
		"let":      {},
		"put":      {},
		"return":   {},
		"string":   {},
		"void":     {},
		"while":    {},
		"get":      {},
	}
)

type State int

const (
	Start = State(iota)
	CommentSlash
	CommentBody
	EqualSeen
	PlusSeen
	WordBody
	DigitBody
	StringBody
)

func (state State) String() string {
	switch state {
	case Start:
		return "Start"
	case CommentSlash:
		return "CommentSlash"
	case CommentBody:
		return "CommentBody"
	case EqualSeen:
		return "EqualSeen"
	case PlusSeen:
		return "PlusSeen"
	case WordBody:
		return "WordBody"
	case DigitBody:
		return "DigitBody"
	case StringBody:
		return "StringBody"
	default:
		return fmt.Sprintf("?unknown state %d?", int(state))
	}
}

// Category is the outcome of a single step.  Every category other than
// Pending finalizes a lexeme.
type Category int

const (
	Pending = Category(iota)
	CommentEnd
	End
	Not
	Comma
	Semicolon
	Lparen
	Rparen
	Lbrace
	Rbrace
	Equal
	Assign
	PlusAssign
	Plus
	Keyword
	Identifier
	Integer
	String
)

func (category Category) String() string {
	switch category {
	case Pending:
		return "Pending"
	case CommentEnd:
		return "CommentEnd"
	case End:
		return "End"
	case Not:
		return "Not"
	case Comma:
		return "Comma"
	case Semicolon:
		return "Semicolon"
	case Lparen:
		return "Lparen"
	case Rparen:
		return "Rparen"
	case Lbrace:
		return "Lbrace"
	case Rbrace:
		return "Rbrace"
	case Equal:
		return "Equal"
	case Assign:
		return "Assign"
	case PlusAssign:
		return "PlusAssign"
	case Plus:
		return "Plus"
	case Keyword:
		return "Keyword"
	case Identifier:
		return "Identifier"
	case Integer:
		return "Integer"
	case String:
		return "String"
	default:
		return fmt.Sprintf("?unknown category %d?", int(category))
	}
}

func (category Category) IsFinal() bool {
	return category != Pending
}

// Consumes reports whether the character that produced the category is part
// of the lexeme.  A character that is not consumed must be fed again as the
// start of the next lexeme.
func (category Category) Consumes() bool {
	switch category {
	case Plus, Assign, Keyword, Identifier, Integer:
		return false
	default:
		return true
	}
}

func isLetter(char rune) bool {
	return ('a' <= char && char <= 'z') ||
		('A' <= char && char <= 'Z') ||
		char == '_'
}

func isDigit(char rune) bool {
	return '0' <= char && char <= '9'
}

func isSpace(char rune) bool {
	switch char {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

func IsKeyword(word string) bool {
	_, ok := keywords[strings.ToLower(word)]
	return ok
}

func stepError(code diagnostic.Code, format string, args ...interface{}) *diagnostic.Error {
	return diagnostic.New(code, parseutil.Location{}, format, args...)
}

// Step is the transition function of the lexical state machine.  lexeme is
// the text buffered since the machine left Start, excluding char.  Each
// character is either a byte of the source or EndOfInput.
func Step(
	state State,
	char rune,
	lexeme string,
) (
	Category,
	State,
	*diagnostic.Error,
) {
	switch state {
	case Start:
		switch char {
		case EndOfInput:
			return End, Start, nil
		case '!':
			return Not, Start, nil
		case ',':
			return Comma, Start, nil
		case ';':
			return Semicolon, Start, nil
		case '(':
			return Lparen, Start, nil
		case ')':
			return Rparen, Start, nil
		case '{':
			return Lbrace, Start, nil
		case '}':
			return Rbrace, Start, nil
		case '/':
			return Pending, CommentSlash, nil
		case '+':
			return Pending, PlusSeen, nil
		case '=':
			return Pending, EqualSeen, nil
		case '"':
			return Pending, StringBody, nil
		}

		if isLetter(char) {
			return Pending, WordBody, nil
		}
		if isDigit(char) {
			return Pending, DigitBody, nil
		}
		if isSpace(char) {
			return Pending, Start, nil
		}

		return Pending, Start, stepError(
			diagnostic.UnexpectedCharacter,
			"unexpected character %q",
			char)
	case CommentSlash:
		if char == '/' {
			return Pending, CommentBody, nil
		}
		return Pending, Start, stepError(
			diagnostic.MalformedComment,
			"expected '/' after '/'")
	case CommentBody:
		if char == '\n' || char == EndOfInput {
			return CommentEnd, Start, nil
		}
		return Pending, CommentBody, nil
	case EqualSeen:
		if char == '=' {
			return Equal, Start, nil
		}
		return Assign, Start, nil
	case PlusSeen:
		if char == '=' {
			return PlusAssign, Start, nil
		}
		return Plus, Start, nil
	case WordBody:
		if isLetter(char) || isDigit(char) {
			return Pending, WordBody, nil
		}
		if IsKeyword(lexeme) {
			return Keyword, Start, nil
		}
		return Identifier, Start, nil
	case DigitBody:
		if isDigit(char) {
			return Pending, DigitBody, nil
		}
		return Integer, Start, nil
	case StringBody:
		if char == '"' {
			return String, Start, nil
		}
		if char == EndOfInput {
			return Pending, Start, stepError(diagnostic.UnterminatedString, "")
		}
		return Pending, StringBody, nil
	}

	return Pending, Start, stepError(
		diagnostic.UnhandledState,
		"unhandled state %s",
		state)
}

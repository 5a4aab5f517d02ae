package diagnostic

import (
	"fmt"
)

type Kind int

const (
	Lexical   = Kind(0)
	Syntactic = Kind(1)
	Semantic  = Kind(2)
	Generic   = Kind(3)
)

func (kind Kind) String() string {
	switch kind {
	case Lexical:
		return "lexical"
	case Syntactic:
		return "syntax"
	case Semantic:
		return "semantic"
	case Generic:
		return "generic"
	default:
		return fmt.Sprintf("?unknown kind %d?", int(kind))
	}
}

type Code int

const (
	// lexical
	UnexpectedCharacter = Code(iota)
	MalformedComment
	StringTooLong
	StringNewline
	UnterminatedString
	IntegerOverflow
	KeywordCase
	UnhandledState

	// syntactic
	UnexpectedToken
	MissingGrammar
	MalformedGrammar

	// semantic
	BooleanExpected
	TypeMismatch
	IncompatibleType
	UndeclaredFunction
	RedeclaredVariable
	ReturnTypeMismatch
	ParameterCountMismatch
	ParameterTypeMismatch
	UnimplementedRule
	InvalidSemanticState

	// generic
	IOFailure
)

type codeInfo struct {
	name        string
	kind        Kind
	description string
}

var codes = map[Code]codeInfo{
	UnexpectedCharacter: {
		"UnexpectedCharacter", Lexical,
		"character cannot start a token"},
	MalformedComment: {
		"MalformedComment", Lexical,
		"comments must start with //"},
	StringTooLong: {
		"StringTooLong", Lexical,
		"string literals are limited to 63 characters"},
	StringNewline: {
		"StringNewline", Lexical,
		"string literals cannot contain newlines"},
	UnterminatedString: {
		"UnterminatedString", Lexical,
		"string literal not terminated"},
	IntegerOverflow: {
		"IntegerOverflow", Lexical,
		"integer literals are limited to 32767"},
	KeywordCase: {
		"KeywordCase", Lexical,
		"reserved words must be lowercase"},
	UnhandledState: {
		"UnhandledState", Lexical,
		"lexer reached an unhandled state"},
	UnexpectedToken: {
		"UnexpectedToken", Syntactic,
		"no parser action for token"},
	MissingGrammar: {
		"MissingGrammar", Syntactic,
		"grammar table report cannot be read"},
	MalformedGrammar: {
		"MalformedGrammar", Syntactic,
		"grammar table report is malformed"},
	BooleanExpected: {
		"BooleanExpected", Semantic,
		"condition must be boolean"},
	TypeMismatch: {
		"TypeMismatch", Semantic,
		"operand types do not match"},
	IncompatibleType: {
		"IncompatibleType", Semantic,
		"type is not allowed here"},
	UndeclaredFunction: {
		"UndeclaredFunction", Semantic,
		"call to undeclared function"},
	RedeclaredVariable: {
		"RedeclaredVariable", Semantic,
		"identifier already declared"},
	ReturnTypeMismatch: {
		"ReturnTypeMismatch", Semantic,
		"returned type does not match function return type"},
	ParameterCountMismatch: {
		"ParameterCountMismatch", Semantic,
		"wrong number of arguments"},
	ParameterTypeMismatch: {
		"ParameterTypeMismatch", Semantic,
		"argument type does not match parameter type"},
	UnimplementedRule: {
		"UnimplementedRule", Semantic,
		"no semantic action for rule"},
	InvalidSemanticState: {
		"InvalidSemanticState", Semantic,
		"semantic analyzer reached an invalid state"},
	IOFailure: {
		"IOFailure", Generic,
		"input/output failure"},
}

func (code Code) String() string {
	info, ok := codes[code]
	if !ok {
		return fmt.Sprintf("?unknown code %d?", int(code))
	}
	return info.name
}

func (code Code) Kind() Kind {
	info, ok := codes[code]
	if !ok {
		return Generic
	}
	return info.kind
}

func (code Code) Description() string {
	return codes[code].description
}

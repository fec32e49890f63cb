package parser

import (
	"fmt"
	"imvault/util"
	"strings"
)

// MalformedQueryError is returned for every query string that can't be turned into complete field comparisons. The
// parser never returns partial results together with this error.
type MalformedQueryError struct {
	Message  string `json:"message"`
	Position int    `json:"position"`
	Fragment string `json:"fragment"`
	stack    util.Stack
}

func MalformedQueryErrorUnterminatedQuote(position int, quote rune, fragment string) *MalformedQueryError {
	return &MalformedQueryError{
		Message:  fmt.Sprintf("Malformed query: Quote %c opened at position %d is never closed.", quote, position),
		Position: position,
		Fragment: fragment,
		stack:    util.CurrentStack(),
	}
}

func MalformedQueryErrorMissingField(position int, operator string) *MalformedQueryError {
	return &MalformedQueryError{
		Message:  fmt.Sprintf("Malformed query: Expected field name before operator '%s' at position %d.", operator, position),
		Position: position,
		Fragment: operator,
		stack:    util.CurrentStack(),
	}
}

func MalformedQueryErrorIncompleteComparison(position int, token []*Token) *MalformedQueryError {
	var lexemes []string
	for _, t := range token {
		lexemes = append(lexemes, t.lexeme)
	}
	fragment := strings.Join(lexemes, " ")

	return &MalformedQueryError{
		Message:  fmt.Sprintf("Malformed query: Incomplete comparison '%s' at position %d, expected field, operator and value.", fragment, position),
		Position: position,
		Fragment: fragment,
		stack:    util.CurrentStack(),
	}
}

func MalformedQueryErrorExpectedTokenKind(position int, currentLexeme string, currentKind TokenKind, expectedKind TokenKind) *MalformedQueryError {
	return &MalformedQueryError{
		Message:  fmt.Sprintf("Malformed query: Expected %s at position %d but found '%s' of kind %s.", expectedKind.Lexeme(), position, currentLexeme, currentKind.String()),
		Position: position,
		Fragment: currentLexeme,
		stack:    util.CurrentStack(),
	}
}

func (e *MalformedQueryError) Format(s fmt.State, verb rune) {
	util.FormatWithStack(s, verb, e.Error(), e.stack)
}

func (e *MalformedQueryError) Error() string {
	return e.Message
}

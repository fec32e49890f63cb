package parser

import (
	"fmt"
)

type TokenKind int

const (
	TokenKindUnknown TokenKind = iota

	TokenKindField
	TokenKindOperator
	TokenKindValue
)

func (k TokenKind) String() string {
	switch k {
	case TokenKindUnknown:
		return "TokenKindUnknown"
	case TokenKindField:
		return "TokenKindField"
	case TokenKindOperator:
		return "TokenKindOperator"
	case TokenKindValue:
		return "TokenKindValue"
	}
	return fmt.Sprintf("!! INVALID TOKEN KIND %d !!", k)
}

func (k TokenKind) Lexeme() string {
	switch k {
	case TokenKindUnknown:
		return "UNKNOWN"
	case TokenKindField:
		return "field name"
	case TokenKindOperator:
		return "operator"
	case TokenKindValue:
		return "value"
	}
	return fmt.Sprintf("!! INVALID TOKEN KIND %d !!", k)
}

type Token struct {
	kind          TokenKind
	lexeme        string
	startPosition int
}

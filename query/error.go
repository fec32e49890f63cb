package query

import (
	"fmt"
	"imvault/util"
)

// UnsupportedOperatorError is returned when a symbol or name does not belong to any known operator.
type UnsupportedOperatorError struct {
	Message  string `json:"message"`
	Operator string `json:"operator"`
	stack    util.Stack
}

func UnsupportedOperatorErrorForSymbol(symbol string) *UnsupportedOperatorError {
	return &UnsupportedOperatorError{
		Message:  fmt.Sprintf("Unsupported operator symbol '%s'.", symbol),
		Operator: symbol,
		stack:    util.CurrentStack(),
	}
}

func UnsupportedOperatorErrorForName(name string) *UnsupportedOperatorError {
	return &UnsupportedOperatorError{
		Message:  fmt.Sprintf("Unsupported operator name '%s'.", name),
		Operator: name,
		stack:    util.CurrentStack(),
	}
}

func (e *UnsupportedOperatorError) Format(s fmt.State, verb rune) {
	util.FormatWithStack(s, verb, e.Error(), e.stack)
}

func (e *UnsupportedOperatorError) Error() string {
	return e.Message
}

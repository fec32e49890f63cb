package query

import (
	"encoding/json"
	"fmt"
	"github.com/pkg/errors"
)

type Operator int

const (
	OpInvalid Operator = iota
	OpEqual
	OpNotEqual
	OpLower
	OpLowerEqual
	OpGreater
	OpGreaterEqual
	OpLike
)

// MaxOperatorSymbolLength is the length in runes of the longest operator symbol. Lexers must try symbols of this length
// first so that e.g. ">=" is never read as ">" followed by "=".
const MaxOperatorSymbolLength = 2

var operators = []Operator{OpEqual, OpNotEqual, OpLower, OpLowerEqual, OpGreater, OpGreaterEqual, OpLike}

var operatorsBySymbol = func() map[string]Operator {
	result := make(map[string]Operator, len(operators))
	for _, o := range operators {
		result[o.Symbol()] = o
	}
	return result
}()

// Symbol returns the textual form used in query strings, e.g. ">=".
func (o Operator) Symbol() string {
	switch o {
	case OpEqual:
		return "="
	case OpNotEqual:
		return "!="
	case OpLower:
		return "<"
	case OpLowerEqual:
		return "<="
	case OpGreater:
		return ">"
	case OpGreaterEqual:
		return ">="
	case OpLike:
		return ":"
	}
	return fmt.Sprintf("[!UNKNOWN Operator %d]", o)
}

// Name returns the canonical name the Vault API expects, e.g. "GE".
func (o Operator) Name() string {
	switch o {
	case OpEqual:
		return "EQ"
	case OpNotEqual:
		return "NE"
	case OpLower:
		return "LT"
	case OpLowerEqual:
		return "LE"
	case OpGreater:
		return "GT"
	case OpGreaterEqual:
		return "GE"
	case OpLike:
		return "LIKE"
	}
	return fmt.Sprintf("[!UNKNOWN Operator %d]", o)
}

func (o Operator) String() string {
	return o.Name()
}

func (o Operator) IsValid() bool {
	return o > OpInvalid && o <= OpLike
}

// IsOperatorSymbol is called by lexers for nearly every rune of a query and must not allocate.
func IsOperatorSymbol(symbol string) bool {
	_, ok := operatorsBySymbol[symbol]
	return ok
}

func OperatorForSymbol(symbol string) (Operator, error) {
	operator, ok := operatorsBySymbol[symbol]
	if !ok {
		return OpInvalid, UnsupportedOperatorErrorForSymbol(symbol)
	}
	return operator, nil
}

func OperatorForName(name string) (Operator, error) {
	for _, o := range operators {
		if o.Name() == name {
			return o, nil
		}
	}
	return OpInvalid, UnsupportedOperatorErrorForName(name)
}

func (o Operator) MarshalJSON() ([]byte, error) {
	if !o.IsValid() {
		return nil, UnsupportedOperatorErrorForName(o.Name())
	}
	return json.Marshal(o.Name())
}

func (o *Operator) UnmarshalJSON(data []byte) error {
	var name string
	err := json.Unmarshal(data, &name)
	if err != nil {
		return errors.Wrapf(err, "Operator must be a JSON string but was %s", string(data))
	}

	operator, err := OperatorForName(name)
	if err != nil {
		return err
	}

	*o = operator
	return nil
}

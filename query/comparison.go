package query

import "fmt"

// FieldComparison is one "field operator value" constraint, e.g. name="Joe Starr".
type FieldComparison struct {
	Field    string   `json:"field"`
	Operator Operator `json:"operator"`
	Value    string   `json:"value"`
}

func NewFieldComparison(field string, operator Operator, value string) FieldComparison {
	return FieldComparison{
		Field:    field,
		Operator: operator,
		Value:    value,
	}
}

func (c FieldComparison) String() string {
	return fmt.Sprintf("%s %s %q", c.Field, c.Operator.Name(), c.Value)
}

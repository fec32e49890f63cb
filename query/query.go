package query

// Query is the body of the "query" property of search, count and replace requests.
type Query struct {
	Expressions []Expression `json:"expressions,omitempty"`
	OrderBy     []OrderBy    `json:"orderBy,omitempty"`
}

// Expression holds comparisons which all must match. The Vault combines multiple expressions with OR.
type Expression struct {
	FieldComparisons []FieldComparison `json:"fieldComparisons"`
}

type OrderBy struct {
	Field string `json:"field"`
	Desc  bool   `json:"desc"`
}

// NewQuery creates a query with one expression containing the given comparisons in their given order. Without any
// comparison, the query has no expressions and therefore matches all documents.
func NewQuery(comparisons []FieldComparison) *Query {
	q := &Query{}
	if len(comparisons) > 0 {
		q.Expressions = []Expression{{FieldComparisons: comparisons}}
	}
	return q
}

func (q *Query) OrderedBy(field string, desc bool) *Query {
	q.OrderBy = append(q.OrderBy, OrderBy{Field: field, Desc: desc})
	return q
}

// Comparisons returns all comparisons of all expressions in order.
func (q *Query) Comparisons() []FieldComparison {
	var result []FieldComparison
	for _, expression := range q.Expressions {
		result = append(result, expression.FieldComparisons...)
	}
	return result
}

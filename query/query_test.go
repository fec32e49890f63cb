package query

import (
	"encoding/json"
	"imvault/util"
	"testing"
)

func TestQuery_jsonLayout(t *testing.T) {
	// Arrange
	q := NewQuery([]FieldComparison{
		NewFieldComparison("id", OpGreaterEqual, "10"),
		NewFieldComparison("name", OpLike, "^Joe"),
	}).OrderedBy("name", true)

	// Act
	data, err := json.Marshal(q)

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, `{"expressions":[{"fieldComparisons":[{"field":"id","operator":"GE","value":"10"},{"field":"name","operator":"LIKE","value":"^Joe"}]}],"orderBy":[{"field":"name","desc":true}]}`, string(data))
}

func TestQuery_withoutComparisons(t *testing.T) {
	// Act
	q := NewQuery(nil)
	data, err := json.Marshal(q)

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, `{}`, string(data))
	util.AssertEqual(t, 0, len(q.Comparisons()))
}

func TestQuery_decodeKeepsOrder(t *testing.T) {
	// Arrange
	input := `{"expressions":[{"fieldComparisons":[{"field":"b","operator":"NE","value":"2"},{"field":"a","operator":"EQ","value":"1"}]}]}`

	// Act
	var q Query
	err := json.Unmarshal([]byte(input), &q)

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, []FieldComparison{
		NewFieldComparison("b", OpNotEqual, "2"),
		NewFieldComparison("a", OpEqual, "1"),
	}, q.Comparisons())
}

func TestFieldComparison_string(t *testing.T) {
	// Act & Assert
	util.AssertEqual(t, `name EQ "Joe Starr"`, NewFieldComparison("name", OpEqual, "Joe Starr").String())
}

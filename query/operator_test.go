package query

import (
	"encoding/json"
	"imvault/util"
	"testing"
)

func TestOperator_symbolsAndNames(t *testing.T) {
	// Arrange
	expected := map[Operator][2]string{
		OpEqual:        {"=", "EQ"},
		OpNotEqual:     {"!=", "NE"},
		OpLower:        {"<", "LT"},
		OpLowerEqual:   {"<=", "LE"},
		OpGreater:      {">", "GT"},
		OpGreaterEqual: {">=", "GE"},
		OpLike:         {":", "LIKE"},
	}

	// Act & Assert
	util.AssertEqual(t, len(expected), len(operators))
	for operator, symbolAndName := range expected {
		util.AssertEqual(t, symbolAndName[0], operator.Symbol())
		util.AssertEqual(t, symbolAndName[1], operator.Name())
		util.AssertTrue(t, operator.IsValid())
	}
}

func TestOperator_operatorForSymbol(t *testing.T) {
	// Act
	operator, err := OperatorForSymbol(">=")

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, OpGreaterEqual, operator)
}

func TestOperator_operatorForSymbol_unknownSymbol(t *testing.T) {
	// Act
	operator, err := OperatorForSymbol("=>")

	// Assert
	util.AssertEqual(t, OpInvalid, operator)
	unsupportedErr := util.AssertErrorAs[*UnsupportedOperatorError](t, err)
	util.AssertEqual(t, "=>", unsupportedErr.Operator)
	util.AssertError(t, "Unsupported operator symbol '=>'.", err)
}

func TestOperator_operatorForName(t *testing.T) {
	// Act
	operator, err := OperatorForName("LIKE")

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, OpLike, operator)

	// Act
	operator, err = OperatorForName("like")

	// Assert
	util.AssertEqual(t, OpInvalid, operator)
	util.AssertError(t, "Unsupported operator name 'like'.", err)
}

func TestOperator_isOperatorSymbol(t *testing.T) {
	// Act & Assert
	util.AssertTrue(t, IsOperatorSymbol("!="))
	util.AssertTrue(t, IsOperatorSymbol(":"))
	util.AssertFalse(t, IsOperatorSymbol("!"))
	util.AssertFalse(t, IsOperatorSymbol("=="))
	util.AssertFalse(t, IsOperatorSymbol(""))
}

func TestOperator_isOperatorSymbol_noAllocations(t *testing.T) {
	// Act
	allocations := testing.AllocsPerRun(100, func() {
		IsOperatorSymbol("na")
		IsOperatorSymbol("n")
		IsOperatorSymbol(">=")
	})

	// Assert
	util.AssertEqual(t, float64(0), allocations)
}

func TestOperator_invalidOperator(t *testing.T) {
	// Act & Assert
	util.AssertFalse(t, OpInvalid.IsValid())
	util.AssertFalse(t, Operator(42).IsValid())
	util.AssertEqual(t, "[!UNKNOWN Operator 42]", Operator(42).Symbol())

	_, err := json.Marshal(OpInvalid)
	util.AssertNotNil(t, err)
}

func TestOperator_jsonUsesCanonicalName(t *testing.T) {
	// Act
	data, err := json.Marshal(OpNotEqual)

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, `"NE"`, string(data))

	// Act
	var operator Operator
	err = json.Unmarshal([]byte(`"LE"`), &operator)

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, OpLowerEqual, operator)
}

func TestOperator_unmarshalUnknownName(t *testing.T) {
	// Arrange
	var operator Operator

	// Act
	err := json.Unmarshal([]byte(`"BETWEEN"`), &operator)

	// Assert
	util.AssertErrorAs[*UnsupportedOperatorError](t, err)
	util.AssertEqual(t, OpInvalid, operator)

	// Act
	err = json.Unmarshal([]byte(`3`), &operator)

	// Assert
	util.AssertErrorContains(t, "Operator must be a JSON string", err)
}

package vault

import (
	"encoding/json"
	"imvault/util"
	"testing"
)

func TestID_unmarshalStringAndNumber(t *testing.T) {
	tests := map[string]ID{
		`"57"`: 57,
		`57`:   57,
		`"0"`:  0,
		`null`: 0,
	}

	for input, expected := range tests {
		t.Run(input, func(t *testing.T) {
			// Arrange
			var id ID

			// Act
			err := json.Unmarshal([]byte(input), &id)

			// Assert
			util.AssertNil(t, err)
			util.AssertEqual(t, expected, id)
		})
	}
}

func TestID_unmarshalInvalid(t *testing.T) {
	for _, input := range []string{`"abc"`, `1.5`, `true`, `""`} {
		t.Run(input, func(t *testing.T) {
			// Arrange
			var id ID

			// Act
			err := json.Unmarshal([]byte(input), &id)

			// Assert
			util.AssertErrorContains(t, "ID must be an integer", err)
		})
	}
}

func TestID_marshalsAsNumber(t *testing.T) {
	// Act
	data, err := json.Marshal(ReplaceDocumentResponse{TransactionID: 57, DocumentID: "abc", Revision: 4})

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, `{"transactionId":57,"documentId":"abc","revision":4}`, string(data))
}

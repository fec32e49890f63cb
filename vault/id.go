package vault

import (
	"bytes"
	"encoding/json"
	"github.com/pkg/errors"
	"strconv"
)

// ID is a transaction ID or revision number. The Vault encodes them as JSON strings in some responses and as numbers in
// others, both are accepted.
type ID int64

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var idString string
		err := json.Unmarshal(data, &idString)
		if err != nil {
			return errors.Wrapf(err, "Unable to read ID %s", string(data))
		}
		data = []byte(idString)
	}

	value, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return errors.Wrapf(err, "ID must be an integer but was %s", string(data))
	}

	*id = ID(value)
	return nil
}

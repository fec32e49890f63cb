package vault

import (
	"encoding/json"
	"fmt"
	"github.com/pkg/errors"
	"imvault/util"
)

// ErrInvalidOptions is wrapped by all errors about options which are rejected before any request is sent.
var ErrInvalidOptions = errors.New("invalid options")

// ResponseError is returned for every response with an HTTP status of 400 or above.
type ResponseError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    string `json:"data"`
	stack   util.Stack
}

// NewResponseError takes the message from the "message" property of a JSON body and uses the raw body otherwise.
func NewResponseError(status int, body []byte) *ResponseError {
	message := string(body)

	var errorBody struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &errorBody) == nil && errorBody.Message != "" {
		message = errorBody.Message
	}

	return &ResponseError{
		Status:  status,
		Message: message,
		Data:    string(body),
		stack:   util.CurrentStack(),
	}
}

func (e *ResponseError) Format(s fmt.State, verb rune) {
	util.FormatWithStack(s, verb, e.Error(), e.stack)
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("Vault responded with HTTP status %d: '%s'", e.Status, e.Message)
}

package api

import (
	"errors"
	"fmt"
)

// GenericMessage is shown when a failure carries no usable remote message,
// so raw transport errors never reach the user.
const GenericMessage = "something went wrong, please try again"

// Error is a non-2xx response from the marketplace API. Message is the
// remote body's message verbatim when one was present, otherwise a generic
// fallback.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("marketplace api: status %d: %s", e.Status, e.Message)
}

// UserMessage maps any error from the client to the string a view should
// display: remote messages pass through, everything else collapses to the
// generic fallback.
func UserMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return GenericMessage
}

// remoteBody is the shape of API error payloads. Some endpoints use
// "message", others "error".
type remoteBody struct {
	Message string `json:"message"`
	Err     string `json:"error"`
}

func (b remoteBody) text() string {
	if b.Message != "" {
		return b.Message
	}
	return b.Err
}

package chat

import "fmt"

// Error is a chat failure with an HTTP status. Chat responses carry a plain
// message without a machine-readable code.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func newChatNotFoundError() *Error {
	return &Error{Status: 404, Message: "Chat not found"}
}

func newBookingNotFoundError() *Error {
	return &Error{Status: 404, Message: "Booking not found"}
}

func newInternalError(message string) *Error {
	return &Error{Status: 500, Message: message}
}

package booking

import "fmt"

// Error codes surfaced in the "error" field of failure responses.
const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeInvalidStatus   = "INVALID_STATUS"
	CodePropertyMissing = "PROPERTY_NOT_FOUND"
	CodeBookingMissing  = "BOOKING_NOT_FOUND"
	CodeAccessDenied    = "ACCESS_DENIED"
	CodeInternal        = "INTERNAL_SERVER_ERROR"
)

// Error is a booking failure with an HTTP status and a machine-readable code.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newValidationError(message string) *Error {
	return &Error{Status: 400, Code: CodeValidation, Message: message}
}

func newInvalidStatusError() *Error {
	return &Error{Status: 400, Code: CodeInvalidStatus, Message: "Invalid status"}
}

func newPropertyNotFoundError() *Error {
	return &Error{Status: 404, Code: CodePropertyMissing, Message: "Property not found"}
}

func newBookingNotFoundError() *Error {
	return &Error{Status: 404, Code: CodeBookingMissing, Message: "Booking not found"}
}

func newAccessDeniedError() *Error {
	return &Error{Status: 403, Code: CodeAccessDenied, Message: "Access denied"}
}

func newInternalError(message string) *Error {
	return &Error{Status: 500, Code: CodeInternal, Message: message}
}

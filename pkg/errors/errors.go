package errors

import "fmt"

// HTTPError is an error that carries the HTTP status code it should be
// rendered with. Delivery layers map domain errors into these; anything
// else surfaces as a 500.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

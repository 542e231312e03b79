package chat

import "fmt"

// Error classes reported in logs and the X-Error-Type header.
const (
	ClassClient  = "client"
	ClassServer  = "server"
	ClassNetwork = "network"
)

// Error carries an HTTP status and a coarse class alongside the
// message surfaced to the caller. The top-level handler translates
// every failure into one of these.
type Error struct {
	Status  int
	Class   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds a classified error.
func NewError(status int, class, message string, err error) *Error {
	return &Error{Status: status, Class: class, Message: message, Err: err}
}

package routes

import (
	"errors"
	"fmt"
)

// TransportError indicates the per-namespace route query itself failed
// (API error, network failure, timeout). It is contained to its namespace:
// the run continues and the namespace is reported with no routes.
type TransportError struct {
	Namespace string
	Err       error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("fetching routes in namespace %q: %v", e.Namespace, e.Err)
}

// Unwrap returns the wrapped error
func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError indicates the route payload for a namespace was malformed.
// Like TransportError it is contained to its namespace.
type ParseError struct {
	Namespace string
	Reason    string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed route payload in namespace %q: %s", e.Namespace, e.Reason)
}

// IsTransportError reports whether err is a per-namespace transport failure
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsParseError reports whether err is a per-namespace payload failure
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

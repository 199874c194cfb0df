package util

import (
	"errors"
	"fmt"
)

// Common error types for the routeaudit CLI
var (
	// ErrNamespaceListing indicates the namespace enumeration query failed.
	// This is the only run-fatal error class: without the namespace set there
	// is nothing to audit.
	ErrNamespaceListing = errors.New("namespace listing failed")

	// ErrNoNamespaces indicates the control plane returned zero namespaces
	ErrNoNamespaces = errors.New("no namespaces found")

	// ErrConnectionFailed indicates the cluster connection could not be established
	ErrConnectionFailed = errors.New("connection failed")

	// ErrTimeout indicates an operation timed out
	ErrTimeout = errors.New("operation timed out")
)

// NamespaceError wraps an error with the namespace it occurred in
type NamespaceError struct {
	Namespace string
	Err       error
}

// Error implements the error interface
func (e *NamespaceError) Error() string {
	return fmt.Sprintf("namespace %q: %v", e.Namespace, e.Err)
}

// Unwrap returns the wrapped error for errors.Is/As compatibility
func (e *NamespaceError) Unwrap() error {
	return e.Err
}

// WrapNamespaceError wraps an error with namespace context
func WrapNamespaceError(namespace string, err error) error {
	if err == nil {
		return nil
	}
	return &NamespaceError{
		Namespace: namespace,
		Err:       err,
	}
}

// IsListingFailure reports whether err is a run-fatal namespace listing failure
func IsListingFailure(err error) bool {
	return errors.Is(err, ErrNamespaceListing)
}

// IsTimeout reports whether err is a timeout error
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// FriendlyError converts technical errors to user-friendly messages
func FriendlyError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrNamespaceListing):
		return "Failed to list namespaces. Please check your kubeconfig and cluster connectivity."
	case errors.Is(err, ErrNoNamespaces):
		return "No namespaces found. Nothing to audit."
	case errors.Is(err, ErrConnectionFailed):
		return "Failed to connect to the cluster. Please check your kubeconfig and network connectivity."
	case IsTimeout(err):
		return "Operation timed out. Please try again or increase the timeout value with --timeout."
	default:
		return err.Error()
	}
}

// WrapErrorf wraps an error with a formatted message
func WrapErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

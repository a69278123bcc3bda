package countries

import "fmt"

// ValidationError reports unusable search input, raised before any request
// is made.
type ValidationError struct {
	Message string
}

// NewValidationError constructs a ValidationError.
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// NotFoundError means the service knows no country by the searched name.
type NotFoundError struct {
	Name string
}

// NewNotFoundError constructs a NotFoundError for the searched term.
func NewNotFoundError(name string) error {
	return &NotFoundError{Name: name}
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("no country found for %q, check the spelling and try again", e.Name)
}

// APIError captures a non-404 failure status from the service.
type APIError struct {
	StatusCode int
	Status     string
}

// NewAPIError constructs an APIError from the response status.
func NewAPIError(statusCode int, status string) error {
	return &APIError{StatusCode: statusCode, Status: status}
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	if e.Status != "" {
		return fmt.Sprintf("country service request failed: %s", e.Status)
	}
	return fmt.Sprintf("country service request failed with status %d", e.StatusCode)
}

// EmptyResultError means the service answered successfully but the match
// list was empty.
type EmptyResultError struct {
	Name string
}

// NewEmptyResultError constructs an EmptyResultError for the searched term.
func NewEmptyResultError(name string) error {
	return &EmptyResultError{Name: name}
}

func (e *EmptyResultError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("the country service returned no matches for %q", e.Name)
}

// NetworkError wraps a transport-level failure reaching the service.
type NetworkError struct {
	Err error
}

// NewNetworkError constructs a NetworkError.
func NewNetworkError(err error) error {
	return &NetworkError{Err: err}
}

func (e *NetworkError) Error() string {
	if e == nil {
		return ""
	}
	return "unable to reach the country service, check your internet connection and try again"
}

// Unwrap exposes the underlying transport error.
func (e *NetworkError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

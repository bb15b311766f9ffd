package domain

import "net/http"

// ErrorKind classifies gateway failures so handlers and tests can branch on
// the class of error instead of matching message strings.
type ErrorKind string

const (
	// KindValidation indicates required caller input was missing or malformed.
	KindValidation ErrorKind = "validation"
	// KindAuthentication indicates no usable credential could be resolved.
	KindAuthentication ErrorKind = "authentication"
	// KindNotFound indicates the upstream reported the entity does not exist.
	KindNotFound ErrorKind = "not_found"
	// KindUpstream indicates the upstream was reachable but returned an error.
	KindUpstream ErrorKind = "upstream"
	// KindNetwork indicates the call to the upstream itself failed.
	KindNetwork ErrorKind = "network"
	// KindConfiguration indicates a required server-side secret is absent.
	KindConfiguration ErrorKind = "configuration"
)

// Error is the closed error type returned by every service and adapter.
type Error struct {
	Kind    ErrorKind
	Message string
	Details string
	// Status overrides the kind's default HTTP status when non-zero.
	// Used by brokerage data calls which pass the upstream status through.
	Status int
}

func (e *Error) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// HTTPStatus maps the error to the response status code.
func (e *Error) HTTPStatus() int {
	if e.Status != 0 {
		return e.Status
	}
	switch e.Kind {
	case KindValidation, KindConfiguration:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// WithStatus returns a copy of the error carrying an explicit status code.
func (e *Error) WithStatus(status int) *Error {
	clone := *e
	clone.Status = status
	return &clone
}

// NewValidation reports missing or malformed caller input.
func NewValidation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewAuthentication reports an unresolvable credential.
func NewAuthentication(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message}
}

// NewNotFound reports an upstream "no such entity" signal.
func NewNotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// NewUpstream reports an error status or payload from a reachable upstream.
func NewUpstream(message, details string) *Error {
	return &Error{Kind: KindUpstream, Message: message, Details: details}
}

// NewNetwork reports a failed call to an upstream (DNS, timeout, reset).
func NewNetwork(message string, cause error) *Error {
	details := ""
	if cause != nil {
		details = cause.Error()
	}
	return &Error{Kind: KindNetwork, Message: message, Details: details}
}

// NewConfiguration reports a missing server-side secret or key.
func NewConfiguration(message string) *Error {
	return &Error{Kind: KindConfiguration, Message: message}
}

package domain

import "fmt"

// InvalidParameterError reports a request field whose value cannot be accepted.
type InvalidParameterError struct {
	Field  string
	Reason string
}

// NewInvalidParameterError creates an InvalidParameterError for the given field.
func NewInvalidParameterError(field, reason string) *InvalidParameterError {
	return &InvalidParameterError{Field: field, Reason: reason}
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Field, e.Reason)
}

// UnsupportedProfileError reports a routing profile that cannot serve a request.
type UnsupportedProfileError struct {
	Profile string
	Reason  string
}

// NewUnsupportedProfileError creates an UnsupportedProfileError.
func NewUnsupportedProfileError(profile, reason string) *UnsupportedProfileError {
	return &UnsupportedProfileError{Profile: profile, Reason: reason}
}

func (e *UnsupportedProfileError) Error() string {
	return fmt.Sprintf("profile %q is not supported: %s", e.Profile, e.Reason)
}

// NotFoundError reports a missing entity in a repository.
type NotFoundError struct {
	Entity string
	ID     string
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

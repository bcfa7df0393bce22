package utils

import "fmt"

// NotFoundError means the referenced record does not exist or is soft-deleted.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func NewNotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

// ConflictError means a precondition of the requested operation was violated
// (table not occupied, cart empty, amount mismatch, duplicate payment, ...).
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

func NewConflict(format string, args ...interface{}) error {
	return &ConflictError{Reason: fmt.Sprintf(format, args...)}
}

// InvalidStateError means an illegal state-machine edge was requested.
type InvalidStateError struct {
	Entity string
	From   string
	To     string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s cannot transition from %s to %s", e.Entity, e.From, e.To)
}

func NewInvalidState(entity, from, to string) error {
	return &InvalidStateError{Entity: entity, From: from, To: to}
}

// ExternalServiceError means the payment gateway declined or errored. The
// operation stops without applying state changes; the client may retry.
type ExternalServiceError struct {
	Reason string
}

func (e *ExternalServiceError) Error() string {
	return e.Reason
}

func NewExternalService(format string, args ...interface{}) error {
	return &ExternalServiceError{Reason: fmt.Sprintf(format, args...)}
}

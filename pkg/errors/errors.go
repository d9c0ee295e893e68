package errors

import (
	"fmt"

	"github.com/medzone/storefront/internal/domain"
)

// ErrNotFound is returned when a resource is not found
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrKeyNotFound is returned when a storage key has no value
type ErrKeyNotFound struct {
	Key string
}

func (e *ErrKeyNotFound) Error() string {
	return fmt.Sprintf("key not found: %s", e.Key)
}

// ErrValidation is returned when form validation fails
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	if e.Message != "" {
		return e.Message
	}
	return "validation failed"
}

// ErrLineIndex is returned when a cart line index is out of range
type ErrLineIndex struct {
	Index int
	Len   int
}

func (e *ErrLineIndex) Error() string {
	return fmt.Sprintf("cart line index %d out of range (cart has %d lines)", e.Index, e.Len)
}

// ErrInvalidStateTransition is returned when an invalid checkout transition is attempted
type ErrInvalidStateTransition struct {
	From domain.CheckoutState
	To   domain.CheckoutState
}

func (e *ErrInvalidStateTransition) Error() string {
	return fmt.Sprintf("invalid state transition from %s to %s", e.From, e.To)
}

// ErrBackend is returned when the remote pharmacy API fails, whether it
// answered with an error status or could not be reached at all. Either way
// the failure is transient from the storefront's point of view.
type ErrBackend struct {
	Operation string
	Status    int
	Body      string
	Err       error
}

func (e *ErrBackend) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("backend %s failed: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("backend %s failed: status %d, body: %s", e.Operation, e.Status, e.Body)
}

func (e *ErrBackend) Unwrap() error {
	return e.Err
}

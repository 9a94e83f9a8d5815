package services

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// ValidationError reports input that is well-formed but refers to something
// that does not exist, such as a book pointing at an unknown author.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports that the requested resource id is not stored.
// ID is kept as text so malformed path ids can be reported verbatim.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// NewNotFoundError builds a NotFoundError for a raw, possibly non-numeric id.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func authorNotFound(id uint) error {
	return NewNotFoundError("Author", strconv.FormatUint(uint64(id), 10))
}

func bookNotFound(id uint) error {
	return NewNotFoundError("Book", strconv.FormatUint(uint64(id), 10))
}

func unknownAuthor(id uint) error {
	return &ValidationError{Message: fmt.Sprintf("Author with ID %d does not exist", id)}
}

// IsNotFound reports whether err is, or wraps, a *NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

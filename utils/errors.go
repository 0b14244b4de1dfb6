package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error kinds for the issue lifecycle. Controllers never inspect messages,
// only kinds, to pick a response code.
type ErrorKind int

const (
	KindNotFound ErrorKind = iota
	KindInvalidState
	KindForbidden
	KindValidation
	KindStorage
	KindDirectory
)

// Error is the service-level error shape. Message is safe to show callers.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NotFound signals an absent entity.
func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// InvalidState signals an operation illegal for the current lifecycle state
// or a uniqueness violation (double reservation, double like, ...).
func InvalidState(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

// Forbidden signals an authenticated caller outside the required
// organizational scope or ownership.
func Forbidden(format string, args ...interface{}) *Error {
	return &Error{Kind: KindForbidden, Message: fmt.Sprintf(format, args...)}
}

// Validation signals malformed or missing input.
func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// StorageError signals a blob storage collaborator failure.
func StorageError(err error) *Error {
	return &Error{Kind: KindStorage, Message: "Storage error: " + err.Error()}
}

// DirectoryError signals an organizational directory failure.
func DirectoryError(err error) *Error {
	return &Error{Kind: KindDirectory, Message: "Directory error: " + err.Error()}
}

// IsKind reports whether err is a service error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// HandleError writes the JSON error response for a service error, falling
// back to a generic 500 for anything unrecognized.
func HandleError(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	status := http.StatusInternalServerError
	switch e.Kind {
	case KindNotFound:
		status = http.StatusNotFound
	case KindInvalidState, KindValidation:
		status = http.StatusBadRequest
	case KindForbidden:
		status = http.StatusForbidden
	case KindStorage, KindDirectory:
		status = http.StatusBadGateway
	}

	c.JSON(status, gin.H{"error": e.Message})
}

package errs

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// Error kinds exposed to clients. These strings are part of the API
// contract: clients branch on the kind, never on the message.
const (
	KindValidation = "ValidationError"
	KindNotFound   = "NotFoundError"
	KindDecode     = "DecodeError"
	KindStore      = "StoreError"
)

var (
	TaskNotFound       = errors.New("task not found")
	AttachmentNotFound = errors.New("attachment not found")
	BlobNotFound       = errors.New("blob not found")
)

// ValidationError rejects caller input before any store call is made.
type ValidationError struct {
	msg string
}

func (e ValidationError) Error() string {
	return e.msg
}

func NewValidationf(format string, args ...interface{}) error {
	return ValidationError{msg: fmt.Sprintf(format, args...)}
}

// DecodeError marks transfer-encoded content that could not be decoded.
// It is a specialization of ValidationError and maps to the same status.
type DecodeError struct {
	msg string
}

func (e DecodeError) Error() string {
	return e.msg
}

func NewDecodef(format string, args ...interface{}) error {
	return DecodeError{msg: fmt.Sprintf(format, args...)}
}

func IsNotFound(err error) bool {
	return errors.Is(err, TaskNotFound) ||
		errors.Is(err, AttachmentNotFound) ||
		errors.Is(err, BlobNotFound)
}

func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}

func IsDecode(err error) bool {
	var d DecodeError
	return errors.As(err, &d)
}

// Kind maps an error to its client-visible kind. Anything that is not a
// locally detected validation/not-found condition is a store failure.
func Kind(err error) string {
	switch {
	case IsDecode(err):
		return KindDecode
	case IsValidation(err):
		return KindValidation
	case IsNotFound(err):
		return KindNotFound
	default:
		return KindStore
	}
}

func HTTPStatus(err error) int {
	switch Kind(err) {
	case KindValidation, KindDecode:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

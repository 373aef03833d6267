package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Kind string

const (
	KindValidation    Kind = "validation"
	KindConflict      Kind = "conflict"
	KindNotFound      Kind = "not_found"
	KindInternal      Kind = "internal"
	KindMalformedBody Kind = "malformed_body"
	KindUnauthorized  Kind = "unauthorized"
)

// ErrorResponse is returned by services instead of a bare error so the
// routes can answer with the right status code.
type ErrorResponse interface {
	error
	Code() int
	Kind() Kind
}

type SimpleError struct {
	Status  int      `json:"-"`
	Type    Kind     `json:"kind"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

func (e *SimpleError) Error() string {
	return e.Message
}

func (e *SimpleError) Code() int {
	return e.Status
}

func (e *SimpleError) Kind() Kind {
	return e.Type
}

var (
	SlotNotAllowedError   = &SimpleError{Status: http.StatusBadRequest, Type: KindValidation, Message: "This slot is not available on that day"}
	SlotTakenError        = &SimpleError{Status: http.StatusConflict, Type: KindConflict, Message: "The chosen time is already booked"}
	UnsupportedMediaError = &SimpleError{Status: http.StatusBadRequest, Type: KindValidation, Message: "Unsupported media type"}
	NotFoundError         = &SimpleError{Status: http.StatusNotFound, Type: KindNotFound, Message: "Not found"}
	InternalServerError   = &SimpleError{Status: http.StatusInternalServerError, Type: KindInternal, Message: "Internal server error"}
	MalformedBodyError    = &SimpleError{Status: http.StatusBadRequest, Type: KindMalformedBody, Message: "Malformed request body"}
	InvalidAuthTokenError = &SimpleError{Status: http.StatusUnauthorized, Type: KindUnauthorized, Message: "Invalid or missing admin token"}
)

func NewSimple(status int, message string) *SimpleError {
	return &SimpleError{Status: status, Type: kindForStatus(status), Message: message}
}

func NewMissingParamError(name string) *SimpleError {
	return &SimpleError{
		Status:  http.StatusBadRequest,
		Type:    KindValidation,
		Message: fmt.Sprintf("Missing parameter '%s'", name),
		Fields:  []string{name},
	}
}

func NewInvalidParamTypeError(name, expected string) *SimpleError {
	return &SimpleError{
		Status:  http.StatusBadRequest,
		Type:    KindValidation,
		Message: fmt.Sprintf("Parameter '%s' must be of type %s", name, expected),
		Fields:  []string{name},
	}
}

// FromValidationError turns validator output into a validation error that
// lists the offending fields.
func FromValidationError(err error) *SimpleError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &SimpleError{Status: http.StatusBadRequest, Type: KindValidation, Message: err.Error()}
	}

	fields := make([]string, 0, len(verrs))
	tags := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
		tags = append(tags, fmt.Sprintf("%s failed '%s'", fe.Field(), fe.Tag()))
	}
	return &SimpleError{
		Status:  http.StatusBadRequest,
		Type:    KindValidation,
		Message: "Invalid fields: " + strings.Join(tags, ", "),
		Fields:  fields,
	}
}

// KindOf reports the kind of err, or "" when err carries none.
func KindOf(err error) Kind {
	var resp ErrorResponse
	if errors.As(err, &resp) {
		return resp.Kind()
	}
	return ""
}

func kindForStatus(status int) Kind {
	switch status {
	case http.StatusConflict:
		return KindConflict
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindUnauthorized
	}
	if status >= 500 {
		return KindInternal
	}
	return KindValidation
}

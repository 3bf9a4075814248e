package brdoc

import "errors"

// Code identifies the class of a validation failure.
type Code string

const (
	CodeInvalidCPFLength Code = "InvalidCpfLength"
	CodeInvalidCPF       Code = "InvalidCpf"
	CodeInvalidPlate     Code = "InvalidPlate"
)

func (c Code) String() string {
	return string(c)
}

// Valid reports whether c is one of the known codes.
func (c Code) Valid() bool {
	switch c {
	case CodeInvalidCPFLength, CodeInvalidCPF, CodeInvalidPlate:
		return true
	}
	return false
}

// Sentinels for errors.Is. They match any *ValidationError with the same code.
var (
	ErrInvalidCPFLength = &ValidationError{code: CodeInvalidCPFLength, message: "invalid cpf length"}
	ErrInvalidCPF       = &ValidationError{code: CodeInvalidCPF, message: "invalid cpf"}
	ErrInvalidPlate     = &ValidationError{code: CodeInvalidPlate, message: "invalid plate"}
)

// ValidationError is the failure payload of a validation call.
type ValidationError struct {
	code    Code
	message string
}

// NewValidationError builds a ValidationError. It is exported for callers
// that rebuild errors received over the wire.
func NewValidationError(code Code, message string) *ValidationError {
	return &ValidationError{code: code, message: message}
}

func (e *ValidationError) Code() Code {
	return e.code
}

func (e *ValidationError) Message() string {
	return e.message
}

func (e *ValidationError) Error() string {
	return e.message
}

func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.code == e.code
}

// AsValidationError extracts a *ValidationError from err.
func AsValidationError(err error) (*ValidationError, bool) {
	if err == nil {
		return nil, false
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

package app

import "fmt"

// CommonError represents application-level errors
type CommonError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CommonError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CommonError) Unwrap() error {
	return e.Cause
}

// Common error codes
const (
	ErrCodeInvalidInput       = "INVALID_INPUT"
	ErrCodeOpenFailure        = "OPEN_FAILURE"
	ErrCodeSizeLookup         = "SIZE_LOOKUP"
	ErrCodeQueryFailure       = "QUERY_FAILURE"
	ErrCodeResourceExhaustion = "RESOURCE_EXHAUSTION"
	ErrCodeUnsupportedFormat  = "UNSUPPORTED_FORMAT"
)

// NewError creates a new CommonError
func NewError(code, message string, cause error) *CommonError {
	return &CommonError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

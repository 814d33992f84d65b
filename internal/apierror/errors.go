// Package apierror defines the denials surfaced to API callers. Each error
// carries a stable machine-readable code, a gRPC status code, and a message
// that is safe to show to the caller.
package apierror

import (
	"errors"
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Domain is the ErrorInfo domain attached to every denial.
const Domain = "favcities"

// Stable error codes returned to callers.
const (
	CodeNoSuchAccount   = "NO_SUCH_ACCOUNT"
	CodeBadCredentials  = "BAD_CREDENTIALS"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeInternal        = "INTERNAL_SERVER_ERROR"
)

// APIError is a typed denial.
type APIError struct {
	Code     string
	GRPCCode codes.Code
	Message  string
	// Err is the underlying cause. It is never shown to the caller.
	Err error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Is matches any *APIError with the same Code.
func (e *APIError) Is(target error) bool {
	var t *APIError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// GRPCStatus lets status.FromError and status.Code see through an APIError.
// The stable code travels as an errdetails.ErrorInfo reason.
func (e *APIError) GRPCStatus() *status.Status {
	st := status.New(e.GRPCCode, e.Message)
	detailed, err := st.WithDetails(&errdetails.ErrorInfo{
		Reason: e.Code,
		Domain: Domain,
	})
	if err != nil {
		return st
	}
	return detailed
}

func NewErrNoSuchAccount(email string) *APIError {
	return &APIError{
		Code:     CodeNoSuchAccount,
		GRPCCode: codes.NotFound,
		Message:  fmt.Sprintf("user '%s' has not signed up", email),
	}
}

func NewErrBadCredentials() *APIError {
	return &APIError{
		Code:     CodeBadCredentials,
		GRPCCode: codes.Unauthenticated,
		Message:  "invalid credentials",
	}
}

func NewErrUnauthorized() *APIError {
	return &APIError{
		Code:     CodeUnauthorized,
		GRPCCode: codes.Unauthenticated,
		Message:  "unauthorized",
	}
}

func NewErrMissingAuthorizationToken() *APIError {
	return &APIError{
		Code:     CodeUnauthorized,
		GRPCCode: codes.Unauthenticated,
		Message:  "missing or malformed bearer token",
	}
}

func NewErrInvalidArgument(msg string) *APIError {
	return &APIError{
		Code:     CodeInvalidArgument,
		GRPCCode: codes.InvalidArgument,
		Message:  msg,
	}
}

func NewErrInternalServerError(err error) *APIError {
	return &APIError{
		Code:     CodeInternal,
		GRPCCode: codes.Internal,
		Message:  "internal server error",
		Err:      err,
	}
}

// FromError returns err as an *APIError, wrapping anything else as internal.
func FromError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return NewErrInternalServerError(err)
}

// CodeFromStatus returns the stable code carried by st, or "" when st did
// not originate from an APIError.
func CodeFromStatus(st *status.Status) string {
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.Domain == Domain {
			return info.Reason
		}
	}
	return ""
}

package handler

import (
	"github.com/dtroode/favcities/internal/apierror"
)

// handleError turns any service error into a gRPC status error.
// Errors that are not denials become INTERNAL_SERVER_ERROR and drop their cause.
func handleError(err error) error {
	return apierror.FromError(err).GRPCStatus().Err()
}

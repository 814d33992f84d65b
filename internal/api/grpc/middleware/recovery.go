package middleware

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/dtroode/favcities/internal/apierror"
	"github.com/dtroode/favcities/internal/logger"
)

// Recovery turns handler panics into INTERNAL_SERVER_ERROR responses.
type Recovery struct {
	logger *logger.Logger
}

// NewRecovery creates a new Recovery middleware.
func NewRecovery(logger *logger.Logger) *Recovery {
	return &Recovery{logger: logger}
}

// HandlePanic is a recovery.RecoveryHandlerFuncContext.
func (r *Recovery) HandlePanic(_ context.Context, p any) error {
	r.logger.Error("gRPC handler panicked",
		"panic", fmt.Sprint(p),
		"stack", string(debug.Stack()))

	return apierror.NewErrInternalServerError(fmt.Errorf("panic: %v", p)).GRPCStatus().Err()
}

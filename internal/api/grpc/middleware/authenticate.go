package middleware

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"

	"github.com/dtroode/favcities/internal/apierror"
	"github.com/dtroode/favcities/internal/logger"
	"github.com/dtroode/favcities/internal/metrics"
	"github.com/dtroode/favcities/internal/model"
)

// TokenVerifier resolves a bearer token to the email of its user.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (string, error)
}

// Authenticate validates bearer tokens and injects the verified email into context.
type Authenticate struct {
	tokenVerifier  TokenVerifier
	contextManager model.ContextManager
	metrics        *metrics.Metrics
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(
	tokenVerifier TokenVerifier,
	contextManager model.ContextManager,
	metrics *metrics.Metrics,
	logger *logger.Logger,
) *Authenticate {
	return &Authenticate{
		tokenVerifier:  tokenVerifier,
		contextManager: contextManager,
		metrics:        metrics,
		logger:         logger,
	}
}

// AuthFunc reads the "authorization: Bearer <token>" header, verifies the
// token and returns a context carrying the caller email.
// A missing or malformed header is rejected before any token lookup.
func (m *Authenticate) AuthFunc(ctx context.Context) (context.Context, error) {
	token, err := auth.AuthFromMD(ctx, "bearer")
	if err != nil || token == "" {
		m.metrics.ObserveDenial(metrics.DenialMissingToken)
		m.logger.Debug("Authenticate middleware: missing or malformed authorization header")
		return nil, apierror.NewErrMissingAuthorizationToken().GRPCStatus().Err()
	}

	email, err := m.tokenVerifier.VerifyToken(ctx, token)
	if err != nil {
		return nil, apierror.FromError(err).GRPCStatus().Err()
	}

	return m.contextManager.SetEmailToContext(ctx, email), nil
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/favcities/internal/apierror"
	"github.com/dtroode/favcities/internal/logger"
	"github.com/dtroode/favcities/internal/metrics"
	"github.com/dtroode/favcities/internal/model"
)

// Auth registers users, logs them in and verifies session tokens.
type Auth struct {
	userStore    model.UserStore
	sessionStore model.SessionStore
	metrics      *metrics.Metrics
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	sessionStore model.SessionStore,
	metrics *metrics.Metrics,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		sessionStore: sessionStore,
		metrics:      metrics,
		logger:       logger,
	}
}

// Register stores a new user with no favorite cities. Registering an email
// that already exists replaces the previous record.
func (a *Auth) Register(ctx context.Context, email, name, password string) (model.User, error) {
	a.logger.Debug("Auth service: registering user",
		"email", email)

	if email == "" {
		return model.User{}, apierror.NewErrInvalidArgument("email is required")
	}

	if _, err := a.userStore.GetByEmail(ctx, email); err == nil {
		a.logger.Warn("Auth service: overwriting existing user",
			"email", email)
	}

	user, err := a.userStore.Register(ctx, model.NewUser(email, name, password))
	if err != nil {
		a.logger.Error("Auth service: failed to register user",
			"email", email,
			"error", err.Error())
		return model.User{}, apierror.NewErrInternalServerError(fmt.Errorf("failed to register user: %w", err))
	}

	a.logger.Info("Auth service: user registered",
		"email", email)

	return user, nil
}

// Login checks the password of email and issues a new session token.
func (a *Auth) Login(ctx context.Context, email, password string) (string, error) {
	a.logger.Debug("Auth service: starting user login",
		"email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		a.metrics.ObserveLogin(metrics.LoginNoSuchAccount)
		a.logger.Info("Auth service: login for unknown account",
			"email", email)
		return "", apierror.NewErrNoSuchAccount(email)
	}
	if err != nil {
		a.metrics.ObserveLogin(metrics.LoginError)
		return "", apierror.NewErrInternalServerError(fmt.Errorf("failed to get user by email: %w", err))
	}

	if !user.VerifyPassword(password) {
		a.metrics.ObserveLogin(metrics.LoginBadCredentials)
		a.logger.Info("Auth service: invalid credentials",
			"email", email)
		return "", apierror.NewErrBadCredentials()
	}

	token, err := a.sessionStore.Issue(ctx, user)
	if err != nil {
		a.metrics.ObserveLogin(metrics.LoginError)
		a.logger.Error("Auth service: failed to issue session token",
			"email", email,
			"error", err.Error())
		return "", apierror.NewErrInternalServerError(fmt.Errorf("failed to issue session token: %w", err))
	}

	a.metrics.ObserveLogin(metrics.LoginSuccess)
	a.logger.Info("Auth service: login completed successfully",
		"email", email)

	return token, nil
}

// VerifyToken resolves a bearer token to the email of a registered user.
// Every failure is reported to the caller as UNAUTHORIZED.
func (a *Auth) VerifyToken(ctx context.Context, token string) (string, error) {
	if token == "" {
		a.metrics.ObserveDenial(metrics.DenialMissingToken)
		return "", apierror.NewErrMissingAuthorizationToken()
	}

	session, err := a.sessionStore.Resolve(ctx, token)
	if err != nil {
		a.metrics.ObserveDenial(metrics.DenialUnknownToken)
		if !errors.Is(err, model.ErrNotFound) {
			a.logger.Error("Auth service: failed to resolve session token",
				"error", err.Error())
		} else {
			a.logger.Warn("Auth service: unknown session token")
		}
		return "", apierror.NewErrUnauthorized()
	}

	user, err := a.userStore.GetByEmail(ctx, session.Email)
	if err != nil {
		a.metrics.ObserveDenial(metrics.DenialInconsistency)
		a.metrics.ObserveInconsistency()
		a.logger.Error("Auth service: internal inconsistency, session has no user record",
			"email", session.Email,
			"error", err.Error())
		return "", apierror.NewErrUnauthorized()
	}

	return user.Email, nil
}

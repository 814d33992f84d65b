package handler

import (
	"context"

	"github.com/dtroode/favcities/internal/api/grpc/contract"
	"github.com/dtroode/favcities/internal/logger"
	"github.com/dtroode/favcities/internal/model"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	Register(ctx context.Context, email, name, password string) (model.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// Auth handles gRPC endpoints for authentication.
type Auth struct {
	contract.UnimplementedAuthServer
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Register creates or overwrites the account for req.Email.
func (h *Auth) Register(ctx context.Context, req *contract.RegisterRequest) (*contract.RegisterResponse, error) {
	h.logger.Debug("Auth handler: processing registration request",
		"email", req.Email)

	user, err := h.authService.Register(ctx, req.Email, req.Name, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: registration failed",
			"email", req.Email,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: registration completed",
		"email", user.Email)

	return &contract.RegisterResponse{
		Email: user.Email,
		Name:  user.Name,
	}, nil
}

// Login checks the password and returns a fresh session token.
func (h *Auth) Login(ctx context.Context, req *contract.LoginRequest) (*contract.LoginResponse, error) {
	h.logger.Debug("Auth handler: processing login request",
		"email", req.Email)

	token, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: login completed",
		"email", req.Email)

	return &contract.LoginResponse{Token: token}, nil
}

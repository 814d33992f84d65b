package handler

import (
	"context"

	"github.com/dtroode/favcities/internal/api/grpc/contract"
	"github.com/dtroode/favcities/internal/apierror"
	"github.com/dtroode/favcities/internal/logger"
	"github.com/dtroode/favcities/internal/model"
)

// FavoritesService defines favorite city operations on a verified email.
type FavoritesService interface {
	AddFavorite(ctx context.Context, email string, city model.City) (model.User, error)
	RemoveFavorite(ctx context.Context, email string, city model.City) (model.User, error)
	ListFavorites(ctx context.Context, email string) ([]model.City, error)
}

// Favorites handles gRPC endpoints for favorite cities.
// Every call expects the authenticate middleware to have stored the caller email.
type Favorites struct {
	contract.UnimplementedFavoritesServer
	favoritesService FavoritesService
	contextManager   model.ContextManager
	logger           *logger.Logger
}

// NewFavorites creates a new Favorites handler.
func NewFavorites(favoritesService FavoritesService, contextManager model.ContextManager, logger *logger.Logger) *Favorites {
	return &Favorites{
		favoritesService: favoritesService,
		contextManager:   contextManager,
		logger:           logger,
	}
}

func (h *Favorites) AddFavoriteCity(ctx context.Context, req *contract.CityRequest) (*contract.AddFavoriteCityResponse, error) {
	email, err := h.callerEmail(ctx)
	if err != nil {
		return nil, err
	}

	city := model.City{Name: req.Name, Country: req.Country}
	if _, err := h.favoritesService.AddFavorite(ctx, email, city); err != nil {
		h.logger.Error("Favorites handler: add favorite failed",
			"email", email,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &contract.AddFavoriteCityResponse{City: toContractCity(city)}, nil
}

func (h *Favorites) RemoveFavoriteCity(ctx context.Context, req *contract.CityRequest) (*contract.RemoveFavoriteCityResponse, error) {
	email, err := h.callerEmail(ctx)
	if err != nil {
		return nil, err
	}

	city := model.City{Name: req.Name, Country: req.Country}
	if _, err := h.favoritesService.RemoveFavorite(ctx, email, city); err != nil {
		h.logger.Error("Favorites handler: remove favorite failed",
			"email", email,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &contract.RemoveFavoriteCityResponse{Success: true}, nil
}

func (h *Favorites) ListFavoriteCities(ctx context.Context, _ *contract.ListFavoriteCitiesRequest) (*contract.ListFavoriteCitiesResponse, error) {
	email, err := h.callerEmail(ctx)
	if err != nil {
		return nil, err
	}

	cities, err := h.favoritesService.ListFavorites(ctx, email)
	if err != nil {
		h.logger.Error("Favorites handler: list favorites failed",
			"email", email,
			"error", err.Error())
		return nil, handleError(err)
	}

	out := make([]contract.City, 0, len(cities))
	for _, c := range cities {
		out = append(out, toContractCity(c))
	}

	return &contract.ListFavoriteCitiesResponse{Cities: out}, nil
}

func (h *Favorites) callerEmail(ctx context.Context) (string, error) {
	email, ok := h.contextManager.GetEmailFromContext(ctx)
	if !ok {
		h.logger.Error("Favorites handler: no verified email in context")
		return "", handleError(apierror.NewErrUnauthorized())
	}
	return email, nil
}

func toContractCity(c model.City) contract.City {
	return contract.City{Name: c.Name, Country: c.Country}
}

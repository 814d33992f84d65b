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

// Favorites applies favorite city changes to the canonical user record.
//
// The email argument of every method must come from a verified session.
type Favorites struct {
	userStore model.UserStore
	metrics   *metrics.Metrics
	logger    *logger.Logger
}

func NewFavorites(userStore model.UserStore, metrics *metrics.Metrics, logger *logger.Logger) *Favorites {
	return &Favorites{
		userStore: userStore,
		metrics:   metrics,
		logger:    logger,
	}
}

func (f *Favorites) AddFavorite(ctx context.Context, email string, city model.City) (model.User, error) {
	return f.Mutate(ctx, email, city, model.FavoriteAdd)
}

func (f *Favorites) RemoveFavorite(ctx context.Context, email string, city model.City) (model.User, error) {
	return f.Mutate(ctx, email, city, model.FavoriteRemove)
}

// Mutate adds or removes city for email and returns the updated record.
func (f *Favorites) Mutate(ctx context.Context, email string, city model.City, op model.FavoriteOp) (model.User, error) {
	f.logger.Debug("Favorites service: mutating favorites",
		"email", email,
		"op", op.String(),
		"city", city.Name,
		"country", city.Country)

	if err := city.Validate(); err != nil {
		return model.User{}, apierror.NewErrInvalidArgument(err.Error())
	}

	var (
		user model.User
		err  error
	)
	switch op {
	case model.FavoriteAdd:
		user, err = f.userStore.AddFavorite(ctx, email, city)
	case model.FavoriteRemove:
		user, err = f.userStore.RemoveFavorite(ctx, email, city)
	default:
		return model.User{}, apierror.NewErrInvalidArgument(fmt.Sprintf("unknown favorite operation %d", op))
	}

	if errors.Is(err, model.ErrNotAuthorized) {
		f.metrics.ObserveDenial(metrics.DenialNotAuthorized)
		f.logger.Error("Favorites service: verified email has no user record",
			"email", email,
			"op", op.String())
		return model.User{}, apierror.NewErrUnauthorized()
	}
	if err != nil {
		return model.User{}, apierror.NewErrInternalServerError(fmt.Errorf("failed to %s favorite: %w", op, err))
	}

	f.metrics.ObserveMutation(op)
	f.logger.Info("Favorites service: favorites updated",
		"email", email,
		"op", op.String(),
		"favorites", user.Favorites.Len())

	return user, nil
}

// ListFavorites returns the favorite cities of email sorted by country and name.
func (f *Favorites) ListFavorites(ctx context.Context, email string) ([]model.City, error) {
	user, err := f.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		f.metrics.ObserveDenial(metrics.DenialNotAuthorized)
		f.logger.Error("Favorites service: verified email has no user record",
			"email", email)
		return nil, apierror.NewErrUnauthorized()
	}
	if err != nil {
		return nil, apierror.NewErrInternalServerError(fmt.Errorf("failed to get user by email: %w", err))
	}

	return user.Favorites.List(), nil
}

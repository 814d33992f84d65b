package memory

import (
	"context"
	"sync"
	"time"

	"github.com/dtroode/favcities/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

// UserRepository is the canonical in-memory table of users keyed by email.
//
// Every method runs as a single critical section under mu, so a
// read-modify-write on one email never interleaves with another mutation.
// Records are copied on the way in and on the way out.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]model.User
	now   func() time.Time
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[string]model.User),
		now:   time.Now,
	}
}

// Register stores user under its email, replacing any previous record.
func (r *UserRepository) Register(_ context.Context, user model.User) (model.User, error) {
	stored := user.Clone()
	now := r.now().UTC()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.mu.Lock()
	r.users[stored.Email] = stored
	r.mu.Unlock()

	return stored.Clone(), nil
}

// GetByEmail returns the record stored under the exact email.
func (r *UserRepository) GetByEmail(_ context.Context, email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[email]
	if !ok {
		return model.User{}, model.ErrNotFound
	}

	return user.Clone(), nil
}

// AddFavorite inserts city into the favorites of email.
func (r *UserRepository) AddFavorite(_ context.Context, email string, city model.City) (model.User, error) {
	return r.mutate(email, func(s model.CitySet) { s.Add(city) })
}

// RemoveFavorite deletes city from the favorites of email.
func (r *UserRepository) RemoveFavorite(_ context.Context, email string, city model.City) (model.User, error) {
	return r.mutate(email, func(s model.CitySet) { s.Remove(city) })
}

// Count returns the number of registered users.
func (r *UserRepository) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.users)
}

func (r *UserRepository) mutate(email string, apply func(model.CitySet)) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[email]
	if !ok {
		return model.User{}, model.ErrNotAuthorized
	}

	if user.Favorites == nil {
		user.Favorites = model.CitySet{}
	}
	apply(user.Favorites)
	user.UpdatedAt = r.now().UTC()
	r.users[email] = user

	return user.Clone(), nil
}

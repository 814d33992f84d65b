package model

import (
	"context"
	"crypto/subtle"
	"time"
)

// UserStore keeps the canonical user records keyed by email.
type UserStore interface {
	Register(ctx context.Context, user User) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	AddFavorite(ctx context.Context, email string, city City) (User, error)
	RemoveFavorite(ctx context.Context, email string, city City) (User, error)
	Count(ctx context.Context) int
}

// User is a registered identity together with its favorite cities.
//
// Password is stored as given by the caller and compared byte-for-byte.
type User struct {
	Email     string
	Name      string
	Password  string
	Favorites CitySet
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser returns a user with an empty favorite set.
func NewUser(email, name, password string) User {
	return User{
		Email:     email,
		Name:      name,
		Password:  password,
		Favorites: CitySet{},
	}
}

// Clone returns a copy of u that shares no mutable state with it.
func (u User) Clone() User {
	u.Favorites = u.Favorites.Clone()
	return u
}

// VerifyPassword reports whether candidate equals the stored password.
func (u User) VerifyPassword(candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(u.Password), []byte(candidate)) == 1
}

package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/dtroode/favcities/internal/model"
)

var _ model.SessionStore = (*SessionRepository)(nil)

// issueAttempts bounds how many fresh tokens Issue draws before giving up on
// collisions.
const issueAttempts = 3

// SessionRepository maps session tokens to the identity snapshot taken at login.
type SessionRepository struct {
	mu        sync.RWMutex
	sessions  map[string]model.User
	generator model.TokenGenerator
}

func NewSessionRepository(generator model.TokenGenerator) *SessionRepository {
	return &SessionRepository{
		sessions:  make(map[string]model.User),
		generator: generator,
	}
}

// Issue mints a token that is unique within the repository and binds it to
// a snapshot of user.
func (r *SessionRepository) Issue(_ context.Context, user model.User) (string, error) {
	snapshot := user.Clone()

	for attempt := 0; attempt < issueAttempts; attempt++ {
		token, err := r.generator.Generate()
		if err != nil {
			return "", fmt.Errorf("failed to generate token: %w", err)
		}
		if token == "" {
			return "", model.ErrEmptyToken
		}

		r.mu.Lock()
		if _, taken := r.sessions[token]; !taken {
			r.sessions[token] = snapshot
			r.mu.Unlock()
			return token, nil
		}
		r.mu.Unlock()
	}

	return "", model.ErrTokenCollision
}

// Resolve returns the snapshot bound to token.
func (r *SessionRepository) Resolve(_ context.Context, token string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.sessions[token]
	if !ok {
		return model.User{}, model.ErrNotFound
	}

	return user.Clone(), nil
}

// Count returns the number of issued tokens.
func (r *SessionRepository) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}

package model

import "context"

// SessionStore maps issued session tokens to the identity that logged in.
//
// The stored identity is a snapshot taken at issue time. Its favorites go
// stale; callers resolve the email here and read the canonical record from
// UserStore.
type SessionStore interface {
	Issue(ctx context.Context, user User) (string, error)
	Resolve(ctx context.Context, token string) (User, error)
	Count(ctx context.Context) int
}

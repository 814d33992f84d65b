package context

import (
	"context"
)

type emailKey struct{}

// Manager keeps the verified caller email in a request context.
// The value lives in the context itself, so a client cannot forge it with metadata.
type Manager struct{}

// NewManager creates a new gRPC context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetEmailToContext returns a copy of ctx carrying email.
func (m *Manager) SetEmailToContext(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailKey{}, email)
}

// GetEmailFromContext returns the email stored by SetEmailToContext.
// Empty values are reported as missing.
func (m *Manager) GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailKey{}).(string)
	if !ok || email == "" {
		return "", false
	}

	return email, true
}

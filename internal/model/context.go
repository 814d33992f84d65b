package model

import "context"

// ContextManager stores the verified email of the caller in a request context.
type ContextManager interface {
	SetEmailToContext(ctx context.Context, email string) context.Context
	GetEmailFromContext(ctx context.Context) (string, bool)
}

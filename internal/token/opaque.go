package token

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/favcities/internal/model"
)

var _ model.TokenGenerator = (*Opaque)(nil)

// Opaque generates random version 4 UUID strings used as bearer session tokens.
type Opaque struct{}

// NewOpaque creates a new opaque token generator.
func NewOpaque() *Opaque {
	return &Opaque{}
}

// Generate returns a new random token.
func (o *Opaque) Generate() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}

	return id.String(), nil
}

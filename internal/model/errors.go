package model

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrNotAuthorized = errors.New("not authorized")

	ErrTokenCollision = errors.New("session token collision")
	ErrEmptyToken     = errors.New("empty session token")

	ErrEmptyCityName    = errors.New("city name is required")
	ErrEmptyCityCountry = errors.New("city country is required")
)

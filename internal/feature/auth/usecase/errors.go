// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrClientNotFound is returned when a client cannot be found by client ID.
	ErrClientNotFound = errors.New("client not found")

	// ErrClientAlreadyExists is returned when registering a client ID that already exists.
	ErrClientAlreadyExists = errors.New("client ID already exists")

	// ErrInvalidCredentials is returned when the client ID or secret is incorrect.
	ErrInvalidCredentials = errors.New("invalid client ID or secret")
)

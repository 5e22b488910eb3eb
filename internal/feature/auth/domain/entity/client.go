// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Client represents a machine client allowed to call the API.
// It holds the credentials issued to batch jobs and other services.
type Client struct {
	// ID is the unique identifier for the client record.
	ID uint

	// ClientID is the public identifier presented when requesting a token.
	// It must be unique across all clients.
	ClientID string

	// SecretHash is the bcrypt hash of the client secret.
	// This never stores the plaintext secret.
	SecretHash string

	// CreatedAt is the timestamp when the client was registered.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the client was last updated.
	UpdatedAt time.Time
}

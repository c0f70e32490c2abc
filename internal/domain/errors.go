package domain

import (
	"errors"
	"fmt"
)

var (
	ErrPoolNotConfigured = errors.New("pool not configured")
	ErrSessionNotFound   = errors.New("session not found")
	ErrProfileNotFound   = errors.New("profile not found")
	ErrSecretNotFound    = errors.New("secret not found")
	ErrModelUnavailable  = errors.New("model unavailable")
)

// ConfigurationError reports a pool that cannot serve credentials.
type ConfigurationError struct {
	Pool   PoolName
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("pool %q: %s", e.Pool, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrPoolNotConfigured
}

// ValidationError is returned for user input that cannot be processed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

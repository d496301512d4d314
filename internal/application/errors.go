package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrMissingCredentials means the keychain held no usable library ID or
	// API key. Unrecoverable in-process; running `zotsync setup` fixes it.
	ErrMissingCredentials = errors.New("credentials not found in keychain")

	// ErrNoGraph means no graph name was given and auto-detection found no
	// database graph to fall back on.
	ErrNoGraph = errors.New("could not auto-detect graph")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// CredentialError wraps a keychain lookup failure for one entry name.
type CredentialError struct {
	Name string
	Err  error
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("credential %q: %v", e.Name, e.Err)
}

func (e *CredentialError) Unwrap() error {
	return e.Err
}

func (e *CredentialError) Is(target error) bool {
	return target == ErrMissingCredentials
}

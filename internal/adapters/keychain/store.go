package keychain

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"zotsync/internal/application"
)

// Store implements ports.SecretStore on the OS keychain, bound to one
// service name.
type Store struct {
	service string
}

// NewStore creates a secret store for the given keychain service name
func NewStore(service string) *Store {
	return &Store{service: service}
}

// Get returns the secret stored under name. Missing entries and empty
// values both resolve to application.ErrMissingCredentials: neither is
// usable and both need the same out-of-band setup step.
func (s *Store) Get(name string) (string, error) {
	value, err := keyring.Get(s.service, name)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", application.ErrMissingCredentials
		}
		return "", fmt.Errorf("keychain lookup for %q: %w", name, err)
	}
	if value == "" {
		return "", application.ErrMissingCredentials
	}
	return value, nil
}

// Set stores value under name, replacing any previous entry.
func (s *Store) Set(name, value string) error {
	if err := keyring.Set(s.service, name, value); err != nil {
		return fmt.Errorf("keychain store for %q: %w", name, err)
	}
	return nil
}

package commands

import (
	"context"
	"fmt"

	"zotsync/internal/application"
	"zotsync/internal/ports"
)

// Credentials holds the pair needed to open the remote library.
type Credentials struct {
	LibraryID string
	APIKey    string
}

// LoadCredentialsCommand resolves the library ID and API key from the
// secret store.
type LoadCredentialsCommand struct {
	store ports.SecretStore

	// Entry names looked up in the store.
	LibraryIDKey string
	APIKeyKey    string
}

// NewLoadCredentialsCommand creates a new LoadCredentialsCommand
func NewLoadCredentialsCommand(store ports.SecretStore, libraryIDKey, apiKeyKey string) *LoadCredentialsCommand {
	return &LoadCredentialsCommand{
		store:        store,
		LibraryIDKey: libraryIDKey,
		APIKeyKey:    apiKeyKey,
	}
}

// Execute reads both secrets. Either one missing or empty yields an error
// matching application.ErrMissingCredentials; there is no fallback source.
func (c *LoadCredentialsCommand) Execute(ctx context.Context) (*Credentials, error) {
	libraryID, err := c.store.Get(c.LibraryIDKey)
	if err != nil {
		return nil, &application.CredentialError{Name: c.LibraryIDKey, Err: err}
	}
	apiKey, err := c.store.Get(c.APIKeyKey)
	if err != nil {
		return nil, &application.CredentialError{Name: c.APIKeyKey, Err: err}
	}

	return &Credentials{LibraryID: libraryID, APIKey: apiKey}, nil
}

// SetupCredentialsCommand stores the credential pair in the secret store.
type SetupCredentialsCommand struct {
	store ports.SecretStore

	LibraryIDKey string
	APIKeyKey    string
	LibraryID    string
	APIKey       string
}

// NewSetupCredentialsCommand creates a new SetupCredentialsCommand
func NewSetupCredentialsCommand(store ports.SecretStore, libraryIDKey, apiKeyKey, libraryID, apiKey string) *SetupCredentialsCommand {
	return &SetupCredentialsCommand{
		store:        store,
		LibraryIDKey: libraryIDKey,
		APIKeyKey:    apiKeyKey,
		LibraryID:    libraryID,
		APIKey:       apiKey,
	}
}

// Validate checks both values are usable before touching the store.
func (c *SetupCredentialsCommand) Validate() error {
	if c.LibraryID == "" {
		return &application.ValidationError{
			Field:   "libraryID",
			Message: "library ID is required",
		}
	}
	for _, r := range c.LibraryID {
		if r < '0' || r > '9' {
			return &application.ValidationError{
				Field:   "libraryID",
				Message: fmt.Sprintf("library ID must be numeric, got: %s", c.LibraryID),
			}
		}
	}
	if c.APIKey == "" {
		return &application.ValidationError{
			Field:   "apiKey",
			Message: "API key is required",
		}
	}
	return nil
}

// Execute stores both secrets, replacing any previous values.
func (c *SetupCredentialsCommand) Execute(ctx context.Context) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if err := c.store.Set(c.LibraryIDKey, c.LibraryID); err != nil {
		return fmt.Errorf("failed to store library ID: %w", err)
	}
	if err := c.store.Set(c.APIKeyKey, c.APIKey); err != nil {
		return fmt.Errorf("failed to store API key: %w", err)
	}
	return nil
}

package ports

// SecretStore defines the interface for the OS-level credential store.
// Implementations are bound to a fixed service name at construction.
type SecretStore interface {
	// Get returns the secret stored under name. A missing or empty secret
	// is an error: credentials have no in-process fallback.
	Get(name string) (string, error)

	// Set stores value under name, replacing any previous value.
	Set(name, value string) error
}

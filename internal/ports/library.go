package ports

import "zotsync/internal/domain"

// Library defines the interface for the remote Zotero library.
type Library interface {
	// KeysWithTag returns the keys of every item carrying the tag,
	// exhausting pagination.
	KeysWithTag(tag string) (domain.KeySet, error)

	// Item fetches the current record for one item key.
	Item(key string) (*domain.Item, error)

	// UpdateItem writes the full item record back to the library.
	UpdateItem(item *domain.Item) error
}

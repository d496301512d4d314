package ports

import "zotsync/internal/domain"

// GraphSource defines the interface for reading Zotero references out of a
// Logseq graph. The graph is never mutated through this port.
type GraphSource interface {
	// ItemKeys returns the deduplicated set of Zotero item keys referenced
	// anywhere in the named graph.
	ItemKeys(graphName string) (domain.KeySet, error)

	// DefaultGraph auto-detects a graph name when the user passes none.
	DefaultGraph() (string, error)
}

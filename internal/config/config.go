package config

import "os"

// ServiceName is the keychain service the credentials live under. Shared
// with the zotero-tag-automation setup tooling so one setup step serves both.
const ServiceName = "zotero-tag-automation"

// Keychain entry names under ServiceName.
const (
	KeyLibraryID = "library_id"
	KeyAPIKey    = "api_key"
)

// TagName is the tag applied to Zotero items that appear in the graph.
// Applied verbatim, case-sensitive.
const TagName = "in_logseq"

const (
	defaultLogseqBin      = "logseq"
	defaultZoteroProperty = "ZoteroURL-om1JHnZv"
	defaultZoteroAPI      = "https://api.zotero.org"
)

// LogseqBin returns the Logseq CLI binary from ZOTSYNC_LOGSEQ_BIN,
// falling back to "logseq" on PATH.
func LogseqBin() string {
	if env := os.Getenv("ZOTSYNC_LOGSEQ_BIN"); env != "" {
		return env
	}
	return defaultLogseqBin
}

// ZoteroProperty returns the Logseq user property holding Zotero URLs,
// from ZOTSYNC_ZOTERO_PROPERTY. The default matches the property ID the
// Logseq Zotero integration generates.
func ZoteroProperty() string {
	if env := os.Getenv("ZOTSYNC_ZOTERO_PROPERTY"); env != "" {
		return env
	}
	return defaultZoteroProperty
}

// ZoteroAPI returns the Zotero Web API base URL from ZOTSYNC_ZOTERO_API,
// falling back to the hosted service.
func ZoteroAPI() string {
	if env := os.Getenv("ZOTSYNC_ZOTERO_API"); env != "" {
		return env
	}
	return defaultZoteroAPI
}

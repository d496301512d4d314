package commands

import (
	"context"

	"zotsync/internal/application"
	"zotsync/internal/domain"
	"zotsync/internal/ports"
)

// TagProgressFunc receives each per-item result as the batch runs.
// index is 1-based; total is the batch size.
type TagProgressFunc func(index, total int, res domain.TagResult)

// TagItemsCommand applies one tag to every item in a work set. Per-item
// failures are recorded and the batch continues; it never aborts early.
type TagItemsCommand struct {
	library ports.Library
	Tag     string
	Keys    domain.KeySet

	// Progress, when set, is called after each item is processed.
	Progress TagProgressFunc
}

// NewTagItemsCommand creates a new TagItemsCommand
func NewTagItemsCommand(library ports.Library, tag string, keys domain.KeySet) *TagItemsCommand {
	return &TagItemsCommand{
		library: library,
		Tag:     tag,
		Keys:    keys,
	}
}

// Validate checks the command has a tag to apply.
func (c *TagItemsCommand) Validate() error {
	if c.Tag == "" {
		return &application.ValidationError{
			Field:   "tag",
			Message: "tag name is required",
		}
	}
	return nil
}

// Execute processes the work set in sorted order and returns the report.
// The returned error covers command misuse only; remote failures live in
// the report.
func (c *TagItemsCommand) Execute(ctx context.Context) (*domain.TagReport, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	report := &domain.TagReport{}
	keys := c.Keys.Sorted()
	for i, key := range keys {
		res := c.tagOne(key)
		report.Record(res)
		if c.Progress != nil {
			c.Progress(i+1, len(keys), res)
		}
	}
	return report, nil
}

// tagOne performs the read-modify-write for a single item. There is no
// optimistic-concurrency retry: a concurrent external edit between read and
// write is last-writer-wins.
func (c *TagItemsCommand) tagOne(key string) domain.TagResult {
	item, err := c.library.Item(key)
	if err != nil {
		return domain.TagResult{Key: key, Status: domain.StatusFailed, Err: err.Error()}
	}

	if item.Data.HasTag(c.Tag) {
		return domain.TagResult{Key: key, Title: item.Data.Title(), Status: domain.StatusAlreadyTagged}
	}

	item.Data.AddTag(c.Tag)
	if err := c.library.UpdateItem(item); err != nil {
		return domain.TagResult{Key: key, Status: domain.StatusFailed, Err: err.Error()}
	}
	return domain.TagResult{Key: key, Title: item.Data.Title(), Status: domain.StatusTagged}
}

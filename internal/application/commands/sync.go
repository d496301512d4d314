package commands

import (
	"context"
	"fmt"

	"zotsync/internal/domain"
	"zotsync/internal/ports"
)

// SyncResult contains the result of one reconciliation run.
type SyncResult struct {
	Graph       string
	LocalCount  int // keys referenced in the graph
	TaggedCount int // keys already tagged in the library
	WorkSet     domain.KeySet
	Report      *domain.TagReport // nil when nothing needed tagging or DryRun
}

// NothingToDo reports whether the run found no keys needing the tag.
func (r *SyncResult) NothingToDo() bool {
	return r.WorkSet.Len() == 0
}

// OK reports whether every attempted tag write succeeded.
func (r *SyncResult) OK() bool {
	return r.Report == nil || r.Report.OK()
}

// SyncCommand runs the full pipeline: resolve graph, extract local
// references, read remote-tagged keys, diff, and tag the difference.
// Each stage is sequential; a stage failing before the write phase is fatal
// for the whole run.
type SyncCommand struct {
	source  ports.GraphSource
	library ports.Library
	Tag     string

	// Graph is the explicit graph name; empty means auto-detect.
	Graph string

	// DryRun computes the work set but issues no writes.
	DryRun bool

	// Progress, when set, receives stage-level status lines.
	Progress func(format string, args ...any)

	// OnWorkSet, when set, is called with the computed work set before any
	// write is issued.
	OnWorkSet func(work domain.KeySet)

	// TagProgress is forwarded to the tag-write batch.
	TagProgress TagProgressFunc
}

// NewSyncCommand creates a new SyncCommand
func NewSyncCommand(source ports.GraphSource, library ports.Library, tag string) *SyncCommand {
	return &SyncCommand{
		source:  source,
		library: library,
		Tag:     tag,
	}
}

func (c *SyncCommand) progress(format string, args ...any) {
	if c.Progress != nil {
		c.Progress(format, args...)
	}
}

// Execute runs the pipeline. The returned error is a fatal pipeline error;
// per-item write failures are reported through SyncResult.Report instead.
func (c *SyncCommand) Execute(ctx context.Context) (*SyncResult, error) {
	graph := c.Graph
	if graph == "" {
		detected, err := c.source.DefaultGraph()
		if err != nil {
			return nil, err
		}
		graph = detected
	}

	c.progress("Querying Logseq graph: %s", graph)
	local, err := c.source.ItemKeys(graph)
	if err != nil {
		return nil, fmt.Errorf("querying Logseq: %w", err)
	}
	c.progress("Found %d items in Logseq with Zotero URLs", local.Len())

	c.progress("Querying Zotero for items with %q tag...", c.Tag)
	tagged, err := c.library.KeysWithTag(c.Tag)
	if err != nil {
		return nil, fmt.Errorf("querying Zotero: %w", err)
	}
	c.progress("Found %d items already tagged with %q", tagged.Len(), c.Tag)

	result := &SyncResult{
		Graph:       graph,
		LocalCount:  local.Len(),
		TaggedCount: tagged.Len(),
		WorkSet:     local.Diff(tagged),
	}

	if c.OnWorkSet != nil {
		c.OnWorkSet(result.WorkSet)
	}

	if result.NothingToDo() || c.DryRun {
		return result, nil
	}

	tagCmd := NewTagItemsCommand(c.library, c.Tag, result.WorkSet)
	tagCmd.Progress = c.TagProgress
	report, err := tagCmd.Execute(ctx)
	if err != nil {
		return nil, err
	}
	result.Report = report

	return result, nil
}

package domain

// TagStatus classifies the outcome of one tag-write attempt.
type TagStatus int

const (
	// StatusTagged means the tag was appended and the item written back.
	StatusTagged TagStatus = iota
	// StatusAlreadyTagged means the fetched item already carried the tag,
	// so no write was issued. Counts as success.
	StatusAlreadyTagged
	// StatusFailed means the fetch or the update for this item errored.
	StatusFailed
)

// TagResult is the outcome for a single item key. Failures are carried as
// values, not raised, so a batch outcome stays explicit and testable.
type TagResult struct {
	Key    string
	Title  string // item title when the fetch succeeded, for display
	Status TagStatus
	Err    string // error message when Status is StatusFailed
}

// TagReport accumulates per-item results for one tag-write batch.
type TagReport struct {
	Results []TagResult
}

// Record appends one result to the report.
func (r *TagReport) Record(res TagResult) {
	r.Results = append(r.Results, res)
}

// Successful counts items that were tagged or already carried the tag.
func (r *TagReport) Successful() int {
	n := 0
	for _, res := range r.Results {
		if res.Status != StatusFailed {
			n++
		}
	}
	return n
}

// Failed counts items whose fetch or update errored.
func (r *TagReport) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Status == StatusFailed {
			n++
		}
	}
	return n
}

// Failures returns the failed results in batch order.
func (r *TagReport) Failures() []TagResult {
	var out []TagResult
	for _, res := range r.Results {
		if res.Status == StatusFailed {
			out = append(out, res)
		}
	}
	return out
}

// OK reports whether every item in the batch succeeded.
func (r *TagReport) OK() bool {
	return r.Failed() == 0
}

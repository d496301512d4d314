package commands

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"zotsync/internal/domain"
)

func TestTagItemsCommand_Validate(t *testing.T) {
	cmd := NewTagItemsCommand(newFakeLibrary(), "", domain.NewKeySet("AAA"))
	if err := cmd.Validate(); err == nil {
		t.Error("expected error for empty tag")
	}

	cmd = NewTagItemsCommand(newFakeLibrary(), "in_logseq", domain.NewKeySet())
	if err := cmd.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestTagItemsCommand_TagsUntaggedItems(t *testing.T) {
	lib := newFakeLibrary(
		libraryItem("AAA111", "First Paper"),
		libraryItem("BBB222", "Second Paper", "reading"),
	)

	cmd := NewTagItemsCommand(lib, "in_logseq", domain.NewKeySet("AAA111", "BBB222"))
	report, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Successful() != 2 || report.Failed() != 0 {
		t.Errorf("got %d/%d successful/failed, want 2/0", report.Successful(), report.Failed())
	}
	for _, key := range []string{"AAA111", "BBB222"} {
		if !lib.items[key].Data.HasTag("in_logseq") {
			t.Errorf("%s not tagged after run", key)
		}
	}
	// The existing tag on BBB222 must survive the read-modify-write.
	if !lib.items["BBB222"].Data.HasTag("reading") {
		t.Error("pre-existing tag lost on BBB222")
	}
}

func TestTagItemsCommand_PartialFailureIsolation(t *testing.T) {
	lib := newFakeLibrary(
		libraryItem("AAA111", "First"),
		libraryItem("CCC333", "Third"),
	)
	lib.fetchErr["BBB222"] = errors.New("item no longer exists")

	cmd := NewTagItemsCommand(lib, "in_logseq", domain.NewKeySet("AAA111", "BBB222", "CCC333"))
	report, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Successful() != 2 {
		t.Errorf("Successful() = %d, want 2", report.Successful())
	}
	if report.Failed() != 1 {
		t.Errorf("Failed() = %d, want 1", report.Failed())
	}

	failures := report.Failures()
	if len(failures) != 1 || failures[0].Key != "BBB222" {
		t.Fatalf("Failures() = %v, want exactly BBB222", failures)
	}
	if failures[0].Err != "item no longer exists" {
		t.Errorf("failure message = %q", failures[0].Err)
	}

	// The third item must still have been attempted after the failure.
	want := []string{"AAA111", "BBB222", "CCC333"}
	if !reflect.DeepEqual(lib.fetched, want) {
		t.Errorf("fetched = %v, want %v", lib.fetched, want)
	}
	if !lib.items["CCC333"].Data.HasTag("in_logseq") {
		t.Error("CCC333 not tagged")
	}
}

func TestTagItemsCommand_UpdateFailureRecorded(t *testing.T) {
	lib := newFakeLibrary(
		libraryItem("AAA111", "First"),
		libraryItem("BBB222", "Second"),
	)
	lib.updateErr["AAA111"] = errors.New("412 Precondition Failed")

	cmd := NewTagItemsCommand(lib, "in_logseq", domain.NewKeySet("AAA111", "BBB222"))
	report, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Failed() != 1 || report.Successful() != 1 {
		t.Errorf("got %d/%d successful/failed, want 1/1", report.Successful(), report.Failed())
	}
	if report.OK() {
		t.Error("OK() = true with an update failure")
	}
}

func TestTagItemsCommand_AlreadyTaggedShortCircuit(t *testing.T) {
	lib := newFakeLibrary(libraryItem("AAA111", "First", "in_logseq"))

	cmd := NewTagItemsCommand(lib, "in_logseq", domain.NewKeySet("AAA111"))
	report, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Successful() != 1 || report.Failed() != 0 {
		t.Errorf("got %d/%d successful/failed, want 1/0", report.Successful(), report.Failed())
	}
	if report.Results[0].Status != domain.StatusAlreadyTagged {
		t.Errorf("status = %v, want StatusAlreadyTagged", report.Results[0].Status)
	}
	if len(lib.updated) != 0 {
		t.Errorf("update calls = %v, want none", lib.updated)
	}
}

func TestTagItemsCommand_SecondRunIsIdempotent(t *testing.T) {
	lib := newFakeLibrary(
		libraryItem("AAA111", "First"),
		libraryItem("BBB222", "Second"),
	)
	keys := domain.NewKeySet("AAA111", "BBB222")

	first, err := NewTagItemsCommand(lib, "in_logseq", keys).Execute(context.Background())
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first.Successful() != 2 || first.Failed() != 0 {
		t.Fatalf("first run: %d/%d successful/failed", first.Successful(), first.Failed())
	}
	writesAfterFirst := len(lib.updated)

	second, err := NewTagItemsCommand(lib, "in_logseq", keys).Execute(context.Background())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if second.Successful() != 2 || second.Failed() != 0 {
		t.Errorf("second run: %d/%d successful/failed, want 2/0", second.Successful(), second.Failed())
	}
	for _, res := range second.Results {
		if res.Status != domain.StatusAlreadyTagged {
			t.Errorf("%s status = %v, want StatusAlreadyTagged", res.Key, res.Status)
		}
	}
	if len(lib.updated) != writesAfterFirst {
		t.Errorf("second run issued %d writes, want 0", len(lib.updated)-writesAfterFirst)
	}
}

func TestTagItemsCommand_ProcessesInSortedOrder(t *testing.T) {
	lib := newFakeLibrary(
		libraryItem("ZZZ999", "Z"),
		libraryItem("AAA111", "A"),
		libraryItem("MMM555", "M"),
	)

	var seen []string
	cmd := NewTagItemsCommand(lib, "in_logseq", domain.NewKeySet("ZZZ999", "AAA111", "MMM555"))
	cmd.Progress = func(i, n int, res domain.TagResult) {
		seen = append(seen, res.Key)
		if n != 3 {
			t.Errorf("total = %d, want 3", n)
		}
		if i != len(seen) {
			t.Errorf("index = %d, want %d", i, len(seen))
		}
	}

	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"AAA111", "MMM555", "ZZZ999"}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("order = %v, want %v", seen, want)
	}
}

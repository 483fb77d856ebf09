package catalog_test

import (
	"errors"
	"reflect"
	"testing"

	"satchel/internal/catalog"
)

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := catalog.NewID()
		if id == "" {
			t.Fatal("expected non-empty id")
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = struct{}{}
	}
}

func TestInsertPrepends(t *testing.T) {
	records := []catalog.Recording{{ID: "old", Name: "old", URI: "/x/old"}}
	out := catalog.Insert(records, catalog.Recording{ID: "new", Name: "new", URI: "/x/new"})
	if len(out) != 2 || out[0].ID != "new" || out[1].ID != "old" {
		t.Fatalf("expected most-recent-first order, got %#v", out)
	}
	if len(records) != 1 {
		t.Fatalf("expected input untouched, got %#v", records)
	}
}

func TestResolveNameSuffixes(t *testing.T) {
	records := []catalog.Recording{
		{ID: "1", Name: "Take", URI: "/x/1"},
	}
	if got := catalog.ResolveName(records, "Other"); got != "Other" {
		t.Fatalf("unique name should pass through, got %q", got)
	}
	if got := catalog.ResolveName(records, "Take"); got != "Take (1)" {
		t.Fatalf("expected first suffix, got %q", got)
	}

	records = append(records, catalog.Recording{ID: "2", Name: "Take (1)", URI: "/x/2"})
	if got := catalog.ResolveName(records, "Take"); got != "Take (2)" {
		t.Fatalf("expected second suffix, got %q", got)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	records := []catalog.File{
		{ID: "1", Name: "a.pdf", URI: "/x/a", Type: "application/pdf", Date: "2025-01-01T00:00:00Z"},
	}
	out, removed, ok := catalog.Remove(records, "1")
	if !ok || removed.ID != "1" || len(out) != 0 {
		t.Fatalf("expected removal, got ok=%v out=%#v", ok, out)
	}

	before := make([]catalog.File, len(records))
	copy(before, records)
	out, _, ok = catalog.Remove(records, "missing")
	if ok {
		t.Fatal("expected no-op for unknown id")
	}
	if !reflect.DeepEqual(out, before) {
		t.Fatalf("expected catalog unchanged, got %#v", out)
	}
}

func TestRenamePreservesPositionAndURI(t *testing.T) {
	records := []catalog.Recording{
		{ID: "1", Name: "first", URI: "/x/1"},
		{ID: "2", Name: "second", URI: "/x/2"},
		{ID: "3", Name: "third", URI: "/x/3"},
	}
	out, renamed, err := catalog.Rename(records, "2", "renamed")
	if err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	if renamed.Name != "renamed" || renamed.URI != "/x/2" {
		t.Fatalf("unexpected renamed record %#v", renamed)
	}
	if out[1].ID != "2" || out[1].Name != "renamed" {
		t.Fatalf("expected in-place rename, got %#v", out)
	}
	if records[1].Name != "second" {
		t.Fatalf("expected input untouched, got %#v", records[1])
	}
}

func TestRenameUnknownID(t *testing.T) {
	records := []catalog.Recording{{ID: "1", Name: "a", URI: "/x/1"}}
	_, _, err := catalog.Rename(records, "nope", "new")
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRenameRejectsBlankName(t *testing.T) {
	records := []catalog.Recording{{ID: "1", Name: "a", URI: "/x/1"}}
	if _, _, err := catalog.Rename(records, "1", "   "); err == nil {
		t.Fatal("expected error for blank name")
	}
}

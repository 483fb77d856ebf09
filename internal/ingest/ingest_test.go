package ingest_test

import (
	"path/filepath"
	"testing"
	"time"

	"satchel/internal/ingest"
	"satchel/internal/testsupport"
)

func TestInspectBuildsCandidate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.pdf")
	testsupport.WriteFile(t, path, 2048)

	candidate, err := ingest.Inspect(path)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if candidate.Path != path {
		t.Fatalf("expected absolute path %s, got %s", path, candidate.Path)
	}
	if candidate.SuggestedName != "report.pdf" {
		t.Fatalf("unexpected suggested name %q", candidate.SuggestedName)
	}
	if candidate.MIMEType != "application/pdf" {
		t.Fatalf("unexpected mime type %q", candidate.MIMEType)
	}
	if candidate.SizeHint != 2048 {
		t.Fatalf("unexpected size hint %d", candidate.SizeHint)
	}
}

func TestInspectMissingFile(t *testing.T) {
	if _, err := ingest.Inspect(filepath.Join(t.TempDir(), "nope.pdf")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestInspectDirectory(t *testing.T) {
	if _, err := ingest.Inspect(t.TempDir()); err == nil {
		t.Fatal("expected error for directory")
	}
}

func TestInspectUntaggedAudioFallsBackToFileName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "voice memo.m4a")
	testsupport.WriteFile(t, path, 128)

	candidate, err := ingest.Inspect(path)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if candidate.MIMEType != "audio/mp4" {
		t.Fatalf("unexpected mime type %q", candidate.MIMEType)
	}
	if candidate.SuggestedName != "voice memo.m4a" {
		t.Fatalf("unexpected suggested name %q", candidate.SuggestedName)
	}
}

func TestTypeByPath(t *testing.T) {
	cases := []struct {
		path string
		mime string
	}{
		{"/x/sheet.xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
		{"/x/data.csv", "text/csv"},
		{"/x/letter.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		{"/x/clip.MOV", "video/quicktime"},
		{"/x/scan.pdf", "application/pdf"},
		{"/x/noext", "unknown"},
		{"/x/blob.xyzzy", "unknown"},
	}
	for _, tc := range cases {
		if got := ingest.TypeByPath(tc.path); got != tc.mime {
			t.Errorf("TypeByPath(%q) = %q, want %q", tc.path, got, tc.mime)
		}
	}
}

func TestDurationLabel(t *testing.T) {
	if got := ingest.DurationLabel(4900 * time.Millisecond); got != "5 sec" {
		t.Fatalf("expected rounded label, got %q", got)
	}
	if got := ingest.DurationLabel(0); got != "0 sec" {
		t.Fatalf("expected zero label, got %q", got)
	}
	if got := ingest.DurationLabel(-time.Second); got != "Unknown" {
		t.Fatalf("expected Unknown for negative, got %q", got)
	}
}

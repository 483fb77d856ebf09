package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"satchel/internal/catalog"
	"satchel/internal/config"
	"satchel/internal/library"
	"satchel/internal/logging"
	"satchel/internal/testsupport"
)

// withTestLibrary opens the vault directly, outside any CLI invocation, so
// tests can look up record ids. The library is closed before returning to
// release the single-writer lock for the next CLI run.
func withTestLibrary(t *testing.T, env *cliTestEnv, fn func(context.Context, *library.Library)) {
	t.Helper()

	cfg, _, _, err := config.Load(env.configPath)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	lib, err := library.Open(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("open library: %v", err)
	}
	defer func() {
		if err := lib.Close(); err != nil {
			t.Fatalf("close library: %v", err)
		}
	}()

	fn(context.Background(), lib)
}

func TestFileAddListSearchDelete(t *testing.T) {
	env := setupCLITestEnv(t)

	src := filepath.Join(env.baseDir, "report.pdf")
	testsupport.WriteFile(t, src, 2048)

	out, err := runCLI(t, "file", "add", src)
	if err != nil {
		t.Fatalf("file add: %v", err)
	}
	requireContains(t, out, "Imported \"report.pdf\" as PDF")

	out, err = runCLI(t, "file", "list")
	if err != nil {
		t.Fatalf("file list: %v", err)
	}
	requireContains(t, out, "report.pdf")
	requireContains(t, out, "PDF")

	out, err = runCLI(t, "search", "pdf")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	requireContains(t, out, "report.pdf")

	out, err = runCLI(t, "search", "zzz-no-match")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	requireContains(t, out, "Nothing matches")

	var id string
	withTestLibrary(t, env, func(ctx context.Context, lib *library.Library) {
		files, err := lib.Files().List(ctx)
		if err != nil {
			t.Fatalf("list files: %v", err)
		}
		if len(files) != 1 {
			t.Fatalf("expected one file, got %+v", files)
		}
		id = files[0].ID
	})

	out, err = runCLI(t, "file", "delete", id)
	if err != nil {
		t.Fatalf("file delete: %v", err)
	}
	requireContains(t, out, "Deleted file")

	out, err = runCLI(t, "file", "list")
	if err != nil {
		t.Fatalf("file list: %v", err)
	}
	requireContains(t, out, "No files")
}

func TestRecordingCaptureRenamePlay(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, "recording", "capture", "--name", "Standup notes", "--seconds", "2")
	if err != nil {
		t.Fatalf("recording capture: %v", err)
	}
	requireContains(t, out, "Saved recording \"Standup notes\"")

	var rec catalog.Recording
	withTestLibrary(t, env, func(ctx context.Context, lib *library.Library) {
		records, err := lib.Recordings().List(ctx)
		if err != nil {
			t.Fatalf("list recordings: %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("expected one recording, got %+v", records)
		}
		rec = records[0]
	})

	out, err = runCLI(t, "recording", "rename", shortID(rec.ID), "Standup 2026-08-28")
	if err != nil {
		t.Fatalf("recording rename: %v", err)
	}
	requireContains(t, out, "Renamed recording")

	out, err = runCLI(t, "recording", "play", rec.ID)
	if err != nil {
		t.Fatalf("recording play: %v", err)
	}
	requireContains(t, out, rec.URI)

	// Remove the bytes behind the catalog's back; play reports and drops it.
	if err := os.Remove(rec.URI); err != nil {
		t.Fatal(err)
	}
	if _, err := runCLI(t, "recording", "play", rec.ID); err == nil {
		t.Fatal("expected play of missing recording to fail")
	}

	out, err = runCLI(t, "recording", "list")
	if err != nil {
		t.Fatalf("recording list: %v", err)
	}
	requireContains(t, out, "No recordings")
}

func TestCaptureDuplicateNamesGetSuffixes(t *testing.T) {
	setupCLITestEnv(t)

	for i := 0; i < 2; i++ {
		if _, err := runCLI(t, "recording", "capture", "--name", "Take", "--seconds", "1"); err != nil {
			t.Fatalf("recording capture: %v", err)
		}
	}

	out, err := runCLI(t, "recording", "list")
	if err != nil {
		t.Fatalf("recording list: %v", err)
	}
	requireContains(t, out, "Take")
	requireContains(t, out, "Take (1)")
}

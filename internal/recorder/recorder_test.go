package recorder_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"satchel/internal/config"
	"satchel/internal/recorder"
)

// stubBinary writes a shell script that drops some bytes into its last
// argument, standing in for a real capture tool.
func stubBinary(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fakerec")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRecordProducesFile(t *testing.T) {
	stub := stubBinary(t, "#!/bin/sh\nfor last; do :; done\nprintf 'audio-bytes' > \"$last\"\n")
	rec := recorder.New(config.Recorder{Binary: stub, Device: "default", Format: "m4a", MaxSeconds: 30}, discardLogger())

	capture, err := rec.Record(context.Background(), t.TempDir(), 5)
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if !strings.HasSuffix(capture.Path, ".m4a") {
		t.Fatalf("unexpected capture path %s", capture.Path)
	}
	data, err := os.ReadFile(capture.Path)
	if err != nil || string(data) != "audio-bytes" {
		t.Fatalf("unexpected capture contents %q err=%v", data, err)
	}
	if capture.Elapsed <= 0 {
		t.Fatal("expected positive elapsed duration")
	}
}

func TestRecordFailsWhenToolExitsNonzero(t *testing.T) {
	stub := stubBinary(t, "#!/bin/sh\necho 'device busy' >&2\nexit 1\n")
	rec := recorder.New(config.Recorder{Binary: stub, Device: "default", Format: "m4a", MaxSeconds: 30}, discardLogger())

	if _, err := rec.Record(context.Background(), t.TempDir(), 5); err == nil {
		t.Fatal("expected failure from nonzero exit")
	}
}

func TestRecordRejectsEmptyOutput(t *testing.T) {
	stub := stubBinary(t, "#!/bin/sh\nfor last; do :; done\n: > \"$last\"\n")
	rec := recorder.New(config.Recorder{Binary: stub, Device: "default", Format: "m4a", MaxSeconds: 30}, discardLogger())

	if _, err := rec.Record(context.Background(), t.TempDir(), 5); err == nil {
		t.Fatal("expected empty capture to be rejected")
	}
}

func TestRecordMissingBinary(t *testing.T) {
	rec := recorder.New(config.Recorder{Binary: "satchel-no-such-tool", Device: "default", Format: "m4a", MaxSeconds: 30}, discardLogger())
	if err := rec.Available(); err == nil {
		t.Fatal("expected missing binary to be reported")
	}
	if _, err := rec.Record(context.Background(), t.TempDir(), 5); err == nil {
		t.Fatal("expected Record to fail without the binary")
	}
}

package testsupport

import (
	"path/filepath"
	"testing"

	"satchel/internal/config"
)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "vault")
	cfg.Paths.RecordingsDir = filepath.Join(base, "vault", "recordings")
	cfg.Paths.FilesDir = filepath.Join(base, "vault", "files")
	cfg.Paths.LogDir = filepath.Join(base, "vault", "logs")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}

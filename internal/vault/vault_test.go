package vault_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"satchel/internal/testsupport"
	"satchel/internal/vault"
)

func TestStatMissingFile(t *testing.T) {
	acc := vault.New()
	info, err := acc.Stat(context.Background(), filepath.Join(t.TempDir(), "nope.bin"))
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Exists {
		t.Fatal("expected missing file")
	}
}

func TestStatReportsSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clip.m4a")
	testsupport.WriteFile(t, path, 4096)

	acc := vault.New()
	info, err := acc.Stat(context.Background(), path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if !info.Exists || !info.SizeKnown || info.Size != 4096 {
		t.Fatalf("unexpected info: %+v", info)
	}
}

func TestStatDirectoryHasNoSize(t *testing.T) {
	acc := vault.New()
	info, err := acc.Stat(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if !info.Exists || info.SizeKnown {
		t.Fatalf("expected existing dir without size, got %+v", info)
	}
}

func TestWriteCreatesParents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deep", "note.txt")

	acc := vault.New()
	if err := acc.Write(context.Background(), path, []byte("hello")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "hello" {
		t.Fatalf("unexpected contents %q err=%v", data, err)
	}
}

func TestCopyVerifies(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.pdf")
	dst := filepath.Join(dir, "vault", "dst.pdf")
	testsupport.WriteFile(t, src, 64*1024)

	acc := vault.New()
	if err := acc.Copy(context.Background(), src, dst); err != nil {
		t.Fatalf("Copy failed: %v", err)
	}

	srcData, _ := os.ReadFile(src)
	dstData, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read dst: %v", err)
	}
	if len(srcData) != len(dstData) {
		t.Fatalf("size mismatch: %d vs %d", len(srcData), len(dstData))
	}
}

func TestCopyMissingSource(t *testing.T) {
	dir := t.TempDir()
	acc := vault.New()
	err := acc.Copy(context.Background(), filepath.Join(dir, "missing"), filepath.Join(dir, "dst"))
	if err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gone.bin")
	testsupport.WriteFile(t, path, 1)

	acc := vault.New()
	if err := acc.Delete(context.Background(), path); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := acc.Delete(context.Background(), path); err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
}

func TestFreeSpace(t *testing.T) {
	free, err := vault.FreeSpace(t.TempDir())
	if err != nil {
		t.Fatalf("FreeSpace failed: %v", err)
	}
	if free == 0 {
		t.Fatal("expected nonzero free space in temp dir")
	}
}

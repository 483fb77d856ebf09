package vault

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"satchel/internal/catalog"
)

// Accessor performs byte storage operations against the device filesystem.
// It is the only component that touches record bytes; the catalog protocol
// sees it through the narrow stat/write/copy/delete surface.
type Accessor struct{}

// New returns a filesystem accessor.
func New() Accessor {
	return Accessor{}
}

// Stat reports whether path exists and its size when known. Directories
// exist but have no meaningful size for catalog purposes.
func (Accessor) Stat(ctx context.Context, path string) (catalog.Info, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Info{}, err
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return catalog.Info{Exists: false}, nil
		}
		return catalog.Info{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return catalog.Info{Exists: true}, nil
	}
	return catalog.Info{Exists: true, Size: info.Size(), SizeKnown: true}, nil
}

// Write places data at path, creating parent directories as needed.
func (Accessor) Write(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Copy streams src to dst with SHA256 + size integrity verification,
// creating parent directories as needed. Removes dst on mismatch.
func (Accessor) Copy(ctx context.Context, src, dst string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}
	srcSize := srcInfo.Size()

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", dst, err)
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	srcHasher := sha256.New()
	dstHasher := sha256.New()
	tee := io.TeeReader(in, srcHasher)
	multi := io.MultiWriter(out, dstHasher)

	written, err := io.Copy(multi, tee)
	if err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if written != srcSize {
		_ = os.Remove(dst)
		return fmt.Errorf("copy size mismatch: source %d bytes, copied %d bytes", srcSize, written)
	}

	if !bytes.Equal(srcHasher.Sum(nil), dstHasher.Sum(nil)) {
		_ = os.Remove(dst)
		return fmt.Errorf("copy hash mismatch: file corrupted during copy")
	}

	return nil
}

// Delete removes the bytes at path. A path that is already gone is not an
// error; storage reclamation is best-effort.
func (Accessor) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return nil
}

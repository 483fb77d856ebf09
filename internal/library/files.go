package library

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"satchel/internal/catalog"
	"satchel/internal/ingest"
	"satchel/internal/vault"
)

// Files operates on the imported document catalog.
type Files struct {
	lib *Library
}

// List returns the file catalog after reconciling it against the vault.
func (f *Files) List(ctx context.Context) ([]catalog.File, error) {
	return reconcileCatalog(ctx, f.lib, catalog.KeyFiles, catalog.DecodeFiles, catalog.EncodeFiles)
}

// Search filters the reconciled catalog with a case-insensitive substring
// query over names and derived type labels.
func (f *Files) Search(ctx context.Context, query string) ([]catalog.File, error) {
	files, err := f.List(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Filter(files, query), nil
}

// Import copies a candidate into the vault and catalogs it at the front,
// stamped with the import date. An optional name overrides the candidate's
// suggestion. A copy or save failure leaves the catalog untouched.
func (f *Files) Import(ctx context.Context, cand ingest.Candidate, name string) (catalog.File, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = cand.SuggestedName
	}
	if name == "" {
		return catalog.File{}, errors.New("import file: name must not be empty")
	}

	if err := f.preflightSpace(cand.SizeHint); err != nil {
		return catalog.File{}, err
	}

	files, err := loadCatalog(ctx, f.lib, catalog.KeyFiles, catalog.DecodeFiles)
	if err != nil {
		return catalog.File{}, err
	}

	id := catalog.NewID()
	dst := filepath.Join(f.lib.cfg.Paths.FilesDir, id+strings.ToLower(filepath.Ext(cand.Path)))
	if err := f.lib.vault.Copy(ctx, cand.Path, dst); err != nil {
		return catalog.File{}, fmt.Errorf("store file bytes: %w", err)
	}

	info, err := f.lib.vault.Stat(ctx, dst)
	if err != nil || !info.Exists {
		_ = f.lib.vault.Delete(ctx, dst)
		if err == nil {
			err = errors.New("copy vanished")
		}
		return catalog.File{}, fmt.Errorf("verify file bytes: %w", err)
	}

	file := catalog.File{
		ID:   id,
		Name: name,
		URI:  dst,
		Type: cand.MIMEType,
		Date: time.Now().UTC().Format("2006-01-02"),
	}
	if info.SizeKnown {
		file = file.WithSize(info.Size)
	}

	if err := saveCatalog(ctx, f.lib, catalog.KeyFiles, catalog.Insert(files, file), catalog.EncodeFiles); err != nil {
		_ = f.lib.vault.Delete(ctx, dst)
		return catalog.File{}, err
	}

	f.lib.logger.Info("file imported", "id", file.ID, "name", file.Name, "type", file.Type)
	return file, nil
}

// preflightSpace rejects imports that cannot fit on the vault filesystem.
// An unreadable free-space figure does not block the import.
func (f *Files) preflightSpace(sizeHint int64) error {
	if sizeHint <= 0 {
		return nil
	}
	free, err := vault.FreeSpace(f.lib.cfg.Paths.FilesDir)
	if err != nil {
		f.lib.logger.Warn("free space check unavailable", "dir", f.lib.cfg.Paths.FilesDir, "error", err)
		return nil
	}
	if free < uint64(sizeHint) {
		return fmt.Errorf("import file: %d bytes needed but only %d free in vault", sizeHint, free)
	}
	return nil
}

// Delete removes the record and then its bytes. Unknown ids are a no-op with
// ok=false. The catalog removal sticks even when byte deletion fails.
func (f *Files) Delete(ctx context.Context, id string) (catalog.File, bool, error) {
	files, err := loadCatalog(ctx, f.lib, catalog.KeyFiles, catalog.DecodeFiles)
	if err != nil {
		return catalog.File{}, false, err
	}

	remaining, removed, ok := catalog.Remove(files, id)
	if !ok {
		return catalog.File{}, false, nil
	}
	if err := saveCatalog(ctx, f.lib, catalog.KeyFiles, remaining, catalog.EncodeFiles); err != nil {
		return catalog.File{}, false, err
	}
	if err := f.lib.vault.Delete(ctx, removed.URI); err != nil {
		f.lib.logger.Warn("file bytes not removed", "id", id, "path", removed.URI, "error", err)
	}
	return removed, true, nil
}

// Rename replaces the display name, keeping the record's position and stored
// path. Returns catalog.ErrNotFound for unknown ids.
func (f *Files) Rename(ctx context.Context, id, newName string) (catalog.File, error) {
	files, err := loadCatalog(ctx, f.lib, catalog.KeyFiles, catalog.DecodeFiles)
	if err != nil {
		return catalog.File{}, err
	}

	renamed, file, err := catalog.Rename(files, id, newName)
	if err != nil {
		return catalog.File{}, err
	}
	if err := saveCatalog(ctx, f.lib, catalog.KeyFiles, renamed, catalog.EncodeFiles); err != nil {
		return catalog.File{}, err
	}
	return file, nil
}

// Resolve verifies the record's bytes before handing it back for opening.
// A record whose bytes are gone is dropped from the catalog and reported with
// a MissingFileError.
func (f *Files) Resolve(ctx context.Context, id string) (catalog.File, error) {
	files, err := loadCatalog(ctx, f.lib, catalog.KeyFiles, catalog.DecodeFiles)
	if err != nil {
		return catalog.File{}, err
	}

	file, ok := catalog.FindByID(files, id)
	if !ok {
		return catalog.File{}, fmt.Errorf("resolve file %s: %w", id, catalog.ErrNotFound)
	}

	info, statErr := f.lib.vault.Stat(ctx, file.URI)
	if statErr == nil && info.Exists {
		return file, nil
	}

	remaining, _, _ := catalog.Remove(files, id)
	if err := saveCatalog(ctx, f.lib, catalog.KeyFiles, remaining, catalog.EncodeFiles); err != nil {
		return catalog.File{}, err
	}
	f.lib.logger.Warn("file missing from vault", "id", file.ID, "path", file.URI)
	return catalog.File{}, &MissingFileError{ID: file.ID, Name: file.Name, Path: file.URI}
}

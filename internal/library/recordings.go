package library

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"satchel/internal/catalog"
)

// Recordings operates on the captured audio catalog.
type Recordings struct {
	lib *Library
}

// List returns the recording catalog after reconciling it against the vault.
func (r *Recordings) List(ctx context.Context) ([]catalog.Recording, error) {
	return reconcileCatalog(ctx, r.lib, catalog.KeyRecordings, catalog.DecodeRecordings, catalog.EncodeRecordings)
}

// Search filters the reconciled catalog with a case-insensitive substring
// query. A blank query returns everything.
func (r *Recordings) Search(ctx context.Context, query string) ([]catalog.Recording, error) {
	records, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Filter(records, query), nil
}

// Add copies a finished capture into the vault and catalogs it at the front.
// Duplicate names pick up a " (n)" suffix. A copy or save failure leaves the
// catalog untouched.
func (r *Recordings) Add(ctx context.Context, src, name, durationLabel string) (catalog.Recording, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return catalog.Recording{}, errors.New("add recording: name must not be empty")
	}
	if strings.TrimSpace(durationLabel) == "" {
		durationLabel = "Unknown"
	}

	records, err := loadCatalog(ctx, r.lib, catalog.KeyRecordings, catalog.DecodeRecordings)
	if err != nil {
		return catalog.Recording{}, err
	}

	id := catalog.NewID()
	dst := filepath.Join(r.lib.cfg.Paths.RecordingsDir, id+strings.ToLower(filepath.Ext(src)))
	if err := r.lib.vault.Copy(ctx, src, dst); err != nil {
		return catalog.Recording{}, fmt.Errorf("store recording bytes: %w", err)
	}

	info, err := r.lib.vault.Stat(ctx, dst)
	if err != nil {
		_ = r.lib.vault.Delete(ctx, dst)
		return catalog.Recording{}, fmt.Errorf("verify recording bytes: %w", err)
	}
	if !info.Exists || (info.SizeKnown && info.Size == 0) {
		_ = r.lib.vault.Delete(ctx, dst)
		return catalog.Recording{}, errors.New("verify recording bytes: capture is empty")
	}

	rec := catalog.Recording{
		ID:       id,
		Name:     catalog.ResolveName(records, name),
		Duration: durationLabel,
		URI:      dst,
	}
	if info.SizeKnown {
		rec = rec.WithSize(info.Size)
	}

	if err := saveCatalog(ctx, r.lib, catalog.KeyRecordings, catalog.Insert(records, rec), catalog.EncodeRecordings); err != nil {
		_ = r.lib.vault.Delete(ctx, dst)
		return catalog.Recording{}, err
	}

	r.lib.logger.Info("recording saved", "id", rec.ID, "name", rec.Name, "duration", rec.Duration)
	return rec, nil
}

// Delete removes the record and then its bytes. Unknown ids are a no-op with
// ok=false. The catalog removal sticks even when byte deletion fails.
func (r *Recordings) Delete(ctx context.Context, id string) (catalog.Recording, bool, error) {
	records, err := loadCatalog(ctx, r.lib, catalog.KeyRecordings, catalog.DecodeRecordings)
	if err != nil {
		return catalog.Recording{}, false, err
	}

	remaining, removed, ok := catalog.Remove(records, id)
	if !ok {
		return catalog.Recording{}, false, nil
	}
	if err := saveCatalog(ctx, r.lib, catalog.KeyRecordings, remaining, catalog.EncodeRecordings); err != nil {
		return catalog.Recording{}, false, err
	}
	if err := r.lib.vault.Delete(ctx, removed.URI); err != nil {
		r.lib.logger.Warn("recording bytes not removed", "id", id, "path", removed.URI, "error", err)
	}
	return removed, true, nil
}

// Rename replaces the display name, keeping the record's position and stored
// path. Returns catalog.ErrNotFound for unknown ids.
func (r *Recordings) Rename(ctx context.Context, id, newName string) (catalog.Recording, error) {
	records, err := loadCatalog(ctx, r.lib, catalog.KeyRecordings, catalog.DecodeRecordings)
	if err != nil {
		return catalog.Recording{}, err
	}

	renamed, rec, err := catalog.Rename(records, id, newName)
	if err != nil {
		return catalog.Recording{}, err
	}
	if err := saveCatalog(ctx, r.lib, catalog.KeyRecordings, renamed, catalog.EncodeRecordings); err != nil {
		return catalog.Recording{}, err
	}
	return rec, nil
}

// Resolve verifies the record's bytes before handing it back for playback.
// A record whose bytes are gone is dropped from the catalog and reported with
// a MissingFileError.
func (r *Recordings) Resolve(ctx context.Context, id string) (catalog.Recording, error) {
	records, err := loadCatalog(ctx, r.lib, catalog.KeyRecordings, catalog.DecodeRecordings)
	if err != nil {
		return catalog.Recording{}, err
	}

	rec, ok := catalog.FindByID(records, id)
	if !ok {
		return catalog.Recording{}, fmt.Errorf("resolve recording %s: %w", id, catalog.ErrNotFound)
	}

	info, statErr := r.lib.vault.Stat(ctx, rec.URI)
	if statErr == nil && info.Exists {
		return rec, nil
	}

	remaining, _, _ := catalog.Remove(records, id)
	if err := saveCatalog(ctx, r.lib, catalog.KeyRecordings, remaining, catalog.EncodeRecordings); err != nil {
		return catalog.Recording{}, err
	}
	r.lib.logger.Warn("recording missing from vault", "id", rec.ID, "path", rec.URI)
	return catalog.Recording{}, &MissingFileError{ID: rec.ID, Name: rec.Name, Path: rec.URI}
}

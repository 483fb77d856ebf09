package library

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gofrs/flock"

	"satchel/internal/catalog"
	"satchel/internal/config"
	"satchel/internal/kvstore"
	"satchel/internal/vault"
)

// Library owns exclusive access to the vault: the catalog store, the byte
// store, and the process lock that keeps a second satchel from racing saves.
// Handles obtained from it are not goroutine-safe.
type Library struct {
	cfg    *config.Config
	store  *kvstore.Store
	vault  vault.Accessor
	lock   *flock.Flock
	logger *slog.Logger
}

// Open acquires the vault lock and connects the catalog store. It fails fast
// when another process already holds the lock.
func Open(cfg *config.Config, logger *slog.Logger) (*Library, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	lock := flock.New(cfg.LockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire vault lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("vault is in use by another process (lock file %s)", cfg.LockPath())
	}

	store, err := kvstore.Open(cfg)
	if err != nil {
		_ = lock.Unlock()
		return nil, err
	}

	return &Library{
		cfg:    cfg,
		store:  store,
		vault:  vault.New(),
		lock:   lock,
		logger: logger.With("component", "library"),
	}, nil
}

// Close releases the catalog store and the vault lock.
func (l *Library) Close() error {
	err := l.store.Close()
	if unlockErr := l.lock.Unlock(); unlockErr != nil && err == nil {
		err = unlockErr
	}
	return err
}

// Store exposes the catalog store for diagnostics.
func (l *Library) Store() *kvstore.Store { return l.store }

// Recordings returns the captured audio catalog handle.
func (l *Library) Recordings() *Recordings { return &Recordings{lib: l} }

// Files returns the imported document catalog handle.
func (l *Library) Files() *Files { return &Files{lib: l} }

func loadCatalog[T catalog.Record](ctx context.Context, l *Library, key catalog.Key, decode func([]byte) []T) ([]T, error) {
	raw, _, err := l.store.Get(ctx, string(key))
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", key, err)
	}
	return decode(raw), nil
}

func saveCatalog[T catalog.Record](ctx context.Context, l *Library, key catalog.Key, records []T, encode func([]T) ([]byte, error)) error {
	data, err := encode(records)
	if err != nil {
		return err
	}
	if err := l.store.Set(ctx, string(key), data); err != nil {
		return fmt.Errorf("save catalog %s: %w", key, err)
	}
	return nil
}

// reconcileCatalog loads a catalog, validates every record against the vault,
// and persists the clean result when anything changed. The clean catalog is
// what callers work with from here on, persisted or not.
func reconcileCatalog[T interface {
	catalog.Record
	WithSize(int64) T
}](ctx context.Context, l *Library, key catalog.Key, decode func([]byte) []T, encode func([]T) ([]byte, error)) ([]T, error) {
	records, err := loadCatalog(ctx, l, key, decode)
	if err != nil {
		return nil, err
	}

	clean, changed := catalog.Reconcile(ctx, l.vault, records)
	if changed {
		l.logger.Debug("catalog reconciled",
			"key", string(key),
			"records", len(clean),
			"dropped", len(records)-len(clean))
		if err := saveCatalog(ctx, l, key, clean, encode); err != nil {
			return nil, err
		}
	}
	return clean, nil
}

package testsupport

import (
	"testing"

	"satchel/internal/config"
	"satchel/internal/kvstore"
)

// MustOpenStore opens a kvstore.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *kvstore.Store {
	t.Helper()

	store, err := kvstore.Open(cfg)
	if err != nil {
		t.Fatalf("kvstore.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

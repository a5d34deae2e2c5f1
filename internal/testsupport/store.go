package testsupport

import (
	"testing"

	"iatv/internal/config"
	"iatv/internal/store"
)

// MustOpenStore opens a transcript store for the given config and closes it
// when the test finishes.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	s, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return s
}

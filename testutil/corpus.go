// Package testutil provides shared helpers for tests.
package testutil

import (
	"testing"

	"github.com/factor317/Pocket-Ranger-sub000/internal/corpus"
)

// NewStore loads the embedded corpus for a test and fails fast if it does
// not load. Resolver, service, and handler tests all run against the real
// shipped corpus so the matching scenarios they assert are the ones users hit.
func NewStore(t *testing.T) *corpus.Store {
	t.Helper()

	store, err := corpus.Load(corpus.Embedded())
	if err != nil {
		t.Fatalf("testutil.NewStore: load embedded corpus: %v", err)
	}
	return store
}

// Package corpus loads and serves the fixed collection of adventure records.
// Each adventure lives in its own JSON file, keyed by filename stem; a
// separate sample_queries.json index lists {query, adventure_file} pairs
// used by the resolver's keyword-overlap strategy.
//
// The corpus is read once per Store and never mutated afterwards, so a
// Store is safe for unrestricted concurrent use. Accessors return deep
// copies; callers cannot corrupt the shared records.
package corpus

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/factor317/Pocket-Ranger-sub000/internal/domain"
)

// indexFile is the name of the sample-query index within a corpus directory.
const indexFile = "sample_queries.json"

// DefaultKey is the designated fallback adventure. The resolver returns it
// when no strategy matches, so it must exist in every valid corpus.
const DefaultKey = "madison-wisconsin"

// Store is an immutable, in-memory view of a loaded corpus.
type Store struct {
	adventures []domain.Adventure // sorted by Key
	byKey      map[string]int     // Key -> index into adventures
	samples    []domain.SampleQuery
	defaultKey string
}

// Load reads a corpus from fsys. The directory must contain at least one
// adventure file plus the sample-query index. Any unreadable or unparseable
// file, a dangling adventure_file reference, or a missing default record
// fails the whole load with domain.ErrCorpusLoad — a broken corpus never
// degrades silently to an empty one.
//
// Adventure enumeration order is fixed: lexicographic by key. Sample-query
// order is the index file's stored order. Both orders are load-bearing for
// the resolver's first-match semantics.
func Load(fsys fs.FS) (*Store, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: read corpus directory: %v", domain.ErrCorpusLoad, err)
	}

	var adventures []domain.Adventure
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == indexFile || !strings.HasSuffix(name, ".json") {
			continue
		}

		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", domain.ErrCorpusLoad, name, err)
		}

		var adv domain.Adventure
		if err := json.Unmarshal(raw, &adv); err != nil {
			return nil, fmt.Errorf("%w: parse %s: %v", domain.ErrCorpusLoad, name, err)
		}

		// The filename stem is the identity; a key inside the file is
		// ignored in favour of it.
		adv.Key = strings.TrimSuffix(path.Base(name), ".json")
		if err := adv.Validate(); err != nil {
			return nil, err
		}
		adventures = append(adventures, adv)
	}

	if len(adventures) == 0 {
		return nil, fmt.Errorf("%w: no adventure files found", domain.ErrCorpusLoad)
	}

	sort.Slice(adventures, func(i, j int) bool {
		return adventures[i].Key < adventures[j].Key
	})

	byKey := make(map[string]int, len(adventures))
	for i, adv := range adventures {
		if _, dup := byKey[adv.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate adventure key %q", domain.ErrCorpusLoad, adv.Key)
		}
		byKey[adv.Key] = i
	}

	samples, err := loadSamples(fsys, byKey)
	if err != nil {
		return nil, err
	}

	if _, ok := byKey[DefaultKey]; !ok {
		return nil, fmt.Errorf("%w: default adventure %q not present", domain.ErrCorpusLoad, DefaultKey)
	}

	return &Store{
		adventures: adventures,
		byKey:      byKey,
		samples:    samples,
		defaultKey: DefaultKey,
	}, nil
}

// loadSamples reads the sample-query index and verifies every entry points
// at a real adventure.
func loadSamples(fsys fs.FS, byKey map[string]int) ([]domain.SampleQuery, error) {
	raw, err := fs.ReadFile(fsys, indexFile)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrCorpusLoad, indexFile, err)
	}

	var samples []domain.SampleQuery
	if err := json.Unmarshal(raw, &samples); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", domain.ErrCorpusLoad, indexFile, err)
	}

	for i, s := range samples {
		if strings.TrimSpace(s.Query) == "" {
			return nil, fmt.Errorf("%w: %s[%d]: empty query", domain.ErrCorpusLoad, indexFile, i)
		}
		if _, ok := byKey[s.AdventureKey]; !ok {
			return nil, fmt.Errorf("%w: %s[%d]: unknown adventure_file %q", domain.ErrCorpusLoad, indexFile, i, s.AdventureKey)
		}
	}
	return samples, nil
}

// Get returns a copy of the adventure with the given key.
func (s *Store) Get(key string) (domain.Adventure, bool) {
	i, ok := s.byKey[key]
	if !ok {
		return domain.Adventure{}, false
	}
	return s.adventures[i].Clone(), true
}

// All returns copies of every adventure, ordered lexicographically by key.
func (s *Store) All() []domain.Adventure {
	out := make([]domain.Adventure, len(s.adventures))
	for i, adv := range s.adventures {
		out[i] = adv.Clone()
	}
	return out
}

// Samples returns the sample-query index in its stored order.
func (s *Store) Samples() []domain.SampleQuery {
	out := make([]domain.SampleQuery, len(s.samples))
	copy(out, s.samples)
	return out
}

// Default returns a copy of the designated fallback adventure.
func (s *Store) Default() domain.Adventure {
	adv, _ := s.Get(s.defaultKey)
	return adv
}

// Len returns the number of adventures in the corpus.
func (s *Store) Len() int {
	return len(s.adventures)
}

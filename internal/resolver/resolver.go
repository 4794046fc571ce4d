// Package resolver maps free-text adventure requests to exactly one corpus
// record. It is the single source of truth for the matching strategy chain;
// every caller goes through Resolver.Resolve.
//
// Resolution is a pure function over the immutable corpus: no I/O, no
// mutation, no time or randomness. Identical inputs always produce
// identical output, and any number of calls may run concurrently.
package resolver

import (
	"fmt"
	"strings"

	"github.com/factor317/Pocket-Ranger-sub000/internal/corpus"
	"github.com/factor317/Pocket-Ranger-sub000/internal/domain"
)

// overlapThreshold is the minimum number of shared words for a sample-query
// match. The value, like the substring-containment word comparison below, is
// a tuned heuristic rather than a derived constant; treat it as such when
// revisiting.
const overlapThreshold = 2

// Rule maps a literal trigger substring to a fixed adventure key. Rules are
// evaluated in order before any generic scoring, so known problem inputs
// resolve correctly regardless of what keyword overlap would pick.
type Rule struct {
	Trigger string // lower-case substring searched for in the input
	Key     string // corpus key returned when the trigger is found
}

// DefaultRules are the priority overrides shipped with the built-in corpus.
// "utah" is here because keyword scoring alone can lose it to longer but
// less relevant matches elsewhere in the corpus; "devil's" covers the
// apostrophe spelling that whitespace word-splitting never matches.
var DefaultRules = []Rule{
	{Trigger: "utah", Key: "moab-utah"},
	{Trigger: "moab", Key: "moab-utah"},
	{Trigger: "devil's lake", Key: "devils-lake-wisconsin"},
}

// Resolver selects one adventure per request via an ordered strategy chain:
// hinted key, priority rule table, sample-query word overlap, corpus field
// substrings, then the designated default. The order is policy, not
// convenience: an input can satisfy several strategies at once and only the
// first applicable one governs the outcome.
type Resolver struct {
	store *corpus.Store
	rules []Rule
}

// New constructs a Resolver over the given store. Pass DefaultRules for the
// shipped override table, or a custom table in tests.
func New(store *corpus.Store, rules []Rule) *Resolver {
	return &Resolver{store: store, rules: rules}
}

// Resolve returns exactly one adventure for any non-blank input. hintedKey
// is advisory: it wins outright when it names a real corpus entry and is
// ignored otherwise. The only error is domain.ErrInvalidInput for input
// that is empty after trimming; past validation, resolution is total and
// terminates in the default record.
func (r *Resolver) Resolve(rawInput, hintedKey string) (domain.Adventure, error) {
	trimmed := strings.TrimSpace(rawInput)
	if trimmed == "" {
		return domain.Adventure{}, fmt.Errorf("resolver.Resolver.Resolve: %w", domain.ErrInvalidInput)
	}
	input := strings.ToLower(trimmed)

	// 1. Hint override: a known hinted key short-circuits everything else.
	if hintedKey != "" {
		if adv, ok := r.store.Get(hintedKey); ok {
			return adv, nil
		}
	}

	// 2. Priority rule table, in order.
	for _, rule := range r.rules {
		if !strings.Contains(input, rule.Trigger) {
			continue
		}
		if adv, ok := r.store.Get(rule.Key); ok {
			return adv, nil
		}
	}

	// 3. Sample-query overlap, first match in stored index order.
	inputWords := strings.Fields(input)
	for _, sample := range r.store.Samples() {
		if wordOverlap(inputWords, strings.Fields(strings.ToLower(sample.Query))) >= overlapThreshold {
			if adv, ok := r.store.Get(sample.AdventureKey); ok {
				return adv, nil
			}
		}
	}

	// 4. Field substrings, first match in corpus order.
	for _, adv := range r.store.All() {
		if fieldMatch(input, adv) {
			return adv, nil
		}
	}

	// 5. Unconditional default: an unmatched query degrades to a generic
	// recommendation, never to a not-found error.
	return r.store.Default(), nil
}

// wordOverlap counts input words that overlap with any query word. Two words
// overlap when either is a substring of the other, so "hike"/"hiking" and
// "trail"/"trails" count without stemming.
func wordOverlap(inputWords, queryWords []string) int {
	count := 0
	for _, w := range inputWords {
		for _, q := range queryWords {
			if strings.Contains(q, w) || strings.Contains(w, q) {
				count++
				break
			}
		}
	}
	return count
}

// fieldMatch tests an adventure's own fields against the lower-cased input:
// the city's first comma-delimited segment, the activity category, or the
// record name (whole name inside the input, or the input inside the first
// name word).
func fieldMatch(input string, adv domain.Adventure) bool {
	city := strings.ToLower(strings.TrimSpace(strings.SplitN(adv.City, ",", 2)[0]))
	if city != "" && strings.Contains(input, city) {
		return true
	}

	if strings.Contains(input, string(adv.Activity)) {
		return true
	}

	name := strings.ToLower(adv.Name)
	if strings.Contains(input, name) {
		return true
	}
	if first := strings.Fields(name); len(first) > 0 && strings.Contains(first[0], input) {
		return true
	}
	return false
}

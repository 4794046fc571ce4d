package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factor317/Pocket-Ranger-sub000/internal/domain"
	"github.com/factor317/Pocket-Ranger-sub000/internal/resolver"
	"github.com/factor317/Pocket-Ranger-sub000/testutil"
)

func newResolver(t *testing.T) *resolver.Resolver {
	t.Helper()
	return resolver.New(testutil.NewStore(t), resolver.DefaultRules)
}

// ---- validation boundary ---------------------------------------------------

func TestResolve_emptyInput(t *testing.T) {
	r := newResolver(t)

	for _, input := range []string{"", "   ", "\t\n"} {
		_, err := r.Resolve(input, "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "input %q", input)
	}
}

// ---- strategy 1: hint override ---------------------------------------------

// TestResolve_hintWins verifies a known hinted key beats everything the text
// itself says — even a priority-override trigger and strong keyword matches
// for a different record.
func TestResolve_hintWins(t *testing.T) {
	r := newResolver(t)

	adv, err := r.Resolve("utah desert hiking near madison", "chicago-illinois")
	require.NoError(t, err)
	assert.Equal(t, "chicago-illinois", adv.Key)
}

func TestResolve_unknownHintIgnored(t *testing.T) {
	r := newResolver(t)

	adv, err := r.Resolve("explore milwaukee lakefront", "no-such-adventure")
	require.NoError(t, err)
	assert.Equal(t, "milwaukee-wisconsin", adv.Key)
}

// ---- strategy 2: priority rule table ---------------------------------------

// TestResolve_priorityOverride covers the hard-coded trigger: "utah" anywhere
// in the input resolves to the Moab record regardless of what keyword
// scoring would otherwise pick.
func TestResolve_priorityOverride(t *testing.T) {
	r := newResolver(t)

	adv, err := r.Resolve("utah desert trip", "")
	require.NoError(t, err)
	assert.Equal(t, "moab-utah", adv.Key)

	// Competing keyword matches for madison do not matter: the override
	// fires before overlap scoring.
	adv, err = r.Resolve("hiking near madison utah", "")
	require.NoError(t, err)
	assert.Equal(t, "moab-utah", adv.Key)

	// Case-insensitive, punctuation-tolerant: triggers are substrings of
	// the lower-cased input.
	adv, err = r.Resolve("UTAH!", "")
	require.NoError(t, err)
	assert.Equal(t, "moab-utah", adv.Key)
}

// TestResolve_apostropheRule: "devil's lake" never survives whitespace word
// matching, which is exactly why it is in the rule table.
func TestResolve_apostropheRule(t *testing.T) {
	r := newResolver(t)

	adv, err := r.Resolve("a day at devil's lake", "")
	require.NoError(t, err)
	assert.Equal(t, "devils-lake-wisconsin", adv.Key)
}

// TestResolve_customRules verifies the rule table is injected data, not
// baked-in conditionals, and that a rule naming a missing record is skipped
// rather than breaking the chain.
func TestResolve_customRules(t *testing.T) {
	store := testutil.NewStore(t)

	r := resolver.New(store, []resolver.Rule{{Trigger: "monona", Key: "milwaukee-wisconsin"}})
	adv, err := r.Resolve("monona terrace at dawn", "")
	require.NoError(t, err)
	assert.Equal(t, "milwaukee-wisconsin", adv.Key)

	r = resolver.New(store, []resolver.Rule{{Trigger: "utah", Key: "retired-record"}})
	adv, err = r.Resolve("utah hiking near madison", "")
	require.NoError(t, err)
	// The dangling rule is skipped; overlap matching takes over.
	assert.Equal(t, "madison-wisconsin", adv.Key)
}

// ---- strategy 3: sample-query overlap --------------------------------------

func TestResolve_sampleOverlap(t *testing.T) {
	r := newResolver(t)

	adv, err := r.Resolve("hiking near Madison", "")
	require.NoError(t, err)
	assert.Equal(t, "madison-wisconsin", adv.Key)
	assert.Equal(t, domain.ActivityHiking, adv.Activity)

	adv, err = r.Resolve("explore Milwaukee", "")
	require.NoError(t, err)
	assert.Equal(t, "milwaukee-wisconsin", adv.Key)
	assert.Equal(t, domain.ActivityExploration, adv.Activity)
	assert.Contains(t, adv.City, "Milwaukee")
}

// TestResolve_overlapHandlesWordForms: overlap uses bidirectional substring
// containment, so "hike"/"hiking" and plural forms still count.
func TestResolve_overlapHandlesWordForms(t *testing.T) {
	r := newResolver(t)

	adv, err := r.Resolve("a hike near madison", "")
	require.NoError(t, err)
	assert.Equal(t, "madison-wisconsin", adv.Key)
}

// TestResolve_singleSharedWordIsNotAMatch: one overlapping word is below the
// threshold; such input must fall through to field matching or the default,
// never match a sample query.
func TestResolve_singleSharedWordIsNotAMatch(t *testing.T) {
	r := newResolver(t)

	// "lakefront" overlaps one word of "explore milwaukee lakefront" (and
	// "lake" of the devils-lake sample); nothing else matches anywhere, so
	// the default comes back rather than either sampled record.
	adv, err := r.Resolve("lakefront zzqq", "")
	require.NoError(t, err)
	assert.Equal(t, "madison-wisconsin", adv.Key)
}

// ---- strategy 4: field substrings ------------------------------------------

func TestResolve_fieldMatching(t *testing.T) {
	r := newResolver(t)

	// City: first comma-delimited segment of "Baraboo, Wisconsin". The word
	// appears in no sample query, so only field matching can find it.
	adv, err := r.Resolve("visiting baraboo", "")
	require.NoError(t, err)
	assert.Equal(t, "devils-lake-wisconsin", adv.Key)

	// Activity: "fishing" shares only one word with any sample query, so it
	// reaches field matching and hits the first fishing record in corpus order.
	adv, err = r.Resolve("fishing", "")
	require.NoError(t, err)
	assert.Equal(t, "door-county-wisconsin", adv.Key)

	// Name: the whole input is a prefix of the first name-word "madison".
	adv, err = r.Resolve("mad", "")
	require.NoError(t, err)
	assert.Equal(t, "madison-wisconsin", adv.Key)
}

// TestResolve_fieldMatchCorpusOrder: "dining downtown" matches the activity
// of the only dining record; with several candidates the first in key order
// would win, which is why enumeration order is fixed at load time.
func TestResolve_fieldMatchCorpusOrder(t *testing.T) {
	r := newResolver(t)

	adv, err := r.Resolve("dining downtown", "")
	require.NoError(t, err)
	assert.Equal(t, "chicago-illinois", adv.Key)
}

// ---- strategy 5: default fallback ------------------------------------------

func TestResolve_defaultFallback(t *testing.T) {
	r := newResolver(t)

	for _, input := range []string{
		"zzqqxx unrelated gibberish",
		"completely unrelated text xyz",
	} {
		adv, err := r.Resolve(input, "")
		require.NoError(t, err)
		assert.Equal(t, "madison-wisconsin", adv.Key, "input %q", input)
	}
}

// ---- whole-chain properties ------------------------------------------------

// TestResolve_totality: every non-blank input yields exactly one record that
// exists in the corpus. The resolver has no "not found" outcome.
func TestResolve_totality(t *testing.T) {
	store := testutil.NewStore(t)
	r := resolver.New(store, resolver.DefaultRules)

	inputs := []string{
		"hello", "a", "  padded input  ", "UTAH!", "fishing",
		"dining downtown", "zzz", "explore milwaukee", "날씨가 좋다",
	}
	for _, input := range inputs {
		adv, err := r.Resolve(input, "")
		require.NoError(t, err, "input %q", input)
		_, ok := store.Get(adv.Key)
		assert.True(t, ok, "input %q resolved to unknown key %q", input, adv.Key)
	}
}

func TestResolve_idempotent(t *testing.T) {
	r := newResolver(t)

	first, err := r.Resolve("explore milwaukee lakefront", "")
	require.NoError(t, err)
	second, err := r.Resolve("explore milwaukee lakefront", "")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestResolve_resultIsSnapshot: mutating a returned record must not leak
// into later resolutions.
func TestResolve_resultIsSnapshot(t *testing.T) {
	r := newResolver(t)

	first, err := r.Resolve("hiking near madison", "")
	require.NoError(t, err)
	require.NotEmpty(t, first.Schedule)
	original := first.Schedule[0].Location
	first.Schedule[0].Location = "Tampered"

	second, err := r.Resolve("hiking near madison", "")
	require.NoError(t, err)
	assert.Equal(t, original, second.Schedule[0].Location)
}

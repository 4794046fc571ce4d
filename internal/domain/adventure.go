// Package domain contains the core data types for the Pocket Ranger backend.
// This package has zero external dependencies and is imported by every other
// internal package (corpus, resolver, service, handler).
package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// Activity is the coarse category of an adventure. The set is closed:
// authored corpus files must use one of the constants below.
type Activity string

const (
	ActivityHiking      Activity = "hiking"
	ActivityFishing     Activity = "fishing"
	ActivityExploration Activity = "exploration"
	ActivityDining      Activity = "dining"
	ActivitySocial      Activity = "social"
)

// knownActivities is the closed set accepted by Activity.Valid.
var knownActivities = map[Activity]bool{
	ActivityHiking:      true,
	ActivityFishing:     true,
	ActivityExploration: true,
	ActivityDining:      true,
	ActivitySocial:      true,
}

// Valid reports whether a is one of the known activity categories.
func (a Activity) Valid() bool {
	return knownActivities[a]
}

// Adventure is one pre-authored itinerary in the corpus.
// Instances returned to callers are snapshots; mutating them has no effect
// on the stored corpus.
type Adventure struct {
	// Key is the stable identifier, derived from the corpus filename stem
	// (e.g. "moab-utah"). Unique across the corpus.
	Key         string         `json:"key"`
	Name        string         `json:"name"`
	Activity    Activity       `json:"activity"`
	City        string         `json:"city"` // free-text "City, Region"
	Description string         `json:"description"`
	Schedule    []ScheduleItem `json:"schedule"`
}

// ScheduleItem is one timed entry in an adventure's itinerary.
// Items are displayed in authored order; Time is a display string with no
// machine-sortable guarantee.
type ScheduleItem struct {
	Time        string `json:"time"`
	Activity    string `json:"activity"`
	Location    string `json:"location"`
	Description string `json:"description,omitempty"`
	PartnerLink string `json:"partnerLink,omitempty"`
	PartnerName string `json:"partnerName,omitempty"`
}

// SampleQuery pairs an authored example phrase with the adventure it should
// resolve to. The index of sample queries is a matching aid consumed by the
// resolver; its stored order is significant (first match wins).
type SampleQuery struct {
	Query        string `json:"query"`
	AdventureKey string `json:"adventure_file"`
}

// Validate checks the structural invariants of an adventure record.
// It is called once at corpus load time, so a record handed to a caller is
// always well formed.
func (a Adventure) Validate() error {
	if strings.TrimSpace(a.Key) == "" {
		return fmt.Errorf("%w: missing key", ErrCorpusLoad)
	}
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: adventure %q: missing name", ErrCorpusLoad, a.Key)
	}
	if !a.Activity.Valid() {
		return fmt.Errorf("%w: adventure %q: unknown activity %q", ErrCorpusLoad, a.Key, a.Activity)
	}
	if strings.TrimSpace(a.City) == "" {
		return fmt.Errorf("%w: adventure %q: missing city", ErrCorpusLoad, a.Key)
	}
	for i, item := range a.Schedule {
		if err := item.validate(); err != nil {
			return fmt.Errorf("%w: adventure %q: schedule[%d]: %v", ErrCorpusLoad, a.Key, i, err)
		}
	}
	return nil
}

// validate enforces the partner-link pairing invariant: a link requires a
// name, and the link must be an absolute http(s) URL.
func (s ScheduleItem) validate() error {
	if s.Time == "" || s.Activity == "" || s.Location == "" {
		return fmt.Errorf("time, activity, and location are required")
	}
	if s.PartnerLink == "" {
		return nil
	}
	if s.PartnerName == "" {
		return fmt.Errorf("partnerLink without partnerName")
	}
	u, err := url.Parse(s.PartnerLink)
	if err != nil {
		return fmt.Errorf("partnerLink is not a valid URL: %v", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("partnerLink must be an absolute http(s) URL, got %q", s.PartnerLink)
	}
	return nil
}

// Clone returns a deep copy of the adventure. The corpus hands out clones so
// callers can never mutate the shared in-memory records.
func (a Adventure) Clone() Adventure {
	out := a
	if a.Schedule != nil {
		out.Schedule = make([]ScheduleItem, len(a.Schedule))
		copy(out.Schedule, a.Schedule)
	}
	return out
}

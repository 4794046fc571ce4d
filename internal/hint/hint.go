// Package hint integrates the external keyword-classification service that
// proposes a candidate adventure key for free-text input. The proposal is
// advisory only: the resolver honours it when the key exists in the corpus
// and ignores it otherwise, and the service layer treats any client failure
// as "no hint" rather than an error the user sees.
package hint

import "context"

// Hint is the classifier's best guess for one piece of free text: a
// candidate corpus key plus the structured attributes it extracted.
// Any field may be empty.
type Hint struct {
	RecommendedFile string   `json:"recommendedFile"`
	Activity        string   `json:"activity,omitempty"`
	Location        string   `json:"location,omitempty"`
	Features        []string `json:"features,omitempty"`
	Timeframe       string   `json:"timeframe,omitempty"`
}

// Provider is implemented by anything that can classify free text into a
// Hint. The HTTP client in this package is the production implementation;
// tests substitute function-backed fakes.
type Provider interface {
	// Recommend classifies text. An empty RecommendedFile with a nil error
	// means the classifier had no confident suggestion.
	Recommend(ctx context.Context, text string) (Hint, error)

	// Available reports whether the classifier endpoint is reachable.
	Available(ctx context.Context) bool
}

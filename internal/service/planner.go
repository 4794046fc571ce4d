// Package service contains the business logic for the Pocket Ranger backend.
// The planner service validates input, consults the optional hint provider,
// and runs the resolver. No matching heuristics live here — the strategy
// chain belongs to the resolver package alone.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/factor317/Pocket-Ranger-sub000/internal/corpus"
	"github.com/factor317/Pocket-Ranger-sub000/internal/domain"
	"github.com/factor317/Pocket-Ranger-sub000/internal/hint"
	"github.com/factor317/Pocket-Ranger-sub000/internal/resolver"
)

// PlannerService orchestrates one adventure-planning request.
type PlannerService struct {
	store    *corpus.Store
	resolver *resolver.Resolver
	hints    hint.Provider // nil when the classifier is not configured
	log      *slog.Logger
}

// NewPlannerService constructs a PlannerService. hints may be nil, in which
// case requests without a caller-supplied key go straight to the resolver's
// own heuristics.
func NewPlannerService(store *corpus.Store, r *resolver.Resolver, hints hint.Provider, log *slog.Logger) *PlannerService {
	if log == nil {
		log = slog.Default()
	}
	return &PlannerService{store: store, resolver: r, hints: hints, log: log}
}

// Plan resolves free-text input to exactly one adventure. When the caller
// supplied no hinted key and a hint provider is configured, the provider is
// consulted first; its failures are logged and swallowed because a hint is
// never required for resolution to succeed.
func (s *PlannerService) Plan(ctx context.Context, rawInput, hintedKey string) (domain.Adventure, error) {
	if strings.TrimSpace(rawInput) == "" {
		return domain.Adventure{}, fmt.Errorf("service.PlannerService.Plan: %w", domain.ErrInvalidInput)
	}

	if hintedKey == "" && s.hints != nil {
		h, err := s.hints.Recommend(ctx, rawInput)
		switch {
		case err != nil:
			s.log.WarnContext(ctx, "hint provider failed, continuing without hint", "error", err)
		case h.RecommendedFile != "":
			hintedKey = h.RecommendedFile
		}
	}

	adv, err := s.resolver.Resolve(rawInput, hintedKey)
	if err != nil {
		return domain.Adventure{}, fmt.Errorf("service.PlannerService.Plan: %w", err)
	}
	return adv, nil
}

// List returns every adventure in the corpus, ordered by key.
func (s *PlannerService) List(ctx context.Context) ([]domain.Adventure, error) {
	return s.store.All(), nil
}

// GetByKey returns a single adventure by its corpus key.
// Returns domain.ErrNotFound for an unknown key.
func (s *PlannerService) GetByKey(ctx context.Context, key string) (domain.Adventure, error) {
	adv, ok := s.store.Get(key)
	if !ok {
		return domain.Adventure{}, fmt.Errorf("service.PlannerService.GetByKey: %w: %q", domain.ErrNotFound, key)
	}
	return adv, nil
}

package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/factor317/Pocket-Ranger-sub000/internal/domain"
)

// ListAdventures handles GET /api/adventures.
// Returns the full corpus ordered by key, so clients can render a browse
// view without resolving anything.
func (s *Server) ListAdventures(w http.ResponseWriter, r *http.Request) {
	advs, err := s.planner.List(r.Context())
	if err != nil {
		s.log.ErrorContext(r.Context(), "list adventures failed", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}
	writeJSON(w, http.StatusOK, advs)
}

// GetAdventure handles GET /api/adventures/{key}.
func (s *Server) GetAdventure(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	adv, err := s.planner.GetByKey(r.Context(), key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, msgNotFound)
			return
		}
		s.log.ErrorContext(r.Context(), "get adventure failed", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}
	writeJSON(w, http.StatusOK, adv)
}

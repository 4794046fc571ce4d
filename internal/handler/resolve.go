package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/factor317/Pocket-Ranger-sub000/internal/domain"
)

// resolveRequest is the body of POST /api/adventure. UserInput is kept as
// raw JSON so a non-string value (e.g. a number) can be rejected with 400
// rather than failing the whole decode with 500.
type resolveRequest struct {
	UserInput       json.RawMessage `json:"userInput"`
	RecommendedFile string          `json:"recommendedFile"`
}

// PostAdventure handles POST /api/adventure: free text in, one full
// adventure record out.
//
// Status mapping: 400 for missing/non-string/blank userInput, 500 for an
// unparseable request body or any unexpected failure. The 500 message is
// deliberately generic; the cause is logged, never echoed to the client.
func (s *Server) PostAdventure(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.log.ErrorContext(r.Context(), "unparseable request body", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	// Type check before any trimming: a missing field, an explicit null,
	// and a non-string value are all invalid input, not server errors.
	// Unmarshalling null into a string succeeds as a no-op, so null needs
	// its own check.
	if req.UserInput == nil || string(req.UserInput) == "null" {
		writeError(w, http.StatusBadRequest, msgInvalidInput)
		return
	}
	var userInput string
	if err := json.Unmarshal(req.UserInput, &userInput); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidInput)
		return
	}

	adv, err := s.planner.Plan(r.Context(), userInput, req.RecommendedFile)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, msgInvalidInput)
			return
		}
		s.log.ErrorContext(r.Context(), "plan failed", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	writeJSON(w, http.StatusOK, adv)
}

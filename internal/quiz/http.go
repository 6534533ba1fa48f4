package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/question"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// HTTPHandler exposes the quiz endpoint.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger.With().Str("component", "quiz_http").Logger(),
	}
}

// Next handles POST /quizzes
func (h *HTTPHandler) Next(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w)
		return
	}

	resp, err := h.svc.Next(r.Context(), req)
	if err != nil {
		var validationErr *question.ValidationError
		if errors.As(err, &validationErr) {
			httperrors.RespondBadRequest(w)
			return
		}
		h.logger.Error().Err(err).Msg("quiz selection failed")
		httperrors.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

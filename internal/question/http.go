package question

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/logging"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// HTTPHandlers exposes the category and question endpoints.
type HTTPHandlers struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers for question endpoints.
func NewHTTPHandlers(svc *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		svc:    svc,
		logger: logger.With().Str("component", "question_http").Logger(),
	}
}

// ListCategories handles GET /categories
func (h *HTTPHandlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"categories": CategoryMap(categories),
	})
}

// ListQuestions handles GET /questions?page=N
func (h *HTTPHandlers) ListQuestions(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.Page(r.Context(), PageFromQuery(r.URL.Query().Get("page")))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"questions":       page.Questions,
		"total_questions": page.Total,
		"categories":      page.Categories,
	})
}

// DeleteQuestion handles DELETE /questions/{id}
func (h *HTTPHandlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httperrors.RespondNotFound(w)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"deleted": id,
	})
}

// PostQuestions handles POST /questions, which either searches (searchTerm)
// or creates a question.
func (h *HTTPHandlers) PostQuestions(w http.ResponseWriter, r *http.Request) {
	var payload Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httperrors.RespondBadRequest(w)
		return
	}

	if payload.SearchTerm != nil {
		result, err := h.svc.Search(r.Context(), *payload.SearchTerm, PageFromQuery(r.URL.Query().Get("page")))
		if err != nil {
			h.respondServiceError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"success":         true,
			"questions":       result.Questions,
			"total_questions": result.Total,
		})
		return
	}

	id, total, err := h.svc.Create(r.Context(), payload)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"created":         id,
		"total_questions": total,
	})
}

// ListCategoryQuestions handles GET /categories/{id}/questions
func (h *HTTPHandlers) ListCategoryQuestions(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httperrors.RespondNotFound(w)
		return
	}

	result, err := h.svc.ByCategory(r.Context(), id, PageFromQuery(r.URL.Query().Get("page")))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        result.Questions,
		"total_questions":  result.Total,
		"current_category": result.CurrentCategory,
	})
}

// respondServiceError maps domain errors onto status codes. Response bodies
// carry only the fixed per-status message.
func (h *HTTPHandlers) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *ValidationError
	switch {
	case errors.Is(err, ErrNotFound):
		httperrors.RespondNotFound(w)
	case errors.As(err, &validationErr):
		logging.FromContext(r.Context()).Debug().Str("field", validationErr.Field).Msg(validationErr.Message)
		httperrors.RespondBadRequest(w)
	case errors.Is(err, ErrStorageFailure):
		httperrors.RespondUnprocessable(w)
	default:
		h.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		httperrors.RespondInternalError(w)
	}
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return int(id), true
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

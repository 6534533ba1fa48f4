package server

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/logging"
	"github.com/gokatarajesh/trivia-api/internal/question"
	"github.com/gokatarajesh/trivia-api/internal/quiz"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewHTTPServer wraps the API router in an http.Server bound to cfg.HTTPAddr.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, store Pinger, questions *question.HTTPHandlers, quizzes *quiz.HTTPHandler) *http.Server {
	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: NewRouter(cfg.CORS, logger, store, questions, quizzes),
	}
}

// NewRouter registers the trivia endpoints plus health, ping and metrics, and
// wraps them in the middleware chain.
func NewRouter(cors config.CORS, logger zerolog.Logger, store Pinger, questions *question.HTTPHandlers, quizzes *quiz.HTTPHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /v1/ping", func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(r.Context()); err != nil {
			logging.FromContext(r.Context()).Error().Err(err).Msg("dependency ping failed")
			httperrors.RespondError(w, http.StatusBadGateway, "upstream error")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"pong":true}`))
	})

	mux.HandleFunc("GET /categories", questions.ListCategories)
	mux.HandleFunc("GET /categories/{id}/questions", questions.ListCategoryQuestions)
	mux.HandleFunc("GET /questions", questions.ListQuestions)
	mux.HandleFunc("POST /questions", questions.PostQuestions)
	mux.HandleFunc("DELETE /questions/{id}", questions.DeleteQuestion)
	mux.HandleFunc("POST /quizzes", quizzes.Next)

	// Known resources with an unregistered method get the JSON 405 envelope,
	// anything else the JSON 404, instead of the mux's plain-text errors.
	for _, path := range []string{"/categories", "/categories/{id}/questions", "/questions", "/questions/{id}", "/quizzes"} {
		mux.Handle(path, httperrors.MethodNotAllowedHandler())
	}
	mux.Handle("/", httperrors.NotFoundHandler())

	var handler http.Handler = mux
	handler = withCORS(cors, handler)
	handler = withRecovery(handler)
	handler = withInstrumentation(logger, handler)
	return handler
}

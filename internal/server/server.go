// Package server renders the questionnaire over HTTP and exposes a JSON API
// for evaluations.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/spigell/career-predictor/internal/career"
	"github.com/spigell/career-predictor/internal/logger"
	"github.com/spigell/career-predictor/internal/survey"
)

const (
	defaultReadTimeout     = 10 * time.Second
	defaultShutdownTimeout = 15 * time.Second
	maxBodyBytes           = 64 << 10
)

// Evaluator is the prediction pipeline behind the handlers.
type Evaluator interface {
	Evaluate(answers survey.AnswerSet) (*career.Outcome, error)
}

// Config holds listener settings.
type Config struct {
	Listen          string
	ReadTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type Server struct {
	evaluator Evaluator
	logger    *zap.Logger
	gatherer  prometheus.Gatherer
	config    Config
	mux       *http.ServeMux
}

// New builds the routes. A nil gatherer disables /metrics.
func New(evaluator Evaluator, cfg Config, gatherer prometheus.Gatherer, log *zap.Logger) *Server {
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = defaultReadTimeout
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	s := &Server{
		evaluator: evaluator,
		logger:    logger.WithFields(log),
		gatherer:  gatherer,
		config:    cfg,
		mux:       http.NewServeMux(),
	}

	s.mux.HandleFunc("GET /{$}", s.handleForm)
	s.mux.HandleFunc("POST /{$}", s.handleFormSubmit)
	s.mux.HandleFunc("GET /api/v1/questions", s.handleQuestions)
	s.mux.HandleFunc("POST /api/v1/evaluate", s.handleEvaluate)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	if gatherer != nil {
		s.mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return s
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

// Run serves on the configured address until ctx is canceled, then drains
// in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.config.Listen)
	if err != nil {
		return fmt.Errorf("listen on %q: %w", s.config.Listen, err)
	}
	return s.Serve(ctx, listener)
}

func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:           s.mux,
		ReadHeaderTimeout: s.config.ReadTimeout,
		ReadTimeout:       s.config.ReadTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("address", listener.Addr().String()))
		errCh <- srv.Serve(listener)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down http server", zap.Duration("timeout", s.config.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// evaluate runs the pipeline under a fresh request id.
func (s *Server) evaluate(answers survey.AnswerSet) (string, *career.Outcome, error) {
	id := uuid.NewString()
	log := logger.WithRequest(s.logger, id)

	result, err := s.evaluator.Evaluate(answers)
	if err != nil {
		log.Warn("evaluation rejected", zap.Error(err))
		return id, nil, err
	}

	log.Info("evaluation completed", logger.OutcomeFields(result)...)
	return id, result, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

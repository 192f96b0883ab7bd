// Package predictor wires the corpus, the classifier and the outcome
// synthesizer behind the two operations adapters need: Initialize once at
// startup and Evaluate per submission.
package predictor

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/career-predictor/internal/career"
	"github.com/spigell/career-predictor/internal/dataset"
	"github.com/spigell/career-predictor/internal/forest"
	"github.com/spigell/career-predictor/internal/logger"
	"github.com/spigell/career-predictor/internal/metrics"
	"github.com/spigell/career-predictor/internal/outcome"
	"github.com/spigell/career-predictor/internal/survey"
)

const (
	DefaultSamples = 2500
	DefaultSeed    = 42
	DefaultTrees   = forest.DefaultTrees
)

// Config describes the training corpus and the ensemble.
type Config struct {
	Samples         int
	Seed            uint64
	Trees           int
	MaxDepth        int
	MinSamplesSplit int
	MaxFeatures     int
	Workers         int
}

func DefaultConfig() Config {
	return Config{
		Samples:         DefaultSamples,
		Seed:            DefaultSeed,
		Trees:           DefaultTrees,
		MinSamplesSplit: forest.DefaultMinSamplesSplit,
	}
}

func (c Config) forest() forest.Config {
	return forest.Config{
		Trees:           c.Trees,
		Seed:            c.Seed,
		MaxDepth:        c.MaxDepth,
		MinSamplesSplit: c.MinSamplesSplit,
		MaxFeatures:     c.MaxFeatures,
		Workers:         c.Workers,
	}
}

// Option customizes a Handle.
type Option func(*Handle)

func WithLogger(l *zap.Logger) Option {
	return func(h *Handle) { h.logger = logger.WithFields(l) }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(h *Handle) { h.metrics = m }
}

// WithSynthesizer replaces the unseeded outcome synthesizer, e.g. with a seeded one in tests.
func WithSynthesizer(s *outcome.Synthesizer) Option {
	return func(h *Handle) { h.synth = s }
}

// Handle is a trained predictor. It is never modified after Initialize
// returns and may be shared by concurrent callers.
type Handle struct {
	model   *model
	synth   *outcome.Synthesizer
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// model adapts a fitted forest to career.Classifier.
type model struct {
	forest *forest.Forest
}

func (m *model) Predict(v career.SkillVector) career.Label {
	return career.Label(m.forest.Predict(v[:]))
}

// votes returns the per-label vote share.
func (m *model) votes(v career.SkillVector) map[string]float64 {
	counts := m.forest.Votes(v[:])
	shares := make(map[string]float64, len(counts))
	for i, c := range counts {
		shares[career.Label(i).String()] = float64(c) / float64(m.forest.Trees())
	}
	return shares
}

// Initialize generates the training corpus and fits the classifier. Any
// failure wraps career.ErrInitialization and the caller must not serve.
func Initialize(ctx context.Context, cfg Config, opts ...Option) (*Handle, error) {
	h := &Handle{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(h)
	}
	if h.synth == nil {
		h.synth = outcome.New(nil)
	}

	started := time.Now()

	corpus, err := dataset.Generate(cfg.Samples, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("%w: generating corpus: %w", career.ErrInitialization, err)
	}
	if corpus.Len() == 0 {
		return nil, fmt.Errorf("%w: training corpus is empty", career.ErrInitialization)
	}

	distribution := make(map[string]int, career.LabelCount)
	for label, count := range corpus.Distribution() {
		distribution[label.String()] = count
	}
	h.logger.Info("generated training corpus",
		zap.Int("samples", corpus.Len()),
		zap.Uint64("seed", cfg.Seed),
		zap.Any("distribution", distribution),
	)

	x, y := corpus.Features(), corpus.Labels()
	fitted, err := forest.Train(ctx, x, y, career.LabelCount, cfg.forest())
	if err != nil {
		return nil, fmt.Errorf("%w: training classifier: %w", career.ErrInitialization, err)
	}
	h.model = &model{forest: fitted}

	elapsed := time.Since(started)
	accuracy := fitted.Accuracy(x, y)
	h.metrics.ObserveTraining(corpus.Len(), elapsed, accuracy)

	h.logger.Info("classifier trained",
		zap.Int("trees", fitted.Trees()),
		zap.Float64("training_accuracy", accuracy),
		zap.Duration("elapsed", elapsed),
	)

	return h, nil
}

// Classifier exposes the fitted model.
func (h *Handle) Classifier() career.Classifier {
	return h.model
}

// Evaluate turns one answer set into an outcome. Only the sub-role and the
// confidence vary between calls with the same answers. Malformed sets return
// an error wrapping career.ErrMalformedInput.
func (h *Handle) Evaluate(answers survey.AnswerSet) (*career.Outcome, error) {
	started := time.Now()

	vector, err := survey.Aggregate(answers)
	if err != nil {
		h.metrics.ObserveRejected()
		h.logger.Warn("rejected answer set", zap.Int("answers", len(answers)), zap.Error(err))
		return nil, err
	}

	label := h.model.Predict(vector)
	result := h.synth.Synthesize(label)

	h.metrics.ObservePrediction(label, time.Since(started))

	if ce := h.logger.Check(zap.DebugLevel, "evaluated answer set"); ce != nil {
		fields := append(logger.OutcomeFields(&result),
			zap.Int("answered", answers.Answered()),
			logger.VectorField("skills", vector),
			zap.Any("vote_share", h.model.votes(vector)),
		)
		ce.Write(fields...)
	}

	return &result, nil
}

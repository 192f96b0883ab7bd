// Package forest implements a bagged ensemble of randomized decision trees.
//
// A Forest is immutable once Train returns and can be shared between
// goroutines without locking.
package forest

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultTrees           = 120
	DefaultSeed            = 42
	DefaultMinSamplesSplit = 2
)

var (
	ErrNoSamples       = errors.New("no training samples")
	ErrLengthMismatch  = errors.New("features and labels differ in length")
	ErrRaggedFeatures  = errors.New("feature rows have inconsistent length")
	ErrNoFeatures      = errors.New("feature rows are empty")
	ErrClassOutOfRange = errors.New("class index out of range")
	ErrInvalidTrees    = errors.New("tree count must be positive")
)

// Config controls the shape of the ensemble.
type Config struct {
	// Trees is the ensemble size.
	Trees int
	// Seed fixes bootstrap draws and feature sampling.
	Seed uint64
	// MaxDepth limits tree depth. Zero means unlimited.
	MaxDepth int
	// MinSamplesSplit is the smallest node that may be split. Values below 2 are raised to 2.
	MinSamplesSplit int
	// MaxFeatures is the number of features considered per split. Zero means floor(sqrt(features)).
	MaxFeatures int
	// Workers bounds parallel tree construction. Zero means GOMAXPROCS.
	Workers int
}

// DefaultConfig returns the reference ensemble settings.
func DefaultConfig() Config {
	return Config{
		Trees:           DefaultTrees,
		Seed:            DefaultSeed,
		MinSamplesSplit: DefaultMinSamplesSplit,
	}
}

func (c Config) maxFeatures(width int) int {
	m := c.MaxFeatures
	if m <= 0 {
		m = int(math.Sqrt(float64(width)))
	}
	return min(max(m, 1), width)
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Forest is a fitted ensemble.
type Forest struct {
	trees    []*tree
	classes  int
	features int
}

// Train fits cfg.Trees trees on bootstrap resamples of (x, y). Labels must be
// in [0, classes). Trees are built concurrently; the result only depends on
// the inputs and cfg.Seed.
func Train(ctx context.Context, x [][]float64, y []int, classes int, cfg Config) (*Forest, error) {
	if err := validate(x, y, classes, cfg); err != nil {
		return nil, err
	}

	if cfg.MinSamplesSplit < 2 {
		cfg.MinSamplesSplit = 2
	}

	// seeds are drawn up front so scheduling cannot change the ensemble
	master := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	seeds := make([][2]uint64, cfg.Trees)
	for i := range seeds {
		seeds[i] = [2]uint64{master.Uint64(), master.Uint64()}
	}

	trees := make([]*tree, cfg.Trees)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers())
	for i := range trees {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewPCG(seeds[i][0], seeds[i][1]))
			trees[i] = newBuilder(x, y, classes, cfg, rng).grow()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("training trees: %w", err)
	}

	return &Forest{trees: trees, classes: classes, features: len(x[0])}, nil
}

func validate(x [][]float64, y []int, classes int, cfg Config) error {
	if cfg.Trees <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTrees, cfg.Trees)
	}
	if len(x) == 0 {
		return ErrNoSamples
	}
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d rows, %d labels", ErrLengthMismatch, len(x), len(y))
	}

	width := len(x[0])
	if width == 0 {
		return ErrNoFeatures
	}
	for i, row := range x {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d values, want %d", ErrRaggedFeatures, i, len(row), width)
		}
	}
	for i, c := range y {
		if c < 0 || c >= classes {
			return fmt.Errorf("%w: label %d at row %d, classes %d", ErrClassOutOfRange, c, i, classes)
		}
	}

	return nil
}

// Votes returns the number of trees voting for each class.
// It panics if len(x) differs from the training feature count.
func (f *Forest) Votes(x []float64) []int {
	if len(x) != f.features {
		panic(fmt.Sprintf("forest: got %d features, want %d", len(x), f.features))
	}

	votes := make([]int, f.classes)
	for _, t := range f.trees {
		votes[t.predict(x)]++
	}
	return votes
}

// Predict returns the majority class; ties go to the lowest class index.
func (f *Forest) Predict(x []float64) int {
	return argmax(f.Votes(x))
}

// Accuracy returns the share of rows whose prediction equals the label.
func (f *Forest) Accuracy(x [][]float64, y []int) float64 {
	if len(x) == 0 {
		return 0
	}
	hits := 0
	for i, row := range x {
		if f.Predict(row) == y[i] {
			hits++
		}
	}
	return float64(hits) / float64(len(x))
}

func (f *Forest) Trees() int    { return len(f.trees) }
func (f *Forest) Classes() int  { return f.classes }
func (f *Forest) Features() int { return f.features }

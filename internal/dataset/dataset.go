package dataset

import (
	"fmt"
	"math/rand/v2"

	"github.com/spigell/career-predictor/internal/career"
)

// MaxScore is the exclusive upper bound of synthetic skill scores.
const MaxScore = 5.0

// Sample is a single labeled training vector.
type Sample struct {
	Vector career.SkillVector
	Label  career.Label
}

// Corpus is an immutable set of labeled samples indexed by draw order.
type Corpus struct {
	samples []Sample
}

// Generate draws n skill vectors from a PCG source seeded with seed and labels
// each of them with LabelFor. The same (n, seed) always yields the same corpus.
func Generate(n int, seed uint64) (*Corpus, error) {
	if n < 0 {
		return nil, fmt.Errorf("sample count must not be negative: %d", n)
	}

	rng := rand.New(rand.NewPCG(seed, seed))
	samples := make([]Sample, n)
	for i := range samples {
		var v career.SkillVector
		for d := range v {
			v[d] = rng.Float64() * MaxScore
		}
		samples[i] = Sample{Vector: v, Label: LabelFor(v)}
	}

	return &Corpus{samples: samples}, nil
}

// LabelFor applies the ground truth rule cascade; the first matching rule wins.
func LabelFor(v career.SkillVector) career.Label {
	switch {
	case v[career.Communication]+v[career.Analytic]+v[career.Leadership] > 11:
		return career.BusinessAnalyst
	case v[career.Programming] > 4.0 && v[career.Analytic] > 3.5:
		return career.SoftwareEngineer
	case v[career.UX] > 3.5 && v[career.Creativity] > 3.5:
		return career.UIUXDesigner
	case v[career.Leadership] > 4.0 && v[career.Organization] > 3.5:
		return career.ProjectManager
	default:
		return career.QualityAssurance
	}
}

func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.samples)
}

// At returns the i-th sample. It panics when i is out of range.
func (c *Corpus) At(i int) Sample {
	return c.samples[i]
}

// Features returns a copy of every vector as a feature row.
func (c *Corpus) Features() [][]float64 {
	rows := make([][]float64, c.Len())
	for i := range rows {
		v := c.samples[i].Vector
		rows[i] = append([]float64(nil), v[:]...)
	}
	return rows
}

// Labels returns the class index of every sample.
func (c *Corpus) Labels() []int {
	labels := make([]int, c.Len())
	for i := range labels {
		labels[i] = int(c.samples[i].Label)
	}
	return labels
}

// Distribution counts samples per label. Labels without samples are present with zero.
func (c *Corpus) Distribution() map[career.Label]int {
	counts := make(map[career.Label]int, career.LabelCount)
	for _, l := range career.Labels() {
		counts[l] = 0
	}
	for i := 0; i < c.Len(); i++ {
		counts[c.samples[i].Label]++
	}
	return counts
}

package outcome

import (
	"math/rand/v2"

	"github.com/spigell/career-predictor/internal/career"
)

const (
	MinConfidence = 75.0
	MaxConfidence = 99.0

	fallbackColor = "gray"
)

var subRoles = map[career.Label][]string{
	career.SoftwareEngineer: {"Backend Engineer", "Frontend Engineer", "Full Stack Developer"},
	career.UIUXDesigner:     {"UI Designer", "UX Researcher", "Interaction Designer"},
	career.BusinessAnalyst:  {"Systems Analyst", "Product Analyst"},
	career.ProjectManager:   {"Scrum Master", "Agile Project Coordinator"},
	career.QualityAssurance: {"QA Tester", "Automation Engineer"},
}

var colors = map[career.Label]string{
	career.BusinessAnalyst:  "royalblue",
	career.SoftwareEngineer: "green",
	career.UIUXDesigner:     "lightseagreen",
	career.ProjectManager:   "darkorange",
	career.QualityAssurance: "purple",
}

var rationales = map[career.Label]string{
	career.BusinessAnalyst:  "You demonstrate strong communication, analytical, and coordination abilities, ideal for analytical and stakeholder-focused roles.",
	career.UIUXDesigner:     "You exhibit creativity, empathy, and design awareness that align with user-centered design careers.",
	career.ProjectManager:   "You show leadership, organization, and time management, key for managing projects and teams.",
	career.SoftwareEngineer: "You possess strong technical, analytical, and problem-solving skills for development-focused paths.",
	career.QualityAssurance: "You have attention to detail, persistence, and quality focus suited for testing and validation roles.",
}

// Random is the source of sub-role and confidence draws. *rand.Rand satisfies it.
type Random interface {
	IntN(n int) int
	Float64() float64
}

// globalRandom uses the runtime-seeded top-level functions, which are safe for concurrent use.
type globalRandom struct{}

func (globalRandom) IntN(n int) int   { return rand.IntN(n) }
func (globalRandom) Float64() float64 { return rand.Float64() }

// Synthesizer turns a predicted label into a displayable outcome.
type Synthesizer struct {
	rnd Random
}

// New returns a Synthesizer drawing from rnd. A nil rnd selects an unseeded
// source that is safe for concurrent use; a caller-supplied source is only as
// safe as its implementation.
func New(rnd Random) *Synthesizer {
	if rnd == nil {
		rnd = globalRandom{}
	}
	return &Synthesizer{rnd: rnd}
}

// Synthesize picks a sub-role and a confidence in [MinConfidence, MaxConfidence]
// and attaches the label's color and rationale. Repeated calls with the same
// label are not expected to agree on sub-role or confidence.
func (s *Synthesizer) Synthesize(label career.Label) career.Outcome {
	candidates := SubRoles(label)

	return career.Outcome{
		Label:      label,
		SubRole:    candidates[s.rnd.IntN(len(candidates))],
		Confidence: MinConfidence + s.rnd.Float64()*(MaxConfidence-MinConfidence),
		Color:      Color(label),
		Rationale:  Rationale(label),
	}
}

// SubRoles returns the candidate sub-roles of label. Unknown labels get the
// Quality Assurance candidates.
func SubRoles(label career.Label) []string {
	candidates, ok := subRoles[label]
	if !ok {
		candidates = subRoles[career.QualityAssurance]
	}
	return append([]string(nil), candidates...)
}

func Color(label career.Label) string {
	if c, ok := colors[label]; ok {
		return c
	}
	return fallbackColor
}

func Rationale(label career.Label) string {
	return rationales[label]
}

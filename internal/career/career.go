package career

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInitialization marks failures that must abort startup.
	ErrInitialization = errors.New("initialization failed")
	// ErrMalformedInput marks answer sets that violate the caller contract.
	ErrMalformedInput = errors.New("malformed input")
)

// Dimension identifies one skill axis of a SkillVector.
type Dimension int

const (
	Communication Dimension = iota
	Analytic
	Leadership
	Creativity
	Programming
	UX
	QA
	Organization
	Teamwork
	ProblemSolving
)

// DimensionCount is the length of every SkillVector.
const DimensionCount = 10

var dimensionNames = [DimensionCount]string{
	"communication",
	"analytic",
	"leadership",
	"creativity",
	"programming",
	"ux",
	"qa",
	"organization",
	"teamwork",
	"problem_solving",
}

func (d Dimension) String() string {
	if d < 0 || int(d) >= DimensionCount {
		return fmt.Sprintf("dimension(%d)", int(d))
	}
	return dimensionNames[d]
}

func (d Dimension) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Dimensions returns all dimensions in SkillVector order.
func Dimensions() []Dimension {
	dims := make([]Dimension, DimensionCount)
	for i := range dims {
		dims[i] = Dimension(i)
	}
	return dims
}

// SkillVector holds one score per dimension, indexed by Dimension.
type SkillVector [DimensionCount]float64

// Get returns the score of the given dimension.
func (v SkillVector) Get(d Dimension) float64 {
	return v[d]
}

// Map returns the vector keyed by dimension name.
func (v SkillVector) Map() map[string]float64 {
	out := make(map[string]float64, DimensionCount)
	for i, score := range v {
		out[dimensionNames[i]] = score
	}
	return out
}

// Label is one of the predicted career roles.
type Label int

const (
	BusinessAnalyst Label = iota
	SoftwareEngineer
	UIUXDesigner
	ProjectManager
	QualityAssurance
)

// LabelCount is the number of roles a classifier can produce.
const LabelCount = 5

var labelNames = [LabelCount]string{
	"Business Analyst",
	"Software Engineer",
	"UI/UX Designer",
	"Project Manager",
	"Quality Assurance",
}

// Labels returns every role in enum order.
func Labels() []Label {
	labels := make([]Label, LabelCount)
	for i := range labels {
		labels[i] = Label(i)
	}
	return labels
}

// Valid reports whether l is one of the known roles.
func (l Label) Valid() bool {
	return l >= 0 && int(l) < LabelCount
}

func (l Label) String() string {
	if !l.Valid() {
		return fmt.Sprintf("label(%d)", int(l))
	}
	return labelNames[l]
}

// ParseLabel resolves a display name, case-insensitively.
func ParseLabel(s string) (Label, error) {
	s = strings.TrimSpace(s)
	for i, name := range labelNames {
		if strings.EqualFold(name, s) {
			return Label(i), nil
		}
	}
	return 0, fmt.Errorf("unknown label %q", s)
}

func (l Label) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("invalid label %d", int(l))
	}
	return []byte(l.String()), nil
}

func (l *Label) UnmarshalText(text []byte) error {
	parsed, err := ParseLabel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Classifier maps a skill vector to a role. Implementations must be safe for
// concurrent use once constructed.
type Classifier interface {
	Predict(v SkillVector) Label
}

// Outcome is the displayable result of one submission.
type Outcome struct {
	Label      Label   `json:"label"`
	SubRole    string  `json:"sub_role"`
	Confidence float64 `json:"confidence"`
	Color      string  `json:"color"`
	Rationale  string  `json:"rationale"`
}

// Title is the gauge caption, e.g. "Software Engineer (Backend Engineer)".
func (o *Outcome) Title() string {
	return fmt.Sprintf("%s (%s)", o.Label, o.SubRole)
}

func (o *Outcome) Headline() string {
	return fmt.Sprintf("You are suitable to be a %s.", o.Label)
}

func (o *Outcome) Recommendation() string {
	return "Recommended Sub-Path: " + o.SubRole
}

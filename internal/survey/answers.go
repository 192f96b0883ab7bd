package survey

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spigell/career-predictor/internal/career"
)

// Answer is a Likert response. The zero value means the item was left unanswered.
type Answer int

const (
	Unanswered Answer = iota
	StronglyDisagree
	Disagree
	Neutral
	Agree
	StronglyAgree
)

const (
	MinAnswer = StronglyDisagree
	MaxAnswer = StronglyAgree
)

var answerLabels = [...]string{
	Unanswered:       "Unanswered",
	StronglyDisagree: "Strongly Disagree",
	Disagree:         "Disagree",
	Neutral:          "Neutral",
	Agree:            "Agree",
	StronglyAgree:    "Strongly Agree",
}

func (a Answer) String() string {
	if a < Unanswered || a > MaxAnswer {
		return fmt.Sprintf("answer(%d)", int(a))
	}
	return answerLabels[a]
}

// AnswerSet holds one answer per question in questionnaire order.
type AnswerSet []Answer

// Validate checks the length and value range of the set.
func (s AnswerSet) Validate() error {
	if len(s) != QuestionCount {
		return fmt.Errorf("%w: got %d answers, want %d", career.ErrMalformedInput, len(s), QuestionCount)
	}
	for i, a := range s {
		if a < Unanswered || a > MaxAnswer {
			return fmt.Errorf("%w: answer %d is %d, want %d..%d or unanswered", career.ErrMalformedInput, i+1, int(a), MinAnswer, MaxAnswer)
		}
	}
	return nil
}

// Answered counts the items that were not skipped.
func (s AnswerSet) Answered() int {
	n := 0
	for _, a := range s {
		if a != Unanswered {
			n++
		}
	}
	return n
}

// Aggregate averages each group of GroupSize answers into one skill score.
// Unanswered items count as Neutral, so every score lies in [1, 5].
func Aggregate(s AnswerSet) (career.SkillVector, error) {
	var v career.SkillVector
	if err := s.Validate(); err != nil {
		return v, err
	}

	for d := range v {
		sum := 0
		for _, a := range s[d*GroupSize : (d+1)*GroupSize] {
			if a == Unanswered {
				a = Neutral
			}
			sum += int(a)
		}
		v[d] = float64(sum) / GroupSize
	}

	return v, nil
}

// FromOptional converts nullable values, where nil is unanswered.
func FromOptional(values []*int) (AnswerSet, error) {
	set := make(AnswerSet, len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		if *v < int(MinAnswer) || *v > int(MaxAnswer) {
			return nil, fmt.Errorf("%w: answer %d is %d, want %d..%d or null", career.ErrMalformedInput, i+1, *v, MinAnswer, MaxAnswer)
		}
		set[i] = Answer(*v)
	}
	return set, set.Validate()
}

// ParseAnswers reads a comma separated list such as "5,4,,3,-". Empty items
// and "-" are unanswered.
func ParseAnswers(s string) (AnswerSet, error) {
	parts := strings.Split(s, ",")
	set := make(AnswerSet, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" || part == "-" {
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: answer %d: %q is not a number", career.ErrMalformedInput, i+1, part)
		}
		if n < int(MinAnswer) || n > int(MaxAnswer) {
			return nil, fmt.Errorf("%w: answer %d is %d, want %d..%d", career.ErrMalformedInput, i+1, n, MinAnswer, MaxAnswer)
		}
		set[i] = Answer(n)
	}
	return set, set.Validate()
}

// String renders the set in the format accepted by ParseAnswers.
func (s AnswerSet) String() string {
	parts := make([]string, len(s))
	for i, a := range s {
		if a != Unanswered {
			parts[i] = strconv.Itoa(int(a))
		}
	}
	return strings.Join(parts, ",")
}

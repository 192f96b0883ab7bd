package survey

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/spigell/career-predictor/internal/career"
)

func filled(a Answer) AnswerSet {
	set := make(AnswerSet, QuestionCount)
	for i := range set {
		set[i] = a
	}
	return set
}

func TestQuestions(t *testing.T) {
	t.Parallel()

	questions := Questions()
	if len(questions) != QuestionCount {
		t.Fatalf("expected %d questions, got %d", QuestionCount, len(questions))
	}

	for i, q := range questions {
		if q.Index != i {
			t.Fatalf("question %d has index %d", i, q.Index)
		}
		if q.Dimension != career.Dimension(i/GroupSize) {
			t.Fatalf("question %d feeds %v, want %v", i, q.Dimension, career.Dimension(i/GroupSize))
		}
		if strings.TrimSpace(q.Text) == "" || strings.TrimSpace(q.Theme) == "" {
			t.Fatalf("question %d is missing text or theme", i)
		}
	}

	if questions[12].Theme != "Programming & Technical" || questions[12].Dimension != career.Programming {
		t.Fatalf("question 13 must open the programming group, got %+v", questions[12])
	}

	scale := Scale()
	if len(scale) != 5 || scale[0].Label != "Strongly Disagree" || scale[4].Value != StronglyAgree {
		t.Fatalf("unexpected scale: %+v", scale)
	}
}

func TestAggregate(t *testing.T) {
	t.Parallel()

	set := filled(Unanswered)
	// communication: 5, 4, unanswered -> (5+4+3)/3
	set[0], set[1] = StronglyAgree, Agree
	// programming: 5, 5, 2
	set[12], set[13], set[14] = StronglyAgree, StronglyAgree, Disagree

	v, err := Aggregate(set)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	if v[career.Communication] != 4 {
		t.Fatalf("expected communication 4, got %v", v[career.Communication])
	}
	if v[career.Programming] != 4 {
		t.Fatalf("expected programming 4, got %v", v[career.Programming])
	}
	if v[career.Analytic] != 3 {
		t.Fatalf("expected unanswered group to be neutral, got %v", v[career.Analytic])
	}
}

func TestAggregateAllUnanswered(t *testing.T) {
	t.Parallel()

	v, err := Aggregate(filled(Unanswered))
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	for d, score := range v {
		if score != 3 {
			t.Fatalf("dimension %v: expected 3, got %v", career.Dimension(d), score)
		}
	}
}

func TestAggregateRange(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(3, 3))
	for i := 0; i < 500; i++ {
		set := make(AnswerSet, QuestionCount)
		for j := range set {
			set[j] = Answer(rng.IntN(int(MaxAnswer) + 1))
		}

		v, err := Aggregate(set)
		if err != nil {
			t.Fatalf("aggregate %v: %v", set, err)
		}
		if len(v) != career.DimensionCount {
			t.Fatalf("expected %d dimensions, got %d", career.DimensionCount, len(v))
		}
		for d, score := range v {
			if score < 1 || score > 5 {
				t.Fatalf("dimension %v out of range: %v", career.Dimension(d), score)
			}
		}
	}
}

func TestAggregateRejectsMalformed(t *testing.T) {
	t.Parallel()

	tooShort := filled(Neutral)[:29]
	tooLong := append(filled(Neutral), Neutral)
	outOfRange := filled(Neutral)
	outOfRange[7] = 6
	negative := filled(Neutral)
	negative[0] = -1

	for name, set := range map[string]AnswerSet{
		"too short":    tooShort,
		"too long":     tooLong,
		"out of range": outOfRange,
		"negative":     negative,
		"nil":          nil,
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if _, err := Aggregate(set); !errors.Is(err, career.ErrMalformedInput) {
				t.Fatalf("expected ErrMalformedInput, got %v", err)
			}
		})
	}
}

func TestParseAnswers(t *testing.T) {
	t.Parallel()

	raw := "5,4,,3,-,1" + strings.Repeat(",2", 24)
	set, err := ParseAnswers(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if set[0] != StronglyAgree || set[2] != Unanswered || set[4] != Unanswered || set[29] != Disagree {
		t.Fatalf("unexpected answers: %v", set)
	}
	if set.Answered() != 28 {
		t.Fatalf("expected 28 answered items, got %d", set.Answered())
	}

	back, err := ParseAnswers(set.String())
	if err != nil {
		t.Fatalf("parse rendered set: %v", err)
	}
	for i := range set {
		if back[i] != set[i] {
			t.Fatalf("answer %d changed from %v to %v", i, set[i], back[i])
		}
	}

	for _, bad := range []string{"", "1,2,3", "x" + strings.Repeat(",1", 29), "0" + strings.Repeat(",1", 29), "6" + strings.Repeat(",1", 29)} {
		if _, err := ParseAnswers(bad); !errors.Is(err, career.ErrMalformedInput) {
			t.Fatalf("expected ErrMalformedInput for %q, got %v", bad, err)
		}
	}
}

func TestFromOptional(t *testing.T) {
	t.Parallel()

	values := make([]*int, QuestionCount)
	five, zero := 5, 0
	values[3] = &five

	set, err := FromOptional(values)
	if err != nil {
		t.Fatalf("from optional: %v", err)
	}
	if set[3] != StronglyAgree || set[0] != Unanswered {
		t.Fatalf("unexpected answers: %v", set)
	}

	values[4] = &zero
	if _, err := FromOptional(values); !errors.Is(err, career.ErrMalformedInput) {
		t.Fatalf("explicit zero must be rejected, got %v", err)
	}

	if _, err := FromOptional(values[:10]); !errors.Is(err, career.ErrMalformedInput) {
		t.Fatalf("short input must be rejected, got %v", err)
	}
}

func TestAnswerString(t *testing.T) {
	t.Parallel()

	if Neutral.String() != "Neutral" || Unanswered.String() != "Unanswered" {
		t.Fatalf("unexpected answer labels")
	}
	if Answer(9).String() != "answer(9)" {
		t.Fatalf("unexpected out of range label %q", Answer(9).String())
	}
}

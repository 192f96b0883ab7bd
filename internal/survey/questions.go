package survey

import "github.com/spigell/career-predictor/internal/career"

const (
	// GroupSize is the number of consecutive questions feeding one dimension.
	GroupSize = 3
	// QuestionCount is the length of every AnswerSet.
	QuestionCount = career.DimensionCount * GroupSize
)

// Question is a single questionnaire item.
type Question struct {
	// Index is the zero-based position in the questionnaire.
	Index int `json:"index"`
	// Theme is the heading the item is listed under.
	Theme string `json:"theme"`
	Text  string `json:"text"`
	// Dimension is the skill the answer contributes to.
	Dimension career.Dimension `json:"dimension"`
}

// Option is one point of the answer scale.
type Option struct {
	Value Answer `json:"value"`
	Label string `json:"label"`
}

type theme struct {
	name  string
	items [GroupSize]string
}

// Themes are listed in questionnaire order. The n-th theme feeds the n-th
// dimension regardless of its heading.
var themes = [career.DimensionCount]theme{
	{"Communication", [GroupSize]string{
		"I can clearly express technical ideas to non-technical audiences.",
		"I communicate effectively in both written and verbal form.",
		"I can confidently lead meetings or presentations.",
	}},
	{"Analytical", [GroupSize]string{
		"I enjoy identifying patterns and drawing insights from data.",
		"I like solving logical problems and analyzing system behaviors.",
		"I can make data-driven decisions with confidence.",
	}},
	{"Leadership", [GroupSize]string{
		"I take initiative in group settings and motivate others.",
		"I handle conflicts constructively within a team.",
		"I can coordinate resources and timelines effectively.",
	}},
	{"Creativity & UX", [GroupSize]string{
		"I enjoy designing or improving user interfaces.",
		"I can empathize with end users to enhance usability.",
		"I value aesthetics and visual balance in designs.",
	}},
	{"Programming & Technical", [GroupSize]string{
		"I am comfortable coding or automating processes.",
		"I enjoy debugging and optimizing code performance.",
		"I stay updated with emerging technologies.",
	}},
	{"QA & Detail Orientation", [GroupSize]string{
		"I focus on precision and accuracy in my work.",
		"I prefer to test and validate before final delivery.",
		"I can identify potential risks or flaws early in a project.",
	}},
	{"Organization & Planning", [GroupSize]string{
		"I am good at prioritizing and scheduling tasks.",
		"I manage multiple responsibilities effectively.",
		"I meet deadlines consistently.",
	}},
	{"Problem-solving & Adaptability", [GroupSize]string{
		"I adapt quickly to changing project requirements.",
		"I enjoy brainstorming and experimenting with new ideas.",
		"I find innovative ways to overcome challenges.",
	}},
	{"Teamwork & Collaboration", [GroupSize]string{
		"I work effectively within a team environment.",
		"I value others' opinions in decision-making.",
		"I support teammates to achieve common goals.",
	}},
	{"Learning & Self-Development", [GroupSize]string{
		"I seek continuous learning and self-improvement.",
		"I handle feedback positively and constructively.",
		"I can learn new tools or skills independently.",
	}},
}

// Questions returns the questionnaire in answer order.
func Questions() []Question {
	questions := make([]Question, 0, QuestionCount)
	for d, th := range themes {
		for _, text := range th.items {
			questions = append(questions, Question{
				Index:     len(questions),
				Theme:     th.name,
				Text:      text,
				Dimension: career.Dimension(d),
			})
		}
	}
	return questions
}

// Scale returns the answer options from Strongly Disagree to Strongly Agree.
func Scale() []Option {
	options := make([]Option, 0, MaxAnswer)
	for a := MinAnswer; a <= MaxAnswer; a++ {
		options = append(options, Option{Value: a, Label: a.String()})
	}
	return options
}

package server

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/spigell/career-predictor/internal/career"
	"github.com/spigell/career-predictor/internal/survey"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html.tmpl"))

type formItem struct {
	survey.Question
	Selected     survey.Answer
	FirstInTheme bool
}

type pageData struct {
	Items   []formItem
	Scale   []survey.Option
	Outcome *career.Outcome
	Error   string
}

func newPageData(answers survey.AnswerSet) pageData {
	questions := survey.Questions()
	items := make([]formItem, len(questions))
	for i, q := range questions {
		items[i] = formItem{Question: q, FirstInTheme: i == 0 || questions[i-1].Theme != q.Theme}
		if i < len(answers) {
			items[i].Selected = answers[i]
		}
	}
	return pageData{Items: items, Scale: survey.Scale()}
}

// handleForm renders the questionnaire with an empty result panel.
func (s *Server) handleForm(w http.ResponseWriter, _ *http.Request) {
	s.render(w, http.StatusOK, newPageData(nil))
}

func (s *Server) handleFormSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("parsing form: %w", err))
		return
	}

	answers, err := answersFromForm(r)
	data := newPageData(answers)
	if err != nil {
		data.Error = err.Error()
		s.render(w, http.StatusBadRequest, data)
		return
	}

	_, result, err := s.evaluate(answers)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, career.ErrMalformedInput) {
			status = http.StatusBadRequest
		}
		data.Error = err.Error()
		s.render(w, status, data)
		return
	}

	data.Outcome = result
	s.render(w, http.StatusOK, data)
}

// answersFromForm reads q0..q29. Missing or empty fields are unanswered.
func answersFromForm(r *http.Request) (survey.AnswerSet, error) {
	answers := make(survey.AnswerSet, survey.QuestionCount)
	for i := range answers {
		raw := r.PostFormValue("q" + strconv.Itoa(i))
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < int(survey.MinAnswer) || n > int(survey.MaxAnswer) {
			return answers, fmt.Errorf("%w: question %d has invalid value %q", career.ErrMalformedInput, i+1, raw)
		}
		answers[i] = survey.Answer(n)
	}
	return answers, nil
}

func (s *Server) render(w http.ResponseWriter, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, data); err != nil {
		s.logger.Error("rendering page", zap.Error(err))
	}
}

package server

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"github.com/spigell/career-predictor/internal/career"
	"github.com/spigell/career-predictor/internal/survey"
	"github.com/spigell/career-predictor/internal/utils"
)

//go:embed evaluate_request.schema.json
var evaluateSchema []byte

var evaluateSchemaLoader = gojsonschema.NewBytesLoader(evaluateSchema)

const maxLogLength = 200

type evaluateRequest struct {
	Answers []*int `mapstructure:"answers"`
}

type evaluateResponse struct {
	RequestID      string `json:"request_id"`
	Headline       string `json:"headline"`
	Recommendation string `json:"recommendation"`
	career.Outcome
}

type questionsResponse struct {
	Questions []survey.Question `json:"questions"`
	Scale     []survey.Option   `json:"scale"`
}

func (s *Server) handleQuestions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, questionsResponse{
		Questions: survey.Questions(),
		Scale:     survey.Scale(),
	})
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, fmt.Errorf("reading body: %w", err))
		return
	}

	req, err := decodeEvaluateRequest(body)
	if err != nil {
		s.logger.Debug("invalid evaluate request",
			zap.Error(err),
			zap.String("body_preview", utils.TruncateForLog(string(body), maxLogLength)),
		)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	answers, err := survey.FromOptional(req.Answers)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	id, result, err := s.evaluate(answers)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, career.ErrMalformedInput) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err)
		return
	}

	writeJSON(w, http.StatusOK, evaluateResponse{
		RequestID:      id,
		Headline:       result.Headline(),
		Recommendation: result.Recommendation(),
		Outcome:        *result,
	})
}

// decodeEvaluateRequest validates the payload against the request schema and
// decodes it. Schema violations wrap career.ErrMalformedInput.
func decodeEvaluateRequest(body []byte) (*evaluateRequest, error) {
	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: body is not a json object: %w", career.ErrMalformedInput, err)
	}

	result, err := gojsonschema.Validate(evaluateSchemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("validating request: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			msgs[i] = desc.String()
		}
		return nil, fmt.Errorf("%w: %s", career.ErrMalformedInput, strings.Join(msgs, "; "))
	}

	var req evaluateRequest
	if err := mapstructure.Decode(doc, &req); err != nil {
		return nil, fmt.Errorf("%w: decoding request: %w", career.ErrMalformedInput, err)
	}
	return &req, nil
}

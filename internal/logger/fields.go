package logger

import (
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/career-predictor/internal/career"
)

const (
	// FieldRequestID is the structured log field key for a submission identifier.
	FieldRequestID = "request_id"
	// FieldLabel is the structured log field key for a predicted role.
	FieldLabel = "label"
	// FieldSubRole is the structured log field key for the drawn sub-role.
	FieldSubRole = "sub_role"
	// FieldConfidence is the structured log field key for the displayed confidence.
	FieldConfidence = "confidence"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields attaches fields to the logger, falling back to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// WithRequest tags every entry with the submission identifier.
func WithRequest(logger *zap.Logger, requestID string) *zap.Logger {
	return WithFields(logger, StringFields(StringField{Key: FieldRequestID, Value: requestID})...)
}

// OutcomeFields describes an outcome. A nil outcome yields no fields.
func OutcomeFields(o *career.Outcome) []zap.Field {
	if o == nil {
		return nil
	}

	fields := StringFields(
		StringField{Key: FieldLabel, Value: o.Label.String()},
		StringField{Key: FieldSubRole, Value: o.SubRole},
	)
	return append(fields, zap.Float64(FieldConfidence, o.Confidence))
}

// VectorField logs a skill vector keyed by dimension name.
func VectorField(key string, v career.SkillVector) zap.Field {
	return zap.Any(key, v.Map())
}

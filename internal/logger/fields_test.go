package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/career-predictor/internal/career"
)

func TestStringFields(t *testing.T) {
	fields := StringFields(
		StringField{Key: "  label  ", Value: "  Project Manager  "},
		StringField{Key: "ignored", Value: "   "},
		StringField{Key: "   ", Value: "empty key"},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}

	if fields[0].Key != "label" || fields[0].String != "Project Manager" {
		t.Fatalf("unexpected label field: %+v", fields[0])
	}

	empty := StringFields()
	if len(empty) != 0 {
		t.Fatalf("expected empty fields, got %d", len(empty))
	}
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	enriched := WithFields(logger, zap.String("foo", "bar"))
	enriched.Info("test log")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx["foo"] != "bar" {
		t.Fatalf("expected field to be bar, got %q", ctx["foo"])
	}

	enriched = WithFields(nil, zap.String("baz", "qux"))
	if enriched == nil {
		t.Fatalf("expected fallback logger when nil provided")
	}

	// Ensure logging with the fallback logger does not panic.
	enriched.Info("another log")
}

func TestWithRequest(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	WithRequest(zap.New(core), "req-1").Info("evaluated")
	WithRequest(zap.New(core), "  ").Info("no id")

	entries := observed.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	if entries[0].ContextMap()[FieldRequestID] != "req-1" {
		t.Fatalf("expected request id field, got %v", entries[0].ContextMap())
	}
	if _, ok := entries[1].ContextMap()[FieldRequestID]; ok {
		t.Fatalf("blank request id must be omitted")
	}
}

func TestOutcomeFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	o := &career.Outcome{Label: career.UIUXDesigner, SubRole: "UX Researcher", Confidence: 81.5}
	logger.Info("outcome", OutcomeFields(o)...)
	logger.Info("vector", VectorField("skills", career.SkillVector{career.Communication: 2}))

	entries := observed.All()
	ctx := entries[0].ContextMap()
	if ctx[FieldLabel] != "UI/UX Designer" {
		t.Fatalf("unexpected label field %v", ctx[FieldLabel])
	}
	if ctx[FieldSubRole] != "UX Researcher" {
		t.Fatalf("unexpected sub-role field %v", ctx[FieldSubRole])
	}
	if ctx[FieldConfidence] != 81.5 {
		t.Fatalf("unexpected confidence field %v", ctx[FieldConfidence])
	}

	skills, ok := entries[1].ContextMap()["skills"].(map[string]float64)
	if !ok || skills["communication"] != 2 {
		t.Fatalf("unexpected skills field %v", entries[1].ContextMap()["skills"])
	}

	if OutcomeFields(nil) != nil {
		t.Fatalf("expected no fields for nil outcome")
	}
}

func TestNew(t *testing.T) {
	for _, tc := range []struct{ json, debug bool }{{false, false}, {true, true}} {
		l, err := New(tc.json, tc.debug)
		if err != nil {
			t.Fatalf("new logger: %v", err)
		}
		if got := l.Core().Enabled(zapcore.DebugLevel); got != tc.debug {
			t.Fatalf("debug enabled = %v, want %v", got, tc.debug)
		}
	}
}

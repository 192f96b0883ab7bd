package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/spigell/career-predictor/internal/career"
)

func TestPrintOutcomeText(t *testing.T) {
	o := &career.Outcome{
		Label:      career.ProjectManager,
		SubRole:    "Scrum Master",
		Confidence: 91.04,
		Color:      "orange",
		Rationale:  "You are organized and lead well.",
	}

	var buf bytes.Buffer
	if err := printOutcome(&buf, outputText, o); err != nil {
		t.Fatalf("printOutcome: %v", err)
	}

	for _, want := range []string{
		"Project Manager (Scrum Master)",
		"Confidence: 91.0%",
		"You are suitable to be a Project Manager.",
		"Recommended Sub-Path: Scrum Master",
		"You are organized and lead well.",
	} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output %q does not contain %q", buf.String(), want)
		}
	}
}

func TestPrintOutcomeJSON(t *testing.T) {
	o := &career.Outcome{Label: career.UIUXDesigner, SubRole: "UX Researcher", Confidence: 80, Color: "purple"}

	var buf bytes.Buffer
	if err := printOutcome(&buf, outputJSON, o); err != nil {
		t.Fatalf("printOutcome: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not json: %v", err)
	}
	if got["label"] != "UI/UX Designer" {
		t.Errorf("label = %v", got["label"])
	}
	if got["recommendation"] != "Recommended Sub-Path: UX Researcher" {
		t.Errorf("recommendation = %v", got["recommendation"])
	}
}

func TestPrintQuestions(t *testing.T) {
	var buf bytes.Buffer
	printQuestions(&buf)

	out := buf.String()
	for _, want := range []string{
		"1 = Strongly Disagree",
		"Programming & Technical",
		" 30. I can learn new tools or skills independently.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("questions output does not contain %q", want)
		}
	}
}

func TestConfigDefaultsAndEnv(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	t.Setenv("CAREER_SERVER_LISTEN", "127.0.0.1:9000")
	t.Setenv("CAREER_MODEL_MAX_DEPTH", "7")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if config.Server.Listen != "127.0.0.1:9000" {
		t.Errorf("listen = %q", config.Server.Listen)
	}
	if config.Server.ShutdownTimeout != 15*time.Second {
		t.Errorf("shutdown timeout = %s", config.Server.ShutdownTimeout)
	}
	if config.Model.MaxDepth != 7 {
		t.Errorf("max depth = %d", config.Model.MaxDepth)
	}

	got := config.Model.predictor()
	if got.Samples != 2500 || got.Seed != 42 || got.Trees != 120 {
		t.Errorf("model defaults = %+v", got)
	}
}

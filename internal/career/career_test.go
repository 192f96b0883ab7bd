package career

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseLabel(t *testing.T) {
	t.Parallel()

	for _, label := range Labels() {
		got, err := ParseLabel("  " + label.String() + " ")
		if err != nil {
			t.Fatalf("parse %q: %v", label, err)
		}
		if got != label {
			t.Fatalf("expected %v, got %v", label, got)
		}
	}

	got, err := ParseLabel("ui/ux designer")
	if err != nil || got != UIUXDesigner {
		t.Fatalf("expected case-insensitive match, got %v (%v)", got, err)
	}

	if _, err := ParseLabel("Astronaut"); err == nil {
		t.Fatalf("expected error for unknown label")
	}
}

func TestOutcomeJSON(t *testing.T) {
	t.Parallel()

	o := Outcome{
		Label:      SoftwareEngineer,
		SubRole:    "Backend Engineer",
		Confidence: 80,
		Color:      "green",
		Rationale:  "because",
	}

	data, err := json.Marshal(o)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["label"] != "Software Engineer" {
		t.Fatalf("expected display name in json, got %v", decoded["label"])
	}

	var back Outcome
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal outcome: %v", err)
	}
	if back != o {
		t.Fatalf("expected %+v, got %+v", o, back)
	}

	if _, err := json.Marshal(Outcome{Label: Label(42)}); err == nil {
		t.Fatalf("expected error for invalid label")
	}
}

func TestOutcomeText(t *testing.T) {
	t.Parallel()

	o := &Outcome{Label: ProjectManager, SubRole: "Scrum Master"}
	if got := o.Title(); got != "Project Manager (Scrum Master)" {
		t.Fatalf("unexpected title %q", got)
	}
	if got := o.Headline(); got != "You are suitable to be a Project Manager." {
		t.Fatalf("unexpected headline %q", got)
	}
	if got := o.Recommendation(); got != "Recommended Sub-Path: Scrum Master" {
		t.Fatalf("unexpected recommendation %q", got)
	}
}

func TestSkillVectorMap(t *testing.T) {
	t.Parallel()

	var v SkillVector
	v[Programming] = 4.5
	m := v.Map()
	if len(m) != DimensionCount {
		t.Fatalf("expected %d keys, got %d", DimensionCount, len(m))
	}
	if m["programming"] != 4.5 {
		t.Fatalf("expected programming 4.5, got %v", m["programming"])
	}
	if Dimension(99).String() != "dimension(99)" {
		t.Fatalf("unexpected out of range dimension name")
	}
}

func TestErrorsAreDistinct(t *testing.T) {
	t.Parallel()

	if errors.Is(ErrInitialization, ErrMalformedInput) {
		t.Fatalf("sentinels must not match each other")
	}
}

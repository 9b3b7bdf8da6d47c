package triage

import (
	"strings"
	"testing"

	"carelink/models"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateEmergencyOverride(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name  string
		input string
	}{
		{"chest pain", "I have chest pain since this morning"},
		{"uppercase input", "SEVERE BLEEDING from a cut"},
		{"emergency beats category", "fever and difficulty breathing"},
		{"embedded keyword", "my father is unconscious"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := e.Evaluate(tt.input)
			assert.Equal(t, "emergency", g.Category)
			assert.Equal(t, models.SeverityEmergency, g.Severity)
			assert.Contains(t, g.Summary, "108")
		})
	}
}

func TestEvaluateCategories(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name         string
		input        string
		wantCategory string
		wantSeverity models.Severity
	}{
		{"headache", "bad headache all day", "headache", models.SeverityModerate},
		{"fever", "running a fever of 101", "fever", models.SeverityModerate},
		{"cough", "persistent cough at night", "cough", models.SeverityMild},
		{"mixed case", "I have a Fever", "fever", models.SeverityModerate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := e.Evaluate(tt.input)
			assert.Equal(t, tt.wantCategory, g.Category)
			assert.Equal(t, tt.wantSeverity, g.Severity)
			assert.NotEmpty(t, g.Questions)
			assert.NotEmpty(t, g.Recommendations)
			assert.NotEmpty(t, g.RedFlags)
		})
	}
}

func TestEvaluateDeclaredOrderTieBreak(t *testing.T) {
	e := NewEngine()

	// Headache is declared before cough, so it wins regardless of the order
	// the symptoms appear in the sentence.
	g := e.Evaluate("cough and headache")
	assert.Equal(t, "headache", g.Category)

	g = e.Evaluate("headache and cough")
	assert.Equal(t, "headache", g.Category)

	// Fever outranks cough the same way.
	g = e.Evaluate("cough with a mild fever")
	assert.Equal(t, "fever", g.Category)
}

func TestEvaluateFallback(t *testing.T) {
	e := NewEngine()

	for _, input := range []string{"", "   ", "my knee hurts", "feeling off lately"} {
		g := e.Evaluate(input)
		assert.Equal(t, "general", g.Category, "input %q", input)
		assert.Equal(t, models.SeverityUnknown, g.Severity)
		assert.NotEmpty(t, g.Questions)
	}
}

func TestRender(t *testing.T) {
	g := models.TriageGuidance{
		Category:        "headache",
		Summary:         "Summary line.",
		Questions:       []string{"Q1", "Q2"},
		Recommendations: []string{"R1"},
		RedFlags:        []string{"F1"},
	}

	out := Render(g)
	assert.True(t, strings.HasPrefix(out, "Summary line."))
	assert.Contains(t, out, "Questions:\n- Q1\n- Q2")
	assert.Contains(t, out, "Recommendations:\n- R1")
	assert.Contains(t, out, "Seek in-person care if:\n- F1")
}

func TestRenderOmitsEmptySections(t *testing.T) {
	out := Render(models.TriageGuidance{Summary: "Only a summary."})
	assert.Equal(t, "Only a summary.", out)
}

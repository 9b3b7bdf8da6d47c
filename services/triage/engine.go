package triage

import (
	"strings"

	"carelink/models"
)

// Engine evaluates free-text symptom descriptions against an ordered rule
// set. A single evaluation holds no state across calls and has no side
// effects; the caller owns appending results to a conversation.
type Engine struct {
	emergency []string
	rules     []Rule
	fallback  models.TriageGuidance
}

// NewEngine returns an engine with the built-in rule set.
func NewEngine() *Engine {
	return &Engine{
		emergency: emergencyKeywords,
		rules:     categoryRules,
		fallback:  fallbackGuidance,
	}
}

// Evaluate classifies the input.
//
// Matching is literal substring containment over the lowercased input.
// Emergency keywords are checked first and override everything else. Category
// rules are then tried in declared order; when the input mentions two
// categories, the earlier-declared one wins. This tie-break is deliberate,
// not an accident of iteration. The fallback always matches, so empty or
// unrecognized input still resolves to guidance, never an error.
func (e *Engine) Evaluate(input string) models.TriageGuidance {
	text := strings.ToLower(input)

	for _, kw := range e.emergency {
		if strings.Contains(text, kw) {
			return emergencyGuidance
		}
	}

	for _, rule := range e.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(text, kw) {
				return rule.Guidance
			}
		}
	}

	return e.fallback
}

// Render flattens guidance into the advisor chat message body.
func Render(g models.TriageGuidance) string {
	var sb strings.Builder
	sb.WriteString(g.Summary)
	writeSection := func(header string, items []string) {
		if len(items) == 0 {
			return
		}
		sb.WriteString("\n\n")
		sb.WriteString(header)
		for _, item := range items {
			sb.WriteString("\n- ")
			sb.WriteString(item)
		}
	}
	writeSection("Questions:", g.Questions)
	writeSection("Recommendations:", g.Recommendations)
	writeSection("Seek in-person care if:", g.RedFlags)
	return sb.String()
}

package models

// Severity tags a triage outcome.
type Severity string

const (
	SeverityEmergency Severity = "emergency"
	SeverityModerate  Severity = "moderate"
	SeverityMild      Severity = "mild"
	SeverityUnknown   Severity = "unknown"
)

// TriageGuidance is the structured advisory payload produced for a symptom
// description. Emergency matches are a successful classification, never an
// error path.
type TriageGuidance struct {
	Category        string   `json:"category"`                  // Matched rule name, "emergency", or "general".
	Summary         string   `json:"summary"`                   // Leading advisory text.
	Questions       []string `json:"questions,omitempty"`       // Immediate follow-up questions.
	Recommendations []string `json:"recommendations,omitempty"` // General self-care recommendations.
	RedFlags        []string `json:"redFlags,omitempty"`        // Criteria that warrant in-person care.
	Severity        Severity `json:"severity"`
}

package triage

import "carelink/models"

// Rule maps symptom keywords to canned guidance. Rules are evaluated in
// declared order and the first keyword hit wins, so the order of this file
// is load-bearing.
type Rule struct {
	Name     string
	Keywords []string
	Guidance models.TriageGuidance
}

// emergencyKeywords trigger the emergency override before any category rule
// is considered.
var emergencyKeywords = []string{
	"chest pain",
	"difficulty breathing",
	"unconscious",
	"severe bleeding",
}

// emergencyGuidance is returned for any emergency keyword hit. Detecting an
// emergency is a successful classification, not an error.
var emergencyGuidance = models.TriageGuidance{
	Category: "emergency",
	Summary: "This sounds like a medical emergency. Please call emergency " +
		"services (108) immediately or go to the nearest emergency room. " +
		"Do not wait for an online response.",
	Severity: models.SeverityEmergency,
}

// categoryRules in declared priority order: headache, then fever, then cough.
var categoryRules = []Rule{
	{
		Name:     "headache",
		Keywords: []string{"headache"},
		Guidance: models.TriageGuidance{
			Category: "headache",
			Summary:  "I understand you're experiencing a headache. A few questions:",
			Questions: []string{
				"How long have you had this headache?",
				"Is it constant or intermittent?",
				"Have you taken any medication?",
			},
			Recommendations: []string{
				"Rest in a quiet, dark room",
				"Stay hydrated",
				"Try over-the-counter pain relievers",
				"Apply a cold or warm compress",
			},
			RedFlags: []string{
				"Sudden, severe headache",
				"Headache with fever and stiff neck",
				"Headache after head injury",
			},
			Severity: models.SeverityModerate,
		},
	},
	{
		Name:     "fever",
		Keywords: []string{"fever"},
		Guidance: models.TriageGuidance{
			Category: "fever",
			Summary:  "I see you have a fever. Important questions:",
			Questions: []string{
				"What's your temperature?",
				"Any other symptoms?",
				"How long has it persisted?",
			},
			Recommendations: []string{
				"Rest and stay hydrated",
				"Take acetaminophen or ibuprofen",
				"Use light clothing and blankets",
				"Monitor temperature",
			},
			RedFlags: []string{
				"Temperature exceeds 103°F (39.4°C)",
				"Fever lasts more than 3 days",
				"Severe headache or rash develops",
			},
			Severity: models.SeverityModerate,
		},
	},
	{
		Name:     "cough",
		Keywords: []string{"cough"},
		Guidance: models.TriageGuidance{
			Category: "cough",
			Summary:  "Regarding your cough:",
			Questions: []string{
				"Is it dry or productive?",
				"How long have you had it?",
				"Any other symptoms?",
			},
			Recommendations: []string{
				"Stay hydrated",
				"Use honey for soothing (if above 1 year old)",
				"Try over-the-counter cough medicine",
				"Use a humidifier",
			},
			RedFlags: []string{
				"Cough lasts more than 3 weeks",
				"You're coughing up blood",
				"Having difficulty breathing",
			},
			Severity: models.SeverityMild,
		},
	},
}

// fallbackGuidance always matches last. "No information" is a valid triage
// outcome, so empty input lands here rather than producing an error.
var fallbackGuidance = models.TriageGuidance{
	Category: "general",
	Summary:  "I understand you're not feeling well. To better assist you, please provide more details about:",
	Questions: []string{
		"Your main symptoms",
		"How long you've had them",
		"Any other medical conditions",
		"Any medications you're taking",
	},
	Recommendations: []string{
		"Remember, this assistant is not a replacement for professional medical care. " +
			"If your symptoms are severe or you're unsure, please consult a healthcare provider in person.",
	},
	Severity: models.SeverityUnknown,
}

package models

// Prediction is one (label, confidence) pair returned by the remote
// image classifier, confidence in [0, 1].
type Prediction struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

package classifier

import (
	"context"

	"carelink/models"
)

// RemoteClassifier sends an image payload to a hosted model and returns a
// ranked list of (label, confidence) predictions.
type RemoteClassifier interface {
	Classify(ctx context.Context, image []byte, mimeType string) ([]models.Prediction, error)
}

// Top picks the maximum-confidence prediction. Ties are broken by first
// occurrence in the returned order.
func Top(preds []models.Prediction) (models.Prediction, bool) {
	if len(preds) == 0 {
		return models.Prediction{}, false
	}
	best := preds[0]
	for _, p := range preds[1:] {
		if p.Confidence > best.Confidence {
			best = p
		}
	}
	return best, true
}

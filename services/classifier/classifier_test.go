package classifier

import (
	"testing"

	"carelink/models"

	"github.com/stretchr/testify/assert"
)

func TestTop(t *testing.T) {
	tests := []struct {
		name   string
		preds  []models.Prediction
		want   models.Prediction
		wantOK bool
	}{
		{
			name:   "empty list",
			preds:  nil,
			wantOK: false,
		},
		{
			name:   "single prediction",
			preds:  []models.Prediction{{Label: "eczema", Confidence: 0.4}},
			want:   models.Prediction{Label: "eczema", Confidence: 0.4},
			wantOK: true,
		},
		{
			name: "highest confidence wins",
			preds: []models.Prediction{
				{Label: "eczema", Confidence: 0.3},
				{Label: "psoriasis", Confidence: 0.6},
				{Label: "dermatitis", Confidence: 0.1},
			},
			want:   models.Prediction{Label: "psoriasis", Confidence: 0.6},
			wantOK: true,
		},
		{
			name: "ties break to first occurrence",
			preds: []models.Prediction{
				{Label: "eczema", Confidence: 0.5},
				{Label: "psoriasis", Confidence: 0.5},
			},
			want:   models.Prediction{Label: "eczema", Confidence: 0.5},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Top(tt.preds)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

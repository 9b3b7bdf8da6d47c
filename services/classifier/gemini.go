// File: services/classifier/gemini.go
package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"carelink/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const classifyPrompt = "You are a medical imaging triage assistant. Classify the " +
	"attached image and respond with a JSON array of objects, each with a " +
	"\"label\" string and a \"confidence\" number between 0 and 1, ordered by " +
	"confidence descending."

// GeminiClassifier implements RemoteClassifier against a Gemini vision model.
// The API key stays server-side; clients never see it.
type GeminiClassifier struct {
	model *genai.GenerativeModel
}

func NewGeminiClassifier(apiKey string) (*GeminiClassifier, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	model.ResponseMIMEType = "application/json"
	return &GeminiClassifier{model: model}, nil
}

// Classify uploads the image bytes and parses the ranked predictions.
func (g *GeminiClassifier) Classify(ctx context.Context, image []byte, mimeType string) ([]models.Prediction, error) {
	format := strings.TrimPrefix(mimeType, "image/")

	resp, err := g.model.GenerateContent(ctx,
		genai.ImageData(format, image),
		genai.Text(classifyPrompt),
	)
	if err != nil {
		return nil, fmt.Errorf("gemini classify error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini classify: empty response")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}

	var preds []models.Prediction
	if err := json.Unmarshal([]byte(sb.String()), &preds); err != nil {
		return nil, fmt.Errorf("gemini classify: malformed prediction payload: %w", err)
	}
	return preds, nil
}

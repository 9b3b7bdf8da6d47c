// File: services/speech/google.go
package speech

import (
	"context"
	"fmt"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	"google.golang.org/api/option"
	speechpb "google.golang.org/genproto/googleapis/cloud/speech/v1"
)

// GoogleTranscriber implements Transcriber over the Google Cloud
// Speech-to-Text API. Audio must be LINEAR16 mono at 16kHz; the handler does
// conversion and validation before calling in.
type GoogleTranscriber struct {
	client *speech.Client
}

func NewGoogleTranscriber(credentialsFile string) (*GoogleTranscriber, error) {
	ctx := context.Background()
	client, err := speech.NewClient(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create speech client: %w", err)
	}
	return &GoogleTranscriber{client: client}, nil
}

func (t *GoogleTranscriber) Transcribe(ctx context.Context, audio []byte, languageCode string) (string, error) {
	if languageCode == "" {
		languageCode = "en-US"
	}

	resp, err := t.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:        speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz: 16000,
			LanguageCode:    languageCode,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	})
	if err != nil {
		return "", fmt.Errorf("speech recognize: %w", err)
	}

	var sb strings.Builder
	for _, result := range resp.Results {
		if len(result.Alternatives) > 0 {
			sb.WriteString(result.Alternatives[0].Transcript)
		}
	}
	return sb.String(), nil
}

// Close releases the underlying gRPC connection.
func (t *GoogleTranscriber) Close() error {
	return t.client.Close()
}

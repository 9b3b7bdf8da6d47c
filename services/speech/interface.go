package speech

import "context"

// Transcriber converts spoken symptom descriptions to text. The UI layer
// depends on this capability interface; the advisory core never touches audio.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, languageCode string) (string, error)
}

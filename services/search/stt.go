// File: services/search/stt.go
package search

import (
	"context"
	"fmt"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	"google.golang.org/api/option"
	speechpb "google.golang.org/genproto/googleapis/cloud/speech/v1"
)

// GoogleTranscriber implements Transcriber using Google Cloud Speech-to-Text.
// Voice search is the same operation as text search under a different payload
// encoding; this only turns the clip into query text.
type GoogleTranscriber struct {
	client *speech.Client
}

// NewGoogleTranscriber creates the speech client. credsFile may be empty when
// ambient credentials are available.
func NewGoogleTranscriber(credsFile string) (*GoogleTranscriber, error) {
	ctx := context.Background()
	var opts []option.ClientOption
	if credsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credsFile))
	}
	client, err := speech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create speech client: %w", err)
	}
	return &GoogleTranscriber{client: client}, nil
}

// Transcribe converts a short LINEAR16 WAV clip into text.
func (t *GoogleTranscriber) Transcribe(ctx context.Context, audio []byte, language string) (string, error) {
	if language == "" {
		language = "en-US"
	}

	resp, err := t.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:        speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz: 16000,
			LanguageCode:    language,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	})
	if err != nil {
		return "", fmt.Errorf("speech recognition failed: %w", err)
	}

	var sb strings.Builder
	for _, result := range resp.Results {
		if len(result.Alternatives) > 0 {
			sb.WriteString(result.Alternatives[0].Transcript)
		}
	}
	transcript := strings.TrimSpace(sb.String())
	if transcript == "" {
		return "", fmt.Errorf("no speech recognized in audio")
	}
	return transcript, nil
}

package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	deepgramListenURL = "https://api.deepgram.com/v1/listen?model=nova-2&smart_format=true"
	deepgramSpeakURL  = "https://api.deepgram.com/v1/speak?model=aura-asteria-en"
)

// SpeechService proxies speech-to-text and text-to-speech calls to Deepgram.
// It is a thin I/O wrapper; transcription quality and audio handling are the
// provider's concern.
type SpeechService struct {
	APIKey     string
	HTTPClient *http.Client
}

func NewSpeechService(apiKey string) *SpeechService {
	return &SpeechService{
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Transcription is the STT result: the first transcript plus the raw
// provider response for clients that want more detail.
type Transcription struct {
	Text string          `json:"text"`
	Raw  json.RawMessage `json:"raw"`
}

// Transcribe sends recorded audio to Deepgram and extracts the transcript.
func (sp *SpeechService) Transcribe(ctx context.Context, audio []byte, mimeType string) (*Transcription, error) {
	if sp.APIKey == "" {
		return nil, fmt.Errorf("missing DEEPGRAM_API_KEY")
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, deepgramListenURL, bytes.NewReader(audio))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Token "+sp.APIKey)
	req.Header.Set("Content-Type", mimeType)

	resp, err := sp.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("deepgram listen request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("deepgram listen returned status %d", resp.StatusCode)
	}

	var payload struct {
		Results struct {
			Channels []struct {
				Alternatives []struct {
					Transcript string `json:"transcript"`
				} `json:"alternatives"`
			} `json:"channels"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse deepgram response: %w", err)
	}

	text := ""
	if len(payload.Results.Channels) > 0 && len(payload.Results.Channels[0].Alternatives) > 0 {
		text = payload.Results.Channels[0].Alternatives[0].Transcript
	}

	return &Transcription{Text: text, Raw: body}, nil
}

// Synthesize turns text into spoken audio (audio/mpeg bytes).
func (sp *SpeechService) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if sp.APIKey == "" {
		return nil, fmt.Errorf("missing DEEPGRAM_API_KEY")
	}

	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, deepgramSpeakURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Token "+sp.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := sp.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("deepgram speak request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		details, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("deepgram speak returned status %d: %s", resp.StatusCode, details)
	}

	return io.ReadAll(resp.Body)
}

package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/lessonforge/lessonforge/pkg/config"
)

// ElevenLabsClient synthesizes speech through the ElevenLabs API
type ElevenLabsClient struct {
	apiKey  string
	baseURL string
	modelID string
	client  *http.Client
}

// NewElevenLabsClient creates an ElevenLabs TTS client
func NewElevenLabsClient(cfg *config.ElevenLabsConfig) *ElevenLabsClient {
	base := "https://api.elevenlabs.io"
	modelID := "eleven_multilingual_v2"
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
		if cfg.BaseURL != "" {
			base = cfg.BaseURL
		}
		if cfg.ModelID != "" {
			modelID = cfg.ModelID
		}
	}
	return &ElevenLabsClient{
		apiKey:  apiKey,
		baseURL: base,
		modelID: modelID,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Provider identifies this synthesizer
func (e *ElevenLabsClient) Provider() Provider {
	return ProviderElevenLabs
}

type elevenLabsSpeechRequest struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id"`
}

// Synthesize converts text to MP3 audio using the given voice ID. Failed
// calls are retried twice with increasing delay (1s, then 2s).
func (e *ElevenLabsClient) Synthesize(ctx context.Context, text, voice string) (*Result, error) {
	var audio []byte

	operation := func() error {
		data, err := e.synthesizeOnce(ctx, text, voice)
		if err != nil {
			return err
		}
		audio = data
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 1 * time.Second
	bo.Multiplier = 2
	bo.RandomizationFactor = 0

	if err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(bo, 2), ctx)); err != nil {
		return nil, err
	}

	return &Result{
		Audio:      audio,
		MimeType:   "audio/mpeg",
		DurationMs: EstimateDurationMs(text),
	}, nil
}

func (e *ElevenLabsClient) synthesizeOnce(ctx context.Context, text, voiceID string) ([]byte, error) {
	reqBody := elevenLabsSpeechRequest{
		Text:    text,
		ModelID: e.modelID,
	}
	b, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/v1/text-to-speech/%s", e.baseURL, voiceID)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("xi-api-key", e.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("elevenlabs returned status %d: %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}

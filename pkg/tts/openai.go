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

// OpenAIClient synthesizes speech through the OpenAI audio API
type OpenAIClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewOpenAIClient creates an OpenAI TTS client
func NewOpenAIClient(cfg *config.OpenAIConfig) *OpenAIClient {
	base := "https://api.openai.com"
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	}
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	return &OpenAIClient{
		apiKey:  apiKey,
		baseURL: base,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Provider identifies this synthesizer
func (o *OpenAIClient) Provider() Provider {
	return ProviderOpenAI
}

type openAISpeechRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
	Voice string `json:"voice"`
}

// Synthesize converts text to MP3 audio. Failed calls are retried twice
// with increasing delay (1s, then 2s) before giving up.
func (o *OpenAIClient) Synthesize(ctx context.Context, text, voice string) (*Result, error) {
	var audio []byte

	operation := func() error {
		data, err := o.synthesizeOnce(ctx, text, voice)
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

func (o *OpenAIClient) synthesizeOnce(ctx context.Context, text, voice string) ([]byte, error) {
	reqBody := openAISpeechRequest{
		Model: "tts-1",
		Input: text,
		Voice: voice,
	}
	b, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	endpoint := o.baseURL + "/v1/audio/speech"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+o.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("openai tts returned status %d: %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}

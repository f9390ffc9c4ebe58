package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// WhisperClient talks to an OpenAI-compatible transcription endpoint
// (POST {base}/v1/audio/transcriptions with verbose_json output), as served
// by whisper.cpp and similar backends.
type WhisperClient struct {
	BaseURL string
	APIKey  string
	Model   string
	client  *http.Client
}

// NewWhisperClient creates a WhisperClient. Transcription of long
// recordings is slow, so the HTTP timeout is generous.
func NewWhisperClient(baseURL, apiKey, model string) *WhisperClient {
	return &WhisperClient{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   model,
		client: &http.Client{
			Timeout: 30 * time.Minute,
		},
	}
}

type whisperSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

type whisperResponse struct {
	Duration float64          `json:"duration"`
	Segments []whisperSegment `json:"segments"`
}

// Transcribe uploads the media file and returns its timed segments.
func (c *WhisperClient) Transcribe(ctx context.Context, mediaPath string) (Result, error) {
	file, err := os.Open(mediaPath)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open media file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filepath.Base(mediaPath))
	if err != nil {
		return Result{}, fmt.Errorf("failed to build request: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return Result{}, fmt.Errorf("failed to read media file: %w", err)
	}
	if err := writer.WriteField("model", c.Model); err != nil {
		return Result{}, fmt.Errorf("failed to build request: %w", err)
	}
	if err := writer.WriteField("response_format", "verbose_json"); err != nil {
		return Result{}, fmt.Errorf("failed to build request: %w", err)
	}
	if err := writer.Close(); err != nil {
		return Result{}, fmt.Errorf("failed to build request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/v1/audio/transcriptions", &body)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("transcription request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return Result{}, fmt.Errorf("transcription backend returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed whisperResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Result{}, fmt.Errorf("failed to decode transcription response: %w", err)
	}

	result := Result{Duration: parsed.Duration}
	for _, seg := range parsed.Segments {
		result.Segments = append(result.Segments, TimedText{
			Start: seg.Start,
			End:   seg.End,
			Text:  seg.Text,
		})
	}
	if result.Duration == 0 && len(result.Segments) > 0 {
		result.Duration = result.Segments[len(result.Segments)-1].End
	}
	return result, nil
}

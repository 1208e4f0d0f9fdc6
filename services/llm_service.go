package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// ErrQuotaExceeded is returned when the model API rejects a call for rate or
// quota reasons. Retrying right away will not help.
var ErrQuotaExceeded = errors.New("model API quota exceeded")

// CompletionRequest is one prompt sent to a model. An empty Model selects the
// streamer's default.
type CompletionRequest struct {
	Model        string
	SystemPrompt string
	UserPrompt   string
}

// CompletionStreamer streams a model answer chunk by chunk. Returning an error
// from onChunk stops the stream and is returned as is.
type CompletionStreamer interface {
	StreamCompletion(ctx context.Context, req CompletionRequest, onChunk func(string) error) error
	Name() string
}

// GeminiService streams completions from the Gemini API.
type GeminiService struct {
	client *genai.Client
	model  string
}

// NewGeminiService creates the Gemini client. baseURL is only set in tests.
func NewGeminiService(ctx context.Context, apiKey, model, baseURL string) (*GeminiService, error) {
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY environment variable is not set")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	config := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		config.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	client, err := genai.NewClient(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiService{client: client, model: model}, nil
}

func (s *GeminiService) Name() string {
	return "gemini:" + s.model
}

func (s *GeminiService) StreamCompletion(ctx context.Context, req CompletionRequest, onChunk func(string) error) error {
	model := req.Model
	if model == "" {
		model = s.model
	}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.2),
	}
	if req.SystemPrompt != "" {
		config.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
	}

	for resp, err := range s.client.Models.GenerateContentStream(ctx, model, genai.Text(req.UserPrompt), config) {
		if err != nil {
			return classifyGeminiError(err)
		}
		if text := resp.Text(); text != "" {
			if err := onChunk(text); err != nil {
				return err
			}
		}
	}
	return ctx.Err()
}

func classifyGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiStatusError(apiErr.Code, apiErr.Status, err)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return apiStatusError(apiErrPtr.Code, apiErrPtr.Status, err)
	}
	if strings.Contains(err.Error(), "RESOURCE_EXHAUSTED") {
		return fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
	}
	return fmt.Errorf("gemini stream failed: %w", err)
}

func apiStatusError(code int, status string, err error) error {
	if code == http.StatusTooManyRequests || strings.EqualFold(status, "RESOURCE_EXHAUSTED") {
		return fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
	}
	return fmt.Errorf("model API returned %d: %w", code, err)
}

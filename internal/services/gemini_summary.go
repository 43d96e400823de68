package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// GeminiSummaryService implements SummaryService using Google's Gemini API.
type GeminiSummaryService struct {
	client *genai.Client
	model  string
	prompt string
}

func NewGeminiSummaryService(ctx context.Context, apiKey, model, prompt string) (*GeminiSummaryService, error) {
	if apiKey == "" {
		log.Warn("Gemini API key not provided for summarization. Service will be disabled.")
		return &GeminiSummaryService{}, nil
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}
	if prompt == "" {
		prompt = defaultSummaryPrompt
	}
	return &GeminiSummaryService{client: client, model: model, prompt: prompt}, nil
}

func (s *GeminiSummaryService) Summarize(ctx context.Context, title, body string) (string, error) {
	if s.client == nil {
		return "", errors.New("Gemini summary service is not initialized (missing API key)")
	}

	model := s.client.GenerativeModel(s.model)
	prompt := fmt.Sprintf("%s\n\nTitle: %s\n\n%s", s.prompt, title, body)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini completion: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no response from Gemini")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

func (s *GeminiSummaryService) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

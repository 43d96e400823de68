package services

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"

	"newsdesk/internal/models"
	"newsdesk/internal/store"
)

const defaultSummaryPrompt = "You summarize news articles. Reply with a single short paragraph covering the key facts, no preamble."

// SummaryService produces a short summary of an article body.
type SummaryService interface {
	Summarize(ctx context.Context, title, body string) (string, error)
}

// SummarizeArticle loads an article, summarizes it through the provider and
// stores the result. Articles that already carry a summary are skipped.
func SummarizeArticle(ctx context.Context, articles store.ArticleStore, provider SummaryService, articleID int64) error {
	if provider == nil {
		return errors.New("no summary provider configured")
	}

	article, err := articles.GetArticle(ctx, articleID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("article %d: %w", articleID, models.ErrNotFound)
		}
		return fmt.Errorf("load article %d: %w", articleID, err)
	}
	if article.Summary != nil && *article.Summary != "" {
		log.Debugf("article %d already summarized, skipping", articleID)
		return nil
	}

	summary, err := provider.Summarize(ctx, article.Title, article.Body)
	if err != nil {
		return fmt.Errorf("summarize article %d: %w", articleID, err)
	}

	if err := articles.UpdateArticleSummary(ctx, articleID, summary); err != nil {
		return fmt.Errorf("store summary for article %d: %w", articleID, err)
	}
	log.Infof("summarized article %d (%d chars)", articleID, len(summary))
	return nil
}

// OpenAISummaryService implements SummaryService using OpenAI chat
// completions.
type OpenAISummaryService struct {
	client *openai.Client
	model  string
	prompt string
}

func NewOpenAISummaryService(apiKey, model, prompt string) *OpenAISummaryService {
	if apiKey == "" {
		log.Warn("OpenAI API key not provided for summarization. Service will be disabled.")
		return &OpenAISummaryService{}
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	if prompt == "" {
		prompt = defaultSummaryPrompt
	}
	return &OpenAISummaryService{
		client: openai.NewClient(apiKey),
		model:  model,
		prompt: prompt,
	}
}

func (s *OpenAISummaryService) Summarize(ctx context.Context, title, body string) (string, error) {
	if s.client == nil {
		return "", errors.New("OpenAI summary service is not initialized (missing API key)")
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: s.prompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Title: %s\n\n%s", title, body),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no completion choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

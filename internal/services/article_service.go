package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"newsdesk/internal/config"
	"newsdesk/internal/models"
	"newsdesk/internal/newsapi"
	"newsdesk/internal/store"
	"newsdesk/internal/util"
	"newsdesk/pkg/classifier"
)

type ArticleServiceDeps struct {
	ArticleStore   store.ArticleStore
	VectorStore    store.TopicVectorStore
	Classification *ClassificationService
	JobClient      store.JobClient
	Config         *config.Config
}

// ArticleService owns the article lifecycle: ingesting fetched stories
// through the classifier, listing and fetching them back out.
type ArticleService struct {
	articles       store.ArticleStore
	vectors        store.TopicVectorStore
	classification *ClassificationService
	jobs           store.JobClient
	cfg            *config.Config
}

func NewArticleService(deps ArticleServiceDeps) *ArticleService {
	return &ArticleService{
		articles:       deps.ArticleStore,
		vectors:        deps.VectorStore,
		classification: deps.Classification,
		jobs:           deps.JobClient,
		cfg:            deps.Config,
	}
}

// Ingest cleans a fetched article, classifies it and stores it. Returns the
// stored article and whether it already existed (dedupe by content hash).
// Articles whose text carries no classifiable words are rejected with
// models.ErrInvalidInput.
func (s *ArticleService) Ingest(ctx context.Context, fetched newsapi.FetchedArticle) (*models.Article, bool, error) {
	body := util.CleanArticleText(fetched.Content)
	description := util.CleanArticleText(fetched.Description)
	if body == "" {
		body = description
	}

	res, err := s.classify(fetched.Title, description, body)
	if err != nil {
		if errors.Is(err, classifier.ErrEmptyText) {
			return nil, false, fmt.Errorf("article %q has no classifiable text: %w", fetched.Title, models.ErrInvalidInput)
		}
		return nil, false, fmt.Errorf("classify article %q: %w", fetched.Title, err)
	}

	predictions, err := json.Marshal(res.Predictions)
	if err != nil {
		return nil, false, fmt.Errorf("marshal predictions: %w", err)
	}

	article := &models.Article{
		Title:       fetched.Title,
		Description: description,
		Body:        body,
		URL:         fetched.URL,
		SourceName:  fetched.SourceName,
		Category:    res.Category.String(),
		Confidence:  res.Confidence,
		Predictions: predictions,
		PublishedAt: fetched.PublishedAt,
	}
	if fetched.Author != "" {
		article.Author = &fetched.Author
	}
	if fetched.ImageURL != "" {
		article.ImageURL = &fetched.ImageURL
	}

	existed, err := s.articles.CreateArticleIfNotExists(ctx, article)
	if err != nil {
		return nil, false, fmt.Errorf("store article: %w", err)
	}

	if !existed {
		if err := s.vectors.UpsertTopicVector(ctx, article.ID, TopicVector(res)); err != nil {
			// The article itself is stored; a missing vector only degrades
			// recommendations.
			log.Warnf("store topic vector for article %d: %v", article.ID, err)
		}
		s.enqueueSummarizeIfEnabled(ctx, article)
	}

	log.Debugf("ingested article id=%d existed=%v category=%s confidence=%.1f title=%q",
		article.ID, existed, article.Category, article.Confidence, article.Title)
	return article, existed, nil
}

// classify builds the classification input from title, description and body.
// The title is included because headlines carry most of the topical signal in
// short wire articles.
func (s *ArticleService) classify(title, description, body string) (classifier.Result, error) {
	text := strings.TrimSpace(strings.Join([]string{title, description, body}, ". "))
	return s.classification.Classify(text)
}

func (s *ArticleService) enqueueSummarizeIfEnabled(ctx context.Context, article *models.Article) {
	if s.cfg == nil || !s.cfg.Summarization.Enabled {
		return
	}
	if s.jobs == nil {
		log.Warnf("summarization enabled but job client is nil; skipping article %d", article.ID)
		return
	}
	if err := s.jobs.EnqueueSummarizeJob(ctx, article.ID); err != nil {
		log.Errorf("enqueue summarize job for article %d: %v", article.ID, err)
	}
}

func (s *ArticleService) ListArticles(ctx context.Context, params ListArticlesParams) ([]*models.Article, error) {
	if params.Category != "" {
		// Normalize case and reject unknown categories early.
		cat, err := classifier.ParseCategory(params.Category)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
		}
		params.Category = cat.String()
	}
	articles, err := s.articles.ListArticles(ctx, params.Limit, params.Offset, params.Category)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

func (s *ArticleService) GetArticle(ctx context.Context, id int64) (*models.Article, error) {
	article, err := s.articles.GetArticle(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("get article %d: %w", id, err)
	}
	return article, nil
}

func (s *ArticleService) DeleteArticle(ctx context.Context, id int64) error {
	if err := s.vectors.DeleteTopicVector(ctx, id); err != nil {
		return fmt.Errorf("delete topic vector: %w", err)
	}
	if err := s.articles.DeleteArticle(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.ErrNotFound
		}
		return fmt.Errorf("delete article %d: %w", id, err)
	}
	return nil
}

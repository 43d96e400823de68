// Package worker holds the asynq task handlers for background fetching and
// summarization.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
	log "github.com/sirupsen/logrus"

	"newsdesk/internal/models"
	"newsdesk/internal/services"
	"newsdesk/internal/store"
	"newsdesk/internal/tasks"
)

type Deps struct {
	FetchService   *services.FetchService
	ArticleStore   store.ArticleStore
	SummaryService services.SummaryService
}

// RegisterHandlers wires the task handlers onto mux. The summarize handler is
// only registered when a summary provider is configured.
func RegisterHandlers(mux *asynq.ServeMux, deps Deps) {
	mux.HandleFunc(tasks.TypeFetchJob, HandleFetchJob(deps))

	if deps.SummaryService != nil {
		mux.HandleFunc(tasks.TypeSummarizeJob, HandleSummarizeJob(deps))
	} else {
		log.Info("no summary provider configured, skipping summarize handler registration")
	}
}

type fetchPayload struct {
	Category string `json:"category"`
}

type summarizePayload struct {
	ArticleID int64 `json:"article_id"`
}

// HandleFetchJob fetches and ingests headlines for the payload's category, or
// for all configured topics when the category is empty.
func HandleFetchJob(deps Deps) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p fetchPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return fmt.Errorf("unmarshal fetch payload: %v: %w", err, asynq.SkipRetry)
		}

		var res services.FetchResult
		var err error
		if p.Category == "" {
			res, err = deps.FetchService.FetchAllTopics(ctx)
		} else {
			res, err = deps.FetchService.FetchTopic(ctx, p.Category)
		}
		if err != nil {
			return fmt.Errorf("fetch job (category=%q): %w", p.Category, err)
		}

		log.Infof("fetch job done: category=%q fetched=%d stored=%d duplicates=%d skipped=%d",
			p.Category, res.Fetched, res.Stored, res.Duplicates, res.Skipped)
		return nil
	}
}

// HandleSummarizeJob summarizes one article and stores the result. Missing
// articles skip retry since retrying cannot bring them back.
func HandleSummarizeJob(deps Deps) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p summarizePayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return fmt.Errorf("unmarshal summarize payload: %v: %w", err, asynq.SkipRetry)
		}

		err := services.SummarizeArticle(ctx, deps.ArticleStore, deps.SummaryService, p.ArticleID)
		if errors.Is(err, models.ErrNotFound) {
			log.Warnf("summarize job: article %d no longer exists", p.ArticleID)
			return fmt.Errorf("article %d not found: %w", p.ArticleID, asynq.SkipRetry)
		}
		return err
	}
}

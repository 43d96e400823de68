package store

import (
	"context"
	"encoding/json"
	"fmt"

	"newsdesk/internal/models"
	"newsdesk/internal/tasks"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	log "github.com/sirupsen/logrus"
)

// AsynqJobClient enqueues background tasks and mirrors each enqueue into the
// background_jobs table so the CLI can audit them later.
type AsynqJobClient struct {
	client   *asynq.Client
	jobStore JobStore
}

var _ JobClient = (*AsynqJobClient)(nil)

func NewAsynqJobClient(redisAddr, redisPassword string, redisDB int, js JobStore) (*AsynqJobClient, error) {
	if js == nil {
		return nil, fmt.Errorf("JobStore cannot be nil for AsynqJobClient")
	}
	cli := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	})
	return &AsynqJobClient{client: cli, jobStore: js}, nil
}

func (jc *AsynqJobClient) Close() error {
	return jc.client.Close()
}

func (jc *AsynqJobClient) Enqueue(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if jc.client == nil {
		return nil, fmt.Errorf("asynq client is not initialized")
	}
	info, err := jc.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		log.Errorf("enqueue task %s: %v", task.Type(), err)
		return nil, err
	}

	jobUUID, err := uuid.Parse(info.ID)
	if err != nil {
		// The job is already enqueued; an unparsable ID only degrades the
		// audit record.
		log.Warnf("parse asynq task ID %q as UUID: %v", info.ID, err)
	}

	recordParams := JobRecordParams{
		JobID:    jobUUID,
		TaskType: task.Type(),
		Payload:  task.Payload(),
		Queue:    info.Queue,
		Status:   models.JobStatusEnqueued,
	}
	if err := jc.jobStore.RecordJobEnqueue(ctx, recordParams); err != nil {
		log.Errorf("record job enqueue for task %s: %v", info.ID, err)
	}

	return info, nil
}

type fetchPayload struct {
	Category string `json:"category"`
}

type summarizePayload struct {
	ArticleID int64 `json:"article_id"`
}

func (jc *AsynqJobClient) EnqueueFetchJob(ctx context.Context, category string) error {
	payload, _ := json.Marshal(fetchPayload{Category: category})
	task := asynq.NewTask(tasks.TypeFetchJob, payload)
	if _, err := jc.Enqueue(ctx, task, asynq.Queue("fetch")); err != nil {
		return fmt.Errorf("enqueue fetch job (category %q): %w", category, err)
	}
	return nil
}

func (jc *AsynqJobClient) EnqueueSummarizeJob(ctx context.Context, articleID int64) error {
	payload, _ := json.Marshal(summarizePayload{ArticleID: articleID})
	task := asynq.NewTask(tasks.TypeSummarizeJob, payload)
	if _, err := jc.Enqueue(ctx, task, asynq.Queue("default")); err != nil {
		return fmt.Errorf("enqueue summarize job for article %d: %w", articleID, err)
	}
	return nil
}

package tasks

// Defines constants for task types used in Asynq.

const (
	// TypeFetchJob pulls fresh articles from the configured sources and runs
	// each through the classifier before storing it.
	TypeFetchJob = "articles:fetch"

	// TypeSummarizeJob generates a short summary for a stored article.
	TypeSummarizeJob = "articles:summarize"
)

package domain

import "time"

// RawArticle is a feed record as decoded from the upstream API, before validation.
type RawArticle struct {
	SourceID    string
	Title       string
	Description string
	Link        string
	Country     string
	PubDate     string
}

type Article struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	SourceID    string    `db:"source_id"` // upstream publisher id, e.g. "bbc"
	Country     string    `db:"country"`
	PublishTime time.Time `db:"publish_time"`
	Sentiment   float64   `db:"sentiment"`
	Category    string    `db:"category"`
	Link        *string   `db:"link"`
	CreatedAt   time.Time `db:"created_at"`
}

type JobState struct {
	ID             int64     `db:"id"`
	Job            string    `db:"job"`
	LastStartedAt  time.Time `db:"last_started_at"`
	LastFinishedAt time.Time `db:"last_finished_at"`
	LastStatus     string    `db:"last_status"`
	LastError      *string   `db:"last_error"`
	TotalProcessed int64     `db:"total_processed"`
}

const (
	JobStatusSucceeded = "succeeded"
	JobStatusFailed    = "failed"
)

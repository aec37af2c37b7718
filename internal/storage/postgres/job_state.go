package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"news_sentiment/internal/domain"
)

// JobStateStore keeps per-job bookkeeping about the last scheduled run.
type JobStateStore struct {
	db *sqlx.DB
}

func NewJobStateStore(db *sqlx.DB) *JobStateStore {
	return &JobStateStore{db: db}
}

func (s *JobStateStore) Get(ctx context.Context, job string) (*domain.JobState, error) {
	var state domain.JobState
	query := `
		SELECT id, job, last_started_at, last_finished_at, last_status, last_error, total_processed
		FROM job_state
		WHERE job = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &state, query, job)
	if errors.Is(err, sql.ErrNoRows) {
		// Return empty state for jobs that never ran
		return &domain.JobState{Job: job}, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *JobStateStore) Update(ctx context.Context, state *domain.JobState) error {
	query := `
		INSERT INTO job_state (job, last_started_at, last_finished_at, last_status, last_error, total_processed)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (job) DO UPDATE SET
			last_started_at = EXCLUDED.last_started_at,
			last_finished_at = EXCLUDED.last_finished_at,
			last_status = EXCLUDED.last_status,
			last_error = EXCLUDED.last_error,
			total_processed = EXCLUDED.total_processed`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		state.Job,
		state.LastStartedAt.UTC(),
		state.LastFinishedAt.UTC(),
		state.LastStatus,
		state.LastError,
		state.TotalProcessed,
	)
	return err
}

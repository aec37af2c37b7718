package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"news_sentiment/internal/domain"
)

const JobEvict = "evict"

// EvictionService deletes articles that fell out of the retention period.
type EvictionService struct {
	articles  ArticleStore
	jobState  JobStateStore
	txManager TransactionManager
	retention time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

func NewEvictionService(
	articles ArticleStore,
	jobState JobStateStore,
	txManager TransactionManager,
	retentionDays int,
	logger *slog.Logger,
) *EvictionService {
	return &EvictionService{
		articles:  articles,
		jobState:  jobState,
		txManager: txManager,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		logger:    logger.With("job", JobEvict),
		now:       time.Now,
	}
}

// Evict removes every article published before now minus the retention
// period and records the run in the same transaction.
func (s *EvictionService) Evict(ctx context.Context) (*domain.EvictionStats, error) {
	startTime := s.now()
	stats := &domain.EvictionStats{
		RunID:  uuid.NewString(),
		Cutoff: startTime.UTC().Add(-s.retention),
	}
	logger := s.logger.With("run_id", stats.RunID)

	logger.Info("starting eviction", "cutoff", stats.Cutoff)

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		removed, err := s.articles.EvictOlderThan(txCtx, stats.Cutoff)
		if err != nil {
			return fmt.Errorf("evict articles: %w", err)
		}
		stats.Removed = removed

		state, err := s.jobState.Get(txCtx, JobEvict)
		if err != nil {
			return fmt.Errorf("get job state: %w", err)
		}

		state.Job = JobEvict
		state.LastStartedAt = startTime
		state.LastFinishedAt = s.now()
		state.LastStatus = domain.JobStatusSucceeded
		state.LastError = nil
		state.TotalProcessed += removed

		if err := s.jobState.Update(txCtx, state); err != nil {
			return fmt.Errorf("update job state: %w", err)
		}
		return nil
	})
	stats.Duration = s.now().Sub(startTime)

	if err != nil {
		stats.Removed = 0
		s.recordFailure(ctx, logger, startTime, err)
		logger.Error("eviction failed", "error", err, "duration", stats.Duration)
		return stats, err
	}

	logger.Info("eviction completed",
		"removed", stats.Removed,
		"duration", stats.Duration,
	)

	return stats, nil
}

// recordFailure is best-effort; the transaction that would have recorded the
// run was rolled back.
func (s *EvictionService) recordFailure(ctx context.Context, logger *slog.Logger, startedAt time.Time, cause error) {
	state, err := s.jobState.Get(ctx, JobEvict)
	if err != nil {
		logger.Warn("failed to load job state", "error", err)
		return
	}

	msg := cause.Error()
	state.Job = JobEvict
	state.LastStartedAt = startedAt
	state.LastFinishedAt = s.now()
	state.LastStatus = domain.JobStatusFailed
	state.LastError = &msg

	if err := s.jobState.Update(ctx, state); err != nil {
		logger.Warn("failed to record job state", "error", err)
	}
}

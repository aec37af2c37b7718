package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"news_sentiment/internal/aggregate"
	"news_sentiment/internal/analysis"
	"news_sentiment/internal/config"
	"news_sentiment/internal/domain"
	"news_sentiment/internal/normalize"
)

const JobIngest = "ingest"

// IngestService runs the fetch, classify, persist, aggregate and cache cycle.
type IngestService struct {
	source     Source
	scorer     Scorer
	classifier Classifier
	articles   ArticleStore
	jobState   JobStateStore
	aggregator *aggregate.Aggregator
	cache      SummaryCache
	publisher  Publisher
	logger     *slog.Logger
	config     config.PipelineConfig
	now        func() time.Time
}

// NewIngestService wires the cycle. publisher may be nil.
func NewIngestService(
	source Source,
	scorer Scorer,
	classifier Classifier,
	articles ArticleStore,
	jobState JobStateStore,
	aggregator *aggregate.Aggregator,
	cache SummaryCache,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.PipelineConfig,
) *IngestService {
	return &IngestService{
		source:     source,
		scorer:     scorer,
		classifier: classifier,
		articles:   articles,
		jobState:   jobState,
		aggregator: aggregator,
		cache:      cache,
		publisher:  publisher,
		logger:     logger.With("job", JobIngest, "source", source.ID()),
		config:     cfg,
		now:        time.Now,
	}
}

// RunCycle executes one cycle. Every stage completes before the next starts.
// Only fetch and classification failures abort the cycle; per-article
// insert failures and per-window read or cache failures are counted in the
// returned stats.
func (s *IngestService) RunCycle(ctx context.Context) (*domain.CycleStats, error) {
	startTime := s.now()
	stats := &domain.CycleStats{RunID: uuid.NewString()}
	logger := s.logger.With("run_id", stats.RunID)

	logger.Info("starting cycle",
		"source_name", s.source.Name(),
		"windows", len(s.config.Windows),
	)

	cycleErr := s.run(ctx, logger, stats)
	stats.Duration = s.now().Sub(startTime)

	if err := s.recordState(ctx, startTime, stats, cycleErr); err != nil {
		logger.Error("failed to record job state", "error", err)
		if cycleErr == nil {
			return stats, fmt.Errorf("update job state: %w", err)
		}
	}

	if cycleErr != nil {
		logger.Error("cycle failed",
			"error", cycleErr,
			"fetched", stats.Fetched,
			"duration", stats.Duration,
		)
		return stats, cycleErr
	}

	logger.Info("cycle completed",
		"fetched", stats.Fetched,
		"skipped", stats.Skipped,
		"inserted", stats.Inserted,
		"insert_errors", stats.InsertErrors,
		"windows", stats.WindowsAggregated,
		"window_errors", stats.WindowErrors,
		"snapshots", stats.SnapshotsWritten,
		"snapshots_removed", stats.SnapshotsRemoved,
		"cache_errors", stats.CacheErrors,
		"published", stats.Published,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (s *IngestService) run(ctx context.Context, logger *slog.Logger, stats *domain.CycleStats) error {
	raw, err := s.source.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch articles: %w", err)
	}
	stats.Fetched = len(raw)
	logger.Info("fetched articles from source", "count", len(raw))

	candidates, skips := normalize.Normalize(raw)
	stats.Skipped = len(skips)
	for _, skip := range skips {
		logger.Warn("article skipped", "error", skip)
	}

	articles, err := s.classify(ctx, candidates)
	if err != nil {
		return fmt.Errorf("classify articles: %w", err)
	}
	stats.Classified = len(articles)

	for i := range articles {
		if _, err := s.articles.Insert(ctx, &articles[i]); err != nil {
			writeErr := &domain.StoreWriteError{Title: articles[i].Title, Err: err}
			logger.Error("failed to store article", "error", writeErr)
			stats.InsertErrors++
			continue
		}
		stats.Inserted++
	}

	generatedAt := s.now().UTC()
	for _, window := range s.config.Windows {
		s.refreshWindow(ctx, logger.With("window", window.Name), window, generatedAt, stats)
	}

	return nil
}

// classify labels the whole batch in one call and scores each candidate.
// Nothing is returned unless every candidate received a label.
func (s *IngestService) classify(ctx context.Context, candidates []normalize.Candidate) ([]domain.Article, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	texts := make([]string, len(candidates))
	for i, c := range candidates {
		texts[i] = c.Text()
	}

	labels, err := s.classifier.Classify(ctx, texts)
	if err != nil {
		return nil, &domain.ClassificationError{Expected: len(texts), Err: err}
	}
	if len(labels) != len(texts) {
		return nil, &domain.ClassificationError{Expected: len(texts), Got: len(labels)}
	}

	articles := make([]domain.Article, len(candidates))
	for i, c := range candidates {
		sentiment := analysis.Clamp(s.scorer.Score(c.Text()))
		articles[i] = c.Article(sentiment, categoryLabel(labels[i]))
	}
	return articles, nil
}

// categoryLabel maps a classifier label to a stored category. Labels that
// cannot name a slice of their own fall back to the general category.
func categoryLabel(label string) string {
	if name := domain.CategoryName(label); name != "" {
		return name
	}
	return analysis.CategoryGeneral
}

func (s *IngestService) refreshWindow(
	ctx context.Context,
	logger *slog.Logger,
	window domain.Window,
	generatedAt time.Time,
	stats *domain.CycleStats,
) {
	since := window.Since(generatedAt)

	articles, err := s.articles.QueryWindow(ctx, since)
	if err != nil {
		readErr := &domain.StoreReadError{Window: window.Name, Err: err}
		logger.Error("failed to read window", "error", readErr)
		stats.WindowErrors++
		return
	}

	snapshots := s.aggregator.Aggregate(window, since, articles, generatedAt)
	stats.WindowsAggregated++

	for _, snapshot := range snapshots {
		key := s.cache.Key(window.Name, snapshot.Category)
		if err := s.cache.Write(ctx, key, snapshot, s.config.CacheTTL); err != nil {
			logger.Error("failed to write snapshot", "error", &domain.CacheWriteError{Key: key, Err: err})
			stats.CacheErrors++
			continue
		}
		stats.SnapshotsWritten++
	}

	categories := aggregate.Categories(snapshots)
	s.removeStale(ctx, logger, window, categories, stats)
	if err := s.cache.WriteCategories(ctx, window.Name, categories, s.config.CacheTTL); err != nil {
		logger.Error("failed to write category index", "error", &domain.CacheWriteError{Key: window.Name, Err: err})
		stats.CacheErrors++
	}

	logger.Debug("window aggregated",
		"articles", len(articles),
		"snapshots", len(snapshots),
	)

	if s.publisher == nil {
		return
	}

	event := domain.SummariesRefreshed{
		RunID:        stats.RunID,
		Window:       window.Name,
		Categories:   categories,
		ArticleCount: len(articles),
		GeneratedAt:  generatedAt,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.Warn("failed to publish summaries refreshed", "error", err)
		return
	}
	stats.Published++
}

// removeStale deletes the snapshots of categories listed in the previous
// index of window that are no longer present. It runs before the index is
// overwritten.
func (s *IngestService) removeStale(
	ctx context.Context,
	logger *slog.Logger,
	window domain.Window,
	categories []string,
	stats *domain.CycleStats,
) {
	previous, err := s.cache.ReadCategories(ctx, window.Name)
	if err != nil {
		logger.Error("failed to read category index", "error", err)
		stats.CacheErrors++
		return
	}

	var stale []string
	for _, category := range previous {
		name := domain.CategoryName(category)
		if name == "" || slices.Contains(categories, name) {
			continue
		}
		stale = append(stale, s.cache.Key(window.Name, name))
	}
	if len(stale) == 0 {
		return
	}

	if err := s.cache.Delete(ctx, stale); err != nil {
		logger.Error("failed to remove stale snapshots", "error", err, "keys", stale)
		stats.CacheErrors++
		return
	}
	stats.SnapshotsRemoved += len(stale)
}

func (s *IngestService) recordState(ctx context.Context, startedAt time.Time, stats *domain.CycleStats, cycleErr error) error {
	state, err := s.jobState.Get(ctx, JobIngest)
	if err != nil {
		return err
	}

	state.Job = JobIngest
	state.LastStartedAt = startedAt
	state.LastFinishedAt = s.now()
	state.TotalProcessed += int64(stats.Inserted)
	state.LastStatus = domain.JobStatusSucceeded
	state.LastError = nil
	if cycleErr != nil {
		state.LastStatus = domain.JobStatusFailed
		msg := cycleErr.Error()
		state.LastError = &msg
	}

	return s.jobState.Update(ctx, state)
}

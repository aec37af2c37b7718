package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
)

type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
)

// JobFunc is one run of a scheduled job.
type JobFunc func(ctx context.Context) error

// JobStatus is a snapshot of a registered job.
type JobStatus struct {
	State        State
	LastStarted  time.Time
	LastFinished time.Time
	LastError    error
	Runs         int
	Skipped      int
}

type job struct {
	id         string
	fn         JobFunc
	entryID    cron.EntryID
	runOnStart bool
	running    atomic.Bool

	mu     sync.Mutex
	status JobStatus
}

func (j *job) snapshot() JobStatus {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.status
}

// Scheduler owns a registry of jobs driven by a cron runner. A job never
// runs twice at the same time: a tick arriving while it is still running is
// skipped.
type Scheduler struct {
	cron    *cron.Cron
	timeout time.Duration
	logger  *slog.Logger

	mu      sync.Mutex
	jobs    map[string]*job
	baseCtx context.Context
	wg      sync.WaitGroup
}

type Option func(*config)

type config struct {
	location *time.Location
	timeout  time.Duration
}

// WithLocation sets the time zone cron expressions are evaluated in.
func WithLocation(loc *time.Location) Option {
	return func(c *config) { c.location = loc }
}

// WithJobTimeout bounds every run. Zero means no limit.
func WithJobTimeout(d time.Duration) Option {
	return func(c *config) { c.timeout = d }
}

func New(logger *slog.Logger, opts ...Option) *Scheduler {
	cfg := config{location: time.UTC}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(cfg.location),
			cron.WithLogger(cronLogger{logger: logger}),
		),
		timeout: cfg.timeout,
		logger:  logger,
		jobs:    make(map[string]*job),
		baseCtx: context.Background(),
	}
}

// Every registers a job on a fixed interval. The job also runs once as soon
// as the scheduler starts. Registering an existing id replaces it.
func (s *Scheduler) Every(id string, interval time.Duration, fn JobFunc) {
	j := &job{id: id, fn: fn, runOnStart: true, status: JobStatus{State: StateIdle}}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(id)
	j.entryID = s.cron.Schedule(cron.Every(interval), cron.FuncJob(func() { s.run(j) }))
	s.jobs[id] = j

	s.logger.Info("job registered", "job", id, "interval", interval)
}

// Cron registers a job on a standard five-field cron expression. Registering
// an existing id replaces it.
func (s *Scheduler) Cron(id, spec string, fn JobFunc) error {
	j := &job{id: id, fn: fn, status: JobStatus{State: StateIdle}}

	s.mu.Lock()
	defer s.mu.Unlock()

	entryID, err := s.cron.AddFunc(spec, func() { s.run(j) })
	if err != nil {
		return fmt.Errorf("schedule job %s: %w", id, err)
	}
	s.removeLocked(id)
	j.entryID = entryID
	s.jobs[id] = j

	s.logger.Info("job registered", "job", id, "spec", spec)
	return nil
}

func (s *Scheduler) removeLocked(id string) {
	old, ok := s.jobs[id]
	if !ok {
		return
	}
	s.cron.Remove(old.entryID)
	delete(s.jobs, id)
	s.logger.Info("replacing job registration", "job", id)
}

// State returns the status of a registered job.
func (s *Scheduler) State(id string) (JobStatus, bool) {
	s.mu.Lock()
	j, ok := s.jobs[id]
	s.mu.Unlock()
	if !ok {
		return JobStatus{}, false
	}
	return j.snapshot(), true
}

// Start runs the scheduler until ctx is done, then waits for running jobs.
// Runs already in progress are not canceled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	s.baseCtx = context.WithoutCancel(ctx)
	var immediate []*job
	for _, j := range s.jobs {
		if j.runOnStart {
			immediate = append(immediate, j)
		}
	}
	jobCount := len(s.jobs)
	s.mu.Unlock()

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", jobCount)

	for _, j := range immediate {
		j := j
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.run(j)
		}()
	}

	<-ctx.Done()
	s.Stop()
	s.logger.Info("scheduler stopped")
	return ctx.Err()
}

// Stop halts future ticks and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.wg.Wait()
}

func (s *Scheduler) run(j *job) {
	if !j.running.CompareAndSwap(false, true) {
		j.mu.Lock()
		j.status.Skipped++
		j.mu.Unlock()
		s.logger.Warn("job still running, skipping", "job", j.id)
		return
	}
	defer j.running.Store(false)

	started := time.Now()
	j.mu.Lock()
	j.status.State = StateRunning
	j.status.LastStarted = started
	j.mu.Unlock()

	ctx, cancel := s.jobContext()
	defer cancel()

	err := invoke(ctx, j.fn)

	j.mu.Lock()
	j.status.Runs++
	j.status.LastFinished = time.Now()
	j.status.LastError = err
	if err != nil {
		j.status.State = StateFailed
	} else {
		j.status.State = StateSucceeded
	}
	j.mu.Unlock()

	if err != nil {
		s.logger.Error("job failed", "job", j.id, "error", err, "duration", time.Since(started))
		return
	}
	s.logger.Info("job finished", "job", j.id, "duration", time.Since(started))
}

func (s *Scheduler) jobContext() (context.Context, context.CancelFunc) {
	s.mu.Lock()
	base := s.baseCtx
	s.mu.Unlock()

	if s.timeout > 0 {
		return context.WithTimeout(base, s.timeout)
	}
	return context.WithCancel(base)
}

func invoke(ctx context.Context, fn JobFunc) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job panicked: %v", r)
		}
	}()
	return fn(ctx)
}

// cronLogger routes cron's own logging to slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}

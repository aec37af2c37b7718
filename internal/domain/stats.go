package domain

import "time"

// CycleStats holds statistics about one ingestion+aggregation cycle.
type CycleStats struct {
	RunID             string
	Fetched           int
	Skipped           int
	Classified        int
	Inserted          int
	InsertErrors      int
	WindowsAggregated int
	WindowErrors      int
	SnapshotsWritten  int
	SnapshotsRemoved  int
	CacheErrors       int
	Published         int
	Duration          time.Duration
}

// EvictionStats holds statistics about one eviction run.
type EvictionStats struct {
	RunID    string
	Cutoff   time.Time
	Removed  int64
	Duration time.Duration
}

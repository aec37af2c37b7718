package domain

import (
	"strings"
	"time"
)

// AllCategories is the slice name used for the snapshot over every article in a window.
const AllCategories = "all"

// CategoryName folds a category label into the form used for slice names and
// cache keys: lower case, inner whitespace runs replaced by "_". Labels that
// fold to nothing, to "all" or to a "_" prefixed name return "".
func CategoryName(label string) string {
	name := strings.Join(strings.Fields(strings.ToLower(label)), "_")
	if name == AllCategories || strings.HasPrefix(name, "_") {
		return ""
	}
	return name
}

// Window is a named lookback period that summaries are computed over.
type Window struct {
	Name string `yaml:"name" json:"name"`
	Days int    `yaml:"days" json:"days"`
}

// Since returns the inclusive lower bound of the window relative to now.
func (w Window) Since(now time.Time) time.Time {
	return now.UTC().Add(-time.Duration(w.Days) * 24 * time.Hour)
}

type DailySentiment struct {
	Date    string  `json:"date"` // YYYY-MM-DD, UTC
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// ArticleRef is the subset of an article rendered as best or worst of a slice.
type ArticleRef struct {
	Title     string  `json:"title"`
	Sentiment float64 `json:"sentiment"`
	Source    string  `json:"source"`
	PubDate   string  `json:"pub_date"`
	Link      *string `json:"link"`
}

type SourceCount struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

// Distribution buckets articles by sentiment polarity.
type Distribution struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// SummarySnapshot is the precomputed view of one (window, category) slice.
// It is rebuilt wholesale on every aggregation run.
type SummarySnapshot struct {
	Window       string           `json:"window"`
	Category     string           `json:"category"`
	GeneratedAt  time.Time        `json:"generated_at"`
	Since        time.Time        `json:"since"`
	ArticleCount int              `json:"article_count"`
	DailyAverage []DailySentiment `json:"daily_average"`
	Best         *ArticleRef      `json:"best"`
	Worst        *ArticleRef      `json:"worst"`
	TopSources   []SourceCount    `json:"top_sources"`
	Distribution Distribution     `json:"distribution"`
}

// SummariesRefreshed is announced after a window's snapshots were rewritten.
type SummariesRefreshed struct {
	RunID        string    `json:"run_id"`
	Window       string    `json:"window"`
	Categories   []string  `json:"categories"`
	ArticleCount int       `json:"article_count"`
	GeneratedAt  time.Time `json:"generated_at"`
}

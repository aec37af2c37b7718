// Package aggregate computes the per-window summary snapshots from one read of
// the article store.
package aggregate

import (
	"cmp"
	"math"
	"slices"
	"time"

	"news_sentiment/internal/domain"
)

const (
	dateLayout    = "2006-01-02"
	pubDateLayout = "2006-01-02 15:04:05"

	positiveThreshold = 0.2
	negativeThreshold = -0.2
)

// Aggregator builds snapshots for every slice of a window in a single pass.
type Aggregator struct {
	topSources int
}

// New creates an aggregator. topSources limits the ranked source list; zero
// keeps every source.
func New(topSources int) *Aggregator {
	return &Aggregator{topSources: topSources}
}

type dayTotal struct {
	sum   float64
	count int
}

type slice struct {
	count   int
	days    map[string]*dayTotal
	best    *domain.Article
	worst   *domain.Article
	sources map[string]int
	dist    domain.Distribution
}

func newSlice() *slice {
	return &slice{
		days:    make(map[string]*dayTotal),
		sources: make(map[string]int),
	}
}

func (s *slice) add(a *domain.Article) {
	s.count++

	day := a.PublishTime.UTC().Format(dateLayout)
	dt, ok := s.days[day]
	if !ok {
		dt = &dayTotal{}
		s.days[day] = dt
	}
	dt.sum += a.Sentiment
	dt.count++

	if s.best == nil || better(a, s.best) {
		s.best = a
	}
	if s.worst == nil || worse(a, s.worst) {
		s.worst = a
	}

	s.sources[a.SourceID]++

	switch {
	case a.Sentiment > positiveThreshold:
		s.dist.Positive++
	case a.Sentiment < negativeThreshold:
		s.dist.Negative++
	default:
		s.dist.Neutral++
	}
}

// better reports whether a beats the current best: higher sentiment, then
// earlier publish time, then lower id.
func better(a, cur *domain.Article) bool {
	if a.Sentiment != cur.Sentiment {
		return a.Sentiment > cur.Sentiment
	}
	return earlier(a, cur)
}

func worse(a, cur *domain.Article) bool {
	if a.Sentiment != cur.Sentiment {
		return a.Sentiment < cur.Sentiment
	}
	return earlier(a, cur)
}

func earlier(a, b *domain.Article) bool {
	if !a.PublishTime.Equal(b.PublishTime) {
		return a.PublishTime.Before(b.PublishTime)
	}
	return a.ID < b.ID
}

// Aggregate returns the "all" snapshot followed by one snapshot per category
// present in articles, ordered by category name. Categories are grouped by
// their folded name; articles whose category folds to nothing only count
// towards "all". The output depends only on its arguments.
func (g *Aggregator) Aggregate(window domain.Window, since time.Time, articles []domain.Article, generatedAt time.Time) []domain.SummarySnapshot {
	all := newSlice()
	byCategory := make(map[string]*slice)

	for i := range articles {
		a := &articles[i]
		all.add(a)

		category := domain.CategoryName(a.Category)
		if category == "" {
			continue
		}
		cs, ok := byCategory[category]
		if !ok {
			cs = newSlice()
			byCategory[category] = cs
		}
		cs.add(a)
	}

	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, cat)
	}
	slices.Sort(categories)

	snapshots := make([]domain.SummarySnapshot, 0, len(categories)+1)
	snapshots = append(snapshots, g.snapshot(window, since, domain.AllCategories, all, generatedAt))
	for _, cat := range categories {
		snapshots = append(snapshots, g.snapshot(window, since, cat, byCategory[cat], generatedAt))
	}

	return snapshots
}

func (g *Aggregator) snapshot(window domain.Window, since time.Time, category string, s *slice, generatedAt time.Time) domain.SummarySnapshot {
	return domain.SummarySnapshot{
		Window:       window.Name,
		Category:     category,
		GeneratedAt:  generatedAt.UTC(),
		Since:        since.UTC(),
		ArticleCount: s.count,
		DailyAverage: dailyAverage(s.days),
		Best:         ref(s.best),
		Worst:        ref(s.worst),
		TopSources:   g.rankSources(s.sources),
		Distribution: s.dist,
	}
}

func dailyAverage(days map[string]*dayTotal) []domain.DailySentiment {
	out := make([]domain.DailySentiment, 0, len(days))
	for day, dt := range days {
		out = append(out, domain.DailySentiment{
			Date:    day,
			Average: round(dt.sum / float64(dt.count)),
			Count:   dt.count,
		})
	}
	slices.SortFunc(out, func(a, b domain.DailySentiment) int {
		return cmp.Compare(a.Date, b.Date)
	})
	return out
}

func (g *Aggregator) rankSources(sources map[string]int) []domain.SourceCount {
	out := make([]domain.SourceCount, 0, len(sources))
	for src, n := range sources {
		out = append(out, domain.SourceCount{Source: src, Count: n})
	}
	slices.SortFunc(out, func(a, b domain.SourceCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Source, b.Source)
	})
	if g.topSources > 0 && len(out) > g.topSources {
		out = out[:g.topSources]
	}
	return out
}

func ref(a *domain.Article) *domain.ArticleRef {
	if a == nil {
		return nil
	}
	return &domain.ArticleRef{
		Title:     a.Title,
		Sentiment: a.Sentiment,
		Source:    a.SourceID,
		PubDate:   a.PublishTime.UTC().Format(pubDateLayout),
		Link:      a.Link,
	}
}

func round(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}

// Categories lists the category slices present in snapshots, excluding "all".
func Categories(snapshots []domain.SummarySnapshot) []string {
	out := make([]string, 0, len(snapshots))
	for _, s := range snapshots {
		if s.Category != domain.AllCategories {
			out = append(out, s.Category)
		}
	}
	return out
}

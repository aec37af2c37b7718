// Package normalize turns raw feed records into structurally valid candidates
// ready for classification and scoring.
package normalize

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"news_sentiment/internal/domain"
)

// PubDateLayout is the publish date format used by the feed.
const PubDateLayout = "2006-01-02 15:04:05"

// pubDateParseLayout accepts PubDateLayout values as well as dates whose
// month, day, hour, minute or second are not zero padded.
const pubDateParseLayout = "2006-1-2 15:4:5"

const unknownSource = "unknown"

// linkPattern: optional scheme, optional www, domain with TLD, optional path.
var linkPattern = regexp.MustCompile(`^(https?://)?(www\.)?([a-zA-Z0-9-]+\.)+[a-zA-Z]{2,}(/\S*)?$`)

// Candidate is a validated article that still lacks sentiment and category.
type Candidate struct {
	Title       string
	SourceID    string
	Country     string
	Description string
	PublishTime time.Time
	Link        *string
}

// Text is the input handed to the sentiment and category capabilities.
func (c Candidate) Text() string {
	return c.Description
}

// Article builds the persisted entity from the candidate and its analysis.
func (c Candidate) Article(sentiment float64, category string) domain.Article {
	return domain.Article{
		Title:       c.Title,
		SourceID:    c.SourceID,
		Country:     c.Country,
		PublishTime: c.PublishTime,
		Sentiment:   sentiment,
		Category:    category,
		Link:        c.Link,
	}
}

// Skip describes a raw record dropped during normalization.
type Skip struct {
	Index  int
	Title  string
	Reason string
}

func (s Skip) Error() string {
	return fmt.Sprintf("skip article %d (%q): %s", s.Index, s.Title, s.Reason)
}

func (s Skip) Unwrap() error {
	return domain.ErrValidationSkip
}

// Normalize validates every raw record independently. A record that cannot be
// used is reported as a Skip; it never fails the batch.
func Normalize(raw []domain.RawArticle) ([]Candidate, []Skip) {
	candidates := make([]Candidate, 0, len(raw))
	var skips []Skip

	for i, r := range raw {
		c, reason := normalizeOne(r)
		if reason != "" {
			skips = append(skips, Skip{Index: i, Title: r.Title, Reason: reason})
			continue
		}
		candidates = append(candidates, c)
	}

	return candidates, skips
}

func normalizeOne(r domain.RawArticle) (Candidate, string) {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return Candidate{}, "missing title"
	}

	pubDate := strings.TrimSpace(r.PubDate)
	publishTime, err := time.ParseInLocation(pubDateParseLayout, pubDate, time.UTC)
	if err != nil {
		return Candidate{}, fmt.Sprintf("invalid publish date %q", pubDate)
	}

	description := strings.TrimSpace(r.Description)
	if description == "" {
		description = title
	}

	sourceID := strings.TrimSpace(r.SourceID)
	if sourceID == "" {
		sourceID = unknownSource
	}

	return Candidate{
		Title:       title,
		SourceID:    sourceID,
		Country:     strings.TrimSpace(r.Country),
		Description: description,
		PublishTime: publishTime,
		Link:        ValidLink(r.Link),
	}, ""
}

// ValidLink returns the trimmed link when it looks like a URL, nil otherwise.
func ValidLink(link string) *string {
	link = strings.TrimSpace(link)
	if link == "" || !linkPattern.MatchString(link) {
		return nil
	}
	return &link
}

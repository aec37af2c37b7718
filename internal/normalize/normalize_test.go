package normalize

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news_sentiment/internal/domain"
)

func TestNormalize_DropsOnlyMalformedDate(t *testing.T) {
	raw := []domain.RawArticle{
		{SourceID: "a", Title: "first", PubDate: "2024-01-01 10:00:00"},
		{SourceID: "b", Title: "broken", PubDate: "01/02/2024"},
		{SourceID: "c", Title: "third", PubDate: "2024-01-03 23:59:59"},
	}

	candidates, skips := Normalize(raw)

	require.Len(t, candidates, 2)
	assert.Equal(t, "first", candidates[0].Title)
	assert.Equal(t, "third", candidates[1].Title)

	require.Len(t, skips, 1)
	assert.Equal(t, 1, skips[0].Index)
	assert.Equal(t, "broken", skips[0].Title)
	assert.True(t, errors.Is(skips[0], domain.ErrValidationSkip))
}

func TestNormalize_AcceptsUnpaddedDate(t *testing.T) {
	raw := []domain.RawArticle{
		{SourceID: "a", Title: "unpadded", PubDate: "2024-1-5 8:00:00"},
		{SourceID: "b", Title: "minimal", PubDate: "2024-1-5 8:3:7"},
		{SourceID: "c", Title: "no time", PubDate: "2024-1-5"},
	}

	candidates, skips := Normalize(raw)

	require.Len(t, candidates, 2)
	assert.Equal(t, time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC), candidates[0].PublishTime)
	assert.Equal(t, time.Date(2024, 1, 5, 8, 3, 7, 0, time.UTC), candidates[1].PublishTime)

	require.Len(t, skips, 1)
	assert.Equal(t, "no time", skips[0].Title)
}

func TestNormalize_Fields(t *testing.T) {
	raw := []domain.RawArticle{{
		SourceID:    " reuters ",
		Title:       " Markets rally ",
		Description: "",
		Link:        "https://www.example.com/markets/rally?id=1",
		Country:     "united states of america, canada",
		PubDate:     "2024-01-01 10:30:00",
	}}

	candidates, skips := Normalize(raw)
	require.Empty(t, skips)
	require.Len(t, candidates, 1)

	c := candidates[0]
	assert.Equal(t, "Markets rally", c.Title)
	assert.Equal(t, "reuters", c.SourceID)
	assert.Equal(t, "Markets rally", c.Description, "description falls back to title")
	assert.Equal(t, "Markets rally", c.Text())
	assert.Equal(t, "united states of america, canada", c.Country)
	assert.Equal(t, time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC), c.PublishTime)
	require.NotNil(t, c.Link)
	assert.Equal(t, "https://www.example.com/markets/rally?id=1", *c.Link)
}

func TestNormalize_InvalidLinkIsNulledNotRejected(t *testing.T) {
	raw := []domain.RawArticle{{
		Title:   "kept",
		Link:    "javascript:alert(1)",
		PubDate: "2024-01-01 00:00:00",
	}}

	candidates, skips := Normalize(raw)
	require.Empty(t, skips)
	require.Len(t, candidates, 1)
	assert.Nil(t, candidates[0].Link)
	assert.Equal(t, "unknown", candidates[0].SourceID)
}

func TestNormalize_MissingTitle(t *testing.T) {
	candidates, skips := Normalize([]domain.RawArticle{{PubDate: "2024-01-01 00:00:00"}})
	assert.Empty(t, candidates)
	require.Len(t, skips, 1)
	assert.Equal(t, "missing title", skips[0].Reason)
}

func TestNormalize_Empty(t *testing.T) {
	candidates, skips := Normalize(nil)
	assert.Empty(t, candidates)
	assert.Empty(t, skips)
}

func TestValidLink(t *testing.T) {
	tests := []struct {
		link  string
		valid bool
	}{
		{"https://example.com", true},
		{"http://www.example.co.uk/path/to/page.html", true},
		{"example.com/news", true},
		{"www.example.org", true},
		{"https://sub.domain.example.com/a?b=c&d=e", true},
		{"", false},
		{"not a url", false},
		{"https://localhost", false},
		{"ftp://example.com", false},
		{"https://example.c", false},
		{"https://example.com/with space", false},
	}

	for _, tt := range tests {
		t.Run(tt.link, func(t *testing.T) {
			got := ValidLink(tt.link)
			if tt.valid {
				require.NotNil(t, got)
				assert.Equal(t, tt.link, *got)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}

func TestCandidate_Article(t *testing.T) {
	link := "https://example.com"
	c := Candidate{
		Title:       "t",
		SourceID:    "s",
		Country:     "c",
		Description: "d",
		PublishTime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Link:        &link,
	}

	a := c.Article(0.4, "business")
	assert.Equal(t, "t", a.Title)
	assert.Equal(t, "s", a.SourceID)
	assert.Equal(t, "c", a.Country)
	assert.Equal(t, 0.4, a.Sentiment)
	assert.Equal(t, "business", a.Category)
	assert.Equal(t, &link, a.Link)
	assert.Zero(t, a.ID)
}

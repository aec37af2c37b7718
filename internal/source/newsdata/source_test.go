package newsdata

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news_sentiment/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSource(baseURL string, attempts int) *Source {
	return New(Config{
		BaseURL:        baseURL,
		APIKey:         "test-key",
		Language:       "en",
		Query:          "economy",
		Timeout:        time.Second,
		MaxAttempts:    attempts,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	}, testLogger())
}

func TestFetch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		assert.Equal(t, "en", r.URL.Query().Get("language"))
		assert.Equal(t, "economy", r.URL.Query().Get("q"))

		_, _ = io.WriteString(w, `{
			"status": "success",
			"totalResults": 2,
			"results": [
				{
					"article_id": "a1",
					"title": "Markets rally",
					"link": "https://example.com/a1",
					"description": null,
					"pubDate": "2024-01-01 10:00:00",
					"source_id": "reuters",
					"country": ["united states of america", "canada"]
				},
				{
					"article_id": "a2",
					"title": "Storm hits coast",
					"link": "not a link",
					"description": ["part one", "part two"],
					"pubDate": "2024-01-02 11:30:00",
					"source_id": "bbc",
					"country": "united kingdom"
				}
			]
		}`)
	}))
	defer srv.Close()

	articles, err := newTestSource(srv.URL, 1).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 2)

	assert.Equal(t, domain.RawArticle{
		SourceID:    "reuters",
		Title:       "Markets rally",
		Description: "",
		Link:        "https://example.com/a1",
		Country:     "united states of america, canada",
		PubDate:     "2024-01-01 10:00:00",
	}, articles[0])
	assert.Equal(t, "part one, part two", articles[1].Description)
	assert.Equal(t, "united kingdom", articles[1].Country)
	assert.Equal(t, "not a link", articles[1].Link)
}

func TestFetch_EmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"status":"success","totalResults":0,"results":[]}`)
	}))
	defer srv.Close()

	articles, err := newTestSource(srv.URL, 1).Fetch(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, articles)
	assert.Empty(t, articles)
}

func TestFetch_NonSuccessStatusIsNoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"status":"error","results":{"message":"quota exceeded","code":"RateLimitExceeded"}}`)
	}))
	defer srv.Close()

	articles, err := newTestSource(srv.URL, 1).Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, articles)
}

func TestFetch_MissingResultsIsNoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"status":"success"}`)
	}))
	defer srv.Close()

	articles, err := newTestSource(srv.URL, 1).Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, articles)
}

func TestFetch_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"status": "success", "results": [`)
	}))
	defer srv.Close()

	articles, err := newTestSource(srv.URL, 1).Fetch(context.Background())
	require.Error(t, err)
	assert.Nil(t, articles)

	var fetchErr *domain.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Contains(t, err.Error(), "decode response")
}

func TestFetch_ClientErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestSource(srv.URL, 3).Fetch(context.Background())
	require.Error(t, err)

	var fetchErr *domain.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusUnauthorized, fetchErr.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetch_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  "success",
			"results": []map[string]any{{"title": "ok", "pubDate": "2024-01-01 00:00:00"}},
		})
	}))
	defer srv.Close()

	articles, err := newTestSource(srv.URL, 3).Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, articles, 1)
	assert.Equal(t, int32(3), calls.Load())
}

func TestFetch_GivesUpAfterMaxAttempts(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestSource(srv.URL, 2).Fetch(context.Background())
	require.Error(t, err)

	var fetchErr *domain.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusServiceUnavailable, fetchErr.StatusCode)
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	src := New(Config{
		BaseURL:     srv.URL,
		APIKey:      "k",
		Timeout:     50 * time.Millisecond,
		MaxAttempts: 1,
	}, testLogger())

	start := time.Now()
	_, err := src.Fetch(context.Background())
	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)

	var fetchErr *domain.FetchError
	assert.True(t, errors.As(err, &fetchErr))
}

func TestStringList_Unmarshal(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"plain"`, "plain"},
		{`["a", "b", "c"]`, "a, b, c"},
		{`["only"]`, "only"},
		{`[]`, ""},
		{`null`, ""},
		{`["a", null, "b"]`, "a, b"},
		{`42`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var s StringList
			require.NoError(t, json.Unmarshal([]byte(tt.input), &s))
			assert.Equal(t, tt.want, s.String())
		})
	}
}

func TestCalculateBackoff(t *testing.T) {
	src := New(Config{InitialBackoff: time.Second, MaxBackoff: 5 * time.Second, MaxAttempts: 5}, testLogger())

	assert.Equal(t, time.Second, src.calculateBackoff(1))
	assert.Equal(t, 2*time.Second, src.calculateBackoff(2))
	assert.Equal(t, 4*time.Second, src.calculateBackoff(3))
	assert.Equal(t, 5*time.Second, src.calculateBackoff(4))
}

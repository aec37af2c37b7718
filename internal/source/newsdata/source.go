package newsdata

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"news_sentiment/internal/domain"
)

const (
	SourceID   = "newsdata"
	SourceName = "newsdata.io"

	statusSuccess = "success"
)

// Config holds newsdata source configuration.
type Config struct {
	BaseURL        string
	APIKey         string
	Language       string
	Query          string
	Category       string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Source fetches the latest articles from the newsdata.io API.
type Source struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	language       string
	query          string
	category       string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// New creates a new newsdata source.
func New(cfg Config, logger *slog.Logger) *Source {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		apiKey:         cfg.APIKey,
		language:       cfg.Language,
		query:          cfg.Query,
		category:       cfg.Category,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", SourceID),
	}
}

// ID returns the source identifier.
func (s *Source) ID() string {
	return SourceID
}

// Name returns human-readable name.
func (s *Source) Name() string {
	return SourceName
}

// Fetch requests the latest batch of articles. Any transport, status or
// decoding failure is returned as *domain.FetchError. A response with a
// non-success status or without results is an empty batch.
func (s *Source) Fetch(ctx context.Context) ([]domain.RawArticle, error) {
	reqURL, err := s.buildURL()
	if err != nil {
		return nil, &domain.FetchError{Err: err}
	}

	resp, err := s.fetchWithRetry(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	if resp.Status != statusSuccess {
		s.logger.Warn("api returned non-success status",
			"status", resp.Status,
			"detail", describeError(resp.Results),
		)
		return []domain.RawArticle{}, nil
	}

	results, err := decodeResults(resp.Results)
	if err != nil {
		return nil, &domain.FetchError{Err: err}
	}

	if len(results) == 0 {
		s.logger.Info("no results found")
		return []domain.RawArticle{}, nil
	}

	s.logger.Debug("fetched articles", "count", len(results), "total_results", resp.TotalResults)

	return transform(results), nil
}

func (s *Source) buildURL() (string, error) {
	u, err := url.Parse(s.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}

	q := u.Query()
	q.Set("apikey", s.apiKey)
	if s.language != "" {
		q.Set("language", s.language)
	}
	if s.query != "" {
		q.Set("q", s.query)
	}
	if s.category != "" {
		q.Set("category", s.category)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func (s *Source) fetchWithRetry(ctx context.Context, reqURL string) (*APIResponse, error) {
	var resp *APIResponse
	var err error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		resp, err = s.doRequest(ctx, reqURL)
		if err == nil {
			return resp, nil
		}

		if attempt == s.maxAttempts || !retryable(err) {
			break
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, &domain.FetchError{Err: ctx.Err()}
		case <-time.After(backoff):
		}
	}

	var fetchErr *domain.FetchError
	if errors.As(err, &fetchErr) {
		return nil, fetchErr
	}
	return nil, &domain.FetchError{Err: err}
}

func (s *Source) doRequest(ctx context.Context, reqURL string) (*APIResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &domain.FetchError{Err: fmt.Errorf("create request: %w", err)}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "NewsSentiment/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &domain.FetchError{Err: fmt.Errorf("execute request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.FetchError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status: %d", resp.StatusCode),
		}
	}

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, &domain.FetchError{Err: fmt.Errorf("decode response: %w", err)}
	}

	return &apiResp, nil
}

func (s *Source) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff
}

// retryable reports whether a failed request may succeed when repeated:
// transport failures, throttling and server errors.
func retryable(err error) bool {
	var fetchErr *domain.FetchError
	if !errors.As(err, &fetchErr) {
		return false
	}
	switch {
	case fetchErr.StatusCode == 0:
		return !errors.Is(err, context.Canceled)
	case fetchErr.StatusCode == http.StatusTooManyRequests:
		return true
	case fetchErr.StatusCode >= 500:
		return true
	default:
		return false
	}
}

func decodeResults(raw json.RawMessage) ([]Result, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	var results []Result
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, fmt.Errorf("decode results: %w", err)
	}
	return results, nil
}

func describeError(raw json.RawMessage) string {
	var apiErr APIError
	if err := json.Unmarshal(raw, &apiErr); err != nil {
		return ""
	}
	return apiErr.Message
}

func transform(results []Result) []domain.RawArticle {
	articles := make([]domain.RawArticle, 0, len(results))

	for _, r := range results {
		articles = append(articles, domain.RawArticle{
			SourceID:    r.SourceID.String(),
			Title:       r.Title.String(),
			Description: r.Description.String(),
			Link:        r.Link.String(),
			Country:     r.Country.String(),
			PubDate:     r.PubDate.String(),
		})
	}

	return articles
}

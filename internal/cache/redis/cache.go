// Package redis stores precomputed summary snapshots in Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"news_sentiment/internal/domain"
)

// categoriesSuffix names the per-window category index key.
const categoriesSuffix = "_categories"

// SummaryCache reads and writes whole SummarySnapshot values.
type SummaryCache struct {
	client *goredis.Client
	prefix string
	logger *slog.Logger
}

func NewSummaryCache(client *goredis.Client, prefix string, logger *slog.Logger) *SummaryCache {
	return &SummaryCache{
		client: client,
		prefix: prefix,
		logger: logger.With("component", "summary_cache"),
	}
}

// Connect opens a client from a redis:// URL, falling back to treating the
// value as a plain address, and verifies the connection.
func Connect(ctx context.Context, redisURL string) (*goredis.Client, error) {
	opt, err := goredis.ParseURL(redisURL)
	if err != nil {
		opt = &goredis.Options{Addr: redisURL}
	}

	client := goredis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// Key derives the cache key of a (window, category) slice. An empty category
// means all articles.
func (c *SummaryCache) Key(window, category string) string {
	return fmt.Sprintf("%s:%s:%s", c.prefix, normalizeKeyPart(window), normalizeKeyPart(categoryOrAll(category)))
}

func (c *SummaryCache) categoriesKey(window string) string {
	return fmt.Sprintf("%s:%s:%s", c.prefix, normalizeKeyPart(window), categoriesSuffix)
}

// Write replaces the value stored under key with snapshot.
func (c *SummaryCache) Write(ctx context.Context, key string, snapshot domain.SummarySnapshot, ttl time.Duration) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Read returns the snapshot stored under key. A missing or unreadable entry
// yields ok=false without an error.
func (c *SummaryCache) Read(ctx context.Context, key string) (domain.SummarySnapshot, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return domain.SummarySnapshot{}, false, nil
	}
	if err != nil {
		return domain.SummarySnapshot{}, false, fmt.Errorf("get %s: %w", key, err)
	}

	var snapshot domain.SummarySnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		c.logger.Warn("discarding unreadable snapshot", "key", key, "error", err)
		return domain.SummarySnapshot{}, false, nil
	}
	return snapshot, true, nil
}

// WriteCategories stores the list of category slices available for window.
func (c *SummaryCache) WriteCategories(ctx context.Context, window string, categories []string, ttl time.Duration) error {
	if categories == nil {
		categories = []string{}
	}
	data, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("marshal categories: %w", err)
	}

	key := c.categoriesKey(window)
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// ReadCategories returns the category index of window, empty when absent.
func (c *SummaryCache) ReadCategories(ctx context.Context, window string) ([]string, error) {
	key := c.categoriesKey(window)

	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}

	var categories []string
	if err := json.Unmarshal(data, &categories); err != nil {
		c.logger.Warn("discarding unreadable category index", "key", key, "error", err)
		return []string{}, nil
	}
	return categories, nil
}

// Delete removes keys. Keys that do not exist are ignored.
func (c *SummaryCache) Delete(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("del %s: %w", strings.Join(keys, ","), err)
	}
	return nil
}

func categoryOrAll(category string) string {
	if strings.TrimSpace(category) == "" {
		return domain.AllCategories
	}
	return category
}

func normalizeKeyPart(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "_")
}

package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"news_sentiment/internal/domain"
)

const statusNoData = "no_data"

// SummaryReader is the read side of the summary cache.
type SummaryReader interface {
	Key(window, category string) string
	Read(ctx context.Context, key string) (domain.SummarySnapshot, bool, error)
	ReadCategories(ctx context.Context, window string) ([]string, error)
}

// SummaryHandler serves cached snapshots. An unpopulated or unreadable cache
// is answered with a no-data body, never a server error.
type SummaryHandler struct {
	reader  SummaryReader
	windows map[string]domain.Window
	logger  *slog.Logger
}

func NewSummaryHandler(reader SummaryReader, windows []domain.Window, logger *slog.Logger) *SummaryHandler {
	known := make(map[string]domain.Window, len(windows))
	for _, w := range windows {
		known[w.Name] = w
	}
	return &SummaryHandler{reader: reader, windows: known, logger: logger}
}

type NoDataResponse struct {
	Status   string `json:"status"`
	Window   string `json:"window"`
	Category string `json:"category"`
}

type CategoriesResponse struct {
	Window     string   `json:"window"`
	Categories []string `json:"categories"`
}

func (h *SummaryHandler) GetSummary(c *gin.Context) {
	window, ok := h.window(c)
	if !ok {
		return
	}

	category := strings.TrimSpace(c.Query("category"))
	if category == "" {
		category = domain.AllCategories
	}

	key := h.reader.Key(window.Name, category)
	snapshot, found, err := h.reader.Read(c.Request.Context(), key)
	if err != nil {
		h.logger.Warn("error reading summary", "key", key, "error", err)
	}
	if err != nil || !found {
		c.JSON(http.StatusOK, NoDataResponse{Status: statusNoData, Window: window.Name, Category: category})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

func (h *SummaryHandler) GetCategories(c *gin.Context) {
	window, ok := h.window(c)
	if !ok {
		return
	}

	categories, err := h.reader.ReadCategories(c.Request.Context(), window.Name)
	if err != nil {
		h.logger.Warn("error reading categories", "window", window.Name, "error", err)
		categories = nil
	}
	if categories == nil {
		categories = []string{}
	}

	c.JSON(http.StatusOK, CategoriesResponse{Window: window.Name, Categories: categories})
}

func (h *SummaryHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *SummaryHandler) window(c *gin.Context) (domain.Window, bool) {
	name := c.Param("window")
	w, ok := h.windows[name]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown window " + name})
		return domain.Window{}, false
	}
	return w, true
}

package newsdata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// APIResponse represents the newsdata.io response structure. Results is kept
// raw because the API sends an error object instead of an array when status
// is not "success".
type APIResponse struct {
	Status       string          `json:"status"`
	TotalResults int             `json:"totalResults"`
	Results      json.RawMessage `json:"results"`
	NextPage     *string         `json:"nextPage"`
}

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

type Result struct {
	ArticleID   string     `json:"article_id"`
	Title       StringList `json:"title"`
	Link        StringList `json:"link"`
	Description StringList `json:"description"`
	PubDate     StringList `json:"pubDate"`
	SourceID    StringList `json:"source_id"`
	Country     StringList `json:"country"`
	Category    StringList `json:"category"`
	Language    StringList `json:"language"`
}

// StringList accepts a JSON string, an array of strings or null and
// flattens it into a single ", "-joined string.
type StringList string

func (s *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	switch data[0] {
	case '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = StringList(v)
	case '[':
		var items []*string
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("decode string list: %w", err)
		}
		parts := make([]string, 0, len(items))
		for _, item := range items {
			if item != nil {
				parts = append(parts, *item)
			}
		}
		*s = StringList(strings.Join(parts, ", "))
	default:
		// numbers and booleans are not expected here; treat as absent
		*s = ""
	}

	return nil
}

func (s StringList) String() string {
	return string(s)
}

package analysis

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVaderScorer_Score(t *testing.T) {
	s := NewVaderScorer()

	assert.Greater(t, s.Score("What a great and wonderful day for the team"), 0.5)
	assert.Less(t, s.Score("Terrible disaster leaves many dead and injured"), -0.5)
	assert.Equal(t, 0.0, s.Score("The committee met on Tuesday"))
	assert.Equal(t, 0.0, s.Score(""))
	assert.Equal(t, 0.0, s.Score("   "))
}

func TestVaderScorer_Negation(t *testing.T) {
	s := NewVaderScorer()

	assert.Greater(t, s.Score("the result was good"), 0.0)
	assert.Less(t, s.Score("the result was not good"), 0.0)
}

func TestVaderScorer_Bounded(t *testing.T) {
	s := NewVaderScorer()

	score := s.Score(strings.Repeat("excellent great best love ", 50))
	assert.LessOrEqual(t, score, 1.0)
	assert.Greater(t, score, 0.99)

	score = s.Score(strings.Repeat("terrible awful horrible hate ", 50))
	assert.GreaterOrEqual(t, score, -1.0)
	assert.Less(t, score, -0.99)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(1.7))
	assert.Equal(t, -1.0, Clamp(-3))
	assert.Equal(t, 0.25, Clamp(0.25))
	assert.Equal(t, 0.0, Clamp(math.NaN()))
}

func TestKeywordClassifier_Classify(t *testing.T) {
	c := NewKeywordClassifier()

	texts := []string{
		"Stocks fall as investors weigh inflation and interest rates",
		"The president lost the election after a bitter campaign",
		"Championship final: coach praises players after the match",
		"Nothing to see here",
		"Scientists publish a new study on climate and species",
	}

	labels, err := c.Classify(context.Background(), texts)
	require.NoError(t, err)
	assert.Equal(t, []string{
		CategoryBusiness,
		CategoryPolitics,
		CategorySports,
		CategoryGeneral,
		CategoryScience,
	}, labels)
}

func TestKeywordClassifier_PreservesLength(t *testing.T) {
	c := NewKeywordClassifier()

	labels, err := c.Classify(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, labels, 0)

	labels, err = c.Classify(context.Background(), []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Len(t, labels, 3)
}

func TestKeywordClassifier_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewKeywordClassifier().Classify(ctx, []string{"a"})
	assert.ErrorIs(t, err, context.Canceled)
}

func chatCompletion(content string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]any{"role": "assistant", "content": content},
		}},
	}
}

func TestOpenAIClassifier_Classify(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"))
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(chatCompletion("```json\n{\"labels\": [\"Business\", \"sports\", \"gardening\"]}\n```"))
	}))
	defer srv.Close()

	c := NewOpenAIClassifier(OpenAIConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: srv.URL + "/"})

	labels, err := c.Classify(context.Background(), []string{"one", "two", "three"})
	require.NoError(t, err)
	assert.Equal(t, []string{CategoryBusiness, CategorySports, CategoryGeneral}, labels)
	assert.Equal(t, "gpt-4o-mini", gotBody["model"])
}

func TestOpenAIClassifier_ShortResponseIsReturnedAsIs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(chatCompletion(`{"labels": ["world"]}`))
	}))
	defer srv.Close()

	c := NewOpenAIClassifier(OpenAIConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: srv.URL + "/"})

	labels, err := c.Classify(context.Background(), []string{"one", "two"})
	require.NoError(t, err)
	assert.Equal(t, []string{CategoryWorld}, labels)
}

func TestOpenAIClassifier_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(chatCompletion("I cannot help with that"))
	}))
	defer srv.Close()

	c := NewOpenAIClassifier(OpenAIConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: srv.URL + "/"})

	_, err := c.Classify(context.Background(), []string{"one"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse response")
}

func TestOpenAIClassifier_EmptyBatchSkipsCall(t *testing.T) {
	c := NewOpenAIClassifier(OpenAIConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: "http://127.0.0.1:1/"})

	labels, err := c.Classify(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, labels)
}

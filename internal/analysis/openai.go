package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const classifyPrompt = `You are a news desk editor. Assign exactly one category to each numbered article.

Allowed categories: %s.
Use "general" when none fits.

Output as JSON only, no other text, with one label per article in the same order:
{"labels": ["category for 1", "category for 2"]}`

// OpenAIConfig configures the LLM-backed classifier.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// OpenAIClassifier labels a whole batch with a single chat completion.
type OpenAIClassifier struct {
	client *openai.Client
	model  openai.ChatModel
}

func NewOpenAIClassifier(cfg OpenAIConfig) *OpenAIClassifier {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	client := openai.NewClient(opts...)
	return &OpenAIClassifier{
		client: &client,
		model:  openai.ChatModel(cfg.Model),
	}
}

// Classify returns the labels in input order. The number of labels is
// whatever the model produced; callers verify the cardinality.
func (c *OpenAIClassifier) Classify(ctx context.Context, texts []string) ([]string, error) {
	if len(texts) == 0 {
		return []string{}, nil
	}

	var sb strings.Builder
	for i, text := range texts {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, strings.ReplaceAll(text, "\n", " ")))
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(fmt.Sprintf(classifyPrompt, strings.Join(AllCategories(), ", "))),
			openai.UserMessage(sb.String()),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, errors.New("no response from openai")
	}

	content := cleanJSONResponse(resp.Choices[0].Message.Content)

	var parsed struct {
		Labels []string `json:"labels"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w, content: %s", err, content)
	}

	labels := make([]string, len(parsed.Labels))
	for i, label := range parsed.Labels {
		labels[i] = normalizeLabel(label)
	}
	return labels, nil
}

func normalizeLabel(label string) string {
	label = strings.ToLower(strings.TrimSpace(label))
	if slices.Contains(AllCategories(), label) {
		return label
	}
	return CategoryGeneral
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}

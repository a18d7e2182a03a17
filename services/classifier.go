package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const categorySentinel = "none"

// Classifier maps a free-text message to one known product category via a
// minimal-randomness completion call.
type Classifier struct {
	client *openai.Client
	model  string
}

// NewClassifier returns a classifier. An empty API key yields a disabled
// classifier whose Detect always reports no match.
func NewClassifier(apiKey, model string) *Classifier {
	c := &Classifier{model: model}
	if apiKey != "" {
		c.client = openai.NewClient(apiKey)
	}
	return c
}

// Detect returns the canonical category key the message refers to, or ""
// when no category matches. The returned value is always a member of
// categories. Transport and API failures come back as an error, the caller
// decides the fallback.
func (c *Classifier) Detect(ctx context.Context, message string, categories []string) (string, error) {
	if c.client == nil || len(categories) == 0 {
		return "", nil
	}

	prompt := fmt.Sprintf(`Given this message, return ONLY the matching category from this list.
Message: %q
Categories: %s
If none match, respond '%s'.`, message, strings.Join(categories, ", "), categorySentinel)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt},
		},
		MaxTokens:   15,
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("category detection failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("category detection returned no choices")
	}

	raw := strings.ToLower(strings.TrimSpace(resp.Choices[0].Message.Content))
	if raw == categorySentinel {
		return "", nil
	}

	match := MatchCategory(raw, categories)
	slog.Info("Category detected", "raw", raw, "match", match)
	return match, nil
}

// MatchCategory resolves raw model output against the known category keys.
// A category matches when its full token sequence appears in the output or
// vice versa. Token boundaries keep short names from colliding, "men" does
// not match inside "women". Returns "" when nothing matches.
func MatchCategory(raw string, categories []string) string {
	out := strings.Fields(CanonicalKey(raw))
	if len(out) == 0 {
		return ""
	}
	for _, cat := range categories {
		ct := strings.Fields(cat)
		if containsTokens(out, ct) || containsTokens(ct, out) {
			return cat
		}
	}
	return ""
}

// containsTokens reports whether sub occurs as a contiguous run inside seq.
func containsTokens(seq, sub []string) bool {
	if len(sub) == 0 || len(sub) > len(seq) {
		return false
	}
	for i := 0; i+len(sub) <= len(seq); i++ {
		matched := true
		for j := range sub {
			if seq[i+j] != sub[j] {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}

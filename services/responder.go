package services

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"zulu-bot/models"
)

// BrandInfo is the only knowledge the responder may draw on.
const BrandInfo = `
We're building a new way to shop and discover lifestyle products online.

We all love visiting a premium store — exploring new arrivals, discovering chic home pieces, finding stylish outfits, or picking adorable toys for kids. But we know making time for mall visits isn't always easy.

Introducing Zulu Club — your personalized lifestyle shopping experience, delivered right to your doorstep.

Browse and shop high-quality lifestyle products across categories you love:

- Women's Fashion — dresses, tops, co-ords, winterwear, loungewear & more
- Men's Fashion — shirts, tees, jackets, athleisure & more
- Kids — clothing, toys, learning kits & accessories
- Footwear — sneakers, heels, flats, sandals & kids shoes
- Home Decor — showpieces, vases, lamps, aroma decor, premium home accessories
- Beauty & Self-Care — skincare, bodycare, fragrances & grooming essentials
- Fashion Accessories — bags, jewelry, watches, sunglasses & belts
- Lifestyle Gifting — curated gift sets & décor-based gifting

Your selection arrives in just 100 minutes. Try at home, keep what you love, return instantly — smooth, personal, and stress-free.

Now live in Gurgaon — Visit zulu.club or our pop-ups at AIPL Joy Street & AIPL Central.
`

const (
	// FallbackNoCredential is returned verbatim when no OpenAI key is
	// configured, without attempting a call.
	FallbackNoCredential = "Hello! I'm here to help you with Zulu Club. Please visit zulu.club."

	// FallbackReply is the safe reply substituted when the completion call
	// fails. No raw error ever reaches the end user.
	FallbackReply = "Hey there! Welcome to Zulu Club — your premium lifestyle shopping experience with 100-minute delivery."
)

const (
	replyMaxTokens   = 350
	replyTemperature = 0.7
	historyWindow    = 6
)

// Responder produces conversational replies constrained to the brand blurb.
type Responder struct {
	client    *openai.Client
	model     string
	knowledge string
}

func NewResponder(apiKey, model string) *Responder {
	r := &Responder{model: model, knowledge: BrandInfo}
	if apiKey != "" {
		r.client = openai.NewClient(apiKey)
	}
	return r
}

// Reply generates a reply to message given the conversation so far (oldest
// first, not including the current message). Only the most recent 6 turns
// are sent. With no credential configured it returns FallbackNoCredential
// without calling out.
func (r *Responder) Reply(ctx context.Context, message string, history []models.Turn) (string, error) {
	if r.client == nil {
		return FallbackNoCredential, nil
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: r.systemPrompt()},
	}
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	for _, turn := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    turn.Role,
			Content: turn.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       r.model,
		Messages:    messages,
		MaxTokens:   replyMaxTokens,
		Temperature: replyTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (r *Responder) systemPrompt() string {
	var b strings.Builder
	b.WriteString("You are a friendly customer service assistant for Zulu Club.\n\n")
	b.WriteString("Use ONLY the following information:\n")
	b.WriteString(r.knowledge)
	b.WriteString("\n\nGuidelines:\n")
	b.WriteString("1. Be helpful, concise, and friendly.\n")
	b.WriteString("2. Highlight 100-minute delivery, try-at-home, easy returns, and premium curation.\n")
	b.WriteString("3. If someone says hi/hello, greet them warmly and introduce Zulu Club.\n")
	b.WriteString("4. If they ask about products, use the product category logic to show them.\n")
	b.WriteString("5. If something is not in the info, politely say you're not sure.\n")
	b.WriteString("6. Mention we're available in Gurgaon and at pop-ups: AIPL Joy Street & AIPL Central.\n")
	b.WriteString("7. Never invent details beyond the provided info.\n")
	return b.String()
}

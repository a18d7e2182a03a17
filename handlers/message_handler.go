package handlers

import (
	"context"
	"log/slog"
	"strings"

	"zulu-bot/models"
	"zulu-bot/services"
)

const bundleSize = 3

// Classifier resolves a message to a known category key, or "" for none.
type Classifier interface {
	Detect(ctx context.Context, message string, categories []string) (string, error)
}

// Responder generates a conversational reply from the message and prior turns.
type Responder interface {
	Reply(ctx context.Context, message string, history []models.Turn) (string, error)
}

// MessageHandler runs the category-resolution pipeline for one inbound
// message: classify first, fall back to a conversational reply.
type MessageHandler struct {
	store      services.ConversationStore
	catalog    *services.Catalog
	classifier Classifier
	responder  Responder
}

func NewMessageHandler(store services.ConversationStore, catalog *services.Catalog, classifier Classifier, responder Responder) *MessageHandler {
	return &MessageHandler{
		store:      store,
		catalog:    catalog,
		classifier: classifier,
		responder:  responder,
	}
}

// Handle processes one inbound message and produces the outbound response.
// The user turn is always recorded; an assistant turn is recorded only on
// the conversational path. Product bundles are deliberately not written to
// history, they are image sequences rather than conversational turns.
func (h *MessageHandler) Handle(ctx context.Context, sessionID, message string) models.Response {
	slog.Info("Handling message", "sessionID", sessionID, "message", message)

	h.store.Append(sessionID, models.Turn{Role: models.RoleUser, Content: message})

	normalized := strings.ToLower(strings.TrimSpace(message))
	category, err := h.classifier.Detect(ctx, normalized, h.catalog.Categories())
	if err != nil {
		slog.Warn("Category detection failed, treating as no match", "error", err)
		category = ""
	}

	if category != "" {
		if items := h.catalog.Sample(category, bundleSize); len(items) > 0 {
			slog.Info("Returning product bundle", "sessionID", sessionID, "category", category, "items", len(items))
			return models.Response{
				Type:     models.ResponseProducts,
				Category: category,
				Items:    items,
			}
		}
	}

	// History before this turn's append
	history := h.store.History(sessionID)
	if len(history) > 0 {
		history = history[:len(history)-1]
	}

	reply, err := h.responder.Reply(ctx, message, history)
	if err != nil {
		slog.Error("Conversational reply failed, using fallback", "sessionID", sessionID, "error", err)
		reply = services.FallbackReply
	}

	h.store.Append(sessionID, models.Turn{Role: models.RoleAssistant, Content: reply})

	return models.Response{
		Type:    models.ResponseText,
		Content: reply,
	}
}

package webhooks

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"zulu-bot/config"
	"zulu-bot/models"
)

const (
	greetingNoText = "Hi 👋! Welcome to Zulu Club — your premium lifestyle shopping destination!"
	greetingOther  = "Hey there 👋! Welcome to Zulu Club!"
)

// MessageHandler runs the classification-and-reply pipeline for one message.
type MessageHandler interface {
	Handle(ctx context.Context, sessionID, message string) models.Response
}

// Sender delivers outbound WhatsApp messages.
type Sender interface {
	SendText(ctx context.Context, to, text string) error
	SendImage(ctx context.Context, to, imageURL, caption string) error
}

// RegisterRoutes wires the Gallabox webhook and the liveness endpoints.
func RegisterRoutes(app *fiber.App, cfg *config.Config, handler MessageHandler, sender Sender) {
	app.Get("/gallabox_webhook", verifyWebhook())
	app.Post("/gallabox_webhook", handleWebhookEvent(handler, sender))

	app.Get("/", statusHandler(cfg))
	app.Get("/ping", pingHandler())
}

// verifyWebhook handles the Gallabox verification handshake: echo the
// challenge if one is supplied, otherwise report liveness.
func verifyWebhook() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if challenge := c.Query("challenge"); challenge != "" {
			slog.Info("Webhook verification challenge received")
			return c.SendString(challenge)
		}
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "Webhook is active",
		})
	}
}

// handleWebhookEvent processes an inbound WhatsApp message. Every path after
// body parsing returns 200 so the provider never enters a retry storm, error
// detail lives in the JSON body only.
func handleWebhookEvent(handler MessageHandler, sender Sender) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var event WebhookEvent
		if err := c.BodyParser(&event); err != nil {
			slog.Error("Failed to parse webhook body", "error", err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status":  "error",
				"message": "No data received",
			})
		}

		from := event.Data.From
		if from == "" {
			from = "unknown"
		}
		text := strings.TrimSpace(event.Data.Message.Text)

		// No text (media, stickers, empty payloads): greet, record nothing
		if text == "" {
			if err := sender.SendText(c.Context(), from, greetingNoText); err != nil {
				slog.Error("Failed to send greeting", "to", from, "error", err)
			}
			return c.JSON(fiber.Map{"status": "ok"})
		}

		response := handler.Handle(c.Context(), from, text)

		switch response.Type {
		case models.ResponseText:
			if err := sender.SendText(c.Context(), from, response.Content); err != nil {
				slog.Error("Failed to send reply", "to", from, "error", err)
			}

		case models.ResponseProducts:
			// cases.Caser carries state, build one per request
			header := fmt.Sprintf("Here are some picks from our *%s* collection 💫",
				cases.Title(language.English).String(response.Category))
			if err := sender.SendText(c.Context(), from, header); err != nil {
				slog.Error("Failed to send bundle header", "to", from, "error", err)
			}
			for _, item := range response.Items {
				caption := fmt.Sprintf("%s — %s\nAvailable on zulu.club ✨", item.Name, item.Price)
				if err := sender.SendImage(c.Context(), from, item.ImageURL, caption); err != nil {
					slog.Error("Failed to send product image", "to", from, "product", item.Name, "error", err)
				}
			}

		default:
			if err := sender.SendText(c.Context(), from, greetingOther); err != nil {
				slog.Error("Failed to send greeting", "to", from, "error", err)
			}
		}

		return c.JSON(fiber.Map{"status": "sent"})
	}
}

// statusHandler reports which credentials are configured, booleans only.
func statusHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "Zulu Club Chat Assistant is running!",
			"endpoints": fiber.Map{
				"webhook": "/gallabox_webhook (POST)",
				"health":  "/ping (GET)",
			},
			"environment_configured": fiber.Map{
				"openai":   cfg.OpenAIConfigured(),
				"gallabox": cfg.GallaboxConfigured(),
			},
		})
	}
}

func pingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "Zulu Club Chat Assistant is running!",
		})
	}
}

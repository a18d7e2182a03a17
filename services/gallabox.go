package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// ErrNotConfigured is returned when an outbound send is attempted without
// the full Gallabox credential set.
var ErrNotConfigured = errors.New("gallabox credentials not configured")

const gallaboxTimeout = 10 * time.Second

// GallaboxClient sends WhatsApp messages through the Gallabox API.
type GallaboxClient struct {
	apiURL     string
	apiKey     string
	apiSecret  string
	channelID  string
	httpClient *http.Client
}

func NewGallaboxClient(apiURL, apiKey, apiSecret, channelID string) *GallaboxClient {
	return &GallaboxClient{
		apiURL:    apiURL,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		channelID: channelID,
		httpClient: &http.Client{
			Timeout: gallaboxTimeout,
		},
	}
}

// Configured reports whether the full credential set is present.
func (g *GallaboxClient) Configured() bool {
	return g.apiKey != "" && g.apiSecret != "" && g.channelID != ""
}

// SendText delivers a text message to the recipient's WhatsApp number.
func (g *GallaboxClient) SendText(ctx context.Context, to, text string) error {
	payload := map[string]interface{}{
		"channelId": g.channelID,
		"to":        to,
		"type":      "text",
		"message": map[string]string{
			"text": text,
		},
	}
	return g.send(ctx, payload)
}

// SendImage delivers an image with a caption to the recipient.
func (g *GallaboxClient) SendImage(ctx context.Context, to, imageURL, caption string) error {
	payload := map[string]interface{}{
		"channelId": g.channelID,
		"to":        to,
		"type":      "image",
		"message": map[string]string{
			"image":   imageURL,
			"caption": caption,
		},
	}
	return g.send(ctx, payload)
}

func (g *GallaboxClient) send(ctx context.Context, payload map[string]interface{}) error {
	if !g.Configured() {
		return ErrNotConfigured
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", g.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", g.apiKey)
	req.Header.Set("x-api-secret", g.apiSecret)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		slog.Error("Gallabox send failed", "status", resp.StatusCode, "body", string(body))
		return fmt.Errorf("gallabox send failed: %s", resp.Status)
	}

	slog.Info("Gallabox message sent", "status", resp.StatusCode)
	return nil
}

package services

import (
	"context"
	"testing"

	"zulu-bot/models"
)

func TestReplyWithoutCredentialReturnsStaticFallback(t *testing.T) {
	r := NewResponder("", "gpt-3.5-turbo")

	inputs := []struct {
		message string
		history []models.Turn
	}{
		{"hi", nil},
		{"do you deliver to Gurgaon?", nil},
		{"tell me more", []models.Turn{
			{Role: models.RoleUser, Content: "hi"},
			{Role: models.RoleAssistant, Content: "hello"},
		}},
	}

	for _, in := range inputs {
		got, err := r.Reply(context.Background(), in.message, in.history)
		if err != nil {
			t.Fatalf("Reply(%q) returned error without credential: %v", in.message, err)
		}
		if got != FallbackNoCredential {
			t.Errorf("Reply(%q) = %q, want the exact static fallback", in.message, got)
		}
	}
}

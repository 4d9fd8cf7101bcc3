package service

import (
	"context"
	"testing"

	apperrors "github.com/burakmert236/matchday/common/errors"
)

func TestPostMessageAppends(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	first, err := env.chat.PostMessage(ctx, "team1", "kickoff at 10", "Asha")
	if err != nil {
		t.Fatalf("post failed: %v", err)
	}
	second, err := env.chat.PostMessage(ctx, "team1", "bring water", "Ben")
	if err != nil {
		t.Fatalf("post failed: %v", err)
	}

	messages, err := env.chat.Messages(ctx, "team1")
	if err != nil {
		t.Fatalf("messages failed: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[0].Id != first.Id || messages[1].Id != second.Id {
		t.Error("messages out of order")
	}
	if messages[0].Sender != "Asha" || messages[1].Text != "bring water" {
		t.Errorf("message content wrong: %+v", messages)
	}
	if messages[0].Timestamp.IsZero() {
		t.Error("expected a timestamp")
	}

	if len(env.pub.messages) != 2 || env.pub.messages[0] != "team1" {
		t.Errorf("expected messages-changed events for team1, got %v", env.pub.messages)
	}
}

func TestPostMessageRejectsBlankText(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	_, err := env.chat.PostMessage(ctx, "team1", "   ", "Asha")
	if err == nil {
		t.Fatal("expected invalid input error")
	}
	if !apperrors.HasCode(err, apperrors.CodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %s", err.Code)
	}

	messages, _ := env.chat.Messages(ctx, "team1")
	if len(messages) != 0 {
		t.Errorf("expected no messages stored, got %d", len(messages))
	}
}

func TestMessagesIsolatedPerTeam(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	env.chat.PostMessage(ctx, "team1", "hello tigers", "Asha")
	env.chat.PostMessage(ctx, "team2", "hello lions", "Ben")

	tigers, _ := env.chat.Messages(ctx, "team1")
	lions, _ := env.chat.Messages(ctx, "team2")

	if len(tigers) != 1 || len(lions) != 1 {
		t.Fatalf("expected 1 message each, got %d and %d", len(tigers), len(lions))
	}
	if tigers[0].Text != "hello tigers" || lions[0].Text != "hello lions" {
		t.Error("logs crossed between teams")
	}
}

package openai

import (
	"context"
	"encoding/json"
	"strings"

	"hearthly-api/internal/apperror"
	"hearthly-api/internal/conversation"
	"hearthly-api/internal/logs"

	"go.uber.org/zap"
)

const (
	serviceChat = "chat"

	// Temperature is fixed for every generation.
	Temperature = 0.7
)

type ChatCompleter struct {
	Client *Client
	Model  string
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// buildMessages orders a prompt as system instructions, then history in
// chronological order, then the current utterance.
func buildMessages(instructions string, history []conversation.Turn, utterance string) []chatMessage {
	msgs := make([]chatMessage, 0, len(history)+2)
	msgs = append(msgs, chatMessage{Role: "system", Content: instructions})
	for _, turn := range history {
		msgs = append(msgs, chatMessage{Role: string(turn.Role), Content: turn.Content})
	}
	msgs = append(msgs, chatMessage{Role: "user", Content: utterance})
	return msgs
}

func (c *ChatCompleter) Generate(ctx context.Context, instructions string, history []conversation.Turn, utterance string) (string, error) {
	ctx, cancel := c.Client.withTimeout(ctx)
	defer cancel()

	raw, err := c.Client.postJSON(ctx, serviceChat, "/v1/chat/completions", chatRequest{
		Model:       c.Model,
		Messages:    buildMessages(instructions, history, utterance),
		Temperature: Temperature,
	})
	if err != nil {
		return "", err
	}

	var out chatResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", apperror.Malformed(serviceChat, "response is not json")
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", apperror.Malformed(serviceChat, "no response text")
	}

	text := out.Choices[0].Message.Content
	logs.FromContext(ctx).Debug("generation complete",
		zap.Int("history_turns", len(history)),
		zap.Int("chars", len(text)),
	)
	return text, nil
}

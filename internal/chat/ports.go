package chat

import (
	"context"

	"hearthly-api/internal/pipeline"
)

type ChatServicePort interface {
	Chat(ctx context.Context, userID string, req pipeline.ChatRequest) (*pipeline.ChatResponse, error)
}

var _ ChatServicePort = (*pipeline.Orchestrator)(nil)

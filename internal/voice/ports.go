package voice

import (
	"context"

	"hearthly-api/internal/pipeline"
)

type VoiceServicePort interface {
	Voice(ctx context.Context, req pipeline.VoiceRequest) (*pipeline.VoiceResponse, error)
}

var _ VoiceServicePort = (*pipeline.Orchestrator)(nil)

package pipeline

import (
	"context"

	"hearthly-api/internal/audio"
	"hearthly-api/internal/conversation"
	"hearthly-api/internal/gemini"
	"hearthly-api/internal/language"
	"hearthly-api/internal/logs"
	"hearthly-api/internal/openai"

	"go.uber.org/zap"
)

type Transcoder interface {
	Transcode(ctx context.Context, input []byte) ([]byte, error)
}

type Transcriber interface {
	Transcribe(ctx context.Context, wav []byte, lang language.Code) (string, error)
}

type Generator interface {
	Generate(ctx context.Context, instructions string, history []conversation.Turn, utterance string) (string, error)
}

type Synthesizer interface {
	Synthesize(ctx context.Context, text string, lang language.Code) ([]byte, error)
}

type HistoryStore interface {
	Read(ctx context.Context, userID string) ([]conversation.Turn, error)
	Write(ctx context.Context, userID string, turn conversation.Turn) error
}

type LogServicePort interface {
	Log(ctx context.Context, entry logs.SystemLog, fields ...zap.Field)
}

var _ Transcoder = (*audio.ExecTranscoder)(nil)
var _ Transcriber = (*openai.Transcriber)(nil)
var _ Generator = (*openai.ChatCompleter)(nil)
var _ Generator = (*gemini.Generator)(nil)
var _ Synthesizer = (*openai.Synthesizer)(nil)
var _ HistoryStore = (*conversation.Store)(nil)
var _ LogServicePort = (*logs.LogService)(nil)

package pipeline

import (
	"context"
	"net/http"
	"time"

	"hearthly-api/internal/apperror"
	"hearthly-api/internal/conversation"
	"hearthly-api/internal/language"
	"hearthly-api/internal/logs"
	"hearthly-api/internal/metrics"
	"hearthly-api/internal/persona"
	"hearthly-api/internal/tracing"
	"hearthly-api/internal/util"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Orchestrator runs the voice and chat flows. Stages run strictly in order
// and the first failure ends the run.
type Orchestrator struct {
	Transcoder  Transcoder
	Transcriber Transcriber
	Generator   Generator
	Synthesizer Synthesizer
	History     HistoryStore
	LogService  LogServicePort
	Metrics     *metrics.Metrics

	// SpeechDuration probes synthesized audio for metrics. Optional.
	SpeechDuration func([]byte) (time.Duration, error)
}

// Voice turns one spoken utterance into a spoken reply. Nothing is read from
// or written to conversation history.
func (o *Orchestrator) Voice(ctx context.Context, req VoiceRequest) (*VoiceResponse, error) {
	ctx = context.WithoutCancel(ctx)
	log := logs.FromContext(ctx)

	lang, err := language.Parse(req.Language)
	if err != nil {
		return nil, err
	}

	var input []byte
	err = o.stage(ctx, StageDecode, func(context.Context) error {
		var derr error
		input, derr = util.DecodeBase64Payload(req.Audio)
		if derr != nil {
			return apperror.Decode(derr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	o.Metrics.ObserveInput(len(input))

	var wav []byte
	err = o.stage(ctx, StageTranscode, func(ctx context.Context) error {
		var terr error
		wav, terr = o.Transcoder.Transcode(ctx, input)
		return terr
	})
	if err != nil {
		return nil, err
	}

	var utterance string
	err = o.stage(ctx, StageTranscribe, func(ctx context.Context) error {
		var terr error
		utterance, terr = o.Transcriber.Transcribe(ctx, wav, lang)
		return terr
	})
	if err != nil {
		return nil, err
	}
	log.Debug("utterance transcribed", zap.Int("chars", len(utterance)))

	reply, err := o.respond(ctx, lang, req.Modes(), nil, utterance)
	if err != nil {
		return nil, err
	}

	var speech []byte
	err = o.stage(ctx, StageSynthesize, func(ctx context.Context) error {
		var serr error
		speech, serr = o.Synthesizer.Synthesize(ctx, reply, lang)
		return serr
	})
	if err != nil {
		return nil, err
	}
	o.observeSpeech(ctx, speech)

	log.Info("voice reply ready",
		zap.String("language", string(lang)),
		zap.Int("response_chars", len(reply)),
		zap.Int("mp3_bytes", len(speech)),
	)
	return &VoiceResponse{Audio: util.EncodeBase64(speech), ResponseText: reply}, nil
}

// Chat answers a text message for an authenticated user. The user turn and
// the assistant turn are stored, in that order, only after generation
// succeeds.
func (o *Orchestrator) Chat(ctx context.Context, userID string, req ChatRequest) (*ChatResponse, error) {
	ctx = context.WithoutCancel(ctx)

	lang, err := language.Parse(req.Language)
	if err != nil {
		return nil, err
	}

	var history []conversation.Turn
	err = o.stage(ctx, StageHistory, func(ctx context.Context) error {
		var herr error
		history, herr = o.History.Read(ctx, userID)
		return herr
	})
	if err != nil {
		return nil, err
	}

	reply, err := o.respond(ctx, lang, req.Modes(), history, req.Message)
	if err != nil {
		return nil, err
	}

	turns := []conversation.Turn{
		{Role: conversation.RoleUser, Content: req.Message},
		{Role: conversation.RoleAssistant, Content: reply},
	}
	for _, turn := range turns {
		err = o.stage(ctx, StageStore, func(ctx context.Context) error {
			return o.History.Write(ctx, userID, turn)
		})
		if err != nil {
			o.audit(ctx, logs.SystemLog{
				Level:   logs.LevelError,
				Service: "chat",
				UserID:  userID,
				Action:  "store_turn",
				Message: "conversation turn not stored",
			}, zap.String("role", string(turn.Role)), zap.Error(err))
			return nil, err
		}
	}

	o.audit(ctx, logs.SystemLog{
		Level:   logs.LevelInfo,
		Service: "chat",
		UserID:  userID,
		Action:  "reply",
		Message: "chat reply stored",
	}, zap.String("language", string(lang)), zap.Int("history_turns", len(history)))

	return &ChatResponse{Response: reply}, nil
}

func (o *Orchestrator) respond(ctx context.Context, lang language.Code, modes persona.Modes, history []conversation.Turn, utterance string) (string, error) {
	var instructions string
	err := o.stage(ctx, StagePersona, func(context.Context) error {
		var perr error
		instructions, perr = persona.Build(lang, modes)
		return perr
	})
	if err != nil {
		return "", err
	}
	logs.FromContext(ctx).Debug("persona built",
		zap.String("tone", persona.SelectTone(modes).String()),
		zap.Bool("genz", modes.GenZ),
	)

	var reply string
	err = o.stage(ctx, StageGenerate, func(ctx context.Context) error {
		var gerr error
		reply, gerr = o.Generator.Generate(ctx, instructions, history, utterance)
		return gerr
	})
	return reply, err
}

// stage runs fn inside a span and records its duration and failure kind.
func (o *Orchestrator) stage(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	ctx, span := tracing.Start(ctx, name, attribute.String("stage", name))

	err := fn(ctx)

	tracing.End(span, err)
	o.Metrics.ObserveStage(name, start, err)
	if err != nil {
		logs.FromContext(ctx).Warn("stage failed",
			zap.String("stage", name),
			zap.String("kind", string(apperror.KindOf(err))),
			zap.Error(err),
		)
	}
	return err
}

func (o *Orchestrator) observeSpeech(ctx context.Context, speech []byte) {
	if o.SpeechDuration == nil {
		return
	}
	d, err := o.SpeechDuration(speech)
	if err != nil {
		logs.FromContext(ctx).Debug("speech duration unknown", zap.Error(err))
		return
	}
	o.Metrics.ObserveSpeech(d)
}

func (o *Orchestrator) audit(ctx context.Context, entry logs.SystemLog, fields ...zap.Field) {
	if o.LogService == nil {
		return
	}
	o.LogService.Log(ctx, entry, fields...)
}

// Classify maps a pipeline failure to the HTTP status and the label returned
// to the caller. Diagnostic detail stays in the logs.
func Classify(err error) (int, string) {
	switch apperror.KindOf(err) {
	case apperror.KindInvalidLanguage:
		return http.StatusBadRequest, "invalid_language"
	case apperror.KindUnauthorized:
		return http.StatusUnauthorized, "unauthorized"
	case apperror.KindDecode:
		return http.StatusInternalServerError, "decode_failed"
	case apperror.KindTranscode:
		return http.StatusInternalServerError, "transcode_failed"
	case apperror.KindUpstream:
		return http.StatusInternalServerError, "upstream_failed"
	case apperror.KindMalformedResponse:
		return http.StatusInternalServerError, "malformed_response"
	case apperror.KindTransport:
		return http.StatusInternalServerError, "transport_failed"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

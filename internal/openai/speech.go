package openai

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"hearthly-api/internal/apperror"
	"hearthly-api/internal/language"
	"hearthly-api/internal/logs"

	"github.com/hajimehoshi/go-mp3"
	"go.uber.org/zap"
)

const (
	serviceSpeech = "speech"
	speechFormat  = "mp3"
)

// voices keeps one persona voice across every language.
var voices = map[language.Code]string{
	language.English: "sage",
	language.Hindi:   "sage",
	language.Punjabi: "sage",
}

type Synthesizer struct {
	Client *Client
	Model  string
}

type speechRequest struct {
	Model          string `json:"model"`
	Input          string `json:"input"`
	Voice          string `json:"voice"`
	ResponseFormat string `json:"response_format"`
}

// Synthesize returns MP3 bytes for text spoken in lang's voice.
func (s *Synthesizer) Synthesize(ctx context.Context, text string, lang language.Code) ([]byte, error) {
	if _, err := language.Parse(string(lang)); err != nil {
		return nil, err
	}

	ctx, cancel := s.Client.withTimeout(ctx)
	defer cancel()

	audio, err := s.Client.postJSON(ctx, serviceSpeech, "/v1/audio/speech", speechRequest{
		Model:          s.Model,
		Input:          text,
		Voice:          voices[lang],
		ResponseFormat: speechFormat,
	})
	if err != nil {
		return nil, err
	}
	if len(audio) == 0 {
		return nil, apperror.Malformed(serviceSpeech, "empty audio")
	}

	logs.FromContext(ctx).Debug("speech synthesized", zap.Int("mp3_bytes", len(audio)))
	return audio, nil
}

// MP3Duration estimates the play time of an MP3 clip.
func MP3Duration(data []byte) (time.Duration, error) {
	dec, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("decode mp3: %w", err)
	}
	if dec.SampleRate() <= 0 || dec.Length() <= 0 {
		return 0, fmt.Errorf("mp3 length unknown")
	}
	// decoded stream is 16-bit stereo
	frames := dec.Length() / 4
	return time.Duration(frames) * time.Second / time.Duration(dec.SampleRate()), nil
}

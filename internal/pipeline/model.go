package pipeline

import "hearthly-api/internal/persona"

// ModeFlags are the persona switches shared by both endpoints.
type ModeFlags struct {
	GenZ       bool `json:"genz_mode"`
	Sarcastic  bool `json:"sarcastic_mode"`
	Shenanigan bool `json:"shenanigan_mode"`
	Seductive  bool `json:"seductive_mode"`
}

func (f ModeFlags) Modes() persona.Modes {
	return persona.Modes{
		GenZ:       f.GenZ,
		Sarcastic:  f.Sarcastic,
		Shenanigan: f.Shenanigan,
		Seductive:  f.Seductive,
	}
}

type VoiceRequest struct {
	Audio    string `json:"audio"`
	Language string `json:"language"`
	ModeFlags
}

type VoiceResponse struct {
	Audio        string `json:"audio"`
	ResponseText string `json:"response_text"`
}

type ChatRequest struct {
	Message  string `json:"message"`
	Language string `json:"language"`
	ModeFlags
}

type ChatResponse struct {
	Response string `json:"response"`
}

// Stage names used for spans, metrics and logs.
const (
	StageDecode     = "decode"
	StageTranscode  = "transcode"
	StageTranscribe = "transcribe"
	StagePersona    = "persona"
	StageGenerate   = "generate"
	StageSynthesize = "synthesize"
	StageHistory    = "history_read"
	StageStore      = "history_write"
)

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	defaultTranscoderCommand = "ffmpeg -hide_banner -i pipe:0 -ac 1 -ar 24000 -acodec pcm_s16le -f wav -y pipe:1"
)

type Config struct {
	Port string `yaml:"port"`

	OpenAIKey          string `yaml:"openai_api_key"`
	OpenAIBaseURL      string `yaml:"openai_base_url"`
	TranscriptionModel string `yaml:"transcription_model"`
	ChatModel          string `yaml:"chat_model"`
	TTSModel           string `yaml:"tts_model"`

	GenerationProvider string `yaml:"generation_provider"`
	GeminiKey          string `yaml:"gemini_api_key"`
	GeminiModel        string `yaml:"gemini_model"`

	SupabaseURL string `yaml:"supabase_url"`
	SupabaseKey string `yaml:"supabase_key"`

	TranscoderCommand       string        `yaml:"transcoder_command"`
	TranscodeTimeout        time.Duration `yaml:"transcode_timeout"`
	UpstreamTimeout         time.Duration `yaml:"upstream_timeout"`
	AuthTimeout             time.Duration `yaml:"auth_timeout"`
	MaxConcurrentTranscodes int           `yaml:"max_concurrent_transcodes"`

	LogLevel    string   `yaml:"log_level"`
	LogFormat   string   `yaml:"log_format"`
	CORSOrigins []string `yaml:"cors_origins"`
	Tracing     string   `yaml:"tracing"`
}

// LoadConfig reads the process configuration from the environment. When
// CONFIG_FILE is set, the YAML file is loaded first and any environment
// variable that is set overrides it.
func LoadConfig() Config {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			fmt.Fprintf(os.Stderr, "config: ignoring %s: %v\n", path, err)
		}
	}

	setString(&cfg.Port, "PORT")
	setString(&cfg.OpenAIKey, "OPENAI_API_KEY")
	setString(&cfg.OpenAIBaseURL, "OPENAI_BASE_URL")
	setString(&cfg.TranscriptionModel, "TRANSCRIPTION_MODEL")
	setString(&cfg.ChatModel, "CHAT_MODEL")
	setString(&cfg.TTSModel, "TTS_MODEL")
	setString(&cfg.GenerationProvider, "GENERATION_PROVIDER")
	setString(&cfg.GeminiKey, "GEMINI_API_KEY")
	setString(&cfg.GeminiModel, "GEMINI_MODEL")
	setString(&cfg.SupabaseURL, "SUPABASE_URL")
	setString(&cfg.SupabaseKey, "SUPABASE_KEY")
	setString(&cfg.TranscoderCommand, "TRANSCODER_COMMAND")
	setDuration(&cfg.TranscodeTimeout, "TRANSCODE_TIMEOUT")
	setDuration(&cfg.UpstreamTimeout, "UPSTREAM_TIMEOUT")
	setDuration(&cfg.AuthTimeout, "AUTH_TIMEOUT")
	setInt(&cfg.MaxConcurrentTranscodes, "MAX_CONCURRENT_TRANSCODES")
	setString(&cfg.LogLevel, "LOG_LEVEL")
	setString(&cfg.LogFormat, "LOG_FORMAT")
	setString(&cfg.Tracing, "TRACING")
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = splitList(v)
	}

	cfg.SupabaseURL = strings.TrimRight(cfg.SupabaseURL, "/")
	cfg.OpenAIBaseURL = strings.TrimRight(cfg.OpenAIBaseURL, "/")
	return cfg
}

// Validate reports the first missing setting the server cannot start
// without.
func (c Config) Validate() error {
	switch {
	case c.OpenAIKey == "":
		return fmt.Errorf("OPENAI_API_KEY is required")
	case c.SupabaseURL == "":
		return fmt.Errorf("SUPABASE_URL is required")
	case c.SupabaseKey == "":
		return fmt.Errorf("SUPABASE_KEY is required")
	case c.GenerationProvider != ProviderOpenAI && c.GenerationProvider != ProviderGemini:
		return fmt.Errorf("GENERATION_PROVIDER must be %q or %q", ProviderOpenAI, ProviderGemini)
	case c.GenerationProvider == ProviderGemini && c.GeminiKey == "":
		return fmt.Errorf("GEMINI_API_KEY is required when GENERATION_PROVIDER=gemini")
	case c.MaxConcurrentTranscodes <= 0:
		return fmt.Errorf("MAX_CONCURRENT_TRANSCODES must be positive")
	}
	return nil
}

func defaults() Config {
	return Config{
		Port:                    "8080",
		OpenAIBaseURL:           "https://api.openai.com",
		TranscriptionModel:      "whisper-1",
		ChatModel:               "gpt-4o-mini",
		TTSModel:                "tts-1",
		GenerationProvider:      ProviderOpenAI,
		GeminiModel:             "gemini-2.5-flash",
		TranscoderCommand:       defaultTranscoderCommand,
		TranscodeTimeout:        30 * time.Second,
		UpstreamTimeout:         60 * time.Second,
		AuthTimeout:             10 * time.Second,
		MaxConcurrentTranscodes: 4,
		LogLevel:                "info",
		LogFormat:               "json",
		CORSOrigins:             []string{"*"},
		Tracing:                 "none",
	}
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	if d, err := time.ParseDuration(v); err == nil {
		*dst = d
		return
	}
	// bare integers are seconds
	if n, err := strconv.Atoi(v); err == nil {
		*dst = time.Duration(n) * time.Second
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hearthly-api/config"
	"hearthly-api/internal/audio"
	"hearthly-api/internal/auth"
	"hearthly-api/internal/chat"
	"hearthly-api/internal/conversation"
	"hearthly-api/internal/gemini"
	"hearthly-api/internal/health"
	"hearthly-api/internal/logs"
	"hearthly-api/internal/metrics"
	"hearthly-api/internal/middlewares"
	"hearthly-api/internal/openai"
	"hearthly-api/internal/pipeline"
	"hearthly-api/internal/tracing"
	"hearthly-api/internal/voice"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const serviceName = "hearthly-api"

func main() {
	cfg := config.LoadConfig()

	logger, err := logs.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(cfg.Tracing, serviceName, logger)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.Warn("tracing shutdown", zap.Error(err))
		}
	}()

	orchestrator, verifier, err := wire(ctx, cfg)
	if err != nil {
		return err
	}
	m := orchestrator.Metrics

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middlewares.RequestID(logger),
		middlewares.AccessLog(),
		m.Middleware(),
		cors.New(corsConfig(cfg.CORSOrigins)),
	)

	health.RegisterRoutes(r, serviceName, m.Handler())
	voice.RegisterRoutes(r, orchestrator)
	chat.RegisterRoutes(r, orchestrator, verifier)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			zap.String("addr", srv.Addr),
			zap.String("generation_provider", cfg.GenerationProvider),
			zap.Int("max_concurrent_transcodes", cfg.MaxConcurrentTranscodes),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), cfg.UpstreamTimeout+cfg.TranscodeTimeout)
	defer cancel()
	return srv.Shutdown(sctx)
}

// wire builds the pipeline stages for cfg.
func wire(ctx context.Context, cfg config.Config) (*pipeline.Orchestrator, auth.Verifier, error) {
	transcoder, err := audio.NewExecTranscoder(cfg.TranscoderCommand, cfg.TranscodeTimeout, cfg.MaxConcurrentTranscodes)
	if err != nil {
		return nil, nil, err
	}

	client := openai.NewClient(cfg.OpenAIBaseURL, cfg.OpenAIKey, cfg.UpstreamTimeout)

	var generator pipeline.Generator = &openai.ChatCompleter{Client: client, Model: cfg.ChatModel}
	if cfg.GenerationProvider == config.ProviderGemini {
		generator, err = gemini.NewGenerator(ctx, cfg.GeminiKey, cfg.GeminiModel, float32(openai.Temperature), cfg.UpstreamTimeout)
		if err != nil {
			return nil, nil, err
		}
	}

	verifier, err := auth.NewSupabaseVerifier(cfg.SupabaseURL, cfg.SupabaseKey, cfg.AuthTimeout)
	if err != nil {
		return nil, nil, err
	}

	return &pipeline.Orchestrator{
		Transcoder:     transcoder,
		Transcriber:    &openai.Transcriber{Client: client, Model: cfg.TranscriptionModel},
		Generator:      generator,
		Synthesizer:    &openai.Synthesizer{Client: client, Model: cfg.TTSModel},
		History:        conversation.NewStore(cfg.SupabaseURL, cfg.SupabaseKey, cfg.UpstreamTimeout),
		LogService:     &logs.LogService{},
		Metrics:        metrics.NewMetrics(),
		SpeechDuration: openai.MP3Duration,
	}, verifier, nil
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization", middlewares.RequestIDHeader},
		MaxAge:       12 * time.Hour,
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}

// Package gemini is the Google Gen AI backend for response generation.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hearthly-api/internal/apperror"
	"hearthly-api/internal/conversation"
	"hearthly-api/internal/logs"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const serviceGemini = "gemini"

// genaiGenerateContentHook is swapped in tests.
var genaiGenerateContentHook = func(c *genai.Client, ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return c.Models.GenerateContent(ctx, model, contents, cfg)
}

type Generator struct {
	Client      *genai.Client
	Model       string
	Temperature float32
	Timeout     time.Duration
}

func NewGenerator(ctx context.Context, apiKey, model string, temperature float32, timeout time.Duration) (*Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Generator{Client: client, Model: model, Temperature: temperature, Timeout: timeout}, nil
}

// buildContents maps history and the utterance onto Gemini roles. Assistant
// turns are "model" turns.
func buildContents(history []conversation.Turn, utterance string) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		role := "user"
		if turn.Role == conversation.RoleAssistant {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: turn.Content}},
		})
	}
	contents = append(contents, &genai.Content{
		Role:  "user",
		Parts: []*genai.Part{{Text: utterance}},
	})
	return contents
}

func (g *Generator) Generate(ctx context.Context, instructions string, history []conversation.Turn, utterance string) (string, error) {
	if g.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.Timeout)
		defer cancel()
	}

	temperature := g.Temperature
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instructions}}},
		Temperature:       &temperature,
	}

	resp, err := genaiGenerateContentHook(g.Client, ctx, g.Model, buildContents(history, utterance), cfg)
	if err != nil {
		return "", classify(err)
	}

	var response string
	if resp != nil {
		for _, candidate := range resp.Candidates {
			if candidate == nil || candidate.Content == nil {
				continue
			}
			for _, part := range candidate.Content.Parts {
				if part != nil && strings.TrimSpace(part.Text) != "" {
					response = part.Text
					break
				}
			}
			if response != "" {
				break
			}
		}
	}

	if response == "" {
		return "", apperror.Malformed(serviceGemini, "no response from Gemini")
	}

	logs.FromContext(ctx).Debug("generation complete",
		zap.String("backend", serviceGemini),
		zap.Int("history_turns", len(history)),
		zap.Int("chars", len(response)),
	)
	return response, nil
}

func classify(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apperror.Upstream(serviceGemini, apiErr.Code, apiErr.Message)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apperror.Upstream(serviceGemini, apiErrPtr.Code, apiErrPtr.Message)
	}
	return apperror.Transport(serviceGemini, err)
}

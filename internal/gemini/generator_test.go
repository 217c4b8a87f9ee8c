package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"hearthly-api/internal/apperror"
	"hearthly-api/internal/conversation"

	"google.golang.org/genai"
)

func stubGenerate(t *testing.T, fn func(contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)) {
	t.Helper()
	old := genaiGenerateContentHook
	genaiGenerateContentHook = func(_ *genai.Client, _ context.Context, _ string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		return fn(contents, cfg)
	}
	t.Cleanup(func() { genaiGenerateContentHook = old })
}

func TestGenerator_Success_MapsRolesAndConfig(t *testing.T) {
	stubGenerate(t, func(contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		if cfg.SystemInstruction == nil || cfg.SystemInstruction.Parts[0].Text != "SYSTEM" {
			t.Fatalf("system instruction not set: %#v", cfg.SystemInstruction)
		}
		if cfg.Temperature == nil || *cfg.Temperature != 0.7 {
			t.Fatalf("temperature=%v", cfg.Temperature)
		}
		wantRoles := []string{"user", "model", "user"}
		wantText := []string{"A", "B", "C"}
		if len(contents) != 3 {
			t.Fatalf("contents=%d", len(contents))
		}
		for i := range contents {
			if contents[i].Role != wantRoles[i] || contents[i].Parts[0].Text != wantText[i] {
				t.Fatalf("content[%d]=%s/%q", i, contents[i].Role, contents[i].Parts[0].Text)
			}
		}

		var out genai.GenerateContentResponse
		_ = json.Unmarshal([]byte(`{"candidates":[{"content":{"parts":[{"text":"OK"}]}}]}`), &out)
		return &out, nil
	})

	g := &Generator{Client: &genai.Client{}, Model: "gemini-2.5-flash", Temperature: 0.7}
	history := []conversation.Turn{
		{Role: conversation.RoleUser, Content: "A"},
		{Role: conversation.RoleAssistant, Content: "B"},
	}
	text, err := g.Generate(context.Background(), "SYSTEM", history, "C")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if text != "OK" {
		t.Fatalf("text=%q", text)
	}
}

func TestGenerator_NoCandidates_Malformed(t *testing.T) {
	stubGenerate(t, func(_ []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		var out genai.GenerateContentResponse
		_ = json.Unmarshal([]byte(`{"candidates":[]}`), &out)
		return &out, nil
	})

	g := &Generator{Client: &genai.Client{}, Model: "m"}
	_, err := g.Generate(context.Background(), "S", nil, "U")
	if !apperror.Is(err, apperror.KindMalformedResponse) {
		t.Fatalf("expected malformed response, got %v", err)
	}
}

func TestGenerator_APIError_Upstream(t *testing.T) {
	stubGenerate(t, func(_ []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		return nil, genai.APIError{Code: 503, Message: "overloaded"}
	})

	g := &Generator{Client: &genai.Client{}, Model: "m"}
	_, err := g.Generate(context.Background(), "S", nil, "U")

	var e *apperror.Error
	if !errors.As(err, &e) || e.Kind != apperror.KindUpstream || e.Status != 503 {
		t.Fatalf("expected upstream 503, got %v", err)
	}
}

func TestGenerator_OtherError_Transport(t *testing.T) {
	stubGenerate(t, func(_ []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		return nil, errors.New("gemini down")
	})

	g := &Generator{Client: &genai.Client{}, Model: "m"}
	_, err := g.Generate(context.Background(), "S", nil, "U")
	if !apperror.Is(err, apperror.KindTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hearthly-api/internal/apperror"
	"hearthly-api/internal/auth"
	"hearthly-api/internal/pipeline"

	"github.com/gin-gonic/gin"
)

type mockChatService struct {
	ChatFn func(ctx context.Context, userID string, req pipeline.ChatRequest) (*pipeline.ChatResponse, error)
	calls  int
}

func (m *mockChatService) Chat(ctx context.Context, userID string, req pipeline.ChatRequest) (*pipeline.ChatResponse, error) {
	m.calls++
	if m.ChatFn == nil {
		return nil, apperror.Transport("test", nil)
	}
	return m.ChatFn(ctx, userID, req)
}

type mockVerifier struct {
	VerifyFn func(ctx context.Context, token string) (auth.Identity, error)
}

func (m *mockVerifier) Verify(ctx context.Context, token string) (auth.Identity, error) {
	if m.VerifyFn == nil {
		return auth.Identity{}, apperror.Unauthorized("not implemented")
	}
	return m.VerifyFn(ctx, token)
}

func acceptToken(token, userID string) *mockVerifier {
	return &mockVerifier{VerifyFn: func(_ context.Context, got string) (auth.Identity, error) {
		if got != token {
			return auth.Identity{}, apperror.Unauthorized("bad token")
		}
		return auth.Identity{UserID: userID}, nil
	}}
}

func newRouter(svc ChatServicePort, v auth.Verifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, svc, v)
	return r
}

func postChat(r *gin.Engine, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res := httptest.NewRecorder()
	r.ServeHTTP(res, req)
	return res
}

func errorLabel(t *testing.T, res *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(res.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v body=%s", err, res.Body.String())
	}
	return body["error"]
}

func TestChatController_Chat_Success200(t *testing.T) {
	svc := &mockChatService{ChatFn: func(_ context.Context, userID string, req pipeline.ChatRequest) (*pipeline.ChatResponse, error) {
		if userID != "user-1" {
			t.Errorf("userID=%q", userID)
		}
		if req.Message != "hello" || req.Language != "en" || !req.GenZ || !req.Seductive || req.Sarcastic {
			t.Errorf("unexpected req: %+v", req)
		}
		return &pipeline.ChatResponse{Response: "hey there"}, nil
	}}
	r := newRouter(svc, acceptToken("tok", "user-1"))

	res := postChat(r, "tok", `{"message":"hello","language":"en","genz_mode":true,"sarcastic_mode":false,"shenanigan_mode":false,"seductive_mode":true}`)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", res.Code, res.Body.String())
	}

	var body map[string]string
	_ = json.Unmarshal(res.Body.Bytes(), &body)
	if body["response"] != "hey there" {
		t.Fatalf("unexpected body: %s", res.Body.String())
	}
}

func TestChatController_Chat_NoToken_401_ServiceNotCalled(t *testing.T) {
	svc := &mockChatService{}
	r := newRouter(svc, acceptToken("tok", "user-1"))

	res := postChat(r, "", `{"message":"hello","language":"en"}`)
	if res.Code != http.StatusUnauthorized || errorLabel(t, res) != "unauthorized" {
		t.Fatalf("expected 401 unauthorized, got %d body=%s", res.Code, res.Body.String())
	}
	if svc.calls != 0 {
		t.Fatal("service should not be called")
	}
}

func TestChatController_Chat_BadToken_401(t *testing.T) {
	svc := &mockChatService{}
	r := newRouter(svc, acceptToken("tok", "user-1"))

	res := postChat(r, "other", `{"message":"hello","language":"en"}`)
	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.Code)
	}
	if svc.calls != 0 {
		t.Fatal("service should not be called")
	}
}

func TestChatController_Chat_InvalidBody_400(t *testing.T) {
	svc := &mockChatService{}
	r := newRouter(svc, acceptToken("tok", "user-1"))

	for _, body := range []string{`not json`, `{"message":42,"language":"en"}`, `{"message":"   ","language":"en"}`, `{"language":"en"}`} {
		res := postChat(r, "tok", body)
		if res.Code != http.StatusBadRequest || errorLabel(t, res) != "invalid_request" {
			t.Fatalf("body %q: expected 400 invalid_request, got %d %s", body, res.Code, res.Body.String())
		}
	}
	if svc.calls != 0 {
		t.Fatal("service should not be called")
	}
}

func TestChatController_Chat_InvalidLanguage_400(t *testing.T) {
	svc := &mockChatService{ChatFn: func(context.Context, string, pipeline.ChatRequest) (*pipeline.ChatResponse, error) {
		return nil, apperror.InvalidLanguage("fr")
	}}
	r := newRouter(svc, acceptToken("tok", "user-1"))

	res := postChat(r, "tok", `{"message":"bonjour","language":"fr"}`)
	if res.Code != http.StatusBadRequest || errorLabel(t, res) != "invalid_language" {
		t.Fatalf("expected 400 invalid_language, got %d %s", res.Code, res.Body.String())
	}
}

func TestChatController_Chat_UpstreamFailure_500_NoDetail(t *testing.T) {
	svc := &mockChatService{ChatFn: func(context.Context, string, pipeline.ChatRequest) (*pipeline.ChatResponse, error) {
		return nil, apperror.Upstream("conversation-store", 500, "secret db detail")
	}}
	r := newRouter(svc, acceptToken("tok", "user-1"))

	res := postChat(r, "tok", `{"message":"hi","language":"hi"}`)
	if res.Code != http.StatusInternalServerError || errorLabel(t, res) != "upstream_failed" {
		t.Fatalf("expected 500 upstream_failed, got %d %s", res.Code, res.Body.String())
	}
	if strings.Contains(res.Body.String(), "secret") {
		t.Fatalf("diagnostics leaked: %s", res.Body.String())
	}
}

func TestChatController_Chat_WithoutMiddleware_401(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cc := NewChatController(&mockChatService{})
	r := gin.New()
	r.POST("/chat", cc.Chat)

	res := postChat(r, "", `{"message":"hi","language":"en"}`)
	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.Code)
	}
}

package logs

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogService_Log_WritesStructuredEntry(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	ctx := WithLogger(context.Background(), zap.New(core))

	ls := &LogService{}
	ls.Log(ctx, SystemLog{
		Level:   LevelError,
		Service: "chat",
		Action:  "CHAT",
		Message: "chat failed",
		UserID:  "user-1",
	}, zap.String("kind", "upstream_error"))

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Level != zapcore.ErrorLevel {
		t.Fatalf("level=%s want error", e.Level)
	}
	if e.Message != "chat failed" {
		t.Fatalf("message=%q", e.Message)
	}
	fields := e.ContextMap()
	if fields["service"] != "chat" || fields["action"] != "CHAT" || fields["user_id"] != "user-1" || fields["kind"] != "upstream_error" {
		t.Fatalf("unexpected fields: %#v", fields)
	}
}

func TestLogService_Log_OmitsEmptyUser(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	ctx := WithLogger(context.Background(), zap.New(core))

	(&LogService{}).Log(ctx, SystemLog{Level: LevelInfo, Service: "voice", Action: "PROCESS_AUDIO", Message: "ok"})

	if _, ok := recorded.All()[0].ContextMap()["user_id"]; ok {
		t.Fatal("did not expect user_id field")
	}
}

func TestFromContext_DefaultsToNop(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatal("expected a logger")
	}
}

func TestNew_RejectsBadLevel(t *testing.T) {
	if _, err := New("loud", "json"); err == nil {
		t.Fatal("expected error for unknown level")
	}
	l, err := New("debug", "console")
	if err != nil || l == nil {
		t.Fatalf("New debug/console err=%v", err)
	}
}

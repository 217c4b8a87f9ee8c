package tracing

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

func TestSetup_None(t *testing.T) {
	shutdown, err := Setup(ModeNone, "svc", zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestSetup_UnknownMode(t *testing.T) {
	if _, err := Setup("jaeger", "svc", zap.NewNop()); err == nil {
		t.Fatal("expected error")
	}
}

func TestSetup_Stdout_ExportsStageSpans(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	var buf bytes.Buffer
	shutdown, err := setup(ModeStdout, "hearthly-test", &buf, zap.NewNop())
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	_, span := Start(context.Background(), "transcode")
	End(span, errors.New("exit status 1"))
	_, ok := Start(context.Background(), "generate")
	End(ok, nil)

	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"Name":"transcode"`, `"Name":"generate"`, "exit status 1", "hearthly-test"} {
		if !strings.Contains(out, want) {
			t.Fatalf("export missing %q in %s", want, out)
		}
	}
}

package audio

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"

	"hearthly-api/internal/apperror"
	"hearthly-api/internal/logs"

	"github.com/mattn/go-shellwords"
	"go.uber.org/zap"
)

// Transcoder turns an arbitrary audio container into canonical PCM WAV.
type Transcoder interface {
	Transcode(ctx context.Context, input []byte) ([]byte, error)
}

// ExecTranscoder runs one external conversion process per call. The process
// reads the container on stdin and writes WAV on stdout.
type ExecTranscoder struct {
	cmd     []string
	timeout time.Duration
	slots   chan struct{}
}

var _ Transcoder = (*ExecTranscoder)(nil)

func NewExecTranscoder(command string, timeout time.Duration, maxConcurrent int) (*ExecTranscoder, error) {
	parser := shellwords.NewParser()
	args, err := parser.Parse(command)
	if err != nil {
		return nil, fmt.Errorf("parse transcoder command: %w", err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("transcoder command is empty")
	}
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &ExecTranscoder{
		cmd:     args,
		timeout: timeout,
		slots:   make(chan struct{}, maxConcurrent),
	}, nil
}

func (t *ExecTranscoder) Transcode(ctx context.Context, input []byte) ([]byte, error) {
	log := logs.FromContext(ctx)

	// the deadline covers time queued for a slot as well as the run
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	select {
	case t.slots <- struct{}{}:
		defer func() { <-t.slots }()
	case <-ctx.Done():
		return nil, apperror.Transcode("waiting for a transcoder slot", ctx.Err())
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, t.cmd[0], t.cmd[1:]...)
	cmd.Stdin = bytes.NewReader(input)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// children that inherit the pipes must not hold Run past the deadline
	cmd.WaitDelay = 500 * time.Millisecond

	start := time.Now()
	err := cmd.Run()
	diagnostics := stderr.String()
	log.Debug("transcoder finished",
		zap.String("command", t.cmd[0]),
		zap.Int("input_bytes", len(input)),
		zap.Int("output_bytes", stdout.Len()),
		zap.Duration("elapsed", time.Since(start)),
		zap.String("stderr", diagnostics),
	)

	if err != nil {
		log.Error("transcoder failed", zap.Error(err), zap.String("stderr", diagnostics))
		return nil, apperror.Transcode(diagnostics, err)
	}

	wav := stdout.Bytes()
	if err := CheckFormat(wav, Canonical); err != nil {
		log.Error("transcoder produced unexpected output", zap.Error(err))
		return nil, apperror.Transcode(err.Error(), nil)
	}
	return wav, nil
}

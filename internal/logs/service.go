package logs

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogService writes SystemLog audit events through the request logger.
type LogService struct{}

func (ls *LogService) Log(ctx context.Context, entry SystemLog, fields ...zap.Field) {
	l := FromContext(ctx)

	all := append([]zap.Field{
		zap.String("service", entry.Service),
		zap.String("action", entry.Action),
	}, fields...)
	if entry.UserID != "" {
		all = append(all, zap.String("user_id", entry.UserID))
	}

	if ce := l.Check(levelOf(entry.Level), entry.Message); ce != nil {
		ce.Write(all...)
	}
}

func levelOf(level string) zapcore.Level {
	switch level {
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

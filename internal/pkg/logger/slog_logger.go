package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hillcrest-schools/school-portal/internal/pkg/config"
)

// slogLogger adapts *slog.Logger to Logger
type slogLogger struct {
	logger *slog.Logger
}

func newSlogLogger(w io.Writer, level, format string) *slogLogger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return &slogLogger{logger: slog.New(handler)}
}

func (l *slogLogger) log(level slog.Level, args []interface{}) {
	msg, attrs := splitArgs(args)
	l.logger.Log(context.Background(), level, msg, attrs...)
}

func (l *slogLogger) Debug(args ...interface{}) { l.log(slog.LevelDebug, args) }
func (l *slogLogger) Info(args ...interface{})  { l.log(slog.LevelInfo, args) }
func (l *slogLogger) Warn(args ...interface{})  { l.log(slog.LevelWarn, args) }
func (l *slogLogger) Error(args ...interface{}) { l.log(slog.LevelError, args) }

// Fatal logs at error level and exits.
func (l *slogLogger) Fatal(args ...interface{}) {
	l.log(slog.LevelError, args)
	os.Exit(1)
}

// Panic logs at error level and panics with the message.
func (l *slogLogger) Panic(args ...interface{}) {
	msg, _ := splitArgs(args)
	l.log(slog.LevelError, args)
	panic(msg)
}

// splitArgs returns args[0] as the message and the rest as slog attributes when they
// form string-keyed pairs; otherwise everything is concatenated into the message.
func splitArgs(args []interface{}) (string, []any) {
	if len(args) == 0 {
		return "", nil
	}

	msg, ok := args[0].(string)
	rest := args[1:]
	if !ok || len(rest)%2 != 0 {
		return formatArgs(args...), nil
	}
	for i := 0; i < len(rest); i += 2 {
		if _, isKey := rest[i].(string); !isKey {
			return formatArgs(args...), nil
		}
	}
	return msg, rest
}

func formatArgs(args ...interface{}) string {
	if len(args) == 0 {
		return ""
	}
	return fmt.Sprint(args...)
}

package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/hillcrest-schools/school-portal/internal/pkg/config"
	"github.com/natefinch/lumberjack"
)

var (
	loggerInstance Logger
	loggerErr      error
	loggerOnce     sync.Once
)

var levels = map[string]slog.Level{
	config.LogLevelDebug:    slog.LevelDebug,
	config.LogLevelInfo:     slog.LevelInfo,
	config.LogLevelWarning:  slog.LevelWarn,
	config.LogLevelError:    slog.LevelError,
	config.LogLevelCritical: slog.LevelError,
}

// InitLogger builds the process logger once; later calls return the first result.
func InitLogger(settings *config.LoggerSettings) error {
	loggerOnce.Do(func() {
		loggerInstance, loggerErr = New(settings)
	})
	return loggerErr
}

// GetLogger returns the logger built by InitLogger.
func GetLogger() (Logger, error) {
	if loggerInstance == nil {
		return nil, fmt.Errorf("logger not initialized: call InitLogger first")
	}
	return loggerInstance, nil
}

// New builds a standalone logger from settings. Console output is text unless
// format is json; file output is always JSON and rotated by lumberjack.
func New(settings *config.LoggerSettings) (Logger, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	w, format, err := output(settings)
	if err != nil {
		return nil, err
	}
	return newSlogLogger(w, settings.LogLevel, format), nil
}

func output(c *config.LoggerSettings) (io.Writer, string, error) {
	switch c.LogType {
	case config.LogTypeConsole:
		return os.Stdout, c.Format, nil
	case config.LogTypeFile:
		return &lumberjack.Logger{
			Filename:   c.FilePath,
			MaxSize:    c.MaxSize,
			MaxBackups: c.MaxBackups,
			MaxAge:     c.MaxAge,
			Compress:   true,
		}, config.LogFormatJSON, nil
	default:
		return nil, "", fmt.Errorf("unsupported log type: %s", c.LogType)
	}
}

func parseLevel(level string) slog.Level {
	if l, ok := levels[level]; ok {
		return l
	}
	return slog.LevelInfo
}

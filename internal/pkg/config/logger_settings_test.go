//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rotatingFileLogger() LoggerSettings {
	return LoggerSettings{
		LogLevel:   LogLevelInfo,
		LogType:    LogTypeFile,
		FilePath:   "/var/log/school-portal/api.log",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
}

func TestLoggerSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *LoggerSettings)
		wantErr bool
	}{
		{name: "rotating file logger", mutate: func(s *LoggerSettings) {}},
		{name: "text console logger", mutate: func(s *LoggerSettings) {
			*s = LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeConsole}
		}},
		{name: "json console logger", mutate: func(s *LoggerSettings) {
			*s = LoggerSettings{LogLevel: LogLevelDebug, LogType: LogTypeConsole, Format: LogFormatJSON}
		}},
		{name: "console logger ignores rotation fields", mutate: func(s *LoggerSettings) {
			s.LogType = LogTypeConsole
			s.MaxSize = 0
		}},
		{name: "critical level", mutate: func(s *LoggerSettings) { s.LogLevel = LogLevelCritical }},
		{name: "missing level", mutate: func(s *LoggerSettings) { s.LogLevel = "" }, wantErr: true},
		{name: "unknown level", mutate: func(s *LoggerSettings) { s.LogLevel = "trace" }, wantErr: true},
		{name: "missing type", mutate: func(s *LoggerSettings) { s.LogType = "" }, wantErr: true},
		{name: "unknown type", mutate: func(s *LoggerSettings) { s.LogType = "syslog" }, wantErr: true},
		{name: "unknown console format", mutate: func(s *LoggerSettings) {
			s.LogType = LogTypeConsole
			s.Format = "xml"
		}, wantErr: true},
		{name: "file logger without path", mutate: func(s *LoggerSettings) { s.FilePath = "" }, wantErr: true},
		{name: "file logger max size zero", mutate: func(s *LoggerSettings) { s.MaxSize = 0 }, wantErr: true},
		{name: "file logger max size above 100", mutate: func(s *LoggerSettings) { s.MaxSize = 101 }, wantErr: true},
		{name: "file logger without backups", mutate: func(s *LoggerSettings) { s.MaxBackups = 0 }, wantErr: true},
		{name: "file logger max age above a year", mutate: func(s *LoggerSettings) { s.MaxAge = 366 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := rotatingFileLogger()
			tt.mutate(&settings)

			err := settings.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// Package testutil provides helpers shared by unit and integration tests.
package testutil

import (
	"testing"

	"github.com/hillcrest-schools/school-portal/internal/pkg/config"
	"github.com/hillcrest-schools/school-portal/internal/pkg/logger"
	"github.com/stretchr/testify/require"
)

// SetupTestLogger returns the process logger, initializing it at debug level on first use.
// The logger is a singleton, so the first caller's settings apply to the whole test binary.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	require.NoError(t, logger.InitLogger(&config.LoggerSettings{
		LogLevel: config.LogLevelDebug,
		LogType:  config.LogTypeConsole,
		Format:   config.LogFormatText,
	}))

	log, err := logger.GetLogger()
	require.NoError(t, err)
	return log
}

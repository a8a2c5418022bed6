package config

// Log level constants
const (
	LogLevelInfo     = "info"
	LogLevelDebug    = "debug"
	LogLevelError    = "error"
	LogLevelWarning  = "warning"
	LogLevelCritical = "critical"
)

// Log type constants
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Database type constants
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

// AzureCloudProvider represents Microsoft Azure cloud provider
const AzureCloudProvider = "azure"

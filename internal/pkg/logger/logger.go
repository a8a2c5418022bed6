// Package logger provides the application-wide Logger and its console and file implementations.
//
// Calls follow the slog convention: a message followed by key/value pairs,
//
//	log.Info("ticket created", "ticket_id", t.ID, "event_id", t.EventID)
//
// Arguments that do not form key/value pairs are concatenated into the message instead.
package logger

// Logger defines the logging interface
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}

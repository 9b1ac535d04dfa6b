package core

// Logger interface for renderer progress and metrics reporting.
// Satisfied by *log.Logger.
type Logger interface {
	Printf(format string, args ...interface{})
}

package logger

import (
	"log"
	"os"
)

// Logger is the logging interface injected into services and handlers
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Fatal(msg string, err error, fields ...interface{})
}

// componentLogger implements Logger with basic Go logging, tagged with the
// name of the component that owns it (e.g. "service", "api")
type componentLogger struct {
	infoLogger  *log.Logger
	errorLogger *log.Logger
	warnLogger  *log.Logger
	debugLogger *log.Logger
}

// New creates a logger whose output lines carry the component name
func New(component string) Logger {
	tag := " [" + component + "]: "
	return &componentLogger{
		infoLogger:  log.New(os.Stdout, "INFO"+tag, log.Ldate|log.Ltime),
		errorLogger: log.New(os.Stderr, "ERROR"+tag, log.Ldate|log.Ltime),
		warnLogger:  log.New(os.Stdout, "WARN"+tag, log.Ldate|log.Ltime),
		debugLogger: log.New(os.Stdout, "DEBUG"+tag, log.Ldate|log.Ltime),
	}
}

// Info logs an info message
func (l *componentLogger) Info(msg string, fields ...interface{}) {
	if len(fields) > 0 {
		l.infoLogger.Printf("%s %v", msg, fields)
	} else {
		l.infoLogger.Print(msg)
	}
}

// Error logs an error message
func (l *componentLogger) Error(msg string, err error, fields ...interface{}) {
	if len(fields) > 0 {
		l.errorLogger.Printf("%s: %v %v", msg, err, fields)
	} else {
		l.errorLogger.Printf("%s: %v", msg, err)
	}
}

// Warn logs a warning message
func (l *componentLogger) Warn(msg string, fields ...interface{}) {
	if len(fields) > 0 {
		l.warnLogger.Printf("%s %v", msg, fields)
	} else {
		l.warnLogger.Print(msg)
	}
}

// Debug logs a debug message
func (l *componentLogger) Debug(msg string, fields ...interface{}) {
	if len(fields) > 0 {
		l.debugLogger.Printf("%s %v", msg, fields)
	} else {
		l.debugLogger.Print(msg)
	}
}

// Fatal logs a fatal error and exits
func (l *componentLogger) Fatal(msg string, err error, fields ...interface{}) {
	if len(fields) > 0 {
		l.errorLogger.Fatalf("%s: %v %v", msg, err, fields)
	} else {
		l.errorLogger.Fatalf("%s: %v", msg, err)
	}
}

// nopLogger discards everything. Used in tests.
type nopLogger struct{}

// NewNop returns a logger that discards all output
func NewNop() Logger { return nopLogger{} }

func (nopLogger) Info(string, ...interface{})         {}
func (nopLogger) Error(string, error, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})         {}
func (nopLogger) Debug(string, ...interface{})        {}
func (nopLogger) Fatal(string, error, ...interface{}) {}

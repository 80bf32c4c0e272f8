package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the logging contract used across the application. Every entry
// is tagged with the component that produced it.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// LevelFromEnv resolves the log level from LOG_LEVEL, with MDHTML_DEBUG=1
// forcing debug output.
func LevelFromEnv() zerolog.Level {
	if os.Getenv("MDHTML_DEBUG") == "1" {
		return zerolog.DebugLevel
	}
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

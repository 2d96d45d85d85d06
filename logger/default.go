package logger

import (
	"os"
	"sync"

	"github.com/mertcanaltin/logbus/bus"
	"github.com/mertcanaltin/logbus/consumer"
	"github.com/mertcanaltin/logbus/core"
)

var (
	defaultOnce   sync.Once
	defaultLogger *Logger
)

// Default returns the package-level logger, created on first use:
// info threshold, publishing on bus.Default(), with a JSON consumer
// on standard output attached. Simple programs can log without setup:
//
//	logger.Info("ready", core.Fields{"port": 8080})
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultLogger, _ = New(Options{})
		jc, _ := consumer.NewJSON(consumer.Options{})
		jc.Attach(bus.Default())
	})
	return defaultLogger
}

// FromEnv builds a logger whose threshold comes from the LOGBUS_LEVEL
// environment variable; unset means "info".
func FromEnv() (*Logger, error) {
	return New(Options{Level: os.Getenv("LOGBUS_LEVEL")})
}

// Trace logs at trace level on the default logger.
func Trace(input any, fields ...core.Fields) { Default().Trace(input, fields...) }

// Debug logs at debug level on the default logger.
func Debug(input any, fields ...core.Fields) { Default().Debug(input, fields...) }

// Info logs at info level on the default logger.
func Info(input any, fields ...core.Fields) { Default().Info(input, fields...) }

// Warn logs at warn level on the default logger.
func Warn(input any, fields ...core.Fields) { Default().Warn(input, fields...) }

// Error logs at error level on the default logger.
func Error(input any, fields ...core.Fields) { Default().Error(input, fields...) }

// Fatal logs at fatal level on the default logger.
func Fatal(input any, fields ...core.Fields) { Default().Fatal(input, fields...) }

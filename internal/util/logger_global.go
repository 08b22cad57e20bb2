package util

import (
	"os"
	"sync"
)

var (
	globalLogger LoggerInterface
	loggerMu     sync.RWMutex
)

// InitLogger initializes the global logger. When logFile is empty or cannot
// be opened, logs go to stderr only when debugToConsole is set.
func InitLogger(logLevel, logFile string, debugToConsole bool) {
	logger := NewLogger(logLevel)

	if debugToConsole {
		logger.AddOutput(NewConsoleOutput(os.Stderr, FormatText))
	}
	if logFile != "" {
		if fileOutput, err := NewFileOutput(logFile, FormatText); err == nil {
			logger.AddOutput(fileOutput)
		} else if !debugToConsole {
			logger.AddOutput(NewConsoleOutput(os.Stderr, FormatText))
		}
	}

	SetLogger(logger)
}

// SetLogger replaces the global logger. Tests install capturing loggers
// through this.
func SetLogger(logger LoggerInterface) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	globalLogger = logger
}

func activeLogger() LoggerInterface {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return globalLogger
}

// Convenience helpers over the global logger; all are no-ops before InitLogger.

func LogInfo(msg string) {
	if l := activeLogger(); l != nil {
		l.Info(msg)
	}
}

func LogInfof(format string, args ...interface{}) {
	if l := activeLogger(); l != nil {
		l.Infof(format, args...)
	}
}

func LogDebug(msg string) {
	if l := activeLogger(); l != nil {
		l.Debug(msg)
	}
}

func LogDebugf(format string, args ...interface{}) {
	if l := activeLogger(); l != nil {
		l.Debugf(format, args...)
	}
}

func LogWarn(msg string) {
	if l := activeLogger(); l != nil {
		l.Warn(msg)
	}
}

func LogWarnf(format string, args ...interface{}) {
	if l := activeLogger(); l != nil {
		l.Warnf(format, args...)
	}
}

func LogError(msg string) {
	if l := activeLogger(); l != nil {
		l.Error(msg)
	}
}

func LogErrorf(format string, args ...interface{}) {
	if l := activeLogger(); l != nil {
		l.Errorf(format, args...)
	}
}

package logging

import (
	"os"
	"sync"
)

var (
	instance  *Logger
	once      sync.Once
	mu        sync.RWMutex
	logConfig *Config
)

// Configure sets the logging configuration.
// This should be called before any logger usage.
func Configure(config *Config) {
	mu.Lock()
	defer mu.Unlock()
	logConfig = config
}

// SetLogger installs l as the global logger. Tests use it to capture output.
func SetLogger(l *Logger) {
	once.Do(func() {})
	mu.Lock()
	defer mu.Unlock()
	instance = l
}

// GetLogger returns the singleton logger instance.
// Without a prior Configure it falls back to an info-level stdout logger.
func GetLogger() *Logger {
	once.Do(func() {
		mu.Lock()
		defer mu.Unlock()

		if logConfig == nil {
			instance = NewWriterLogger(os.Stdout, LevelInfo)
			return
		}

		var err error
		instance, err = NewLogger(logConfig)
		if err != nil {
			panic("failed to initialize logger: " + err.Error())
		}
	})

	mu.RLock()
	defer mu.RUnlock()
	return instance
}

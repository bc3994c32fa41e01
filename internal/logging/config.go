package logging

import (
	"errors"
	"fmt"
	"strings"
)

// Config describes where log lines go and how the rotated file is kept
type Config struct {
	Level       string `json:"level"`
	File        string `json:"file"`     // empty writes to stdout only
	MaxSize     int    `json:"max_size"` // MB per file before rotation
	MaxBackups  int    `json:"max_backups"`
	MaxAge      int    `json:"max_age"` // days
	LogRequests bool   `json:"log_requests"`
}

func (l *Config) Validate() error {
	if _, ok := levelRank[strings.ToLower(l.Level)]; !ok {
		return fmt.Errorf("invalid log level: %q", l.Level)
	}

	var errs []error
	if l.File != "" && l.MaxSize <= 0 {
		errs = append(errs, errors.New("max_size must be positive when logging to a file"))
	}
	if l.MaxBackups < 0 {
		errs = append(errs, errors.New("max_backups must be non-negative"))
	}
	if l.MaxAge < 0 {
		errs = append(errs, errors.New("max_age must be non-negative"))
	}
	return errors.Join(errs...)
}

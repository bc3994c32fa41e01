package logging

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf, LevelWarn)

	l.Debug("debug %d", 1)
	l.Info("info %d", 2)
	l.Warn("warn %d", 3)
	l.Error("error %d", 4)

	out := buf.String()
	assert.NotContains(t, out, "debug 1")
	assert.NotContains(t, out, "info 2")
	assert.Contains(t, out, "[WARN]")
	assert.Contains(t, out, "warn 3")
	assert.Contains(t, out, "error 4")
}

func TestRequestLinesOnlyWhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf, LevelInfo)

	l.LogHTTPRequest("GET", "/contact", "127.0.0.1", 200, 512, "1ms")
	assert.Empty(t, buf.String())

	l.SetLogRequests(true)
	l.LogHTTPRequest("GET", "/contact", "127.0.0.1", 200, 512, "1ms")
	assert.Contains(t, buf.String(), "/contact")
	assert.Contains(t, buf.String(), "512 bytes")
}

func TestNewLoggerWritesFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "site.log")
	l, err := NewLogger(&Config{Level: "info", File: file, MaxSize: 1, MaxBackups: 1, MaxAge: 1})
	require.NoError(t, err)
	l.Info("hello")
	require.NoError(t, l.Close())
	assert.FileExists(t, file)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, (&Config{Level: "debug"}).Validate())
	assert.Error(t, (&Config{Level: "verbose"}).Validate())
	assert.Error(t, (&Config{Level: "info", File: "x.log", MaxSize: 0}).Validate())
	assert.Error(t, (&Config{Level: "info", MaxBackups: -1}).Validate())
}

func TestWrapError(t *testing.T) {
	assert.Nil(t, WrapError(nil, "ctx"))
	err := WrapError(ErrInvalidConfig, "loading")
	assert.EqualError(t, err, "loading: invalid configuration")
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLogger(t *testing.T) {
	logger := GetLogger("resolve")
	// The component field is attached lazily; just make sure the logger is usable.
	logger.Debug().Msg("test message")
	assert.NotNil(t, logger)
}

func TestGetLogFilePath(t *testing.T) {
	path := getLogFilePath()
	assert.Contains(t, path, "pakt")
	assert.Contains(t, path, "pakt.log")
}

func TestLogOperationStart(t *testing.T) {
	logger := GetLogger("test")
	done := LogOperationStart(logger, "resolve-pipeline")
	assert.NotNil(t, done)
	done()
}

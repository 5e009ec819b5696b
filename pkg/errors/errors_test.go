package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrNoMatch, "no pattern matched")
	assert.Equal(t, ErrNoMatch, err.Code)
	assert.Equal(t, "[NO_MATCH] no pattern matched", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(ErrMissingStage, "stage %q has no entries", "resolvers")
	assert.Equal(t, ErrMissingStage, err.Code)
	assert.Contains(t, err.Error(), `stage "resolvers" has no entries`)
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("file does not exist")
	err := Wrap(inner, ErrConfigLoad, "could not read config")
	require.NotNil(t, err)
	assert.Equal(t, inner, stderrors.Unwrap(err))
	assert.Contains(t, err.Error(), "file does not exist")

	assert.Nil(t, Wrap(nil, ErrConfigLoad, "ignored"))
}

func TestIs(t *testing.T) {
	err := Newf(ErrMalformedPipeline, "pipeline for %q has multiple rest markers", "*.js")
	assert.True(t, stderrors.Is(err, New(ErrMalformedPipeline, "")))
	assert.False(t, stderrors.Is(err, New(ErrNoMatch, "")))
}

func TestIsErrorCode(t *testing.T) {
	err := Wrapf(fmt.Errorf("boom"), ErrPluginLoad, "loading %q", "ts-transformer")
	assert.True(t, IsErrorCode(err, ErrPluginLoad))
	assert.False(t, IsErrorCode(err, ErrPluginNotFound))
	assert.False(t, IsErrorCode(fmt.Errorf("plain"), ErrPluginLoad))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrNoMatch, GetErrorCode(New(ErrNoMatch, "x")))
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrNoMatch, "no packager").WithDetail("path", "src/app.ts")
	assert.Equal(t, "src/app.ts", err.Details["path"])
}

// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/ansiprint/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "no_buffer_error",
			code:    errors.ErrNoBuffer,
			message: "renderer has no scratch buffer",
			wantStr: "[NO_BUFFER] renderer has no scratch buffer",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "width must be positive",
			wantStr: "[INVALID_INPUT] width must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrUnknownColor, "unknown color %q", "chartreuse")
	assert.Equal(t, `unknown color "chartreuse"`, err.Message)
	assert.Equal(t, errors.ErrUnknownColor, err.Code)
}

func TestWrap(t *testing.T) {
	t.Run("wraps_underlying_error", func(t *testing.T) {
		base := stderrors.New("permission denied")
		err := errors.Wrap(base, errors.ErrConfigLoad, "failed to read config")

		require.NotNil(t, err)
		assert.Equal(t, "[CONFIG_LOAD] failed to read config: permission denied", err.Error())
		assert.ErrorIs(t, err, base)
	})

	t.Run("nil_error_stays_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "ignored"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "ignored %d", 1))
	})
}

func TestIsMatchesByCode(t *testing.T) {
	err := errors.Wrapf(stderrors.New("boom"), errors.ErrNoFormat, "format %d", 3)
	assert.True(t, stderrors.Is(err, errors.New(errors.ErrNoFormat, "")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrNoBuffer, "")))
}

func TestCodeHelpers(t *testing.T) {
	err := errors.New(errors.ErrUnknownTrack, "bad track").WithDetail("track", "zigzag")

	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownTrack))
	assert.False(t, errors.IsErrorCode(err, errors.ErrUnknownColor))
	assert.Equal(t, errors.ErrUnknownTrack, errors.GetErrorCode(err))
	assert.Equal(t, "zigzag", errors.GetErrorDetails(err)["track"])

	plain := stderrors.New("plain")
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(plain))
	assert.Nil(t, errors.GetErrorDetails(plain))
}

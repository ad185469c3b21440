package sgerrors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stencilgraph/stencilgraph/pkg/sgerrors"
)

func TestNewFormatsMessage(t *testing.T) {
	err := sgerrors.New(sgerrors.ErrCodeInvalidStencil, "crossing_length must be in (0, 1), got %v", 1.5)
	require.Equal(t, "INVALID_STENCIL: crossing_length must be in (0, 1), got 1.5", err.Error())
}

func TestWrapIncludesCause(t *testing.T) {
	cause := errors.New("boom")
	err := sgerrors.Wrap(sgerrors.ErrCodeConfig, cause, "read config config.toml")
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "boom")
}

func TestIsMatchesCode(t *testing.T) {
	err := sgerrors.New(sgerrors.ErrCodeInvalidText, "text has empty content")
	require.True(t, sgerrors.Is(err, sgerrors.ErrCodeInvalidText))
	require.False(t, sgerrors.Is(err, sgerrors.ErrCodeConfig))
	require.False(t, sgerrors.Is(errors.New("plain"), sgerrors.ErrCodeInvalidText))
}

func TestGetCodeReturnsEmptyForPlainError(t *testing.T) {
	require.Equal(t, sgerrors.Code(""), sgerrors.GetCode(errors.New("plain")))
}

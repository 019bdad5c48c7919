package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	err := E(CodeUnavailable, "aladhan.GetJSON", "upstream down", nil)
	require.Equal(t, "aladhan.GetJSON: UNAVAILABLE: upstream down", err.Error())

	bare := E(CodeInvalidArgument, "", "school must be 0 or 1", nil)
	require.Equal(t, "INVALID_ARGUMENT: school must be 0 or 1", bare.Error())
}

func TestErrorMessageFallsBackToCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := E(CodeUnavailable, "", "", cause)
	require.Contains(t, err.Error(), "connection refused")
	require.ErrorIs(t, err, cause)
}

func TestWrapKeepsExistingCode(t *testing.T) {
	inner := Invalidf("date", "is required and must be non-empty")
	wrapped := Wrap(CodeUnavailable, "client.Get", inner)
	require.Equal(t, CodeInvalidArgument, wrapped.Code)
}

func TestWrapNil(t *testing.T) {
	require.Nil(t, Wrap(CodeInternal, "op", nil))
}

func TestCodeFrom(t *testing.T) {
	code, ok := CodeFrom(Invalidf("school", "must be 0 or 1"))
	require.True(t, ok)
	require.Equal(t, CodeInvalidArgument, code)

	_, ok = CodeFrom(errors.New("plain"))
	require.False(t, ok)

	_, ok = CodeFrom(nil)
	require.False(t, ok)
}

func TestIsInvalidArgument(t *testing.T) {
	require.True(t, IsInvalidArgument(Invalidf("city", "is required")))
	require.False(t, IsInvalidArgument(E(CodeUnavailable, "", "down", nil)))
	require.False(t, IsInvalidArgument(nil))
}

package engerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigurationIsDetectedByKind(t *testing.T) {
	err := Configuration("missing dictionary path")
	require.True(t, IsConfiguration(err))
	require.False(t, IsInput(err))
	require.Contains(t, err.Error(), "configuration")
}

func TestInputfWrapsCause(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := Inputf(cause, "parsing graph JSON")

	require.True(t, IsInput(err))
	require.False(t, IsConfiguration(err))
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "parsing graph JSON")
	require.Contains(t, err.Error(), cause.Error())
}

func TestIsConfigurationFalseForPlainError(t *testing.T) {
	require.False(t, IsConfiguration(errors.New("plain")))
	require.False(t, IsInput(errors.New("plain")))
}

func TestIsConfigurationFalseForNil(t *testing.T) {
	require.False(t, IsConfiguration(nil))
	require.False(t, IsInput(nil))
}

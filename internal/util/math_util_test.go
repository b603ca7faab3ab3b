package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTo(t *testing.T) {
	require.Equal(t, 1.2346, RoundTo(1.23456, 4))
	require.Equal(t, 1.23, RoundTo(1.234, 2))
	require.Equal(t, -0.67, RoundTo(-0.665, 2))
	require.Equal(t, 2.0, RoundTo(1.9999999999999998, 4))
	require.Equal(t, 0.0, RoundTo(0, 3))
}

package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 3, 15, 8, 5, 0, 0, time.UTC))
	require.Equal(t, "08:05", ts.String())
	require.False(t, ts.IsZero())
	require.NoError(t, ts.Validate())
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("23:59")
	require.NoError(t, err)
	require.Equal(t, TimeString("23:59"), ts)

	_, err = NewTimeStringFromString("24:00")
	require.Error(t, err)
	_, err = NewTimeStringFromString("8am")
	require.Error(t, err)
}

func TestZeroTimeString(t *testing.T) {
	var ts TimeString
	require.True(t, ts.IsZero())
	require.Error(t, ts.Validate())
}

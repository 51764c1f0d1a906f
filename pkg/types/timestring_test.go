package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	for _, bad := range []string{"", "9:30:00", "25:00", "10:75", "abc"} {
		_, err := NewTimeStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat, "input %q", bad)
	}
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	ts, err := NewTimeStringFromMinutes(570)
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	ts, err = NewTimeStringFromMinutes(0)
	require.NoError(t, err)
	assert.Equal(t, "00:00", ts.String())

	_, err = NewTimeStringFromMinutes(-1)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = NewTimeStringFromMinutes(24 * 60)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestMinutesAndComparisons(t *testing.T) {
	morning := TimeString("09:00")
	noon := TimeString("12:00")

	assert.Equal(t, 540, morning.Minutes())
	assert.Equal(t, 720, noon.Minutes())

	assert.True(t, morning.IsBefore(noon))
	assert.False(t, noon.IsBefore(morning))
	assert.True(t, noon.IsAfter(morning))
	assert.False(t, morning.IsBefore(morning))
}

func TestAddMinutes(t *testing.T) {
	ts := TimeString("10:15")

	shifted, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, "11:45", shifted.String())

	_, err = TimeString("bogus").AddMinutes(10)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestScan(t *testing.T) {
	var ts TimeString

	// Postgres TIME отдаёт "HH:MM:SS"
	require.NoError(t, ts.Scan("14:30:00"))
	assert.Equal(t, "14:30", ts.String())

	require.NoError(t, ts.Scan([]byte("08:05:59")))
	assert.Equal(t, "08:05", ts.String())

	require.NoError(t, ts.Scan(time.Date(2026, 9, 15, 16, 45, 0, 0, time.UTC)))
	assert.Equal(t, "16:45", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(12345))
}

func TestValue(t *testing.T) {
	v, err := TimeString("09:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "09:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("nonsense").Value()
	assert.Error(t, err)
}

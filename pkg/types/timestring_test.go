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

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("9am")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	ts, err := NewTimeStringFromMinutes(9*60 + 15)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:15"), ts)

	_, err = NewTimeStringFromMinutes(24 * 60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)

	_, err = NewTimeStringFromMinutes(-1)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 3, 10, 14, 45, 59, 0, time.UTC)
	assert.Equal(t, TimeString("14:45"), NewTimeString(moment))
}

func TestTimeString_Minutes(t *testing.T) {
	minutes, err := TimeString("17:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 17*60, minutes)

	_, err = TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	result, err := TimeString("09:00").AddMinutes(3*60 + 30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("12:30"), result)

	// Выход за пределы суток
	_, err = TimeString("23:00").AddMinutes(120)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:15"))
	assert.False(t, TimeString("09:15").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))

	assert.True(t, TimeString("18:00").IsAfter("17:45"))
	assert.False(t, TimeString("17:45").IsAfter("18:00"))

	// Некорректные значения считаются "не раньше" и "не позже"
	assert.False(t, TimeString("bad").IsBefore("09:00"))
	assert.False(t, TimeString("bad").IsAfter("09:00"))
}

func TestTimeString_IsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("09:00").IsZero())
}

package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("09:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 9*60+30, m)

	m, err = TimeString("00:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 0, m)

	m, err = TimeString("23:59").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 23*60+59, m)
}

func TestTimeString_Minutes_Invalid(t *testing.T) {
	for _, s := range []string{"", "9:30", "09-30", "24:00", "09:60", "ab:cd", "09:300"} {
		_, err := TimeString(s).Minutes()
		assert.Error(t, err, "value %q", s)
	}
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	ts, err := NewTimeStringFromMinutes(9*60 + 5)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:05"), ts)

	_, err = NewTimeStringFromMinutes(-1)
	assert.Error(t, err)

	_, err = NewTimeStringFromMinutes(24 * 60)
	assert.Error(t, err)
}

func TestTimeString_AddMinutes(t *testing.T) {
	end, err := TimeString("17:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("18:00"), end)

	_, err = TimeString("23:45").AddMinutes(30)
	assert.Error(t, err)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.False(t, TimeString("09:30").IsBefore("09:30"))
	assert.True(t, TimeString("10:00").IsAfter("09:30"))
	assert.False(t, TimeString("09:30").IsAfter("09:30"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:30:00"))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan([]byte("11:00")))
	assert.Equal(t, TimeString("11:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 1, 1, 14, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("14:15"), ts)

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("12:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "12:00", v)

	_, err = TimeString("bogus").Value()
	assert.Error(t, err)
}

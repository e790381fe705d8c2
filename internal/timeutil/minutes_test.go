package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	cases := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"05:30", 330, false},
		{"5:30", 330, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"", 0, true},
		{"noon", 0, true},
		{"12:3", 0, true},
	}
	for _, c := range cases {
		got, err := ToMinutes(c.input)
		if c.wantErr {
			assert.Error(t, err, "input %q", c.input)
			var pe *ParseError
			assert.ErrorAs(t, err, &pe, "input %q", c.input)
			continue
		}
		require.NoError(t, err, "input %q", c.input)
		assert.Equal(t, c.want, got, "input %q", c.input)
	}
}

func TestWellFormed(t *testing.T) {
	assert.True(t, WellFormed("06:45"))
	assert.True(t, WellFormed("00:00"))
	assert.False(t, WellFormed("6:45"), "single-digit hour is not strict")
	assert.False(t, WellFormed("25:00"))
	assert.False(t, WellFormed(""))
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "05:30", FormatMinutes(330))
	assert.Equal(t, "00:10", FormatMinutes(1450), "wraps past midnight")
	assert.Equal(t, "23:50", FormatMinutes(-10), "negative wraps backward")
}

func TestMinuteOfDay(t *testing.T) {
	at := time.Date(2025, 3, 15, 18, 47, 30, 0, time.UTC)
	assert.Equal(t, 18*60+47, MinuteOfDay(at))
}

func TestInWindowOvernight(t *testing.T) {
	// Isha-style window: 21:00 through 05:00 the next morning.
	start, end := 21*60, 5*60

	cases := []struct {
		now  string
		want bool
	}{
		{"23:30", true},
		{"02:00", true},
		{"21:00", true},
		{"05:00", false}, // exclusive end
		{"10:00", false},
		{"20:59", false},
	}
	for _, c := range cases {
		now, err := ToMinutes(c.now)
		require.NoError(t, err)
		assert.Equal(t, c.want, InWindow(now, start, end), "now %s", c.now)
	}
}

func TestInWindowSameDay(t *testing.T) {
	start, end := 12*60, 15*60
	assert.True(t, InWindow(13*60, start, end))
	assert.True(t, InWindow(start, start, end))
	assert.False(t, InWindow(end, start, end))
	assert.False(t, InWindow(11*60, start, end))
}

func TestInWindowInclusive(t *testing.T) {
	// Dua-style window: both ends count.
	start, end := 19*60+31, 19*60+35
	assert.True(t, InWindowInclusive(start, start, end))
	assert.True(t, InWindowInclusive(end, start, end))
	assert.False(t, InWindowInclusive(end+1, start, end))

	// and it still honours the midnight wrap
	assert.True(t, InWindowInclusive(1, 23*60+58, 2))
}

package timesheet

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundDurationUp(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "one second rounds to a full quarter hour",
			input:    "00:00:01",
			expected: "00:15:00",
		},
		{
			name:     "exact hour is unchanged",
			input:    "01:00:00",
			expected: "01:00:00",
		},
		{
			name:     "exact quarter boundary is unchanged",
			input:    "02:45:00",
			expected: "02:45:00",
		},
		{
			name:     "just past a boundary rounds up",
			input:    "00:16:00",
			expected: "00:30:00",
		},
		{
			name:     "seconds push past the boundary",
			input:    "00:15:01",
			expected: "00:30:00",
		},
		{
			name:     "two component form",
			input:    "01:05",
			expected: "01:15:00",
		},
		{
			name:     "single digit hour",
			input:    "0:05:00",
			expected: "00:15:00",
		},
		{
			name:     "minutes roll into the next hour",
			input:    "01:50:00",
			expected: "02:00:00",
		},
		{
			name:     "hours past two digits grow naturally",
			input:    "123:01:00",
			expected: "123:15:00",
		},
		{
			name:     "zero stays zero",
			input:    "00:00:00",
			expected: "00:00:00",
		},
		{
			name:     "empty value passes through",
			input:    "",
			expected: "",
		},
		{
			name:     "single component passes through",
			input:    "90",
			expected: "90",
		},
		{
			name:     "four components pass through",
			input:    "1:2:3:4",
			expected: "1:2:3:4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := RoundDurationUp(tt.input, DefaultRoundIncrement)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestRoundDurationUpMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "non numeric minutes",
			input: "01:xx",
		},
		{
			name:  "non numeric seconds",
			input: "01:00:abc",
		},
		{
			name:  "decimal minutes",
			input: "01:30.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RoundDurationUp(tt.input, DefaultRoundIncrement)
			require.Error(t, err)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.input, parseErr.Value)
		})
	}
}

// Rounding never moves a duration down, and never by a full increment or
// more.
func TestRoundDurationUpBounds(t *testing.T) {
	for minutes := 0; minutes < 180; minutes += 7 {
		for _, seconds := range []int{0, 1, 30, 59} {
			input := fmt.Sprintf("%02d:%02d:%02d", minutes/60, minutes%60, seconds)
			t.Run(input, func(t *testing.T) {
				result, err := RoundDurationUp(input, DefaultRoundIncrement)
				require.NoError(t, err)

				rounded, err := DurationToDecimalHours(result)
				require.NoError(t, err)
				roundedMinutes := rounded * 60
				originalMinutes := float64(minutes) + float64(seconds)/60

				assert.GreaterOrEqual(t, roundedMinutes, originalMinutes)
				assert.Less(t, roundedMinutes-originalMinutes, float64(DefaultRoundIncrement))
				assert.Zero(t, int(roundedMinutes)%DefaultRoundIncrement)
			})
		}
	}
}

func TestDurationToDecimalHours(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{
			name:     "seven and a half hours",
			input:    "07:30:00",
			expected: 7.5,
		},
		{
			name:     "empty value is zero",
			input:    "",
			expected: 0,
		},
		{
			name:     "quarter hour",
			input:    "00:15:00",
			expected: 0.25,
		},
		{
			name:     "seconds are ignored",
			input:    "01:00:59",
			expected: 1.0,
		},
		{
			name:     "two component form",
			input:    "02:45",
			expected: 2.75,
		},
		{
			name:     "single component is zero",
			input:    "90",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := DurationToDecimalHours(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, result, 1e-9)
		})
	}
}

func TestDurationToDecimalHoursMalformed(t *testing.T) {
	_, err := DurationToDecimalHours("xx:30")
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestDecimalHoursToDuration(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{
			name:     "seven and a half hours",
			input:    7.5,
			expected: "07:30:00",
		},
		{
			name:     "zero",
			input:    0,
			expected: "00:00:00",
		},
		{
			name:     "quarter hour",
			input:    0.25,
			expected: "00:15:00",
		},
		{
			name:     "three digit hour total",
			input:    101.75,
			expected: "101:45:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DecimalHoursToDuration(tt.input))
		})
	}
}

// Canonical zero-second durations survive the hours conversion round trip.
func TestDurationRoundTrip(t *testing.T) {
	for _, input := range []string{"00:15:00", "01:30:00", "07:45:00", "12:00:00"} {
		t.Run(input, func(t *testing.T) {
			hours, err := DurationToDecimalHours(input)
			require.NoError(t, err)
			assert.Equal(t, input, DecimalHoursToDuration(hours))
		})
	}
}

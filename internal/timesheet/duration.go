package timesheet

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultRoundIncrement is the rounding granularity applied to raw durations,
// in minutes.
const DefaultRoundIncrement = 15

// ParseError reports a duration value whose numeric components could not be
// parsed. It aborts the whole run; there is no per-row recovery.
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed duration %q: %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RoundDurationUp parses a duration in HH:MM or HH:MM:SS form and rounds it
// up to the next multiple of increment minutes, re-rendered as HH:MM:00.
// A value already on the boundary is unchanged. Empty input and strings with
// an unexpected number of components pass through untouched; only a
// non-numeric component is an error.
func RoundDurationUp(value string, increment int) (string, error) {
	if value == "" {
		return value, nil
	}

	parts := strings.Split(value, ":")

	var hours, minutes, seconds int
	var err error
	switch len(parts) {
	case 2:
		hours, minutes, err = parseComponents(value, parts[0], parts[1])
	case 3:
		hours, minutes, err = parseComponents(value, parts[0], parts[1])
		if err == nil {
			seconds, err = parseComponent(value, parts[2])
		}
	default:
		return value, nil
	}
	if err != nil {
		return "", err
	}

	totalMinutes := float64(hours*60+minutes) + float64(seconds)/60
	rounded := int(math.Ceil(totalMinutes/float64(increment))) * increment

	return fmt.Sprintf("%02d:%02d:00", rounded/60, rounded%60), nil
}

// DurationToDecimalHours converts a canonical duration string to decimal
// hours. Only the hour and minute components participate; seconds are dropped
// (the rounding stage zeroes them before this conversion runs). Empty input
// and strings with fewer than two components yield 0.
func DurationToDecimalHours(value string) (float64, error) {
	if value == "" {
		return 0, nil
	}

	parts := strings.Split(value, ":")
	if len(parts) < 2 {
		return 0, nil
	}

	hours, minutes, err := parseComponents(value, parts[0], parts[1])
	if err != nil {
		return 0, err
	}

	return float64(hours) + float64(minutes)/60, nil
}

// DecimalHoursToDuration renders decimal hours as HH:MM:00. Total minutes are
// truncated, not rounded; hours and minutes are zero-padded to at least two
// digits and hour totals past 99 grow naturally.
func DecimalHoursToDuration(hours float64) string {
	totalMinutes := int(hours * 60)
	return fmt.Sprintf("%02d:%02d:00", totalMinutes/60, totalMinutes%60)
}

func parseComponents(value, hourPart, minutePart string) (int, int, error) {
	hours, err := parseComponent(value, hourPart)
	if err != nil {
		return 0, 0, err
	}
	minutes, err := parseComponent(value, minutePart)
	if err != nil {
		return 0, 0, err
	}
	return hours, minutes, nil
}

func parseComponent(value, part string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(part))
	if err != nil {
		return 0, &ParseError{Value: value, Err: err}
	}
	return n, nil
}

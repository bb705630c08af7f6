// Package timeutil converts clock times to minute offsets and formats
// durations. Malformed input always fails loudly: a bad time must never leak
// into the aggregates as a zero.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/Hojgaetan/GDA/pkg/errors"
)

// H:MM or HH:MM, hour 0-23, minute 0-59
var clockTimePattern = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)

const minutesPerDay = 24 * 60

// Options control duration computation
type Options struct {
	// AllowOverMidnight wraps end times that fall before the start across
	// midnight instead of failing.
	AllowOverMidnight bool
}

// ParseClockTime converts "HH:MM" (or "H:MM") to minutes since midnight.
func ParseClockTime(value string) (int, error) {
	m := clockTimePattern.FindStringSubmatch(value)
	if m == nil {
		return 0, errors.InvalidTimeFormat(value)
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return hours*60 + minutes, nil
}

// DurationMinutes returns the number of minutes between two clock times.
// When the end falls before the start it fails with an inverted-range error
// unless AllowOverMidnight is set, in which case the window wraps across
// midnight. The result is always >= 0.
func DurationMinutes(start, end string, opts ...Options) (int, error) {
	s, err := ParseClockTime(start)
	if err != nil {
		return 0, err
	}
	e, err := ParseClockTime(end)
	if err != nil {
		return 0, err
	}

	if e < s {
		if len(opts) > 0 && opts[0].AllowOverMidnight {
			return (e + minutesPerDay) - s, nil
		}
		return 0, errors.InvertedTimeRange()
	}
	return e - s, nil
}

// FormatDuration renders a minute count as "{hours}h{minutes:02}", e.g.
// 65 -> "1h05". It is a display formatter and never fails: negative input
// renders as the zero duration.
func FormatDuration(totalMinutes int) string {
	if totalMinutes < 0 {
		return "0h00"
	}
	return fmt.Sprintf("%dh%02d", totalMinutes/60, totalMinutes%60)
}

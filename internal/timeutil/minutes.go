package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay is the wraparound modulus for minute-of-day values.
const MinutesPerDay = 24 * 60

var (
	hhmmPattern   = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
	strictPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// ParseError reports a malformed "HH:MM" string. Empty input is not a
// ParseError; callers treat it as absent and skip the window entirely.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed time %q, want HH:MM", e.Input)
}

// ToMinutes converts "HH:MM" to a minute-of-day in [0, 1440).
func ToMinutes(hhmm string) (int, error) {
	if !hhmmPattern.MatchString(hhmm) {
		return 0, &ParseError{Input: hhmm}
	}
	parts := strings.SplitN(hhmm, ":", 2)
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	if h > 23 || m > 59 {
		return 0, &ParseError{Input: hhmm}
	}
	return h*60 + m, nil
}

// WellFormed reports whether s matches the strict two-digit HH:MM shape
// used by the timing documents.
func WellFormed(s string) bool {
	if !strictPattern.MatchString(s) {
		return false
	}
	_, err := ToMinutes(s)
	return err == nil
}

// FormatMinutes renders a minute-of-day (possibly past 1440) as "HH:MM".
func FormatMinutes(m int) string {
	m = ((m % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// MinuteOfDay returns t's minute-of-day in local wall-clock terms.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// InWindow reports whether now falls in [start, end). When end < start the
// window spans midnight: end shifts forward a day, and so does now when it
// sits before start. This classifies the Isha-to-next-Fajr overnight span.
func InWindow(now, start, end int) bool {
	if end < start {
		end += MinutesPerDay
		if now < start {
			now += MinutesPerDay
		}
	}
	return now >= start && now < end
}

// InWindowInclusive is InWindow with a closed upper bound, used by the
// overlay channels whose original windows included their end minute.
func InWindowInclusive(now, start, end int) bool {
	if end < start {
		end += MinutesPerDay
		if now < start {
			now += MinutesPerDay
		}
	}
	return now >= start && now <= end
}

package dateutil

import (
	"fmt"
	"math"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// Unit is the granularity of a [Diff] result.
type Unit int

// Units understood by [Diff]. Any other value is treated as [UnitHours].
const (
	UnitDays Unit = iota + 1
	UnitHours
	UnitMinutes
	UnitSeconds
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	nanosPerSecond   = 1_000_000_000
)

var unitNames = map[Unit]string{
	UnitDays:    "days",
	UnitHours:   "hours",
	UnitMinutes: "minutes",
	UnitSeconds: "seconds",
}

func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// ParseUnit returns the unit named by s. Singular and plural names are
// accepted, case-insensitively.
func ParseUnit(s string) (Unit, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for u, n := range unitNames {
		if name == n || name == strings.TrimSuffix(n, "s") {
			return u, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown unit %q", ErrInvalidArgument, s)
}

// Diff returns end - start as a whole number of units, truncated toward zero.
// The result is negative when end is before start, and
// Diff(end, start, u) == -Diff(start, end, u). An unrecognized unit falls
// back to hours.
//
// The difference is computed from calendar days and seconds of the day, so it
// is exact for any pair of valid values.
func Diff(start, end civil.DateTime, unit Unit) (int64, error) {
	if err := checkDateTime("start", start); err != nil {
		return 0, err
	}
	if err := checkDateTime("end", end); err != nil {
		return 0, err
	}

	secs, _ := between(start, end)

	switch unit {
	case UnitDays:
		return secs / secondsPerDay, nil
	case UnitMinutes:
		return secs / secondsPerMinute, nil
	case UnitSeconds:
		return secs, nil
	default:
		return secs / secondsPerHour, nil
	}
}

// Between returns end - start as a time.Duration. Values more than about
// 292 years apart do not fit and fail with [ErrInvalidArgument]; use [Diff]
// for those.
func Between(start, end civil.DateTime) (time.Duration, error) {
	if err := checkDateTime("start", start); err != nil {
		return 0, err
	}
	if err := checkDateTime("end", end); err != nil {
		return 0, err
	}

	secs, nanos := between(start, end)
	if secs > math.MaxInt64/nanosPerSecond-1 || secs < math.MinInt64/nanosPerSecond+1 {
		return 0, fmt.Errorf("%w: %s and %s are too far apart for a duration", ErrInvalidArgument, start, end)
	}
	return time.Duration(secs)*time.Second + time.Duration(nanos), nil
}

// between returns end - start split into seconds and nanoseconds that share
// the same sign.
func between(start, end civil.DateTime) (int64, int64) {
	days := int64(end.Date.DaysSince(start.Date))
	secs := days*secondsPerDay + secondOfDay(end.Time) - secondOfDay(start.Time)
	nanos := int64(end.Time.Nanosecond - start.Time.Nanosecond)

	switch {
	case secs > 0 && nanos < 0:
		secs--
		nanos += nanosPerSecond
	case secs < 0 && nanos > 0:
		secs++
		nanos -= nanosPerSecond
	}
	return secs, nanos
}

func secondOfDay(t civil.Time) int64 {
	return int64(t.Hour*secondsPerHour + t.Minute*secondsPerMinute + t.Second)
}

// Package clock provides the source of "now" for commands that default a
// date-time argument to the current moment.
package clock

import (
	"time"

	"cloud.google.com/go/civil"
)

// Clock reports the current wall-clock time.
type Clock interface {
	Now() time.Time
}

// System is the Clock backed by time.Now.
type System struct{}

// Now implements Clock.
func (System) Now() time.Time {
	return time.Now()
}

// Local returns the current local date-time of c, truncated to whole seconds.
func Local(c Clock) civil.DateTime {
	return civil.DateTimeOf(c.Now().Truncate(time.Second))
}

// Package dateutil formats, parses, compares, composes and decomposes civil
// date-times (calendar date and time of day without a time zone).
//
// The default text form is "yyyy-MM-dd HH:mm:ss":
//
//	dt := civil.DateTime{
//		Date: civil.Date{Year: 2023, Month: time.June, Day: 15},
//		Time: civil.Time{Hour: 14, Minute: 30},
//	}
//	s, _ := dateutil.Format(dt)           // "2023-06-15 14:30:00"
//	dt, _ = dateutil.Parse(s)
//	n, _ := dateutil.Diff(dt, later, dateutil.UnitMinutes)
//
// Every function is stateless and safe for concurrent use. Absent arguments
// are zero values: the zero civil.DateTime or civil.Date, the zero Style and
// a nil Formatter are rejected with [ErrInvalidArgument], as are values that
// are not valid calendar dates or times.
package dateutil

import (
	"fmt"

	"cloud.google.com/go/civil"
)

func checkDateTime(name string, dt civil.DateTime) error {
	if dt == (civil.DateTime{}) {
		return fmt.Errorf("%w: %s argument cannot be zero", ErrInvalidArgument, name)
	}
	if !dt.IsValid() {
		return fmt.Errorf("%w: %s %s is not a valid date-time", ErrInvalidArgument, name, dt)
	}
	return nil
}

func checkDate(name string, d civil.Date) error {
	if d == (civil.Date{}) {
		return fmt.Errorf("%w: %s argument cannot be zero", ErrInvalidArgument, name)
	}
	if !d.IsValid() {
		return fmt.Errorf("%w: %s %s is not a valid date", ErrInvalidArgument, name, d)
	}
	return nil
}

func checkTime(name string, t civil.Time) error {
	if !t.IsValid() {
		return fmt.Errorf("%w: %s %s is not a valid time of day", ErrInvalidArgument, name, t)
	}
	return nil
}

package fixtures

import (
	"time"

	"cloud.google.com/go/civil"
)

// Sample values: 2023-06-15 14:30:00, a Thursday.
const (
	SampleText   = "2023-06-15 14:30:00"
	SampleISO    = "2023-06-15T14:30:00"
	sampleYear   = 2023
	sampleMonth  = time.June
	sampleDay    = 15
	sampleHour   = 14
	sampleMinute = 30
)

// DateTime builds a civil.DateTime with whole seconds.
func DateTime(year int, month time.Month, day, hour, minute, second int) civil.DateTime {
	return civil.DateTime{
		Date: civil.Date{Year: year, Month: month, Day: day},
		Time: civil.Time{Hour: hour, Minute: minute, Second: second},
	}
}

// SampleDateTime returns the value written as [SampleText].
func SampleDateTime() civil.DateTime {
	return DateTime(sampleYear, sampleMonth, sampleDay, sampleHour, sampleMinute, 0)
}

// SampleDate returns the date part of [SampleDateTime].
func SampleDate() civil.Date {
	return SampleDateTime().Date
}

// SampleTime returns the time part of [SampleDateTime].
func SampleTime() civil.Time {
	return SampleDateTime().Time
}

// DateTimes returns valid whole-second values around leap days, month and
// year boundaries, midnight and noon, and the first and last four-digit years.
func DateTimes() []civil.DateTime {
	return []civil.DateTime{
		SampleDateTime(),
		DateTime(1, time.January, 1, 0, 0, 0),
		DateTime(1970, time.January, 1, 0, 0, 0),
		DateTime(1999, time.December, 31, 23, 59, 59),
		DateTime(2000, time.January, 1, 0, 0, 0),
		DateTime(2000, time.February, 29, 12, 0, 0),
		DateTime(2023, time.January, 31, 23, 0, 1),
		DateTime(2024, time.February, 29, 6, 7, 8),
		DateTime(2024, time.December, 31, 12, 0, 0),
		DateTime(9999, time.December, 31, 23, 59, 59),
	}
}

// Dates returns the date parts of [DateTimes].
func Dates() []civil.Date {
	values := DateTimes()
	dates := make([]civil.Date, len(values))
	for i, v := range values {
		dates[i] = v.Date
	}
	return dates
}

// Times returns times of day including midnight, noon, the last second and a
// sub-second value.
func Times() []civil.Time {
	return []civil.Time{
		{},
		{Hour: 12},
		{Hour: 23, Minute: 59, Second: 59},
		{Hour: 14, Minute: 30},
		{Hour: 7, Minute: 5, Second: 3, Nanosecond: 250_000_000},
	}
}

package dateutil

import "cloud.google.com/go/civil"

// Compose joins a date and a time of day. The zero civil.Time is midnight and
// therefore valid; only the date can be absent.
func Compose(date civil.Date, t civil.Time) (civil.DateTime, error) {
	if err := checkDate("date", date); err != nil {
		return civil.DateTime{}, err
	}
	if err := checkTime("time", t); err != nil {
		return civil.DateTime{}, err
	}
	return civil.DateTime{Date: date, Time: t}, nil
}

// Decompose returns the calendar date of dt, dropping the time of day.
func Decompose(dt civil.DateTime) (civil.Date, error) {
	if err := checkDateTime("dateTime", dt); err != nil {
		return civil.Date{}, err
	}
	return dt.Date, nil
}

// DecomposeTime returns the time of day of dt.
func DecomposeTime(dt civil.DateTime) (civil.Time, error) {
	if err := checkDateTime("dateTime", dt); err != nil {
		return civil.Time{}, err
	}
	return dt.Time, nil
}

package dateutil_test

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/sgaunet/dateutil/pkg/dateutil"
	"github.com/sgaunet/dateutil/testing/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose(t *testing.T) {
	got, err := dateutil.Compose(fixtures.SampleDate(), fixtures.SampleTime())
	require.NoError(t, err)
	assert.Equal(t, fixtures.SampleDateTime(), got)

	midnight, err := dateutil.Compose(fixtures.SampleDate(), civil.Time{})
	require.NoError(t, err)
	assert.Equal(t, "2023-06-15T00:00:00", midnight.String())
}

func TestCompose_InvalidArgument(t *testing.T) {
	tests := []struct {
		name    string
		date    civil.Date
		time    civil.Time
		wantMsg string
	}{
		{name: "zero date", date: civil.Date{}, time: fixtures.SampleTime(), wantMsg: "date argument cannot be zero"},
		{name: "invalid date", date: civil.Date{Year: 2023, Month: time.February, Day: 30}, time: fixtures.SampleTime(), wantMsg: "not a valid date"},
		{name: "hour 24", date: fixtures.SampleDate(), time: civil.Time{Hour: 24}, wantMsg: "not a valid time of day"},
		{name: "negative minute", date: fixtures.SampleDate(), time: civil.Time{Minute: -1}, wantMsg: "not a valid time of day"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dateutil.Compose(tt.date, tt.time)
			require.ErrorIs(t, err, dateutil.ErrInvalidArgument)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Equal(t, civil.DateTime{}, got)
		})
	}
}

func TestDecompose(t *testing.T) {
	got, err := dateutil.Decompose(fixtures.SampleDateTime())
	require.NoError(t, err)
	assert.Equal(t, civil.Date{Year: 2023, Month: time.June, Day: 15}, got)

	_, err = dateutil.Decompose(civil.DateTime{})
	require.ErrorIs(t, err, dateutil.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "dateTime argument cannot be zero")

	_, err = dateutil.Decompose(invalidDateTime)
	require.ErrorIs(t, err, dateutil.ErrInvalidArgument)
}

func TestDecomposeTime(t *testing.T) {
	got, err := dateutil.DecomposeTime(fixtures.SampleDateTime())
	require.NoError(t, err)
	assert.Equal(t, civil.Time{Hour: 14, Minute: 30}, got)

	_, err = dateutil.DecomposeTime(civil.DateTime{})
	require.ErrorIs(t, err, dateutil.ErrInvalidArgument)
}

func TestComposeDecompose_RoundTrip(t *testing.T) {
	for _, d := range fixtures.Dates() {
		for _, tm := range fixtures.Times() {
			dt, err := dateutil.Compose(d, tm)
			require.NoError(t, err)

			gotDate, err := dateutil.Decompose(dt)
			require.NoError(t, err)
			assert.Equal(t, d, gotDate)

			gotTime, err := dateutil.DecomposeTime(dt)
			require.NoError(t, err)
			assert.Equal(t, tm, gotTime)
		}
	}
}

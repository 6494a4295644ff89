package pattern_test

import (
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/sgaunet/dateutil/pkg/pattern"
	"github.com/stretchr/testify/assert"
)

func dateTime(year int, month time.Month, day, hour, minute, second, nano int) civil.DateTime {
	return civil.DateTime{
		Date: civil.Date{Year: year, Month: month, Day: day},
		Time: civil.Time{Hour: hour, Minute: minute, Second: second, Nanosecond: nano},
	}
}

func TestFormatter_Format(t *testing.T) {
	// Thursday, day 166 of 2023.
	afternoon := dateTime(2023, time.June, 15, 14, 30, 5, 123456789)
	midnight := dateTime(2024, time.January, 1, 0, 0, 0, 0)

	tests := []struct {
		pattern  string
		dt       civil.DateTime
		expected string
	}{
		{"yyyy-MM-dd HH:mm:ss", afternoon, "2023-06-15 14:30:05"},
		{"yyyy", dateTime(1999, time.December, 31, 23, 59, 59, 0), "1999"},
		{"yy", afternoon, "23"},
		{"y", afternoon, "2023"},
		{"uuuu", afternoon, "2023"},
		{"M/d/yy", afternoon, "6/15/23"},
		{"MMM", afternoon, "Jun"},
		{"MMMM", afternoon, "June"},
		{"MMMMM", afternoon, "J"},
		{"LLL", afternoon, "Jun"},
		{"d", dateTime(2023, time.June, 5, 0, 0, 0, 0), "5"},
		{"dd", dateTime(2023, time.June, 5, 0, 0, 0, 0), "05"},
		{"D", afternoon, "166"},
		{"DDD", midnight, "001"},
		{"EEE", afternoon, "Thu"},
		{"E", afternoon, "Thu"},
		{"EEEE", afternoon, "Thursday"},
		{"EEEEE", afternoon, "T"},
		{"h:mm a", afternoon, "2:30 PM"},
		{"hh:mm a", afternoon, "02:30 PM"},
		{"h a", midnight, "12 AM"},
		{"K", afternoon, "2"},
		{"K", midnight, "0"},
		{"k", afternoon, "14"},
		{"kk", midnight, "24"},
		{"H:m:s", dateTime(2023, time.June, 15, 4, 3, 2, 0), "4:3:2"},
		{"S", afternoon, "1"},
		{"SSS", afternoon, "123"},
		{"SSSSSSSSS", afternoon, "123456789"},
		{"SSS", dateTime(2023, time.June, 15, 0, 0, 0, 5_000_000), "005"},
		{"n", afternoon, "123456789"},
		{"nnnn", dateTime(2023, time.June, 15, 0, 0, 0, 42), "0042"},
		{"Q", afternoon, "2"},
		{"QQ", afternoon, "02"},
		{"QQQ", afternoon, "Q2"},
		{"QQQQ", afternoon, "2nd quarter"},
		{"G", afternoon, "AD"},
		{"GGGG", afternoon, "Anno Domini"},
		{"GGGGG", afternoon, "A"},
		{"yyyy-MM-dd'T'HH:mm", afternoon, "2023-06-15T14:30"},
		{"'at' HH", afternoon, "at 14"},
		{"''yy''", afternoon, "'23'"},
		{"HH 'o''clock'", afternoon, "14 o'clock"},
		{"yyyy[-MM[-dd]]", afternoon, "2023-06-15"},
		{"dd.MM.yyyy – HH:mm", afternoon, "15.06.2023 – 14:30"},
		{"yyyy", dateTime(12345, time.March, 1, 0, 0, 0, 0), "+12345"},
		{"uuuu", dateTime(10000, time.January, 1, 0, 0, 0, 0), "+10000"},
		{"yyyy", dateTime(9999, time.December, 31, 0, 0, 0, 0), "9999"},
		{"y", dateTime(12345, time.March, 1, 0, 0, 0, 0), "12345"},
		{"uuuu", dateTime(-12345, time.March, 1, 0, 0, 0, 0), "-12345"},
		{"y", dateTime(7, time.March, 1, 0, 0, 0, 0), "7"},
		{"yyyy", dateTime(7, time.March, 1, 0, 0, 0, 0), "0007"},
		{"u G", dateTime(0, time.March, 1, 0, 0, 0, 0), "0 BC"},
		{"y G", dateTime(0, time.March, 1, 0, 0, 0, 0), "1 BC"},
		{"uuuu", dateTime(-5, time.March, 1, 0, 0, 0, 0), "-0005"},
		{"yyyy", dateTime(-5, time.March, 1, 0, 0, 0, 0), "0006"},
		{"", afternoon, ""},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.expected, func(t *testing.T) {
			f := pattern.MustCompile(tt.pattern)
			assert.Equal(t, tt.expected, f.Format(tt.dt))
		})
	}
}

func TestFormatter_WithSymbols(t *testing.T) {
	german := *pattern.English
	german.Months[5] = "Juni"
	german.Weekdays[4] = "Donnerstag"

	f := pattern.MustCompile("EEEE, d. MMMM yyyy")
	dt := dateTime(2023, time.June, 15, 0, 0, 0, 0)

	assert.Equal(t, "Donnerstag, 15. Juni 2023", f.WithSymbols(&german).Format(dt))
	assert.Equal(t, "Thursday, 15. June 2023", f.Format(dt), "receiver must be unchanged")
	assert.Equal(t, "Thursday, 15. June 2023", f.WithSymbols(nil).Format(dt))
}

func TestFormatter_ConcurrentUse(t *testing.T) {
	f := pattern.MustCompile("yyyy-MM-dd HH:mm:ss")
	dt := dateTime(2023, time.June, 15, 14, 30, 0, 0)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				s := f.Format(dt)
				parsed, err := f.Parse(s)
				assert.NoError(t, err)
				assert.Equal(t, dt, parsed)
			}
		}()
	}
	wg.Wait()
}

package dateutil_test

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/sgaunet/dateutil/pkg/dateutil"
)

func ExampleFormat() {
	dt := civil.DateTime{
		Date: civil.Date{Year: 2023, Month: time.June, Day: 15},
		Time: civil.Time{Hour: 14, Minute: 30},
	}
	s, err := dateutil.Format(dt)
	if err != nil {
		panic(err)
	}
	fmt.Println(s)

	s, _ = dateutil.FormatStyle(dt, dateutil.StyleMedium)
	fmt.Println(s)

	// Output:
	// 2023-06-15 14:30:00
	// Jun 15, 2023, 2:30:00 PM
}

func ExampleDiff() {
	start, _ := dateutil.Parse("2023-01-01 00:00:00")
	end, _ := dateutil.Parse("2023-01-02 06:00:00")

	for _, unit := range []dateutil.Unit{dateutil.UnitDays, dateutil.UnitHours, dateutil.UnitMinutes} {
		n, _ := dateutil.Diff(start, end, unit)
		fmt.Println(n, unit)
	}

	// Output:
	// 1 days
	// 30 hours
	// 1800 minutes
}

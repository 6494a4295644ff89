package pattern

import (
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

const fractionDigits = 9

// Format renders dt, which must be valid (see civil.DateTime.IsValid).
// Every field of a civil date-time is always available, so optional
// sections are printed as well.
func (f *Formatter) Format(dt civil.DateTime) string {
	var b strings.Builder
	f.format(&b, f.elems, dt)
	return b.String()
}

func (f *Formatter) format(b *strings.Builder, elems []element, dt civil.DateTime) {
	for _, e := range elems {
		switch e.kind {
		case kindLiteral:
			b.WriteString(e.literal)
		case kindOptional:
			f.format(b, e.children, dt)
		case kindField:
			f.formatField(b, e, dt)
		}
	}
}

func (f *Formatter) formatField(b *strings.Builder, e element, dt civil.DateTime) {
	d, t, sym := dt.Date, dt.Time, f.symbols

	switch e.letter {
	case 'G':
		era := eraOf(d.Year)
		b.WriteString(textFor(e.count, sym.Eras[era], sym.LongEras[era]))
	case 'u':
		writeYear(b, d.Year, e.count)
	case 'y':
		writeYear(b, yearOfEra(d.Year), e.count)
	case 'Q', 'q':
		q := quarterOf(d.Month)
		if e.count <= 2 {
			pad(b, q, e.count)
			return
		}
		b.WriteString(textFor(e.count, sym.ShortQuarters[q-1], sym.Quarters[q-1]))
	case 'M', 'L':
		if e.count <= 2 {
			pad(b, int(d.Month), e.count)
			return
		}
		b.WriteString(textFor(e.count, sym.ShortMonths[d.Month-1], sym.Months[d.Month-1]))
	case 'd':
		pad(b, d.Day, e.count)
	case 'D':
		pad(b, dayOfYear(d), e.count)
	case 'E':
		wd := weekdayOf(d)
		b.WriteString(textFor(e.count, sym.ShortWeekdays[wd], sym.Weekdays[wd]))
	case 'a':
		b.WriteString(sym.AMPM[t.Hour/12])
	case 'h':
		h := t.Hour % 12
		if h == 0 {
			h = 12
		}
		pad(b, h, e.count)
	case 'K':
		pad(b, t.Hour%12, e.count)
	case 'k':
		h := t.Hour
		if h == 0 {
			h = 24
		}
		pad(b, h, e.count)
	case 'H':
		pad(b, t.Hour, e.count)
	case 'm':
		pad(b, t.Minute, e.count)
	case 's':
		pad(b, t.Second, e.count)
	case 'S':
		frac := strconv.Itoa(t.Nanosecond)
		frac = strings.Repeat("0", fractionDigits-len(frac)) + frac
		b.WriteString(frac[:e.count])
	case 'n':
		pad(b, t.Nanosecond, e.count)
	}
}

// writeYear prints a year padded to count digits; two letters print the last
// two digits. From four letters on, a year wider than count gets a '+'.
func writeYear(b *strings.Builder, year, count int) {
	if count == 2 {
		pad(b, (year%100+100)%100, 2)
		return
	}
	if year < 0 {
		b.WriteByte('-')
		year = -year
	} else if count >= 4 && len(strconv.Itoa(year)) > count {
		b.WriteByte('+')
	}
	pad(b, year, count)
}

func pad(b *strings.Builder, v, width int) {
	s := strconv.Itoa(v)
	for i := len(s); i < width; i++ {
		b.WriteByte('0')
	}
	b.WriteString(s)
}

// eraOf returns 1 for AD (year >= 1) and 0 for BC.
func eraOf(year int) int {
	if year <= 0 {
		return 0
	}
	return 1
}

func yearOfEra(year int) int {
	if year <= 0 {
		return 1 - year
	}
	return year
}

func quarterOf(m time.Month) int {
	return (int(m)-1)/3 + 1
}

func dayOfYear(d civil.Date) int {
	return d.DaysSince(civil.Date{Year: d.Year, Month: time.January, Day: 1}) + 1
}

func weekdayOf(d civil.Date) time.Weekday {
	return d.In(time.UTC).Weekday()
}

package pattern

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

type field int

const (
	fieldEra field = iota
	fieldYear
	fieldYearOfEra
	fieldQuarter
	fieldMonth
	fieldDay
	fieldDayOfYear
	fieldDayOfWeek
	fieldAMPM
	fieldHourOfDay
	fieldHourOfAMPM
	fieldMinute
	fieldSecond
	fieldNano
	numFields
)

var fieldNames = [numFields]string{
	"era", "year", "year of era", "quarter", "month", "day of month", "day of year",
	"day of week", "am/pm", "hour of day", "hour of am/pm", "minute", "second", "nanosecond",
}

// parsed collects field values while matching text. It is a plain value so an
// optional section can be rolled back by copying.
type parsed struct {
	values [numFields]int
	set    [numFields]bool
}

func (p *parsed) put(f field, v int) bool {
	if p.set[f] && p.values[f] != v {
		return false
	}
	p.values[f] = v
	p.set[f] = true
	return true
}

// Parse reads a civil date-time from text. The whole text must match.
// The result needs a year, a month and day (or a day of year) and an hour;
// minute, second and fraction default to zero. Failures are *ParseError.
func (f *Formatter) Parse(text string) (civil.DateTime, error) {
	var p parsed
	pos, err := f.parse(f.elems, text, 0, &p)
	if err != nil {
		return civil.DateTime{}, err
	}
	if pos < len(text) {
		return civil.DateTime{}, parseError(text, pos, "unparsed text found")
	}
	dt, err := p.resolve()
	if err != nil {
		return civil.DateTime{}, parseError(text, -1, err.Error())
	}
	return dt, nil
}

func (f *Formatter) parse(elems []element, text string, pos int, p *parsed) (int, error) {
	for _, e := range elems {
		switch e.kind {
		case kindLiteral:
			if !strings.HasPrefix(text[pos:], e.literal) {
				return pos, parseError(text, pos, fmt.Sprintf("expected %q", e.literal))
			}
			pos += len(e.literal)
		case kindOptional:
			saved := *p
			next, err := f.parse(e.children, text, pos, p)
			if err != nil {
				*p = saved
				continue
			}
			pos = next
		case kindField:
			next, err := f.parseField(e, text, pos, p)
			if err != nil {
				return pos, err
			}
			pos = next
		}
	}
	return pos, nil
}

func (f *Formatter) parseField(e element, text string, pos int, p *parsed) (int, error) {
	if e.numeric() {
		return parseNumber(e, text, pos, p)
	}

	sym := f.symbols
	var (
		choices []string
		target  field
		offset  int
	)
	switch e.letter {
	case 'G':
		choices, target = choicesFor(e.count, sym.Eras[:], sym.LongEras[:]), fieldEra
	case 'Q', 'q':
		choices, target, offset = choicesFor(e.count, sym.ShortQuarters[:], sym.Quarters[:]), fieldQuarter, 1
	case 'M', 'L':
		choices, target, offset = choicesFor(e.count, sym.ShortMonths[:], sym.Months[:]), fieldMonth, 1
	case 'E':
		choices, target = choicesFor(e.count, sym.ShortWeekdays[:], sym.Weekdays[:]), fieldDayOfWeek
	case 'a':
		choices, target = sym.AMPM[:], fieldAMPM
	}

	idx, next, ok := matchText(text, pos, choices)
	if !ok {
		return pos, parseError(text, pos, "unrecognized "+fieldNames[target])
	}
	if !p.put(target, idx+offset) {
		return pos, parseError(text, pos, "conflicting "+fieldNames[target])
	}
	return next, nil
}

// matchText returns the index of the longest choice that prefixes text[pos:].
func matchText(text string, pos int, choices []string) (int, int, bool) {
	best, bestLen := -1, 0
	for i, c := range choices {
		if c != "" && len(c) > bestLen && strings.HasPrefix(text[pos:], c) {
			best, bestLen = i, len(c)
		}
	}
	return best, pos + bestLen, best >= 0
}

func parseNumber(e element, text string, pos int, p *parsed) (int, error) {
	start := pos
	var sign byte
	if pos < len(text) {
		switch c := text[pos]; {
		case c == '-' && e.letter == 'u' && e.count != 2,
			c == '+' && e.exceedsPad():
			sign = c
			pos++
		}
	}
	neg := sign == '-'

	avail := 0
	for pos+avail < len(text) && isDigit(text[pos+avail]) {
		avail++
	}
	minW, maxW := e.widths()
	if e.exceedsPad() {
		// Years wider than the pattern need a leading '+'.
		switch sign {
		case '+':
			minW = e.count + 1
		case 0:
			maxW = e.count
		}
	}
	n := min(avail-e.reserve, maxW)
	n = max(n, minW)
	if avail < n {
		if minW == maxW {
			return start, parseError(text, start, fmt.Sprintf("expected %d digits", minW))
		}
		return start, parseError(text, start, fmt.Sprintf("expected at least %d digits", n))
	}

	v, err := strconv.Atoi(text[pos : pos+n])
	if err != nil {
		return start, parseError(text, start, "number out of range")
	}
	if neg {
		v = -v
	}

	target, value, ok := numericValue(e, v)
	if !ok {
		return start, parseError(text, start, fmt.Sprintf("value %d out of range for %s", v, fieldNames[target]))
	}
	if !p.put(target, value) {
		return start, parseError(text, start, "conflicting "+fieldNames[target])
	}
	return pos + n, nil
}

// numericValue maps a parsed number to its field, normalizing it, and reports
// whether it is in range.
func numericValue(e element, v int) (field, int, bool) {
	inRange := func(lo, hi int) bool { return v >= lo && v <= hi }

	switch e.letter {
	case 'u':
		if e.count == 2 {
			return fieldYear, 2000 + v, true
		}
		return fieldYear, v, true
	case 'y':
		if e.count == 2 {
			return fieldYearOfEra, 2000 + v, true
		}
		return fieldYearOfEra, v, v >= 1
	case 'Q', 'q':
		return fieldQuarter, v, inRange(1, 4)
	case 'M', 'L':
		return fieldMonth, v, inRange(1, 12)
	case 'd':
		return fieldDay, v, inRange(1, 31)
	case 'D':
		return fieldDayOfYear, v, inRange(1, 366)
	case 'h':
		return fieldHourOfAMPM, v % 12, inRange(1, 12)
	case 'K':
		return fieldHourOfAMPM, v, inRange(0, 11)
	case 'k':
		return fieldHourOfDay, v % 24, inRange(1, 24)
	case 'H':
		return fieldHourOfDay, v, inRange(0, 23)
	case 'm':
		return fieldMinute, v, inRange(0, 59)
	case 's':
		return fieldSecond, v, inRange(0, 59)
	case 'S':
		scale := 1
		for range fractionDigits - e.count {
			scale *= 10
		}
		return fieldNano, v * scale, true
	default: // 'n'
		return fieldNano, v, inRange(0, 999_999_999)
	}
}

func (p *parsed) resolve() (civil.DateTime, error) {
	year, err := p.year()
	if err != nil {
		return civil.DateTime{}, err
	}
	d, err := p.date(year)
	if err != nil {
		return civil.DateTime{}, err
	}
	t, err := p.clock()
	if err != nil {
		return civil.DateTime{}, err
	}
	return civil.DateTime{Date: d, Time: t}, nil
}

func (p *parsed) year() (int, error) {
	switch {
	case p.set[fieldYearOfEra]:
		year := p.values[fieldYearOfEra]
		if p.set[fieldEra] && p.values[fieldEra] == 0 {
			year = 1 - year
		}
		if p.set[fieldYear] && p.values[fieldYear] != year {
			return 0, errors.New("year conflicts with year of era")
		}
		return year, nil
	case p.set[fieldYear]:
		year := p.values[fieldYear]
		if p.set[fieldEra] && p.values[fieldEra] != eraOf(year) {
			return 0, errors.New("era conflicts with year")
		}
		return year, nil
	default:
		return 0, errors.New("year is missing")
	}
}

func (p *parsed) date(year int) (civil.Date, error) {
	var d civil.Date
	switch {
	case p.set[fieldMonth] && p.set[fieldDay]:
		d = civil.Date{Year: year, Month: time.Month(p.values[fieldMonth]), Day: p.values[fieldDay]}
		if !d.IsValid() {
			return civil.Date{}, fmt.Errorf("invalid date %04d-%02d-%02d", year, p.values[fieldMonth], p.values[fieldDay])
		}
		if p.set[fieldDayOfYear] && dayOfYear(d) != p.values[fieldDayOfYear] {
			return civil.Date{}, fmt.Errorf("day of year %d conflicts with date %s", p.values[fieldDayOfYear], d)
		}
	case p.set[fieldDayOfYear]:
		doy := p.values[fieldDayOfYear]
		d = civil.Date{Year: year, Month: time.January, Day: 1}.AddDays(doy - 1)
		if d.Year != year {
			return civil.Date{}, fmt.Errorf("invalid day of year %d for year %d", doy, year)
		}
		if p.set[fieldMonth] && int(d.Month) != p.values[fieldMonth] {
			return civil.Date{}, fmt.Errorf("month %d conflicts with date %s", p.values[fieldMonth], d)
		}
		if p.set[fieldDay] && d.Day != p.values[fieldDay] {
			return civil.Date{}, fmt.Errorf("day of month %d conflicts with date %s", p.values[fieldDay], d)
		}
	default:
		return civil.Date{}, errors.New("month and day are missing")
	}

	if p.set[fieldDayOfWeek] && int(weekdayOf(d)) != p.values[fieldDayOfWeek] {
		return civil.Date{}, fmt.Errorf("day of week conflicts with date %s", d)
	}
	if p.set[fieldQuarter] && quarterOf(d.Month) != p.values[fieldQuarter] {
		return civil.Date{}, fmt.Errorf("quarter %d conflicts with date %s", p.values[fieldQuarter], d)
	}
	return d, nil
}

func (p *parsed) clock() (civil.Time, error) {
	var hour int
	switch {
	case p.set[fieldHourOfDay]:
		hour = p.values[fieldHourOfDay]
		if p.set[fieldHourOfAMPM] && hour%12 != p.values[fieldHourOfAMPM] {
			return civil.Time{}, errors.New("hour of am/pm conflicts with hour of day")
		}
		if p.set[fieldAMPM] && hour/12 != p.values[fieldAMPM] {
			return civil.Time{}, errors.New("am/pm conflicts with hour of day")
		}
	case p.set[fieldHourOfAMPM]:
		if !p.set[fieldAMPM] {
			return civil.Time{}, errors.New("am/pm marker is missing")
		}
		hour = p.values[fieldHourOfAMPM] + 12*p.values[fieldAMPM]
	default:
		return civil.Time{}, errors.New("hour is missing")
	}

	return civil.Time{
		Hour:       hour,
		Minute:     p.values[fieldMinute],
		Second:     p.values[fieldSecond],
		Nanosecond: p.values[fieldNano],
	}, nil
}

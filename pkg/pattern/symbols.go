package pattern

import "unicode/utf8"

// Symbols holds the locale text a Formatter prints and accepts for
// month, weekday, am/pm, era and quarter fields.
type Symbols struct {
	Months        [12]string
	ShortMonths   [12]string
	Weekdays      [7]string // indexed by time.Weekday, Sunday first
	ShortWeekdays [7]string
	AMPM          [2]string
	Eras          [2]string // BC, AD
	LongEras      [2]string
	Quarters      [4]string
	ShortQuarters [4]string
}

// English is the symbol set used by formatters returned from [Compile].
var English = &Symbols{
	Months: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	ShortMonths: [12]string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},
	Weekdays:      [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	ShortWeekdays: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	AMPM:          [2]string{"AM", "PM"},
	Eras:          [2]string{"BC", "AD"},
	LongEras:      [2]string{"Before Christ", "Anno Domini"},
	Quarters:      [4]string{"1st quarter", "2nd quarter", "3rd quarter", "4th quarter"},
	ShortQuarters: [4]string{"Q1", "Q2", "Q3", "Q4"},
}

// textFor picks the short, full or narrow form for a text field of the given letter count.
func textFor(count int, short, full string) string {
	switch {
	case count <= 3:
		return short
	case count == 4:
		return full
	default:
		return narrow(full)
	}
}

// choicesFor is the parsing counterpart of textFor.
func choicesFor(count int, short, full []string) []string {
	switch {
	case count <= 3:
		return short
	case count == 4:
		return full
	default:
		out := make([]string, len(full))
		for i, s := range full {
			out[i] = narrow(s)
		}
		return out
	}
}

func narrow(s string) string {
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}

package locale

import (
	"github.com/sgaunet/dateutil/pkg/pattern"
	"golang.org/x/text/language"
)

// supported holds the locale table. The first entry is the default.
// Patterns follow CLDR with the zone name dropped from long and full times.
var supported = []*Locale{
	{
		tag:     language.AmericanEnglish,
		symbols: pattern.English,
		dates:   [4]string{"M/d/yy", "MMM d, y", "MMMM d, y", "EEEE, MMMM d, y"},
		times:   [4]string{"h:mm a", "h:mm:ss a", "h:mm:ss a", "h:mm:ss a"},
		joins:   [4]string{", ", ", ", " 'at' ", " 'at' "},
	},
	{
		tag:     language.BritishEnglish,
		symbols: britishEnglish,
		dates:   [4]string{"dd/MM/y", "d MMM y", "d MMMM y", "EEEE, d MMMM y"},
		times:   [4]string{"HH:mm", "HH:mm:ss", "HH:mm:ss", "HH:mm:ss"},
		joins:   [4]string{", ", ", ", " 'at' ", " 'at' "},
	},
	{
		tag:     language.MustParse("de-DE"),
		symbols: german,
		dates:   [4]string{"dd.MM.yy", "dd.MM.y", "d. MMMM y", "EEEE, d. MMMM y"},
		times:   [4]string{"HH:mm", "HH:mm:ss", "HH:mm:ss", "HH:mm:ss"},
		joins:   [4]string{", ", ", ", " 'um' ", " 'um' "},
	},
	{
		tag:     language.MustParse("fr-FR"),
		symbols: french,
		dates:   [4]string{"dd/MM/y", "d MMM y", "d MMMM y", "EEEE d MMMM y"},
		times:   [4]string{"HH:mm", "HH:mm:ss", "HH:mm:ss", "HH:mm:ss"},
		joins:   [4]string{" ", ", ", " 'à' ", " 'à' "},
	},
	{
		tag:     language.MustParse("es-ES"),
		symbols: spanish,
		dates:   [4]string{"d/M/yy", "d MMM y", "d 'de' MMMM 'de' y", "EEEE, d 'de' MMMM 'de' y"},
		times:   [4]string{"H:mm", "H:mm:ss", "H:mm:ss", "H:mm:ss"},
		joins:   [4]string{", ", ", ", ", ", ", "},
	},
}

var britishEnglish = func() *pattern.Symbols {
	s := *pattern.English
	s.AMPM = [2]string{"am", "pm"}
	return &s
}()

var german = &pattern.Symbols{
	Months: [12]string{
		"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember",
	},
	ShortMonths: [12]string{
		"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni",
		"Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez.",
	},
	Weekdays:      [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
	ShortWeekdays: [7]string{"So.", "Mo.", "Di.", "Mi.", "Do.", "Fr.", "Sa."},
	AMPM:          [2]string{"AM", "PM"},
	Eras:          [2]string{"v. Chr.", "n. Chr."},
	LongEras:      [2]string{"v. Chr.", "n. Chr."},
	Quarters:      [4]string{"1. Quartal", "2. Quartal", "3. Quartal", "4. Quartal"},
	ShortQuarters: [4]string{"Q1", "Q2", "Q3", "Q4"},
}

var french = &pattern.Symbols{
	Months: [12]string{
		"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre",
	},
	ShortMonths: [12]string{
		"janv.", "févr.", "mars", "avr.", "mai", "juin",
		"juil.", "août", "sept.", "oct.", "nov.", "déc.",
	},
	Weekdays:      [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
	ShortWeekdays: [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
	AMPM:          [2]string{"AM", "PM"},
	Eras:          [2]string{"av. J.-C.", "ap. J.-C."},
	LongEras:      [2]string{"avant Jésus-Christ", "après Jésus-Christ"},
	Quarters:      [4]string{"1er trimestre", "2e trimestre", "3e trimestre", "4e trimestre"},
	ShortQuarters: [4]string{"T1", "T2", "T3", "T4"},
}

var spanish = &pattern.Symbols{
	Months: [12]string{
		"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
	},
	ShortMonths: [12]string{
		"ene", "feb", "mar", "abr", "may", "jun",
		"jul", "ago", "sept", "oct", "nov", "dic",
	},
	Weekdays:      [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
	ShortWeekdays: [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
	AMPM:          [2]string{"a. m.", "p. m."},
	Eras:          [2]string{"a. C.", "d. C."},
	LongEras:      [2]string{"antes de Cristo", "después de Cristo"},
	Quarters:      [4]string{"1.er trimestre", "2.º trimestre", "3.er trimestre", "4.º trimestre"},
	ShortQuarters: [4]string{"T1", "T2", "T3", "T4"},
}

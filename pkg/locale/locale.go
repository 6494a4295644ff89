// Package locale provides the locale-aware date-time styles (short, medium,
// long, full) and the month and weekday text they print.
//
// Locales are negotiated with golang.org/x/text/language, so "en", "en-AU" or
// "de-AT" resolve to the closest supported locale:
//
//	loc, err := locale.Parse("de-AT")
//	f, err := loc.Formatter(locale.StyleLong)
//	f.Format(dt) // "15. Juni 2023 um 14:30:00"
//
// Values carry no time zone, so the zone name that long and full time
// styles normally end with is left out.
package locale

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sgaunet/dateutil/pkg/pattern"
	"golang.org/x/text/language"
)

var (
	// ErrInvalidTag is returned by [Parse] for malformed BCP 47 tags.
	ErrInvalidTag = errors.New("invalid locale tag")

	// ErrInvalidStyle is returned for the zero Style or an unknown style name.
	ErrInvalidStyle = errors.New("invalid style")
)

// Style is a locale-aware formatting preset. The zero value is not a style.
type Style int

// Supported styles.
const (
	StyleShort Style = iota + 1
	StyleMedium
	StyleLong
	StyleFull
)

var styleNames = map[Style]string{
	StyleShort:  "short",
	StyleMedium: "medium",
	StyleLong:   "long",
	StyleFull:   "full",
}

// Styles lists every style from the most compact to the most verbose.
func Styles() []Style {
	return []Style{StyleShort, StyleMedium, StyleLong, StyleFull}
}

// IsValid reports whether s is one of the defined styles.
func (s Style) IsValid() bool {
	return s >= StyleShort && s <= StyleFull
}

func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// ParseStyle returns the style named by s, case-insensitively.
func ParseStyle(s string) (Style, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for style, n := range styleNames {
		if n == name {
			return style, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStyle, s)
}

// Locale holds the text and style patterns of one supported locale.
// Locales are shared read-only values.
type Locale struct {
	tag     language.Tag
	symbols *pattern.Symbols
	dates   [4]string // date patterns indexed by Style-1
	times   [4]string
	joins   [4]string // pattern text placed between date and time
}

// Tag returns the BCP 47 tag of the locale.
func (l *Locale) Tag() language.Tag {
	return l.tag
}

func (l *Locale) String() string {
	return l.tag.String()
}

// Symbols returns the month, weekday and am/pm text of the locale.
func (l *Locale) Symbols() *pattern.Symbols {
	return l.symbols
}

// Pattern returns the combined date and time pattern for style.
func (l *Locale) Pattern(style Style) (string, error) {
	if !style.IsValid() {
		return "", fmt.Errorf("%w: %v", ErrInvalidStyle, style)
	}
	i := style - 1
	return l.dates[i] + l.joins[i] + l.times[i], nil
}

// Formatter compiles the pattern for style with the locale's symbols.
// A new Formatter is built on every call.
func (l *Locale) Formatter(style Style) (*pattern.Formatter, error) {
	p, err := l.Pattern(style)
	if err != nil {
		return nil, err
	}
	f, err := pattern.Compile(p)
	if err != nil {
		return nil, fmt.Errorf("locale %s: %w", l.tag, err)
	}
	return f.WithSymbols(l.symbols), nil
}

var matcher = language.NewMatcher(supportedTags())

func supportedTags() []language.Tag {
	tags := make([]language.Tag, len(supported))
	for i, l := range supported {
		tags[i] = l.tag
	}
	return tags
}

// Default returns the en-US locale.
func Default() *Locale {
	return supported[0]
}

// Supported returns every supported locale, the default first.
func Supported() []*Locale {
	return append([]*Locale(nil), supported...)
}

// Match returns the supported locale closest to tag, or [Default] when
// nothing is close enough.
func Match(tag language.Tag) *Locale {
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return Default()
	}
	return supported[index]
}

// Parse parses a BCP 47 tag such as "en-GB" or "fr" and returns the closest
// supported locale. An empty string selects [Default].
func Parse(s string) (*Locale, error) {
	if strings.TrimSpace(s) == "" {
		return Default(), nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidTag, s, err)
	}
	return Match(tag), nil
}

package dateutil

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/sgaunet/dateutil/pkg/locale"
	"github.com/sgaunet/dateutil/pkg/pattern"
)

// DefaultPattern is the text form used by [Format] and [Parse].
// Stored and transmitted values depend on it; it must not change.
const DefaultPattern = "yyyy-MM-dd HH:mm:ss"

var defaultFormatter = pattern.MustCompile(DefaultPattern)

// Style is a locale-aware formatting preset.
type Style = locale.Style

// Styles accepted by [FormatStyle].
const (
	StyleShort  = locale.StyleShort
	StyleMedium = locale.StyleMedium
	StyleLong   = locale.StyleLong
	StyleFull   = locale.StyleFull
)

// Format renders dt with [DefaultPattern].
func Format(dt civil.DateTime) (string, error) {
	if err := checkDateTime("dateTime", dt); err != nil {
		return "", err
	}
	return defaultFormatter.Format(dt), nil
}

// FormatPattern renders dt with a caller-supplied pattern such as
// "dd/MM/yyyy HH:mm". An unrecognized pattern is an [ErrInvalidArgument]
// that also wraps the pattern package error.
func FormatPattern(dt civil.DateTime, p string) (string, error) {
	if err := checkDateTime("dateTime", dt); err != nil {
		return "", err
	}
	f, err := pattern.Compile(p)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return f.Format(dt), nil
}

// FormatStyle renders dt with a combined date and time style of the
// default locale (en-US), e.g. "Jun 15, 2023, 2:30:00 PM" for [StyleMedium].
func FormatStyle(dt civil.DateTime, style Style) (string, error) {
	return FormatStyleIn(dt, style, locale.Default())
}

// FormatStyleIn is like [FormatStyle] for an explicit locale.
func FormatStyleIn(dt civil.DateTime, style Style, loc *locale.Locale) (string, error) {
	if err := checkDateTime("dateTime", dt); err != nil {
		return "", err
	}
	if style == 0 {
		return "", fmt.Errorf("%w: dateTimeStyle argument cannot be zero", ErrInvalidArgument)
	}
	if loc == nil {
		return "", fmt.Errorf("%w: locale argument cannot be nil", ErrInvalidArgument)
	}
	f, err := loc.Formatter(style)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return f.Format(dt), nil
}

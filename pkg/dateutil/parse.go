package dateutil

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/sgaunet/dateutil/pkg/pattern"
)

// Parse reads text written with [DefaultPattern]. Malformed or empty text
// and impossible dates or times (2023-02-30, 24:00:00) fail with
// [ErrInvalidArgument] wrapping the *pattern.ParseError.
func Parse(text string) (civil.DateTime, error) {
	return ParseWith(text, defaultFormatter)
}

// ParseWith reads text with a caller-supplied formatter.
func ParseWith(text string, f *pattern.Formatter) (civil.DateTime, error) {
	if f == nil {
		return civil.DateTime{}, fmt.Errorf("%w: formatter argument cannot be nil", ErrInvalidArgument)
	}
	dt, err := f.Parse(text)
	if err != nil {
		return civil.DateTime{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return dt, nil
}

// ParsePattern compiles p and reads text with it.
func ParsePattern(text, p string) (civil.DateTime, error) {
	f, err := pattern.Compile(p)
	if err != nil {
		return civil.DateTime{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return ParseWith(text, f)
}

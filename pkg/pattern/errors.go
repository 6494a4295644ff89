package pattern

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by [Compile].
var (
	// ErrUnknownLetter is returned for an ASCII letter with no meaning in a pattern.
	ErrUnknownLetter = errors.New("unknown pattern letter")

	// ErrUnsupportedField is returned for letters naming time-zone or week-based fields.
	ErrUnsupportedField = errors.New("unsupported pattern field")

	// ErrTooManyLetters is returned when a letter is repeated more often than it allows.
	ErrTooManyLetters = errors.New("too many pattern letters")

	// ErrUnterminatedQuote is returned when quoted text is not closed.
	ErrUnterminatedQuote = errors.New("pattern ends inside quoted text")

	// ErrUnbalancedSection is returned for a ']' without '[' or an unclosed '['.
	ErrUnbalancedSection = errors.New("unbalanced optional section")

	// ErrReservedChar is returned for '{', '}' and '#'.
	ErrReservedChar = errors.New("reserved pattern character")
)

// ParseError reports text that does not match a [Formatter].
// Index is the byte offset of the failure, or -1 when the text matched
// but its fields could not be resolved to a date-time.
type ParseError struct {
	Text  string
	Index int
	Msg   string
}

func (e *ParseError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("text %q could not be parsed: %s", e.Text, e.Msg)
	}
	return fmt.Sprintf("text %q could not be parsed at index %d: %s", e.Text, e.Index, e.Msg)
}

func parseError(text string, index int, msg string) *ParseError {
	return &ParseError{Text: text, Index: index, Msg: msg}
}

// Package pattern implements the letter-based date-time pattern language
// ("yyyy-MM-dd HH:mm:ss") used to format and parse civil date-times.
//
// A pattern is compiled once into an immutable [Formatter]:
//
//	f, err := pattern.Compile("dd MMM yyyy, HH:mm")
//	s := f.Format(dt)          // "15 Jun 2023, 14:30"
//	dt, err = f.Parse(s)
//
// Letters are described in the table below; the number of repetitions
// selects the width or text form. Text between single quotes is literal,
// two single quotes print one, and '[' ']' delimit an optional section.
//
//	G  era              u  year            y  year of era
//	Q  quarter          M  month           L  month (stand-alone)
//	d  day of month     D  day of year     E  day of week
//	a  am/pm            h  hour 1-12       K  hour 0-11
//	k  hour 1-24        H  hour 0-23       m  minute
//	s  second           S  fraction        n  nanosecond
//
// Time-zone and week-based letters are rejected, since the values carry
// no zone and no week rules.
package pattern

import (
	"fmt"
	"strings"
)

type kind int

const (
	kindLiteral kind = iota
	kindField
	kindOptional
)

type element struct {
	kind     kind
	literal  string
	letter   byte
	count    int
	reserve  int // digits left for adjacent fixed-width fields when parsing
	children []element
}

// maxLetters lists the supported letters and how often each may repeat.
var maxLetters = map[byte]int{
	'G': 5, 'u': 19, 'y': 19, 'Q': 5, 'q': 5, 'M': 5, 'L': 5,
	'd': 2, 'D': 3, 'E': 5, 'a': 1,
	'h': 2, 'K': 2, 'k': 2, 'H': 2, 'm': 2, 's': 2,
	'S': 9, 'n': 19,
}

const unsupportedLetters = "VzOXxZYwWecF"

// Formatter formats and parses civil date-times according to a compiled pattern.
// A Formatter is immutable and safe for concurrent use.
type Formatter struct {
	pattern string
	elems   []element
	symbols *Symbols
}

// Compile parses a pattern into a Formatter using [English] symbols.
func Compile(pattern string) (*Formatter, error) {
	elems, err := compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	return &Formatter{pattern: pattern, elems: elems, symbols: English}, nil
}

// MustCompile is like [Compile] but panics if the pattern is invalid.
func MustCompile(pattern string) *Formatter {
	f, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return f
}

// WithSymbols returns a copy of f that prints and accepts the given locale text.
// A nil s selects [English].
func (f *Formatter) WithSymbols(s *Symbols) *Formatter {
	if s == nil {
		s = English
	}
	return &Formatter{pattern: f.pattern, elems: f.elems, symbols: s}
}

// Pattern returns the source pattern.
func (f *Formatter) Pattern() string {
	return f.pattern
}

func (f *Formatter) String() string {
	return f.pattern
}

func compile(pattern string) ([]element, error) {
	stack := [][]element{nil}
	top := func() *[]element { return &stack[len(stack)-1] }

	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch {
		case c == '\'':
			lit, next, err := readQuoted(pattern, i)
			if err != nil {
				return nil, err
			}
			appendLiteral(top(), lit)
			i = next
		case c == '[':
			stack = append(stack, nil)
			i++
		case c == ']':
			if len(stack) == 1 {
				return nil, fmt.Errorf("%w: ']' at index %d", ErrUnbalancedSection, i)
			}
			section := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			*top() = append(*top(), element{kind: kindOptional, children: section})
			i++
		case c == '{' || c == '}' || c == '#':
			return nil, fmt.Errorf("%w: %q at index %d", ErrReservedChar, c, i)
		case isLetter(c):
			j := i
			for j < len(pattern) && pattern[j] == c {
				j++
			}
			if err := checkLetter(c, j-i); err != nil {
				return nil, err
			}
			*top() = append(*top(), element{kind: kindField, letter: c, count: j - i})
			i = j
		default:
			appendLiteral(top(), pattern[i:i+1])
			i++
		}
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("%w: unclosed '['", ErrUnbalancedSection)
	}
	elems := stack[0]
	computeReserve(elems)
	return elems, nil
}

// readQuoted reads quoted text starting at the quote at index i.
func readQuoted(pattern string, i int) (string, int, error) {
	if i+1 < len(pattern) && pattern[i+1] == '\'' {
		return "'", i + 2, nil
	}
	var b strings.Builder
	for j := i + 1; j < len(pattern); j++ {
		if pattern[j] != '\'' {
			b.WriteByte(pattern[j])
			continue
		}
		if j+1 < len(pattern) && pattern[j+1] == '\'' {
			b.WriteByte('\'')
			j++
			continue
		}
		return b.String(), j + 1, nil
	}
	return "", 0, fmt.Errorf("%w: quote at index %d", ErrUnterminatedQuote, i)
}

func appendLiteral(elems *[]element, lit string) {
	if lit == "" {
		return
	}
	if n := len(*elems); n > 0 && (*elems)[n-1].kind == kindLiteral {
		(*elems)[n-1].literal += lit
		return
	}
	*elems = append(*elems, element{kind: kindLiteral, literal: lit})
}

func checkLetter(c byte, count int) error {
	limit, ok := maxLetters[c]
	if !ok {
		if strings.IndexByte(unsupportedLetters, c) >= 0 {
			return fmt.Errorf("%w: %q", ErrUnsupportedField, c)
		}
		return fmt.Errorf("%w: %q", ErrUnknownLetter, c)
	}
	if count > limit {
		return fmt.Errorf("%w: %s", ErrTooManyLetters, strings.Repeat(string(c), count))
	}
	return nil
}

// computeReserve records, for every variable-width number, how many digits the
// fixed-width numbers directly after it need, so "yyyyMMdd" can be parsed.
func computeReserve(elems []element) {
	for i := range elems {
		if elems[i].kind == kindOptional {
			computeReserve(elems[i].children)
			continue
		}
		if !elems[i].numeric() {
			continue
		}
		if _, fixed := elems[i].fixedWidth(); fixed {
			continue
		}
		reserve := 0
		for _, next := range elems[i+1:] {
			w, fixed := next.fixedWidth()
			if !fixed {
				break
			}
			reserve += w
		}
		elems[i].reserve = reserve
	}
}

func (e element) numeric() bool {
	if e.kind != kindField {
		return false
	}
	switch e.letter {
	case 'G', 'E', 'a':
		return false
	case 'M', 'L', 'Q', 'q':
		return e.count <= 2
	default:
		return true
	}
}

func (e element) fixedWidth() (int, bool) {
	if !e.numeric() {
		return 0, false
	}
	switch e.letter {
	case 'u', 'y', 'M', 'L', 'd', 'h', 'K', 'k', 'H', 'm', 's':
		return 2, e.count == 2
	case 'D':
		return 3, e.count == 3
	case 'Q', 'q', 'S':
		return e.count, true
	default:
		return 0, false
	}
}

// exceedsPad reports whether a year field prints a '+' once the value is
// wider than the letter count.
func (e element) exceedsPad() bool {
	return (e.letter == 'u' || e.letter == 'y') && e.count >= 4
}

// widths returns the minimum and maximum number of digits a numeric field accepts.
func (e element) widths() (int, int) {
	if w, fixed := e.fixedWidth(); fixed {
		return w, w
	}
	switch e.letter {
	case 'u', 'y':
		return e.count, max(e.count, 10)
	case 'D':
		return e.count, 3
	case 'n':
		return e.count, max(e.count, 9)
	default:
		return 1, 2
	}
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

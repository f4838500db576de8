package shorthand

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

const anchor = "now"

// Expression is a tokenized shorthand expression. The zero value means "now".
type Expression struct {
	// Magnitude is the signed offset; zero when Unit is NoUnit.
	Magnitude int64
	Unit      Unit
	Round     Unit
	// Zone is the quoted timezone name, if any.
	Zone string
}

// Tokenize splits s into an Expression. ok is false with a nil error when s
// does not look like a shorthand expression at all.
func Tokenize(s string) (expr Expression, ok bool, err error) {
	rest, zone, ok := cutQuotedZone(s)
	if !ok {
		return Expression{}, false, nil
	}
	expr.Zone = zone

	rest = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, rest)

	offset, ok := trimAnchor(rest)
	if !ok {
		return Expression{}, false, nil
	}
	if offset == "" {
		return expr, true, nil
	}

	switch strings.Count(offset, "/") {
	case 0:
	case 1:
		i := strings.IndexByte(offset, '/')
		last := offset[len(offset)-1]
		if i != len(offset)-2 || !isUnitLetter(last) {
			return Expression{}, true, fmt.Errorf("%w in %q", ErrMalformedRounding, s)
		}
		expr.Round = unitLetters[last]
		offset = offset[:i]
	default:
		return Expression{}, true, fmt.Errorf("%w in %q: more than one '/'", ErrMalformedRounding, s)
	}

	if offset != "" {
		expr.Magnitude, expr.Unit, err = scanOffset(offset)
		if err != nil {
			return Expression{}, true, fmt.Errorf("offset in %q: %w", s, err)
		}
	}
	return expr, true, nil
}

// trimAnchor strips the anchor keyword. A leading sign or separator implies
// the anchor. Text such as "nowhere" is not an anchor.
func trimAnchor(s string) (string, bool) {
	rest, found := strings.CutPrefix(s, anchor)
	if !found && rest == "" {
		return "", false
	}
	if rest == "" {
		return "", true
	}
	switch rest[0] {
	case '+', '-', '/':
		return rest, true
	}
	return "", false
}

// scanOffset reads a sign, an optional magnitude and a unit letter. A bare
// sign followed by a unit means one unit; a bare sign alone is no offset.
func scanOffset(s string) (int64, Unit, error) {
	sign := int64(1)
	if s[0] == '-' {
		sign = -1
	}
	num, n := scanNumber(s[1:])
	unitText := s[1+n:]

	if unitText == "" {
		if n == 0 {
			return 0, NoUnit, nil
		}
		return 0, NoUnit, fmt.Errorf("%w: missing unit after %q", ErrInvalidUnit, num)
	}
	u, err := ParseUnit(unitText)
	if err != nil {
		return 0, NoUnit, err
	}
	if n == 0 {
		return sign, u, nil
	}
	m, err := parseMagnitude(num)
	if err != nil {
		return 0, NoUnit, err
	}
	return sign * m, u, nil
}

// scanNumber returns the longest number at the start of s with thousands
// separators removed, and the number of bytes consumed. Accepted forms are
// 12, 1,000, 1.5, .5 and 2e3.
func scanNumber(s string) (string, int) {
	var buf strings.Builder
	i := 0
	digits := func() int {
		start := i
		for i < len(s) && isDigit(s[i]) {
			buf.WriteByte(s[i])
			i++
		}
		return i - start
	}

	leadingDot := i < len(s) && s[i] == '.'
	if leadingDot {
		buf.WriteByte('.')
		i++
	}
	if digits() == 0 {
		return "", 0
	}
	if !leadingDot {
		for i+4 <= len(s) && s[i] == ',' && allDigits(s[i+1:i+4]) && (i+4 == len(s) || !isDigit(s[i+4])) {
			buf.WriteString(s[i+1 : i+4])
			i += 4
		}
		if i < len(s) && s[i] == '.' {
			buf.WriteByte('.')
			i++
			digits()
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			buf.WriteString(s[i:j])
			i = j
			digits()
		}
	}
	return buf.String(), i
}

// parseMagnitude truncates a scanned number toward zero.
func parseMagnitude(num string) (int64, error) {
	if n, err := strconv.ParseInt(num, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil || f >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: magnitude %s", ErrRangeExceeded, num)
	}
	return int64(math.Trunc(f)), nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

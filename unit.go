package shorthand

import "fmt"

// Unit is one of the calendar units understood in offsets and rounding
// directives.
type Unit int

const (
	NoUnit Unit = iota
	UnitSecond
	UnitMinute
	UnitHour
	UnitDay
	UnitWeek
	UnitMonth
	UnitYear
)

// Letters are case sensitive: "m" is a minute and "M" is a month.
var unitLetters = map[byte]Unit{
	's': UnitSecond,
	'm': UnitMinute,
	'h': UnitHour,
	'H': UnitHour,
	'd': UnitDay,
	'W': UnitWeek,
	'M': UnitMonth,
	'Y': UnitYear,
}

func isUnitLetter(c byte) bool {
	_, ok := unitLetters[c]
	return ok
}

// ParseUnit returns the unit for a single unit letter.
func ParseUnit(s string) (Unit, error) {
	if len(s) == 1 {
		if u, ok := unitLetters[s[0]]; ok {
			return u, nil
		}
	}
	return NoUnit, fmt.Errorf("%w %q", ErrInvalidUnit, s)
}

// Letter returns the canonical letter for u, or "" for NoUnit.
func (u Unit) Letter() string {
	switch u {
	case UnitSecond:
		return "s"
	case UnitMinute:
		return "m"
	case UnitHour:
		return "h"
	case UnitDay:
		return "d"
	case UnitWeek:
		return "W"
	case UnitMonth:
		return "M"
	case UnitYear:
		return "Y"
	}
	return ""
}

func (u Unit) String() string {
	switch u {
	case NoUnit:
		return "none"
	case UnitSecond:
		return "second"
	case UnitMinute:
		return "minute"
	case UnitHour:
		return "hour"
	case UnitDay:
		return "day"
	case UnitWeek:
		return "week"
	case UnitMonth:
		return "month"
	case UnitYear:
		return "year"
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

package shorthand

import (
	"fmt"
	"time"
)

// Round truncates t down to the start of the enclosing period of u, keeping
// t's location. Weeks start on Monday.
//
// Seconds, minutes and hours are cut from the instant itself so a time in a
// repeated hour stays in that hour.
func Round(t time.Time, u Unit) (time.Time, error) {
	year, month, day := t.Date()
	_, minute, sec := t.Clock()
	loc := t.Location()
	nsec := time.Duration(t.Nanosecond())

	switch u {
	case UnitSecond:
		return t.Add(-nsec), nil
	case UnitMinute:
		return t.Add(-(time.Duration(sec)*time.Second + nsec)), nil
	case UnitHour:
		return t.Add(-(time.Duration(minute)*time.Minute + time.Duration(sec)*time.Second + nsec)), nil
	case UnitDay:
		return time.Date(year, month, day, 0, 0, 0, 0, loc), nil
	case UnitWeek:
		sinceMonday := (int(t.Weekday()) + 6) % 7
		return time.Date(year, month, day-sinceMonday, 0, 0, 0, 0, loc), nil
	case UnitMonth:
		return time.Date(year, month, 1, 0, 0, 0, 0, loc), nil
	case UnitYear:
		return time.Date(year, time.January, 1, 0, 0, 0, 0, loc), nil
	}
	return time.Time{}, fmt.Errorf("%w %v", ErrInvalidTarget, u)
}

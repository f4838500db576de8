package shorthand

import (
	"fmt"
	"math"
	"time"
)

const (
	// Months and years are fixed multiples of a week rather than calendar
	// arithmetic. The ratios are part of the format and must not change.
	weeksPerMonth = 4.34524
	weeksPerYear  = 52.177142857142854

	// The month approximation drifts by more than a day outside this span.
	// Bounds are exclusive.
	maxMonths = 600

	week = 7 * 24 * time.Hour
)

var fixedUnits = map[Unit]time.Duration{
	UnitSecond: time.Second,
	UnitMinute: time.Minute,
	UnitHour:   time.Hour,
	UnitDay:    24 * time.Hour,
	UnitWeek:   week,
}

// UnitDuration converts magnitude units of u to a fixed span.
func UnitDuration(magnitude int64, u Unit) (time.Duration, error) {
	if d, ok := fixedUnits[u]; ok {
		limit := int64(math.MaxInt64 / d)
		if magnitude > limit || magnitude < -limit {
			return 0, &RangeError{Unit: u, Value: magnitude, Min: -limit - 1, Max: limit + 1}
		}
		return time.Duration(magnitude) * d, nil
	}

	switch u {
	case UnitMonth:
		if magnitude <= -maxMonths || magnitude >= maxMonths {
			return 0, &RangeError{Unit: u, Value: magnitude, Min: -maxMonths, Max: maxMonths}
		}
		return weeks(magnitude, weeksPerMonth, u)
	case UnitYear:
		return weeks(magnitude, weeksPerYear, u)
	}
	return 0, fmt.Errorf("%w %v", ErrInvalidUnit, u)
}

// weeks returns magnitude*ratio weeks rounded to the nearest microsecond.
func weeks(magnitude int64, ratio float64, u Unit) (time.Duration, error) {
	const maxMicros = math.MaxInt64 / 1000
	perUnit := ratio * float64(week/time.Microsecond)
	micros := math.RoundToEven(float64(magnitude) * perUnit)
	if math.Abs(micros) > maxMicros {
		limit := int64(maxMicros / perUnit)
		return 0, &RangeError{Unit: u, Value: magnitude, Min: -limit - 1, Max: limit + 1}
	}
	return time.Duration(micros) * time.Microsecond, nil
}

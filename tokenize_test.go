package shorthand

import (
	"errors"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		in   string
		want Expression
	}{
		{"now", Expression{}},
		{"now-6d/d", Expression{Magnitude: -6, Unit: UnitDay, Round: UnitDay}},
		{"now+1M", Expression{Magnitude: 1, Unit: UnitMonth}},
		{"now/Y", Expression{Round: UnitYear}},
		{"now - 6 d / d", Expression{Magnitude: -6, Unit: UnitDay, Round: UnitDay}},
		{"now+W", Expression{Magnitude: 1, Unit: UnitWeek}},
		{"now-W", Expression{Magnitude: -1, Unit: UnitWeek}},
		{"now-", Expression{}},
		{"-12h", Expression{Magnitude: -12, Unit: UnitHour}},
		{"/M", Expression{Round: UnitMonth}},
		{"now+1,500,000s", Expression{Magnitude: 1500000, Unit: UnitSecond}},
		{"now-2.75Y", Expression{Magnitude: -2, Unit: UnitYear}},
		{"now+1.5e2m", Expression{Magnitude: 150, Unit: UnitMinute}},
		{"now-1d/d 'Europe/Paris'", Expression{Magnitude: -1, Unit: UnitDay, Round: UnitDay, Zone: "Europe/Paris"}},
		{`now "America/Argentina/Buenos_Aires" -3d`, Expression{Magnitude: -3, Unit: UnitDay, Zone: "America/Argentina/Buenos_Aires"}},
		// Unit letters in the zone name do not leak into the offset.
		{"now 'Mars dYMW'", Expression{Zone: "Mars dYMW"}},
	}
	for _, c := range cases {
		actual, ok, err := Tokenize(c.in)
		if err != nil || !ok {
			t.Errorf("%q: ok=%v err=%v", c.in, ok, err)
			continue
		}
		if actual != c.want {
			t.Errorf("%q: %+v (actual) != %+v (expected)", c.in, actual, c.want)
		}
	}
}

func TestTokenizeMalformedRoundingIsConsistent(t *testing.T) {
	for _, s := range []string{"now/", "now/x", "now/d/d", "now/dM", "now-1d//d"} {
		_, ok, err := Tokenize(s)
		if !ok || !errors.Is(err, ErrMalformedRounding) {
			t.Errorf("%q: ok=%v err=%v", s, ok, err)
		}
	}
}

func TestScanNumber(t *testing.T) {
	cases := []struct {
		in   string
		num  string
		size int
	}{
		{"12d", "12", 2},
		{"1,000d", "1000", 5},
		{"1,00d", "1", 1},
		{"1,0000d", "1", 1},
		{"1.5e2s", "1.5e2", 5},
		{"2E-1s", "2E-1", 4},
		{".5d", ".5", 2},
		{"3.d", "3.", 2},
		{"2ed", "2", 1},
		{"d", "", 0},
		{".d", "", 0},
		{"", "", 0},
	}
	for _, c := range cases {
		num, size := scanNumber(c.in)
		if num != c.num || size != c.size {
			t.Errorf("%q: (%q, %d) (actual) != (%q, %d) (expected)", c.in, num, size, c.num, c.size)
		}
	}
}

func TestParseUnit(t *testing.T) {
	for letter, want := range map[string]Unit{
		"s": UnitSecond, "m": UnitMinute, "h": UnitHour, "H": UnitHour,
		"d": UnitDay, "W": UnitWeek, "M": UnitMonth, "Y": UnitYear,
	} {
		u, err := ParseUnit(letter)
		if err != nil || u != want {
			t.Errorf("%q: %v, %v", letter, u, err)
		}
	}
	for _, letter := range []string{"", "w", "y", "D", "S", "min", "dd"} {
		if _, err := ParseUnit(letter); !errors.Is(err, ErrInvalidUnit) {
			t.Errorf("%q: expected invalid unit, got %v", letter, err)
		}
	}
}

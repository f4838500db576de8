// Package shorthand parses relative time expressions such as "now-6d/d",
// "now+1M" or "now/Y 'Europe/Paris'" into absolute times.
//
//	Shorthand := "now" [Offset] ["/" Unit] [QuotedZone]
//	Offset    := ("+" | "-") [Magnitude] Unit
//	Unit      := "s" | "m" | "h" | "H" | "d" | "W" | "M" | "Y"
//
// Whitespace outside the quoted zone is ignored. A leading sign or "/"
// implies "now".
package shorthand

import (
	"log/slog"
	"time"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to a Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// FixedClock always returns the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

var SystemClock Clock = ClockFunc(time.Now)

type Option func(*Parser)

func WithClock(c Clock) Option {
	return func(p *Parser) { p.clock = c }
}

// WithLocation sets the zone used when the expression and the caller give
// none. Without it "now" keeps the clock's location.
func WithLocation(loc *time.Location) Option {
	return func(p *Parser) { p.loc = loc }
}

func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) { p.logger = l }
}

// Parser evaluates shorthand expressions against a clock. It is safe for
// concurrent use.
type Parser struct {
	clock  Clock
	loc    *time.Location
	logger *slog.Logger
}

func New(opts ...Option) *Parser {
	p := &Parser{clock: SystemClock}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Parser) log() *slog.Logger {
	if p.logger != nil {
		return p.logger
	}
	return slog.Default()
}

// Parse evaluates s. ok is false with a nil error when s is not a shorthand
// expression; err is non-nil when it is one but is malformed.
func (p *Parser) Parse(s string) (t time.Time, ok bool, err error) {
	return p.ParseIn(s, "")
}

// ParseIn is Parse with an explicit timezone. When s also carries a quoted
// zone, tz wins and a warning is logged.
func (p *Parser) ParseIn(s, tz string) (t time.Time, ok bool, err error) {
	expr, ok, err := Tokenize(s)
	if !ok || err != nil {
		return time.Time{}, ok, err
	}
	p.log().Debug("tokens", "input", s, "magnitude", expr.Magnitude,
		"unit", expr.Unit.Letter(), "round", expr.Round.Letter(), "zone", expr.Zone)

	zone := expr.Zone
	if tz != "" {
		if zone != "" && zone != tz {
			p.log().Warn("timezone given twice, using explicit timezone",
				"input", s, "explicit", tz, "quoted", zone)
		}
		zone = tz
	}

	now := p.clock.Now()
	if zone != "" {
		loc, err := LoadLocation(zone)
		if err != nil {
			return time.Time{}, true, err
		}
		now = now.In(loc)
	} else if p.loc != nil {
		now = now.In(p.loc)
	}

	t, err = expr.Apply(now)
	if err != nil {
		return time.Time{}, true, err
	}
	return t, true, nil
}

// Apply shifts now by the expression's offset and then rounds it.
func (e Expression) Apply(now time.Time) (time.Time, error) {
	t := now
	if e.Unit != NoUnit {
		d, err := UnitDuration(e.Magnitude, e.Unit)
		if err != nil {
			return time.Time{}, err
		}
		t = t.Add(d)
	}
	if e.Round != NoUnit {
		return Round(t, e.Round)
	}
	return t, nil
}

var std = New()

// Parse evaluates s against the system clock.
func Parse(s string) (time.Time, bool, error) {
	return std.Parse(s)
}

// ParseIn evaluates s against the system clock in timezone tz.
func ParseIn(s, tz string) (time.Time, bool, error) {
	return std.ParseIn(s, tz)
}

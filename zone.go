package shorthand

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
	"unicode"
)

// ZoneOffset is a fixed UTC offset such as +05:30.
type ZoneOffset struct {
	Hours   int
	Minutes int
}

func (z ZoneOffset) Location() *time.Location {
	return time.FixedZone(z.String(), z.Hours*3600+z.Minutes*60)
}

func (z ZoneOffset) String() string {
	sign := '+'
	h, m := z.Hours, z.Minutes
	if h < 0 || m < 0 {
		sign = '-'
		h, m = -h, -m
	}
	return fmt.Sprintf("%c%02d:%02d", sign, h, m)
}

var regexpZoneOffset = regexp.MustCompile(`^([+-])(\d\d)(?::?(\d\d))?$`)

func parseZoneOffset(s string) (ZoneOffset, bool) {
	match := regexpZoneOffset.FindStringSubmatch(s)
	if match == nil {
		return ZoneOffset{}, false
	}
	h, _ := strconv.Atoi(match[2])
	var m int
	if match[3] != "" {
		m, _ = strconv.Atoi(match[3])
	}
	if h > 23 || m > 59 {
		return ZoneOffset{}, false
	}
	if match[1] == "-" {
		h, m = -h, -m
	}
	return ZoneOffset{h, m}, true
}

// LoadLocation resolves a timezone designator. It accepts UTC aliases,
// "local", numeric offsets (+05, +0530, +05:30) and IANA names from the
// embedded tz database.
func LoadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	switch strings.ToLower(name) {
	case "utc", "z", "gmt":
		return time.UTC, nil
	case "local":
		return time.Local, nil
	case "":
		return nil, fmt.Errorf("%w: empty name", ErrUnknownTimezone)
	}
	if z, ok := parseZoneOffset(name); ok {
		return z.Location(), nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrUnknownTimezone, name, err)
	}
	return loc, nil
}

// cutQuotedZone removes a single quoted timezone segment from s. The quote
// must follow some non-space text. ok is false for unterminated or repeated
// quoted segments.
func cutQuotedZone(s string) (rest, zone string, ok bool) {
	open := strings.IndexAny(s, `'"`)
	if open < 0 {
		return s, "", true
	}
	if strings.TrimFunc(s[:open], unicode.IsSpace) == "" {
		return s, "", false
	}
	quote := s[open]
	end := strings.IndexByte(s[open+1:], quote)
	if end < 0 {
		return s, "", false
	}
	zone = s[open+1 : open+1+end]
	rest = s[:open] + s[open+1+end+1:]
	if strings.ContainsAny(rest, `'"`) {
		return s, "", false
	}
	return rest, zone, true
}

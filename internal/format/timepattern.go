// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

package format

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxFractionalDigits is the most decimal places a time pattern may ask for.
const MaxFractionalDigits = 6

// Zone selects the clock a timestamp is printed in.
type Zone uint8

const (
	ZoneLocal Zone = iota
	ZoneUTC
)

func (z Zone) String() string {
	if z == ZoneUTC {
		return "utc"
	}
	return "local"
}

// MarshalText encodes the zone by name.
func (z Zone) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

// TimeField identifies the timestamp component a time directive prints.
type TimeField uint8

const (
	// TimeLiteral marks a directive that prints its own text.
	TimeLiteral TimeField = iota
	TimeYear
	TimeYearShort
	TimeHour24
	TimeHour12Padded
	TimeHour12
	TimeMeridiemLower
	TimeMeridiemUpper
	TimeMonthPadded
	TimeMonth
	TimeMonthName
	TimeMonthAbbr
	TimeDayPadded
	TimeDay
	TimeDaySpace
	TimeWeekday
	TimeWeekdayAbbr
	TimeMinutePadded
	TimeMinute
	TimeSecondPadded
	TimeSecond
	TimeFraction
)

var timeFieldNames = [...]string{
	TimeLiteral:       "literal",
	TimeYear:          "year",
	TimeYearShort:     "year_short",
	TimeHour24:        "hour24",
	TimeHour12Padded:  "hour12_padded",
	TimeHour12:        "hour12",
	TimeMeridiemLower: "meridiem_lower",
	TimeMeridiemUpper: "meridiem_upper",
	TimeMonthPadded:   "month_padded",
	TimeMonth:         "month",
	TimeMonthName:     "month_name",
	TimeMonthAbbr:     "month_abbr",
	TimeDayPadded:     "day_padded",
	TimeDay:           "day",
	TimeDaySpace:      "day_space",
	TimeWeekday:       "weekday",
	TimeWeekdayAbbr:   "weekday_abbr",
	TimeMinutePadded:  "minute_padded",
	TimeMinute:        "minute",
	TimeSecondPadded:  "second_padded",
	TimeSecond:        "second",
	TimeFraction:      "fraction",
}

func (f TimeField) String() string {
	if int(f) < len(timeFieldNames) {
		return timeFieldNames[f]
	}
	return "unknown"
}

// MarshalText encodes the field by name.
func (f TimeField) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// TimeFormat is a compiled time format.
//
// A named format (rfc3339, unix, ...) has Name set and no directives. A
// custom pattern has Directives and Selectors of equal length: Directives[i]
// is a printf fragment and Selectors[i] names the value it consumes, or
// TimeLiteral when the fragment is plain text (with % doubled).
type TimeFormat struct {
	Name       string      `json:"name,omitempty"`
	Zone       Zone        `json:"zone"`
	Directives []string    `json:"directives,omitempty"`
	Selectors  []TimeField `json:"selectors,omitempty"`
}

// Named time formats accepted by time_format.
const (
	TimeRFC3339     = "rfc3339"
	TimeRFC3339Nano = "rfc3339nano"
	TimeUnix        = "unix"
	TimeUnixMilli   = "unix_ms"
)

// IsNamedTimeFormat reports whether s is one of the named time formats.
func IsNamedTimeFormat(s string) bool {
	switch s {
	case TimeRFC3339, TimeRFC3339Nano, TimeUnix, TimeUnixMilli:
		return true
	}
	return false
}

type timeToken struct {
	text      string
	directive string
	field     TimeField
}

// timeTokens is scanned in order and the first match wins. A token must come
// before every shorter token that is a prefix of it ("2006" before "2",
// "15" before "1", "January" before "Jan").
var timeTokens = []timeToken{
	{"January", "%s", TimeMonthName},
	{"Monday", "%s", TimeWeekday},
	{"2006", "%04d", TimeYear},
	{"Jan", "%s", TimeMonthAbbr},
	{"Mon", "%s", TimeWeekdayAbbr},
	{"_2", "%2d", TimeDaySpace},
	{"15", "%02d", TimeHour24},
	{"01", "%02d", TimeMonthPadded},
	{"02", "%02d", TimeDayPadded},
	{"03", "%02d", TimeHour12Padded},
	{"04", "%02d", TimeMinutePadded},
	{"05", "%02d", TimeSecondPadded},
	{"06", "%02d", TimeYearShort},
	{"PM", "%s", TimeMeridiemUpper},
	{"pm", "%s", TimeMeridiemLower},
	{"1", "%d", TimeMonth},
	{"2", "%d", TimeDay},
	{"3", "%d", TimeHour12},
	{"4", "%d", TimeMinute},
	{"5", "%d", TimeSecond},
}

// CompileTimePattern compiles a pattern written in terms of the reference
// time Mon Jan 2 15:04:05 2006. A leading "utc:" or "local:" selects the
// zone (default local). A "." followed by one to six zeros and no further
// digit is a fractional second with that many places; a run of seven or
// more fails with ErrExcessiveFractionalDigits whatever follows it.
// Anything else that is not a token is kept as literal text, one directive
// per character.
func CompileTimePattern(pattern string) (TimeFormat, error) {
	tf := TimeFormat{Zone: ZoneLocal}
	switch {
	case strings.HasPrefix(pattern, "utc:"):
		tf.Zone = ZoneUTC
		pattern = pattern[len("utc:"):]
	case strings.HasPrefix(pattern, "local:"):
		pattern = pattern[len("local:"):]
	}

	for pos := 0; pos < len(pattern); {
		if digits := fractionDigits(pattern[pos:]); digits > 0 {
			if digits > MaxFractionalDigits {
				return TimeFormat{}, fmt.Errorf("%w: %d zeros at offset %d, at most %d allowed",
					ErrExcessiveFractionalDigits, digits, pos, MaxFractionalDigits)
			}
			tf.add(".", TimeLiteral)
			tf.add(fmt.Sprintf("%%0%dd", digits), TimeFraction)
			pos += 1 + digits
			continue
		}

		// "_2006" is "_" followed by the year, not a space-padded day.
		if strings.HasPrefix(pattern[pos:], "_2006") {
			tf.add("_", TimeLiteral)
			pos++
			continue
		}

		if tok, ok := matchTimeToken(pattern[pos:]); ok {
			tf.add(tok.directive, tok.field)
			pos += len(tok.text)
			continue
		}

		_, size := utf8.DecodeRuneInString(pattern[pos:])
		tf.add(strings.ReplaceAll(pattern[pos:pos+size], "%", "%%"), TimeLiteral)
		pos += size
	}

	return tf, nil
}

func (tf *TimeFormat) add(directive string, field TimeField) {
	tf.Directives = append(tf.Directives, directive)
	tf.Selectors = append(tf.Selectors, field)
}

func matchTimeToken(s string) (timeToken, bool) {
	for _, tok := range timeTokens {
		if strings.HasPrefix(s, tok.text) {
			return tok, true
		}
	}
	return timeToken{}, false
}

// fractionDigits returns the length of the run of zeros after a leading
// ".", or 0 when s does not start with ".0". A run of at most
// MaxFractionalDigits zeros followed by another digit is not a fraction
// ("2006.01.02"); a longer run always is, so it can be rejected.
func fractionDigits(s string) int {
	if len(s) < 2 || s[0] != '.' || s[1] != '0' {
		return 0
	}
	n := 1
	for n+1 < len(s) && s[n+1] == '0' {
		n++
	}
	if n <= MaxFractionalDigits && n+1 < len(s) && s[n+1] >= '0' && s[n+1] <= '9' {
		return 0
	}
	return n
}

package iso8601

import (
	"fmt"
	"strings"
)

// TimeLength identifies the precision of a rendered Zulu timestamp by its
// exact character length before the trailing 'Z'.
type TimeLength int

const (
	Hour TimeLength = iota
	Minute
	Second
	Millis
	Micros
	Nanos
)

var zlessLengths = [...]int{
	Hour:   13,
	Minute: 16,
	Second: 19,
	Millis: 23,
	Micros: 26,
	Nanos:  29,
}

var timeLengthNames = [...]string{
	Hour:   "hour",
	Minute: "minute",
	Second: "second",
	Millis: "millis",
	Micros: "micros",
	Nanos:  "nanos",
}

// exampleTimestamp supplies the padding characters when expanding to a longer
// precision; missing fields become zeros, never recomputed values.
const exampleTimestamp = "yyyy-mm-ddT00:00:00.000000000Z" // 30 long

func (l TimeLength) String() string {
	if l < Hour || l > Nanos {
		return fmt.Sprintf("TimeLength(%d)", int(l))
	}
	return timeLengthNames[l]
}

// ParseTimeLength maps a precision name (hour, minute, second, millis, micros,
// nanos) to its TimeLength, case-insensitively.
func ParseTimeLength(name string) (TimeLength, error) {
	lowered := strings.ToLower(strings.TrimSpace(name))
	for l, n := range timeLengthNames {
		if n == lowered {
			return TimeLength(l), nil
		}
	}
	return 0, fmt.Errorf("unknown time length %q", name)
}

// adjust truncates or zero-pads a well-formed Zulu timestamp to this length.
func (l TimeLength) adjust(iso8601z string) string {
	zlessLength := len(iso8601z) - 1
	expected := zlessLengths[l]
	if expected < zlessLength {
		return iso8601z[:expected] + "Z"
	}
	return iso8601z[:zlessLength] + exampleTimestamp[zlessLength:expected] + "Z"
}

// timeLengthOf determines the current precision from the exact length of the
// Zulu string, or reports false when no breakpoint matches.
func timeLengthOf(iso8601z string) (TimeLength, bool) {
	if !strings.HasSuffix(iso8601z, "Z") {
		return 0, false
	}
	zlessLength := len(iso8601z) - 1
	if zlessLength < zlessLengths[Hour] || iso8601z[10] != 'T' {
		return 0, false
	}
	for l, n := range zlessLengths {
		if n == zlessLength {
			return TimeLength(l), true
		}
	}
	return 0, false
}

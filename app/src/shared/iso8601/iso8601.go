// Package iso8601 accepts and manages ISO-8601(ish) timestamps mapped to Zulu/UTC.
//
// Accepted input conforms with the following:
//   - only positive years, where the year includes the century and does not exceed 9999,
//   - dashes '-' separate the date fields,
//   - colons ':' separate the time fields, and
//   - a 'T' separates the time fields from the date fields.
//
// Date validation assumes the current Gregorian rules re leap days, and does not
// accept leap seconds. Since Gregorian rules do not factor in each country's
// transition from pre-Gregorian calendars (e.g. Julian), dates before 1800 may
// not map to the dates the period peoples actually used.
package iso8601

import (
	"strings"
	"time"
)

// Timestamp is an immutable parse result. Exactly one of the following holds:
// the value is a well-formed Zulu timestamp, or Err is non-empty and the value
// carries the original offending input.
type Timestamp struct {
	value string
	err   string
}

// Value returns the normalized Zulu timestamp, or the original input on error.
func (t Timestamp) Value() string {
	return t.value
}

// Err returns the diagnostic message, empty when the timestamp is valid.
func (t Timestamp) Err() string {
	return t.err
}

func (t Timestamp) HasError() bool {
	return t.err != ""
}

func (t Timestamp) String() string {
	return t.value
}

// Now captures the current wall clock at millisecond precision.
func Now() Timestamp {
	return FromEpochMillis(time.Now().UnixMilli())
}

// FromEpochMillis renders an epoch-millisecond instant directly to the
// canonical Zulu form, bypassing the text parser. The fraction is always
// emitted at millisecond width so the result sits on a TimeLength breakpoint.
func FromEpochMillis(millis int64) Timestamp {
	return Timestamp{value: time.UnixMilli(millis).UTC().Format("2006-01-02T15:04:05.000") + "Z"}
}

// Parse attempts to map an ISO-8601(ish) string into its UTC/Zulu form.
// The returned Timestamp may carry an error (and hence a bad value).
func Parse(iso8601ish string) Timestamp {
	iso8601ish = strings.ToUpper(strings.TrimSpace(iso8601ish))
	if iso8601ish == "" {
		return Timestamp{value: iso8601ish, err: "empty"}
	}
	at := strings.IndexByte(iso8601ish, 'T')
	if at == -1 {
		return Timestamp{value: iso8601ish, err: "no date time seperator 'T'"}
	}
	date := parseDate(iso8601ish[:at])
	if date.hasError() {
		return Timestamp{value: iso8601ish, err: date.err}
	}
	tm := parseTime(iso8601ish[at+1:]).normalize(date)
	if tm.hasError() {
		return Timestamp{value: iso8601ish, err: tm.err}
	}
	if date.hasError() { // a carry during normalization pushed the year out of range
		return Timestamp{value: iso8601ish, err: date.err}
	}
	return Timestamp{value: date.String() + "T" + tm.String()}
}

func (t Timestamp) ToHour() Timestamp {
	return t.AdjustTo(Hour)
}

func (t Timestamp) ToMinute() Timestamp {
	return t.AdjustTo(Minute)
}

func (t Timestamp) ToSecond() Timestamp {
	return t.AdjustTo(Second)
}

func (t Timestamp) ToMillis() Timestamp {
	return t.AdjustTo(Millis)
}

func (t Timestamp) ToMicros() Timestamp {
	return t.AdjustTo(Micros)
}

func (t Timestamp) ToNanos() Timestamp {
	return t.AdjustTo(Nanos)
}

// AdjustTo truncates or zero-pads the timestamp to the requested precision,
// returning a new Timestamp. An error-carrying Timestamp is returned unchanged.
func (t Timestamp) AdjustTo(desired TimeLength) Timestamp {
	if t.HasError() {
		return t
	}
	current, ok := timeLengthOf(t.value)
	if !ok {
		return Timestamp{value: t.value, err: "no matching TimeLength"}
	}
	if current == desired {
		return t
	}
	return Timestamp{value: desired.adjust(t.value)}
}

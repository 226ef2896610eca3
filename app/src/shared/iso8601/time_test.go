package iso8601

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeJustZulu(t *testing.T) {
	tm := parseTime("16:38:34Z")

	assert.False(t, tm.hasError())
	assert.Equal(t, 16, tm.hour)
	assert.Equal(t, 38, tm.minute)
	assert.Equal(t, 34, tm.second)
	assert.Equal(t, 0, tm.offsetHours)
	assert.Equal(t, 0, tm.offsetMinutes)
}

func TestParseTimeSecondsOptional(t *testing.T) {
	tm := parseTime("16:38Z")

	assert.False(t, tm.hasError())
	assert.Equal(t, 0, tm.second)
}

// The stored offset carries the folding sign: an offset ahead of UTC becomes
// a negative adjustment and one behind UTC a positive adjustment.
func TestParseTimeOffsetSign(t *testing.T) {
	ahead := parseTime("16:38+01:30")
	assert.False(t, ahead.hasError())
	assert.Equal(t, -1, ahead.offsetHours)
	assert.Equal(t, -30, ahead.offsetMinutes)

	behind := parseTime("16:38-07:45")
	assert.False(t, behind.hasError())
	assert.Equal(t, 7, behind.offsetHours)
	assert.Equal(t, 45, behind.offsetMinutes)
}

func TestParseTimeOffsetPrecedence(t *testing.T) {
	// offset trailing the 'Z' is ignored
	ignored := parseTime("16:38Z+05:00")
	assert.False(t, ignored.hasError())
	assert.Equal(t, 0, ignored.offsetHours)

	// offset before a redundant 'Z' is honored
	honored := parseTime("16:38-05:00Z")
	assert.False(t, honored.hasError())
	assert.Equal(t, 5, honored.offsetHours)
}

func TestParseTimeOffsetErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"nothing after fields", "16:38", "no 'Z' or offset"},
		{"both signs", "16:38+01-02", "both a negative and positive offset"},
		{"trailing text", "16:38ZX", "'X' following 'Z'"},
		{"offset hours range", "16:38-15", "hours offset of '15' -- exceeded max value of 14"},
		{"offset minutes range", "16:38-01:50", "minute offset, not a quarter hour, but was 50"},
		{"offset minutes garbage", "16:38-01:0X", "minute offset, not a quarter hour, but was -1"},
		{"offset extra colon", "16:38-01:00:00", "expected at most one colon in offset, but found more in '-01:00:00'"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tm := parseTime(tc.input)

			assert.True(t, tm.hasError())
			assert.Equal(t, tc.want, tm.err)
		})
	}
}

func TestNormalizeNoOpWithoutOffsets(t *testing.T) {
	d := parseDate("2022-07-27")
	tm := parseTime("16:38:34Z").normalize(d)

	assert.False(t, tm.hasError())
	assert.Equal(t, "16:38:34Z", tm.String())
	assert.Equal(t, "2022-07-27", d.String())
}

func TestNormalizeClearsOffsets(t *testing.T) {
	d := parseDate("2022-07-27")
	tm := parseTime("16:38-07:15").normalize(d)

	assert.False(t, tm.hasError())
	assert.Equal(t, 0, tm.offsetHours)
	assert.Equal(t, 0, tm.offsetMinutes)
	assert.Equal(t, "23:53:00Z", tm.String())
}

func TestNormalizeSkipsErroredTime(t *testing.T) {
	d := parseDate("2022-07-27")
	tm := parseTime("16:72Z").normalize(d)

	assert.True(t, tm.hasError())
	assert.Equal(t, "2022-07-27", d.String())
}

// Minute borrow pulls an hour; hour borrow pulls a day.
func TestNormalizeBorrowChain(t *testing.T) {
	d := parseDate("2022-07-27")
	tm := parseTime("00:10+00:15").normalize(d)

	assert.False(t, tm.hasError())
	assert.Equal(t, "23:55:00Z", tm.String())
	assert.Equal(t, "2022-07-26", d.String())
}

// Hour overflow bumps the hour instead of reducing it; pinned, not corrected.
func TestNormalizeHourOverflowQuirk(t *testing.T) {
	d := parseDate("2022-07-27")
	tm := parseTime("23:55-00:15").normalize(d)

	assert.False(t, tm.hasError())
	assert.Equal(t, "25:10:00Z", tm.String())
	assert.Equal(t, "2022-07-28", d.String())
}

func TestTimeStringFractionGroups(t *testing.T) {
	tests := []struct {
		name string
		tm   timeParts
		want string
	}{
		{"no fraction", timeParts{hour: 16, minute: 38, second: 34}, "16:38:34Z"},
		{"millis only", timeParts{hour: 16, minute: 38, second: 34, millis: 5}, "16:38:34.005Z"},
		{"micros force millis", timeParts{hour: 16, minute: 38, second: 34, micros: 42}, "16:38:34.000042Z"},
		{"nanos force all", timeParts{hour: 16, minute: 38, second: 34, nanos: 1}, "16:38:34.000000001Z"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tm := tc.tm
			assert.Equal(t, tc.want, tm.String())
		})
	}
}

func TestTimeStringOnError(t *testing.T) {
	tm := parseTime("16:38")

	assert.Equal(t, "error: no 'Z' or offset", tm.String())
}

package iso8601

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDateValidatesFieldsInOrder(t *testing.T) {
	d := parseDate("2022-07-27")

	assert.False(t, d.hasError())
	assert.Equal(t, 2022, d.year)
	assert.Equal(t, 7, d.month)
	assert.Equal(t, 27, d.day)
	assert.Equal(t, "2022-07-27", d.String())
}

// The day bound depends on the month, so a bad month must win over the day.
func TestParseDateBadMonthSuppressesDayCheck(t *testing.T) {
	d := parseDate("2022-13-99")

	assert.True(t, d.hasError())
	assert.Equal(t, "month date field of '13' -- exceeded max value of 12", d.err)
}

func TestParseDateFirstErrorWins(t *testing.T) {
	d := parseDate("abcd-13-01")

	assert.True(t, d.hasError())
	assert.Equal(t, "year date field of 'abcd' -- parse error", d.err)
}

func TestDateStringZeroPads(t *testing.T) {
	d := parseDate("0007-01-02")

	assert.False(t, d.hasError())
	assert.Equal(t, "0007-01-02", d.String())
}

func TestDateStringOnError(t *testing.T) {
	d := parseDate("bad")

	assert.Equal(t, "error: incorrect number of date fields, expected 3, but got 1", d.String())
}

func TestIncrementDayCarries(t *testing.T) {
	tests := []struct {
		name  string
		start string
		want  string
	}{
		{"mid month", "2022-07-27", "2022-07-28"},
		{"month end", "2022-07-31", "2022-08-01"},
		{"thirty day month", "2022-06-30", "2022-07-01"},
		{"february non-leap", "2023-02-28", "2023-03-01"},
		{"february leap", "2024-02-28", "2024-02-29"},
		{"leap day", "2024-02-29", "2024-03-01"},
		{"year end", "2022-12-31", "2023-01-01"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := parseDate(tc.start)
			d.incrementDay()

			assert.False(t, d.hasError())
			assert.Equal(t, tc.want, d.String())
		})
	}
}

func TestDecrementDayBorrows(t *testing.T) {
	tests := []struct {
		name  string
		start string
		want  string
	}{
		{"mid month", "2022-07-27", "2022-07-26"},
		{"month start", "2022-08-01", "2022-07-31"},
		{"into thirty day month", "2022-07-01", "2022-06-30"},
		{"march into leap february", "2024-03-01", "2024-02-29"},
		{"march into plain february", "2023-03-01", "2023-02-28"},
		{"year start", "2023-01-01", "2022-12-31"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := parseDate(tc.start)
			d.decrementDay()

			assert.False(t, d.hasError())
			assert.Equal(t, tc.want, d.String())
		})
	}
}

func TestYearCarryBounds(t *testing.T) {
	top := parseDate("9999-12-31")
	top.incrementDay()
	assert.True(t, top.hasError())
	assert.Equal(t, "year not allowed to exceed 4 digits", top.err)

	bottom := parseDate("0000-01-01")
	bottom.decrementDay()
	assert.True(t, bottom.hasError())
	assert.Equal(t, "year not allowed to be negative", bottom.err)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, daysInMonth(2022, 1))
	assert.Equal(t, 28, daysInMonth(2022, 2))
	assert.Equal(t, 29, daysInMonth(2024, 2))
	assert.Equal(t, 28, daysInMonth(1900, 2))
	assert.Equal(t, 29, daysInMonth(2000, 2))
	assert.Equal(t, 30, daysInMonth(2022, 11))
	assert.Equal(t, 31, daysInMonth(2022, 12))
}

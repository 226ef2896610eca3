package iso8601

import "fmt"

// dateParts holds the YYYY-MM-DD portion while it is parsed and, during offset
// normalization, while day carries cascade into the month and year.
type dateParts struct {
	err   string
	year  int
	month int
	day   int
}

func parseDate(value string) *dateParts {
	d := &dateParts{}
	fields := splitDropTrailing(value, "-")
	if len(fields) != 3 {
		return d.withError(fmt.Sprintf("incorrect number of date fields, expected 3, but got %d", len(fields)))
	}
	d.year = d.parseField(fields[0], "year", 0, 9999)
	d.month = d.parseField(fields[1], "month", 1, 12)
	if !d.hasError() {
		d.day = d.parseField(fields[2], "day", 1, daysInMonth(d.year, d.month))
	}
	return d
}

func (d *dateParts) hasError() bool {
	return d.err != ""
}

// setError keeps the first diagnostic; later ones are ignored.
func (d *dateParts) setError(msg string) {
	if !d.hasError() {
		d.err = msg
	}
}

func (d *dateParts) withError(msg string) *dateParts {
	d.setError(msg)
	return d
}

func (d *dateParts) parseField(field, what string, min, max int) int {
	return parseBounded(field, what, "date field", min, max, d.setError)
}

func (d *dateParts) String() string {
	if d.hasError() {
		return "error: " + d.err
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

func (d *dateParts) decrementYear() {
	d.year--
	if !d.hasError() && d.year < 0 {
		d.setError("year not allowed to be negative")
	}
}

func (d *dateParts) incrementYear() {
	d.year++
	if !d.hasError() && d.year > 9999 {
		d.setError("year not allowed to exceed 4 digits")
	}
}

func (d *dateParts) decrementMonth() {
	d.month--
	if d.month < 1 {
		d.decrementYear()
		d.month = 12
	}
}

func (d *dateParts) incrementMonth() {
	d.month++
	if d.month > 12 {
		d.incrementYear()
		d.month = 1
	}
}

func (d *dateParts) decrementDay() {
	d.day--
	if d.day < 1 {
		d.decrementMonth()
		d.day = d.maxDayOfMonth()
	}
}

func (d *dateParts) incrementDay() {
	d.day++
	if d.maxDayOfMonth() < d.day {
		d.incrementMonth()
		d.day = 1
	}
}

func (d *dateParts) maxDayOfMonth() int {
	if d.month < 1 || d.month > 12 {
		return -1
	}
	return daysInMonth(d.year, d.month)
}

var daysPerMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func daysInMonth(year, month int) int {
	if month == 2 && isLeapYear(year) {
		return 29
	}
	return daysPerMonth[month]
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

package iso8601

import (
	"fmt"
	"strconv"
	"strings"
)

// parseBounded parses a trimmed integer field and reports violations through
// sink. It returns -1 when the field does not parse or leaves [min, max].
func parseBounded(field, what, kind string, min, max int, sink func(string)) int {
	field = strings.TrimSpace(field)
	value, err := strconv.Atoi(field)
	if err != nil {
		sink(fmt.Sprintf("%s %s of '%s' -- parse error", what, kind, field))
		return -1
	}
	if value < min {
		sink(fmt.Sprintf("%s %s of '%s' -- les than min value of %d", what, kind, field, min))
		return -1
	}
	if value > max {
		sink(fmt.Sprintf("%s %s of '%s' -- exceeded max value of %d", what, kind, field, max))
		return -1
	}
	return value
}

// splitDropTrailing splits like strings.Split but drops trailing empty fields,
// so "2022-07-" yields two date fields, not three. An empty input stays a
// single empty field.
func splitDropTrailing(s, sep string) []string {
	if s == "" {
		return []string{""}
	}
	fields := strings.Split(s, sep)
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}

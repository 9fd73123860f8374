// Package dates resolves the date expressions accepted by the @start and
// @due template tags.
package dates

import (
	"regexp"
	"strconv"
	"time"
)

// An expression is an ISO calendar date optionally followed by a signed day
// offset, e.g. "2018-12-30 + 1". Surrounding whitespace is ignored.
var exprRe = regexp.MustCompile(`^\s*(\d{4})-(\d{2})-(\d{2})(?:\s*([+-])\s*(\d+))?\s*$`)

// Resolve evaluates a date expression. A bare date is returned trimmed; a
// date with an offset is shifted by that many days with ordinary calendar
// arithmetic, including month and year rollover. Anything that does not
// start with a YYYY-MM-DD date is returned byte-for-byte unchanged so that
// free-form values like "today" or "next month" pass through for the
// downstream application to interpret.
func Resolve(value string) string {
	m := exprRe.FindStringSubmatch(value)
	if m == nil {
		return value
	}
	if m[4] == "" {
		return m[1] + "-" + m[2] + "-" + m[3]
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	offset, _ := strconv.Atoi(m[5])
	if m[4] == "-" {
		offset = -offset
	}

	// time.Date normalizes out-of-range components, so a calendar-invalid
	// date is not an error here.
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return d.AddDate(0, 0, offset).Format("2006-01-02")
}

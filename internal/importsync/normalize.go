// Package importsync implements the batch load of workers and client
// companies from spreadsheet exports and factory JSON files, reconciling each
// candidate record against the database.
package importsync

import (
	"strconv"
	"strings"
	"time"
)

// Spreadsheet cells exported through pandas occasionally carry literal NaN
// markers. These all mean "no value". Anything else, a lone hyphen included,
// is real cell content.
var absentMarkers = map[string]struct{}{
	"":    {},
	"nan": {},
	"na":  {},
}

// IsAbsent reports whether a raw cell value carries no usable data.
func IsAbsent(raw string) bool {
	_, ok := absentMarkers[strings.ToLower(strings.TrimSpace(raw))]
	return ok
}

// ToString trims a raw cell value and returns ok=false when the cell is
// empty or holds an absence marker.
func ToString(raw string) (string, bool) {
	if IsAbsent(raw) {
		return "", false
	}
	return strings.TrimSpace(raw), true
}

// dateLayouts lists the formats seen across the source spreadsheets, most
// common first.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006/1/2",
	"2006.01.02",
	"2006年01月02日",
	"2006年1月2日",
	"01-02-06",
	"1/2/06",
	"2006-01-02 15:04:05",
}

// excelEpoch is day zero of the 1900 date system, adjusted for the spurious
// leap day Excel inherited from Lotus 1-2-3.
var excelEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// ToDate parses a raw cell value as a calendar date. It accepts the textual
// formats in dateLayouts plus bare Excel serial numbers. ok=false covers both
// absence and values that cannot be parsed; callers treat the two the same.
func ToDate(raw string) (time.Time, bool) {
	s, ok := ToString(raw)
	if !ok {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 59 && serial < 80000 {
		return excelEpoch.AddDate(0, 0, int(serial)), true
	}
	return time.Time{}, false
}

// SplitName splits a full name on the first run of whitespace (ASCII or
// full-width) into family and given parts. A single token becomes the family
// name with an empty given name.
func SplitName(full string) (family, given string) {
	s := strings.TrimSpace(full)
	if s == "" {
		return "", ""
	}
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '　' || r == '\t'
	})
	if len(fields) == 0 {
		return "", ""
	}
	if len(fields) == 1 {
		return fields[0], ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}

// NormalizeSex maps the sex markers seen in the sheets onto male/female.
// Unrecognized values come back empty.
func NormalizeSex(raw string) string {
	s, ok := ToString(raw)
	if !ok {
		return ""
	}
	switch strings.ToUpper(s) {
	case "男", "男性", "M", "1":
		return "male"
	case "女", "女性", "F", "2":
		return "female"
	}
	return ""
}

// NormalizeEmploymentStatus maps the 現在 column onto active/inactive. The
// sheets mark leavers with 退社 and nothing else; any other value counts as
// active.
func NormalizeEmploymentStatus(raw string) string {
	s, ok := ToString(raw)
	if !ok {
		return "active"
	}
	if s == "退社" {
		return "inactive"
	}
	return "active"
}


// Package validation holds the pure field-format checks shared by the
// interactive API handlers. Batch import deliberately bypasses these: bulk
// loads are best-effort and a malformed optional field must not block an
// otherwise good record.
package validation

import (
	"regexp"
	"strings"
)

var (
	residenceCardRe = regexp.MustCompile(`^[A-Z]{2}\d{8}[A-Z]{2}$`)
	corporationRe   = regexp.MustCompile(`^\d{13}$`)
	insuranceRe     = regexp.MustCompile(`^\d{11}$`)
	phoneJapanRe    = regexp.MustCompile(`^0\d{9,10}$`)
	postalCodeRe    = regexp.MustCompile(`^\d{7}$`)
)

// StripSeparators removes hyphens and spaces (ASCII and full-width) before a
// digits-only format check.
func StripSeparators(s string) string {
	r := strings.NewReplacer("-", "", " ", "", "　", "", "ー", "")
	return r.Replace(s)
}

// ResidenceCard validates a 在留カード番号 (2 letters + 8 digits + 2 letters).
// Input is case-insensitive; the returned value is normalized to upper case.
// An empty string is invalid: the card number is required wherever it is asked for.
func ResidenceCard(card string) (string, bool) {
	if card == "" {
		return "", false
	}
	upper := strings.ToUpper(strings.TrimSpace(card))
	if !residenceCardRe.MatchString(upper) {
		return "", false
	}
	return upper, true
}

// CorporationNumber validates a 法人番号 (13 digits after stripping separators).
// Absent is valid and returned unchanged: the number is optional.
func CorporationNumber(num string) (string, bool) {
	if num == "" {
		return "", true
	}
	clean := StripSeparators(num)
	if !corporationRe.MatchString(clean) {
		return "", false
	}
	return clean, true
}

// InsuranceNumber validates a 雇用保険番号 (11 digits after stripping separators).
// Absent is valid.
func InsuranceNumber(num string) (string, bool) {
	if num == "" {
		return "", true
	}
	clean := StripSeparators(num)
	if !insuranceRe.MatchString(clean) {
		return "", false
	}
	return clean, true
}

// PhoneJapan validates a Japanese phone number: leading 0 plus 9 or 10 further
// digits after stripping separators. Absent is valid.
func PhoneJapan(phone string) (string, bool) {
	if phone == "" {
		return "", true
	}
	clean := StripSeparators(phone)
	if !phoneJapanRe.MatchString(clean) {
		return "", false
	}
	return clean, true
}

// PostalCode validates a 郵便番号 (7 digits after stripping separators) and
// reformats valid input as NNN-NNNN. Absent is valid.
func PostalCode(code string) (string, bool) {
	if code == "" {
		return "", true
	}
	clean := StripSeparators(code)
	if !postalCodeRe.MatchString(clean) {
		return "", false
	}
	return clean[:3] + "-" + clean[3:], true
}

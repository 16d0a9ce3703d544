package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResidenceCard(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"valid", "AB12345678CD", "AB12345678CD", true},
		{"lowercase normalized", "ab12345678cd", "AB12345678CD", true},
		{"surrounding spaces", " AB12345678CD ", "AB12345678CD", true},
		{"empty is invalid", "", "", false},
		{"too short", "AB1234567CD", "", false},
		{"digits where letters expected", "1112345678CD", "", false},
		{"trailing garbage", "AB12345678CDX", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResidenceCard(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCorporationNumber(t *testing.T) {
	got, ok := CorporationNumber("1234567890123")
	assert.True(t, ok)
	assert.Equal(t, "1234567890123", got)

	got, ok = CorporationNumber("1-2345-6789-0123")
	assert.True(t, ok)
	assert.Equal(t, "1234567890123", got)

	_, ok = CorporationNumber("123456789012")
	assert.False(t, ok)

	_, ok = CorporationNumber("12345678901234")
	assert.False(t, ok)

	// optional field: absent passes
	got, ok = CorporationNumber("")
	assert.True(t, ok)
	assert.Equal(t, "", got)
}

func TestInsuranceNumber(t *testing.T) {
	got, ok := InsuranceNumber("1234-567890-1")
	assert.True(t, ok)
	assert.Equal(t, "12345678901", got)

	_, ok = InsuranceNumber("1234567890")
	assert.False(t, ok)

	_, ok = InsuranceNumber("abcdefghijk")
	assert.False(t, ok)

	_, ok = InsuranceNumber("")
	assert.True(t, ok)
}

func TestPhoneJapan(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"0312345678", "0312345678", true},
		{"03-1234-5678", "0312345678", true},
		{"090-1234-5678", "09012345678", true},
		{"1234567890", "", false}, // no leading zero
		{"03-1234", "", false},
		{"", "", true},
	}
	for _, tt := range tests {
		got, ok := PhoneJapan(tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestPostalCode(t *testing.T) {
	got, ok := PostalCode("1234567")
	assert.True(t, ok)
	assert.Equal(t, "123-4567", got)

	got, ok = PostalCode("123-4567")
	assert.True(t, ok)
	assert.Equal(t, "123-4567", got)

	_, ok = PostalCode("12345")
	assert.False(t, ok)

	_, ok = PostalCode("")
	assert.True(t, ok)
}

func TestParsePrefecture(t *testing.T) {
	assert.Equal(t, "愛知県", ParsePrefecture("愛知県名古屋市中区栄1-2-3"))
	assert.Equal(t, "東京都", ParsePrefecture("東京都港区芝公園4-2-8"))
	assert.Equal(t, "北海道", ParsePrefecture("北海道札幌市中央区"))
	assert.Equal(t, "", ParsePrefecture("名古屋市中区栄1-2-3"))
	assert.Equal(t, "", ParsePrefecture(""))
}

func TestDeadline(t *testing.T) {
	today := time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		expiry   time.Time
		days     int
		expired  bool
		status   string
		canRenew bool
	}{
		{"long past", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), -31, true, StatusExpired, false},
		{"yesterday", time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC), -1, true, StatusExpired, false},
		// the visa is still valid on its expiry day; renewal has closed
		{"expires today", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 0, false, StatusCritical, false},
		{"tomorrow is critical", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), 1, false, StatusCritical, true},
		{"critical boundary", time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), 30, false, StatusCritical, true},
		{"warning lower bound", time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC), 31, false, StatusWarning, true},
		{"warning upper bound", time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC), 90, false, StatusWarning, true},
		{"ok beyond window", time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC), 91, false, StatusOK, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Deadline(tt.expiry, today)
			assert.Equal(t, tt.days, got.DaysRemaining)
			assert.Equal(t, tt.expired, got.IsExpired)
			assert.Equal(t, tt.status, got.Status)
			assert.Equal(t, tt.canRenew, got.CanRenew)
			assert.NotEmpty(t, got.Message)
		})
	}
}

func TestDeadlineIgnoresTimeOfDay(t *testing.T) {
	// Same calendar day must classify identically regardless of clock time.
	a := Deadline(time.Date(2025, 6, 30, 23, 59, 0, 0, time.UTC), time.Date(2025, 6, 1, 0, 1, 0, 0, time.UTC))
	b := Deadline(time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, a.DaysRemaining, b.DaysRemaining)
	assert.Equal(t, a.Status, b.Status)
}

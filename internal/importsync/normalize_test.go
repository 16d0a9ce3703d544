package importsync

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"田中", "田中", true},
		{"  田中  ", "田中", true},
		{"", "", false},
		{"   ", "", false},
		{"nan", "", false},
		{"NaN", "", false},
		{"NA", "", false},
		// a lone hyphen is real cell content, not an absence marker
		{"-", "-", true},
		{"N/A but real text", "N/A but real text", true},
	}
	for _, tt := range tests {
		got, ok := ToString(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestToDate(t *testing.T) {
	want := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	for _, input := range []string{
		"2025-03-14",
		"2025/03/14",
		"2025/3/14",
		"2025年3月14日",
		"2025-03-14 09:30:00",
	} {
		got, ok := ToDate(input)
		assert.True(t, ok, input)
		assert.Equal(t, want, got, input)
	}

	// Excel serial for 2025-03-14
	got, ok := ToDate("45730")
	assert.True(t, ok)
	assert.Equal(t, want, got)

	for _, input := range []string{"", "nan", "not a date", "14", "99999999"} {
		_, ok := ToDate(input)
		assert.False(t, ok, input)
	}
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		input  string
		family string
		given  string
	}{
		{"田中 太郎", "田中", "太郎"},
		{"田中　太郎", "田中", "太郎"},
		{"NGUYEN VAN AN", "NGUYEN", "VAN AN"},
		{"田中", "田中", ""},
		{"  田中 太郎  ", "田中", "太郎"},
		{"", "", ""},
	}
	for _, tt := range tests {
		family, given := SplitName(tt.input)
		assert.Equal(t, tt.family, family, tt.input)
		assert.Equal(t, tt.given, given, tt.input)
	}
}

func TestNormalizeSex(t *testing.T) {
	for _, input := range []string{"男", "男性", "M", "m", "1"} {
		assert.Equal(t, "male", NormalizeSex(input), input)
	}
	for _, input := range []string{"女", "女性", "F", "f", "2"} {
		assert.Equal(t, "female", NormalizeSex(input), input)
	}
	// the sheets only ever carry the tokens above; anything longer is noise
	for _, input := range []string{"", "nan", "3", "unknown", "MALE", "female"} {
		assert.Equal(t, "", NormalizeSex(input), input)
	}
}

func TestNormalizeEmploymentStatus(t *testing.T) {
	assert.Equal(t, "inactive", NormalizeEmploymentStatus("退社"))
	// 退社 is the only leaver marker the sheets use
	assert.Equal(t, "active", NormalizeEmploymentStatus("退職"))
	assert.Equal(t, "active", NormalizeEmploymentStatus("在籍"))
	assert.Equal(t, "active", NormalizeEmploymentStatus(""))
	assert.Equal(t, "active", NormalizeEmploymentStatus("nan"))
}

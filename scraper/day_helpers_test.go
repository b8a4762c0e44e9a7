package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnglishDay(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"luni", "Monday"},
		{"Luni", "Monday"},
		{"Marți", "Tuesday"},
		{"marti", "Tuesday"},
		{"Sâmbătă", "Saturday"},
		{"SAMBATA", "Saturday"},
		{"Duminică", "Sunday"},
		{"  vineri  ", "Friday"},
		{"Program de luni", "Monday"},
		{"weekend", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EnglishDay(tt.label), "label %q", tt.label)
	}
}

func TestFoldDay(t *testing.T) {
	assert.Equal(t, "sambata", FoldDay("Sâmbătă"))
	assert.Equal(t, "marti", FoldDay("MARȚI"))
	assert.Equal(t, "miercuri", FoldDay("  Miercuri "))
}

func TestDayFromText(t *testing.T) {
	assert.Equal(t, "Monday", DayFromText("Monday - Ritual Day"))
	assert.Equal(t, "", DayFromText("Ziua Saunei"))
}

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractShowTime(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"explicit pm", "DUNE\n7:30 PM", "7:30 PM"},
		{"explicit am", "10:15 AM", "10:15 AM"},
		{"dotted meridiem", "7:30 p.m.", "7:30 PM"},
		{"labeled 24 hour", "Showtime: 19:45", "7:45 PM"},
		{"labeled evening assumption", "Time: 7:05", "7:05 PM"},
		{"bare 24 hour scan", "starts 21:00", "9:00 PM"},
		{"midnight", "showing 00:05", "12:05 AM"},
		{"no time", "DUNE PART TWO\nROW A12", ""},
		{"label outranks earlier bare time", "doors 18:00\nShowtime: 21:30", "9:30 PM"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractShowTime(tt.text))
		})
	}
}

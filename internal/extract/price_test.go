package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPrice(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"labeled with symbol", "Price: $12.50", "$12.50"},
		{"labeled bare integer", "Total 9", "$9.00"},
		{"labeled admission", "ADMISSION: 11.75", "$11.75"},
		{"dollar scan", "ADULT $12.50", "$12.50"},
		{"foreign symbol normalized", "Total: £8.50", "$8.50"},
		{"zero rejected", "$0.00", ""},
		{"implausible amount rejected", "$500.00", ""},
		{"no price", "DUNE PART TWO\n12/03/24", ""},
		{"label outranks earlier dollar line", "$5.00 surcharge\nTotal: $14.00", "$14.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPrice(tt.text))
		})
	}
}

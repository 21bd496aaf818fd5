package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTicketNumber(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"labeled hash", "Ticket # 99881234", "99881234"},
		{"labeled hyphenated triplet", "Ticket #: TKT-2024-0913", "TKT-2024-0913"},
		{"confirmation label", "Confirmation No: 7FA29QZ1", "7FA29QZ1"},
		{"order label", "Order # A1B2C3D4E5", "A1B2C3D4E5"},
		{"keyword line token", "your confirmation 884512 is ready", "884512"},
		{"too short rejected", "Ticket # ab1", ""},
		{"too long rejected", "Ticket # 0123456789ABCDEF0123", ""},
		{"no number", "DUNE PART TWO\n12/03/24", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTicketNumber(tt.text))
		})
	}
}

func TestExtractTicketNumberBarcodeProximity(t *testing.T) {
	text := "DUNE PART TWO\nscan barcode below\nQX81-3302-71\nthank you"
	assert.Equal(t, "QX81-3302-71", ExtractTicketNumber(text))

	// Beyond the two-line window the token is invisible to this strategy.
	far := "scan barcode below\n-\n-\n-\nQX81330271"
	assert.Equal(t, "", ExtractTicketNumber(far))
}

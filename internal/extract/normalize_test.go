package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanValue(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"collapses whitespace", "AMC   Empire\t25", "AMC Empire 25"},
		{"trims ends", "  Dune  ", "Dune"},
		{"strips disallowed punctuation", "Dune* [Part] <Two>!", "Dune Part Two"},
		{"keeps allow-listed punctuation", "B&B Theatres: Aud. 7 - Row 'A'", "B&B Theatres: Aud. 7 - Row 'A'"},
		{"empty in empty out", "", ""},
		{"whitespace only", " \n\t ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanValue(tt.in))
		})
	}
}

func TestIsBoilerplate(t *testing.T) {
	assert.True(t, isBoilerplate("www.fandango.com"))
	assert.True(t, isBoilerplate("YOUR TICKET"))
	assert.True(t, isBoilerplate("scan barcode below"))
	assert.False(t, isBoilerplate("AMC Empire 25"))
	// Keyword lines long enough to carry content are kept.
	assert.False(t, isBoilerplate("this ticket admits one adult to the 7:30 showing"))
}

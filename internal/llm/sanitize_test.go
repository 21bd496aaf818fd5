package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sanitized(t *testing.T, doc string) map[string]any {
	t.Helper()
	out, _, err := SanitizeFields([]byte(doc))
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	return m
}

func TestSanitizeFieldsPriceCoercion(t *testing.T) {
	m := sanitized(t, `{"price": 12.5}`)
	assert.Equal(t, "$12.50", m["price"])

	m = sanitized(t, `{"price": "12.5"}`)
	assert.Equal(t, "$12.50", m["price"])

	m = sanitized(t, `{"price": "$12.50"}`)
	assert.Equal(t, "$12.50", m["price"])

	m = sanitized(t, `{"price": "free"}`)
	assert.NotContains(t, m, "price")
}

func TestSanitizeFieldsRatingVocabulary(t *testing.T) {
	m := sanitized(t, `{"movie_rating": "pg13"}`)
	assert.Equal(t, "PG-13", m["movie_rating"])

	m = sanitized(t, `{"movie_rating": "Rated R"}`)
	assert.Equal(t, "R", m["movie_rating"])

	m = sanitized(t, `{"movie_rating": "XYZ"}`)
	assert.NotContains(t, m, "movie_rating")
}

func TestSanitizeFieldsDropsOffenders(t *testing.T) {
	doc := `{
		"movie_title": "  Dune Part Two  ",
		"show_date": "2024-12-03",
		"ticket_number": "TKT-2024-0913",
		"plot_summary": "sandworms",
		"seat_number": ""
	}`
	out, dropped, err := SanitizeFields([]byte(doc))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))

	assert.Equal(t, "Dune Part Two", m["movie_title"])
	assert.Equal(t, "TKT-2024-0913", m["ticket_number"])
	assert.NotContains(t, m, "show_date")    // wrong shape
	assert.NotContains(t, m, "plot_summary") // unknown key
	assert.NotContains(t, m, "seat_number")  // empty
	assert.NotEmpty(t, dropped)
}

func TestSanitizedDocumentValidates(t *testing.T) {
	schema := BuildTicketJSONSchema()

	raw := `{"movie_title": "Dune", "price": 12.5, "movie_rating": "pg13", "extra": 1}`
	assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(raw)))

	cleaned, _, err := SanitizeFields([]byte(raw))
	require.NoError(t, err)
	assert.NoError(t, ValidateJSONAgainstSchema(schema, cleaned))
}

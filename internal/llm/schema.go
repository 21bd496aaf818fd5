package llm

import "github.com/marcus-hale/ticket-stubs-tracker/constants"

// BuildTicketJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We pass this to OpenAI as a structured output constraint and
// also use it locally to validate. Every field is optional: a stub that shows
// nothing yields {}, never an invented value.
func BuildTicketJSONSchema() map[string]any {
	props := map[string]any{
		"movie_title":   map[string]any{"type": "string", "minLength": 1},
		"theater_name":  map[string]any{"type": "string", "minLength": 1},
		"theater_chain": map[string]any{"type": "string", "minLength": 1},
		"show_date":     map[string]any{"type": "string", "pattern": `^\d{2}/\d{2}/\d{2}$`},
		"show_time":     map[string]any{"type": "string", "pattern": `^\d{1,2}:\d{2} (AM|PM)$`},
		"price":         map[string]any{"type": "string", "pattern": `^\$\d+\.\d{2}$`},
		"seat_number":   map[string]any{"type": "string", "minLength": 1},
		"movie_rating": map[string]any{
			"type": "string",
			"enum": constants.RatingsAsStringSlice(),
		},
		"theater_room":  map[string]any{"type": "string", "minLength": 1},
		"ticket_number": map[string]any{"type": "string", "pattern": `^[A-Za-z0-9-]{6,15}$`},
		"confidence":    map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             []string{},
	}
}

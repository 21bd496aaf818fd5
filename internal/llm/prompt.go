package llm

import (
	"strings"

	"github.com/marcus-hale/ticket-stubs-tracker/constants"
)

// BuildSystemPrompt composes the system message with the canonical field
// formats and strict-but-practical formatting rules.
func BuildSystemPrompt(req ExtractRequest) string {
	parts := []string{
		"You are a movie ticket stub parser. Return ONLY JSON that matches the provided JSON Schema.",
		"Every field is optional: report only what is visibly printed on the stub; NEVER guess or invent a value.",
		"Use MM/DD/YY for 'show_date' (e.g. 12/03/24).",
		"Use 12-hour clock with meridiem for 'show_time' (e.g. 7:30 PM).",
		"Use US dollars for 'price' (e.g. $12.50).",
		"'movie_rating' MUST be exactly one of: " + strings.Join(constants.RatingsAsStringSlice(), ", ") + ".",
		"'theater_chain' is the brand (e.g. AMC); 'theater_name' is the full venue (e.g. AMC Empire 25).",
		"'theater_room' is the bare auditorium or screen designation (e.g. 7, G).",
		"'ticket_number' is the printed ticket, order, or confirmation identifier.",
		"Never output null. If a field is not present, omit it.",
	}
	if tz := strings.TrimSpace(req.Timezone); tz != "" {
		parts = append(parts, "If dates are ambiguous, prefer timezone: "+tz+".")
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt packages filename/folder hints. When an image is attached we
// intentionally DO NOT include the transcript (low-confidence OCR is
// unhelpful next to the pixels).
func BuildUserPrompt(req ExtractRequest, imageAttached bool) string {
	var b strings.Builder
	if filename := strings.TrimSpace(req.FilenameHint); filename != "" {
		b.WriteString("Filename: ")
		b.WriteString(filename)
		b.WriteString("\n")
	}
	if folder := strings.TrimSpace(req.FolderHint); folder != "" {
		b.WriteString("Folder path: ")
		b.WriteString(folder)
		b.WriteString("\n")
	}

	if !imageAttached {
		transcript := strings.TrimSpace(req.TranscriptText)
		b.WriteString("\nTranscript text (first ~3k chars):\n")
		if len(transcript) > 3000 {
			b.WriteString(transcript[:3000])
			b.WriteString("\n…(truncated)")
		} else {
			b.WriteString(transcript)
		}
	} else {
		b.WriteString("\nNote: An image of the ticket stub is attached. Read the printed fields from it; omit anything you cannot read.\n")
	}

	return b.String()
}

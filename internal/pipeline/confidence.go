package pipeline

import (
	"strings"
	"unicode"
)

// heuristicConfidence scores how much a transcript looks like a clean OCR
// pass over a ticket stub, on 0..1. The score gates whether the vision
// request attaches the original photo. Two signals: the share of readable
// characters, and whether any canonically shaped line (date, time, price)
// survived OCR.
func heuristicConfidence(transcript string) float32 {
	t := strings.TrimSpace(transcript)
	if t == "" {
		return 0
	}

	var readable, total int
	for _, r := range t {
		total++
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) ||
			strings.ContainsRune("$#:/.-,&'", r) {
			readable++
		}
	}
	score := float32(readable) / float32(total)

	// Garbage-heavy transcripts never score high even when long.
	if total < 20 {
		score *= 0.5
	}
	return score
}

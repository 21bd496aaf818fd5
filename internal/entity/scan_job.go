package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ScanJob represents one pass over a stub transcript for data transfer
// between layers.
type ScanJob struct {
	ID             uuid.UUID       `json:"id"`
	TicketID       *uuid.UUID      `json:"ticket_id,omitempty"`
	SourcePath     string          `json:"source_path"`
	Filename       string          `json:"filename"`
	FileExt        string          `json:"file_ext"`
	TranscriptText *string         `json:"transcript_text,omitempty"`
	Status         string          `json:"status"`
	ErrorMessage   *string         `json:"error_message,omitempty"`
	PrepConfidence *float32        `json:"prep_confidence,omitempty"`
	VisionJSON     json.RawMessage `json:"vision_json,omitempty"`
	ModelName      *string         `json:"model_name,omitempty"`
	StartedAt      time.Time       `json:"started_at"`
	FinishedAt     *time.Time      `json:"finished_at,omitempty"`
}

package constants

// JobStatus is the canonical status for rows in scan_jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued   JobStatus = "QUEUED"    // queued for processing
	JobStatusRunning  JobStatus = "RUNNING"   // in progress
	JobStatusVisionOK JobStatus = "VISION_OK" // vision channel returned fields
	JobStatusParsed   JobStatus = "PARSED"    // final record assembled
	JobStatusFailed   JobStatus = "FAILED"    // terminal failure
)

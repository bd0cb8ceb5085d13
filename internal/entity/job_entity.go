package entity

import "time"

type JobStatus string

const (
	JobStatusQueued     JobStatus = "queued"
	JobStatusProcessing JobStatus = "processing"
	JobStatusComplete   JobStatus = "complete"
	JobStatusError      JobStatus = "error"
)

// Terminal reports whether the status is final. A terminal job never
// transitions back to queued/processing.
func (s JobStatus) Terminal() bool {
	return s == JobStatusComplete || s == JobStatusError
}

// Job tracks one in-flight or completed unit of asynchronous pipeline work.
type Job struct {
	Id        string                 `json:"id"`
	Status    JobStatus              `json:"status"`
	Progress  string                 `json:"progress"`
	Result    map[string]interface{} `json:"result,omitempty"`
	Error     string                 `json:"error,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt *time.Time             `json:"updated_at"`
}

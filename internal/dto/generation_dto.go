package dto

import "time"

type GenerateResponse struct {
	JobId string `json:"job_id"`
}

// JobStatusResponse is the polling shape. Exactly one of Progress, Data or
// Error carries meaning depending on Status.
type JobStatusResponse struct {
	JobId     string                 `json:"job_id"`
	Status    string                 `json:"status"`
	Progress  string                 `json:"progress,omitempty"`
	Data      map[string]interface{} `json:"data,omitempty"`
	Error     string                 `json:"error,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// GenerationRequestedMessage is the pubsub payload carrying one admitted
// request to the background consumer.
type GenerationRequestedMessage struct {
	JobId         string   `json:"job_id"`
	Prompt        string   `json:"prompt"`
	GroundingText string   `json:"grounding_text"`
	FileNames     []string `json:"file_names"`
}

package entity

import "time"

// Chart is a stored generation result keyed for later retrieval/sharing.
// SessionId is a weak reference: the owning session may already be expired,
// which is a valid state until the orphan sweep removes the chart.
type Chart struct {
	Id        string                 `json:"id"`
	Payload   map[string]interface{} `json:"payload"`
	SessionId string                 `json:"session_id"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt *time.Time             `json:"updated_at"`
}

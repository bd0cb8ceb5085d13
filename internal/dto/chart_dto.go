package dto

import "time"

type GetChartResponse struct {
	Id        string                 `json:"id"`
	Payload   map[string]interface{} `json:"payload"`
	SessionId string                 `json:"session_id"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt *time.Time             `json:"updated_at"`
}

type UpdateChartRequest struct {
	Payload map[string]interface{} `json:"payload" validate:"required"`
}

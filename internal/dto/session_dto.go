package dto

import "time"

type GetSessionResponse struct {
	Id        string    `json:"id"`
	Text      string    `json:"text"`
	FileNames []string  `json:"file_names"`
	CreatedAt time.Time `json:"created_at"`
}

type AskRequest struct {
	Question string `json:"question" validate:"required,min=3"`
}

type AskResponse struct {
	SessionId string `json:"session_id"`
	Answer    string `json:"answer"`
}

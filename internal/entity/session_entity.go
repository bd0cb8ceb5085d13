package entity

import "time"

// Session holds the grounding context captured at generation time.
// Follow-up questions are answered against this text.
type Session struct {
	Id        string    `json:"id"`
	Text      string    `json:"text"`
	FileNames []string  `json:"file_names"`
	CreatedAt time.Time `json:"created_at"`
}

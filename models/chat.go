package models

// ChatMessage is one turn of a tutoring conversation. Sender is either
// "user" or "ai".
type ChatMessage struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

package models

import "time"

// ChatMessage is one entry in a team's append-only message log.
type ChatMessage struct {
	Id        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

package models

// Organizer and PlayerProfile are local session records, not auth tokens.
// Their presence under the corresponding store key is what gates access.

type Organizer struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type PlayerProfile struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

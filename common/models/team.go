package models

import "time"

type Team struct {
	Id      string `json:"id"`
	Name    string `json:"name"`
	Captain string `json:"captain"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`

	Players []Player `json:"players"`

	PaymentStatus string `json:"paymentStatus"`

	// Empty means the registration is still pending review.
	RegistrationStatus RegistrationStatus `json:"registrationStatus,omitempty"`

	// Denormalized back-references kept so the player's view renders
	// without a second lookup.
	TournamentId   string `json:"tournamentId"`
	TournamentName string `json:"tournamentName"`

	CreatedAt time.Time `json:"createdAt,omitzero"`
}

type Player struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Number   int    `json:"number"`
	Age      int    `json:"age"`
}

type RegistrationStatus string

const (
	RegistrationPending  RegistrationStatus = ""
	RegistrationApproved RegistrationStatus = "approved"
	RegistrationDenied   RegistrationStatus = "denied"
)

// Decided reports whether the registration has reached a terminal state.
func (s RegistrationStatus) Decided() bool {
	return s == RegistrationApproved || s == RegistrationDenied
}

const PaymentPending = "Pending"

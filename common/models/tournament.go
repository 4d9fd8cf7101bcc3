package models

import "time"

type Tournament struct {
	Id            string `json:"id"`
	Name          string `json:"name"`
	OrganizerName string `json:"organizerName"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	BannerUrl     string `json:"bannerUrl,omitempty"`

	Venue          string `json:"venue"`
	VenueType      string `json:"venueType"`
	GoogleMapsLink string `json:"googleMapsLink,omitempty"`

	// Dates are kept as display-formatted strings; nothing in the data
	// layer sorts or compares them.
	StartDate            string `json:"startDate"`
	EndDate              string `json:"endDate"`
	RegistrationDeadline string `json:"registrationDeadline"`

	TournamentType string `json:"tournamentType"`
	GameLevel      string `json:"gameLevel"`
	AgeGroup       string `json:"ageGroup"`
	GenderCategory string `json:"genderCategory"`

	MaxTeams          int `json:"maxTeams"`
	MinPlayersPerTeam int `json:"minPlayersPerTeam"`
	MaxPlayersPerTeam int `json:"maxPlayersPerTeam"`

	PrizePool     string `json:"prizePool,omitempty"`
	RunnerUpPrize string `json:"runnerUpPrize,omitempty"`
	EntryFee      string `json:"entryFee,omitempty"`
	QrCodeUrl     string `json:"qrCodeUrl,omitempty"`

	Rules       string `json:"rules,omitempty"`
	RefereeInfo string `json:"refereeInfo,omitempty"`

	SponsorshipAvailable bool `json:"sponsorshipAvailable"`
	LiveUpdates          bool `json:"liveUpdates"`
	TeamChat             bool `json:"teamChat"`

	Status TournamentStatus `json:"status"`

	// RegisteredTeams is derived from len(Teams) on every write path and
	// persisted only so the stored JSON stays self-describing.
	RegisteredTeams int    `json:"registeredTeams"`
	Teams           []Team `json:"teams"`

	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

type TournamentStatus string

const (
	StatusOpen   TournamentStatus = "Open"
	StatusClosed TournamentStatus = "Closed"
)

// SyncTeamCount re-derives the registered team counter from the embedded
// teams slice so the two can never drift apart.
func (t *Tournament) SyncTeamCount() {
	t.RegisteredTeams = len(t.Teams)
}

// TeamById returns a pointer into the embedded teams slice, or nil.
func (t *Tournament) TeamById(teamId string) *Team {
	for i := range t.Teams {
		if t.Teams[i].Id == teamId {
			return &t.Teams[i]
		}
	}
	return nil
}

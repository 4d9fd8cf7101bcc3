package store

import "fmt"

// Fixed storage keys. The layout is part of the persisted contract:
// other readers of the same store depend on these exact names.
const (
	KeyTournaments        = "tournaments"
	KeyMyTeams            = "myTeams"
	KeyOrganizer          = "organizer"
	KeyPlayer             = "player"
	KeyEditTournament     = "editTournament"
	KeySelectedTournament = "selectedTournament"
	KeyCurrentTeam        = "currentTeam"
)

// Key handlers

func TeamMessagesKey(teamId string) string {
	return fmt.Sprintf("team_%s_messages", teamId)
}

package service

import (
	"context"
	"testing"

	apperrors "github.com/burakmert236/matchday/common/errors"
	"github.com/burakmert236/matchday/common/models"
)

func TestRegisterTeamUpdatesBothViews(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	created, _ := env.registry.CreateTournament(ctx, TournamentDraft{Name: "Summer Cup", MaxTeams: 8})

	team, err := env.registration.RegisterTeam(ctx, created.Id, TeamDraft{
		Name:    "Tigers",
		Captain: "Asha",
		Players: []models.Player{{Name: "A"}, {Name: "B"}},
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if team.PaymentStatus != models.PaymentPending {
		t.Errorf("expected payment status Pending, got %q", team.PaymentStatus)
	}
	if team.RegistrationStatus != models.RegistrationPending {
		t.Errorf("expected pending registration, got %q", team.RegistrationStatus)
	}
	if team.TournamentName != "Summer Cup" {
		t.Errorf("expected denormalized tournament name, got %q", team.TournamentName)
	}

	got, _ := env.registry.GetTournament(ctx, created.Id)
	if len(got.Teams) != 1 {
		t.Fatalf("expected 1 embedded team, got %d", len(got.Teams))
	}
	if got.RegisteredTeams != 1 {
		t.Errorf("expected registeredTeams=1, got %d", got.RegisteredTeams)
	}

	mine, _ := env.registration.MyTeams(ctx)
	if len(mine) != 1 {
		t.Fatalf("expected 1 team in myTeams, got %d", len(mine))
	}
	if mine[0].Id != team.Id || mine[0].Name != "Tigers" || mine[0].TournamentId != created.Id {
		t.Errorf("myTeams mirror mismatch: %+v", mine[0])
	}

	if env.pub.teams != 1 {
		t.Errorf("expected 1 teams-changed event, got %d", env.pub.teams)
	}
}

func TestRegisterTeamDropsUnnamedPlayers(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	created, _ := env.registry.CreateTournament(ctx, TournamentDraft{Name: "Summer Cup"})

	team, err := env.registration.RegisterTeam(ctx, created.Id, TeamDraft{
		Name: "Tigers",
		Players: []models.Player{
			{Name: "Keeper", Position: "Goalkeeper", Number: 1},
			{Name: ""},
			{Name: "Striker", Position: "Striker", Number: 9},
			{Name: ""},
		},
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if len(team.Players) != 2 {
		t.Fatalf("expected empty slots dropped, got %d players", len(team.Players))
	}
	if team.Players[0].Name != "Keeper" || team.Players[1].Name != "Striker" {
		t.Errorf("player order changed: %+v", team.Players)
	}
}

func TestRegisterTeamUnknownTournament(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	_, err := env.registration.RegisterTeam(ctx, "ghost", TeamDraft{Name: "Tigers"})
	if err == nil {
		t.Fatal("expected not found error")
	}
	if !apperrors.IsNotFound(err) {
		t.Errorf("expected NOT_FOUND, got %s", err.Code)
	}
}

func TestRegisterTeamConsumesTournamentSelection(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	created, _ := env.registry.CreateTournament(ctx, TournamentDraft{Name: "Summer Cup"})
	if err := env.session.SelectTournament(ctx, *created); err != nil {
		t.Fatalf("select failed: %v", err)
	}

	if _, err := env.registration.RegisterTeam(ctx, created.Id, TeamDraft{Name: "Tigers"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := env.session.SelectedTournament(ctx); err == nil {
		t.Error("expected tournament selection to be cleared after registering")
	}
}

func TestSetRegistrationStatusIsIdempotent(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	created, _ := env.registry.CreateTournament(ctx, TournamentDraft{Name: "Summer Cup"})
	team, _ := env.registration.RegisterTeam(ctx, created.Id, TeamDraft{Name: "Tigers"})

	if err := env.registration.SetRegistrationStatus(ctx, created.Id, team.Id, models.RegistrationApproved); err != nil {
		t.Fatalf("first approval failed: %v", err)
	}
	if err := env.registration.SetRegistrationStatus(ctx, created.Id, team.Id, models.RegistrationApproved); err != nil {
		t.Fatalf("second approval must be a no-op, got: %v", err)
	}

	mine, _ := env.registration.MyTeams(ctx)
	if len(mine) != 1 {
		t.Fatalf("expected no duplicate records, got %d", len(mine))
	}
	if mine[0].RegistrationStatus != models.RegistrationApproved {
		t.Errorf("expected approved, got %q", mine[0].RegistrationStatus)
	}
}

func TestSetRegistrationStatusIsTerminal(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	created, _ := env.registry.CreateTournament(ctx, TournamentDraft{Name: "Summer Cup"})
	team, _ := env.registration.RegisterTeam(ctx, created.Id, TeamDraft{Name: "Tigers"})

	if err := env.registration.SetRegistrationStatus(ctx, created.Id, team.Id, models.RegistrationDenied); err != nil {
		t.Fatalf("denial failed: %v", err)
	}

	err := env.registration.SetRegistrationStatus(ctx, created.Id, team.Id, models.RegistrationApproved)
	if err == nil {
		t.Fatal("expected conflict when switching a decided registration")
	}
	if !apperrors.HasCode(err, apperrors.CodeConflict) {
		t.Errorf("expected CONFLICT, got %s", err.Code)
	}
}

func TestSetRegistrationStatusRejectsPending(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	created, _ := env.registry.CreateTournament(ctx, TournamentDraft{Name: "Summer Cup"})
	team, _ := env.registration.RegisterTeam(ctx, created.Id, TeamDraft{Name: "Tigers"})

	err := env.registration.SetRegistrationStatus(ctx, created.Id, team.Id, models.RegistrationPending)
	if err == nil {
		t.Fatal("expected invalid input error")
	}
	if !apperrors.HasCode(err, apperrors.CodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %s", err.Code)
	}
}

// Organizer creates a tournament, a player registers, the organizer
// approves, and the player's view shows the approved team.
func TestRegistrationFlowEndToEnd(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	created, err := env.registry.CreateTournament(ctx, TournamentDraft{Name: "Summer Cup", MaxTeams: 8})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	players := make([]models.Player, 11)
	for i := range players {
		players[i] = models.Player{Name: "Player", Number: i + 1}
	}

	team, err := env.registration.RegisterTeam(ctx, created.Id, TeamDraft{
		Name:    "Tigers",
		Players: players,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if len(team.Players) != 11 {
		t.Fatalf("expected 11 players, got %d", len(team.Players))
	}

	if err := env.registration.SetRegistrationStatus(ctx, created.Id, team.Id, models.RegistrationApproved); err != nil {
		t.Fatalf("approval failed: %v", err)
	}

	mine, _ := env.registration.MyTeams(ctx)
	if len(mine) != 1 {
		t.Fatalf("expected 1 team, got %d", len(mine))
	}
	if mine[0].Name != "Tigers" || mine[0].RegistrationStatus != models.RegistrationApproved {
		t.Errorf("expected approved Tigers, got %+v", mine[0])
	}
}

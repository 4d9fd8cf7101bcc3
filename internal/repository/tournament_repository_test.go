package repository

import (
	"context"
	"testing"

	apperrors "github.com/burakmert236/matchday/common/errors"
	"github.com/burakmert236/matchday/common/models"
	"github.com/burakmert236/matchday/common/store"
)

func TestTournamentRepositoryUpsertAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewTournamentRepository(store.NewMemoryStore())

	tournaments, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tournaments) != 0 {
		t.Fatalf("expected empty collection, got %d records", len(tournaments))
	}

	first := &models.Tournament{Id: "t1", Name: "Spring Cup", Status: models.StatusOpen}
	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	second := &models.Tournament{Id: "t2", Name: "Autumn Cup", Status: models.StatusOpen}
	if err := repo.Upsert(ctx, second); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	tournaments, err = repo.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tournaments) != 2 {
		t.Fatalf("expected 2 records, got %d", len(tournaments))
	}

	// Replacing by id must not append.
	first.Name = "Spring Cup Revised"
	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	tournaments, _ = repo.List(ctx)
	if len(tournaments) != 2 {
		t.Fatalf("expected upsert to replace, got %d records", len(tournaments))
	}

	got, err := repo.GetById(ctx, "t1")
	if err != nil {
		t.Fatalf("getbyid failed: %v", err)
	}
	if got.Name != "Spring Cup Revised" {
		t.Errorf("expected replaced name, got %s", got.Name)
	}
}

func TestTournamentRepositoryUpsertDerivesTeamCount(t *testing.T) {
	ctx := context.Background()
	repo := NewTournamentRepository(store.NewMemoryStore())

	tournament := &models.Tournament{
		Id:              "t1",
		Name:            "Derived Cup",
		RegisteredTeams: 99, // stale counter must be overwritten
		Teams: []models.Team{
			{Id: "team1", Name: "One"},
			{Id: "team2", Name: "Two"},
		},
	}
	if err := repo.Upsert(ctx, tournament); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	got, err := repo.GetById(ctx, "t1")
	if err != nil {
		t.Fatalf("getbyid failed: %v", err)
	}
	if got.RegisteredTeams != 2 {
		t.Errorf("expected registeredTeams=2, got %d", got.RegisteredTeams)
	}
}

func TestTournamentRepositoryGetByIdNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewTournamentRepository(store.NewMemoryStore())

	_, err := repo.GetById(ctx, "ghost")
	if err == nil {
		t.Fatal("expected not found error")
	}
	if !apperrors.IsNotFound(err) {
		t.Errorf("expected NOT_FOUND code, got %s", err.Code)
	}
}

func TestTournamentRepositoryRemove(t *testing.T) {
	ctx := context.Background()
	repo := NewTournamentRepository(store.NewMemoryStore())

	repo.Upsert(ctx, &models.Tournament{Id: "t1", Name: "Keep Me"})
	repo.Upsert(ctx, &models.Tournament{Id: "t2", Name: "Delete Me"})

	if err := repo.Remove(ctx, "t2"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	tournaments, _ := repo.List(ctx)
	if len(tournaments) != 1 {
		t.Fatalf("expected 1 record after remove, got %d", len(tournaments))
	}
	if tournaments[0].Id != "t1" || tournaments[0].Name != "Keep Me" {
		t.Errorf("surviving record changed: %+v", tournaments[0])
	}

	if err := repo.Remove(ctx, "t2"); err == nil {
		t.Error("expected not found error on second remove")
	}
}

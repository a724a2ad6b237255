package mission_test

import (
	"context"
	"errors"
	"testing"

	domainerrors "skylark-ops/internal/errors"
	"skylark-ops/internal/mission"
	"skylark-ops/internal/store"
)

func seedMissions(t *testing.T) mission.Service {
	t.Helper()
	mem := store.NewMemory()
	mem.Seed(nil, nil, []mission.Project{
		{ID: "PRJ001", Location: "Bangalore", StartDate: "2025-02-01", EndDate: "2025-02-20"},
		{ID: "PRJ002", Location: "Mumbai", StartDate: "2025-01-15", EndDate: "2025-03-15"},
	})
	return mission.NewService(mem)
}

func TestGetByID_Found(t *testing.T) {
	svc := seedMissions(t)
	p, err := svc.GetByID(context.Background(), " PRJ001 ")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.ID != "PRJ001" {
		t.Fatalf("expected PRJ001, got %q", p.ID)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc := seedMissions(t)
	_, err := svc.GetByID(context.Background(), "PRJ999")
	if err == nil {
		t.Fatal("expected error")
	}
	var de *domainerrors.DomainError
	if !errors.As(err, &de) || de.Code != domainerrors.ErrNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestProject_Overlaps(t *testing.T) {
	a := mission.Project{ID: "A", StartDate: "2025-02-01", EndDate: "2025-02-20"}
	b := mission.Project{ID: "B", StartDate: "2025-02-20", EndDate: "2025-03-10"}
	c := mission.Project{ID: "C", StartDate: "2025-03-11", EndDate: "2025-03-20"}
	if !a.Overlaps(&b) {
		t.Fatal("shared boundary day must overlap")
	}
	if a.Overlaps(&c) {
		t.Fatal("disjoint ranges must not overlap")
	}
}

func TestProject_Overlaps_UnparseableDates(t *testing.T) {
	a := mission.Project{ID: "A", StartDate: "–", EndDate: "2025-02-20"}
	b := mission.Project{ID: "B", StartDate: "2025-02-01", EndDate: "2025-03-10"}
	if a.Overlaps(&b) {
		t.Fatal("unparseable bound must never overlap")
	}
}

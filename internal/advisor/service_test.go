package advisor_test

import (
	"context"
	"errors"
	"testing"

	"skylark-ops/internal/advisor"
	"skylark-ops/internal/conflicts"
	domainerrors "skylark-ops/internal/errors"
	"skylark-ops/internal/fields"
	"skylark-ops/internal/fleet"
	"skylark-ops/internal/matching"
	"skylark-ops/internal/mission"
	"skylark-ops/internal/roster"
	"skylark-ops/internal/store"
)

func seedAdvisor(t *testing.T) advisor.Service {
	t.Helper()
	mem := store.NewMemory()
	mem.Seed(
		[]roster.Pilot{
			{ID: "P001", Name: "Arjun Mehta", Location: "Bangalore", Status: roster.StatusAvailable,
				Skills: "Mapping", Certifications: "DGCA",
				CurrentAssignment: fields.Sentinel, AvailableFrom: "2025-01-10"},
		},
		[]fleet.Drone{
			{ID: "D001", Location: "Bangalore", Status: fleet.StatusAvailable,
				Capabilities: "RGB, LiDAR", CurrentAssignment: fields.Sentinel, MaintenanceDue: fields.Sentinel},
			{ID: "D002", Location: "Bangalore", Status: fleet.StatusMaintenance,
				Capabilities: "RGB", CurrentAssignment: "PRJ001", MaintenanceDue: "2025-01-05"},
		},
		[]mission.Project{
			{ID: "PRJ001", Location: "Bangalore", RequiredSkills: "Mapping", RequiredCerts: "DGCA",
				StartDate: "2025-02-01", EndDate: "2025-02-20"},
		},
	)
	return advisor.NewService(
		mission.NewService(mem),
		matching.NewService(mem, mem, mem),
		fleet.NewService(mem),
		conflicts.NewService(mem, mem, mem),
	)
}

func TestSuggest_UnknownProjectIsNotFound(t *testing.T) {
	svc := seedAdvisor(t)
	_, err := svc.Suggest(context.Background(), "PRJ999", "urgent")
	if err == nil {
		t.Fatal("expected error")
	}
	var de *domainerrors.DomainError
	if !errors.As(err, &de) || de.Code != domainerrors.ErrNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestSuggest_BundleContents(t *testing.T) {
	svc := seedAdvisor(t)
	rec, err := svc.Suggest(context.Background(), "PRJ001", "drone down")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if rec.ProjectID != "PRJ001" || rec.Reason != "drone down" {
		t.Fatalf("bundle header wrong: %+v", rec)
	}
	if len(rec.SuggestedPilots) != 1 || rec.SuggestedPilots[0].PilotID != "P001" {
		t.Fatalf("expected P001 suggested, got %v", rec.SuggestedPilots)
	}
	if len(rec.SuggestedDrones) != 1 || rec.SuggestedDrones[0].ID != "D001" {
		t.Fatalf("expected D001 suggested, got %v", rec.SuggestedDrones)
	}
	if rec.MaintenanceCount != 1 {
		t.Fatalf("expected maintenance count 1, got %d", rec.MaintenanceCount)
	}
	// D002 is in maintenance while still assigned; the fleet-wide report
	// must surface it even though the request is about PRJ001.
	if rec.Conflicts == nil || len(rec.Conflicts.DroneMaintenanceAssigned) != 1 {
		t.Fatalf("expected maintenance-assigned conflict in bundle, got %+v", rec.Conflicts)
	}
}

package fleet_test

import (
	"context"
	"errors"
	"testing"
	"time"

	domainerrors "skylark-ops/internal/errors"
	"skylark-ops/internal/fields"
	"skylark-ops/internal/fleet"
	"skylark-ops/internal/store"
)

func seedFleet(t *testing.T) (*store.Memory, fleet.Service) {
	t.Helper()
	mem := store.NewMemory()
	mem.Seed(nil, []fleet.Drone{
		{ID: "D001", Location: "Bangalore", Status: fleet.StatusAvailable,
			Capabilities: "RGB, LiDAR", CurrentAssignment: fields.Sentinel, MaintenanceDue: "2025-06-15"},
		{ID: "D002", Location: "Mumbai", Status: fleet.StatusDeployed,
			Capabilities: "RGB, Thermal", CurrentAssignment: "PRJ002", MaintenanceDue: "2025-04-01"},
		{ID: "D003", Location: "Bangalore", Status: fleet.StatusMaintenance,
			Capabilities: "RGB", CurrentAssignment: fields.Sentinel, MaintenanceDue: "2025-01-05"},
	}, nil)
	return mem, fleet.NewService(mem)
}

func TestList_CapabilityFilter(t *testing.T) {
	_, svc := seedFleet(t)
	drones, err := svc.List(context.Background(), fleet.Filter{Capability: "thermal"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(drones) != 1 || drones[0].ID != "D002" {
		t.Fatalf("expected only D002, got %v", drones)
	}
}

func TestList_StatusFilterIsExact(t *testing.T) {
	_, svc := seedFleet(t)
	drones, err := svc.List(context.Background(), fleet.Filter{Status: "available"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(drones) != 0 {
		t.Fatalf("lowercase status must match nothing, got %d", len(drones))
	}
}

func TestList_CombinedFilters(t *testing.T) {
	_, svc := seedFleet(t)
	drones, err := svc.List(context.Background(), fleet.Filter{Location: "BANGALORE", Status: "Available"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(drones) != 1 || drones[0].ID != "D001" {
		t.Fatalf("expected only D001, got %v", drones)
	}
}

func TestMaintenanceDue_PastAndTodayCount(t *testing.T) {
	now := time.Now()
	today := now.Format("2006-01-02")
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")
	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")

	mem := store.NewMemory()
	mem.Seed(nil, []fleet.Drone{
		{ID: "D-PAST", Status: fleet.StatusAvailable, MaintenanceDue: yesterday},
		{ID: "D-TODAY", Status: fleet.StatusAvailable, MaintenanceDue: today},
		{ID: "D-FUTURE", Status: fleet.StatusAvailable, MaintenanceDue: tomorrow},
		{ID: "D-NONE", Status: fleet.StatusAvailable, MaintenanceDue: fields.Sentinel},
	}, nil)
	svc := fleet.NewService(mem)

	due, err := svc.MaintenanceDue(context.Background())
	if err != nil {
		t.Fatalf("maintenance due: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("expected past and today due, got %v", due)
	}
	for _, d := range due {
		if d.ID == "D-FUTURE" || d.ID == "D-NONE" {
			t.Fatalf("unexpected drone in due list: %s", d.ID)
		}
	}
}

func TestSetStatus_AvailableClearsAssignment(t *testing.T) {
	mem, svc := seedFleet(t)
	d, err := svc.SetStatus(context.Background(), "D002", "Available")
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if d.CurrentAssignment != fields.Sentinel {
		t.Fatalf("Available must clear assignment, got %q", d.CurrentAssignment)
	}

	drones, _ := mem.ReadDrones(context.Background())
	if saved := fleet.FindByID(drones, "D002"); saved.Assigned() {
		t.Fatalf("expected persisted clear, got %+v", saved)
	}
}

func TestSetStatus_MaintenanceKeepsAssignment(t *testing.T) {
	_, svc := seedFleet(t)
	d, err := svc.SetStatus(context.Background(), "D002", "Maintenance")
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if d.CurrentAssignment != "PRJ002" {
		t.Fatalf("Maintenance must keep assignment, got %q", d.CurrentAssignment)
	}
}

func TestSetStatus_InvalidStatus(t *testing.T) {
	_, svc := seedFleet(t)
	_, err := svc.SetStatus(context.Background(), "D001", "Flying")
	if err == nil {
		t.Fatal("expected validation error")
	}
	var de *domainerrors.DomainError
	if !errors.As(err, &de) || de.Code != domainerrors.ErrValidation {
		t.Fatalf("expected VALIDATION, got %v", err)
	}
}

func TestCreate_DuplicateRejected(t *testing.T) {
	_, svc := seedFleet(t)
	_, err := svc.Create(context.Background(), fleet.Drone{ID: "D001"})
	if err == nil {
		t.Fatal("expected conflict")
	}
	var de *domainerrors.DomainError
	if !errors.As(err, &de) || de.Code != domainerrors.ErrConflict {
		t.Fatalf("expected CONFLICT, got %v", err)
	}
}

func TestCreate_DefaultsAndNormalization(t *testing.T) {
	_, svc := seedFleet(t)
	d, err := svc.Create(context.Background(), fleet.Drone{Location: "Pune", Capabilities: "RGB"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if d.ID == "" || d.Status != fleet.StatusAvailable {
		t.Fatalf("expected generated id and Available default, got %+v", d)
	}
	if d.CurrentAssignment != fields.Sentinel || d.MaintenanceDue != fields.Sentinel {
		t.Fatalf("expected sentinel cells, got %+v", d)
	}
}

package conflicts_test

import (
	"context"
	"testing"

	"skylark-ops/internal/conflicts"
	"skylark-ops/internal/fields"
	"skylark-ops/internal/fleet"
	"skylark-ops/internal/mission"
	"skylark-ops/internal/roster"
	"skylark-ops/internal/store"
)

var testProjects = []mission.Project{
	{ID: "PRJ001", Location: "Bangalore", RequiredSkills: "Mapping", RequiredCerts: "DGCA",
		StartDate: "2025-02-01", EndDate: "2025-02-20"},
	{ID: "PRJ002", Location: "Mumbai", RequiredSkills: "Inspection", RequiredCerts: "DGCA",
		StartDate: "2025-01-15", EndDate: "2025-03-15"},
	{ID: "PRJ003", Location: "Delhi", RequiredSkills: "Survey", RequiredCerts: "Night Ops",
		StartDate: "2025-05-01", EndDate: "2025-05-10"},
}

func TestFindDoubleBookings_SamePilotOnOverlappingProjects(t *testing.T) {
	// The same pilot id on two roster rows with overlapping projects is a
	// sheet-corruption state the mutation paths cannot produce.
	pilots := []roster.Pilot{
		{ID: "P001", Name: "Arjun Mehta", Status: roster.StatusAssigned, CurrentAssignment: "PRJ001"},
		{ID: "P001", Name: "Arjun Mehta", Status: roster.StatusAssigned, CurrentAssignment: "PRJ002"},
	}
	got := conflicts.FindDoubleBookings(pilots, testProjects)
	if len(got) == 0 {
		t.Fatal("expected a double booking finding")
	}
	if got[0].PilotID != "P001" {
		t.Fatalf("expected P001, got %+v", got[0])
	}
}

func TestFindDoubleBookings_SingleAssignmentIsClean(t *testing.T) {
	pilots := []roster.Pilot{
		{ID: "P001", Status: roster.StatusAssigned, CurrentAssignment: "PRJ001"},
		{ID: "P002", Status: roster.StatusAssigned, CurrentAssignment: "PRJ002"},
	}
	if got := conflicts.FindDoubleBookings(pilots, testProjects); len(got) != 0 {
		t.Fatalf("different pilots on overlapping projects is not a double booking, got %v", got)
	}
}

func TestFindSkillCertMismatches_OnlyFailedDimensionReported(t *testing.T) {
	pilots := []roster.Pilot{
		{ID: "P001", Name: "Arjun", Status: roster.StatusAssigned, CurrentAssignment: "PRJ001",
			Skills: "Thermal", Certifications: "DGCA"},
	}
	got := conflicts.FindSkillCertMismatches(pilots, testProjects)
	if len(got) != 1 {
		t.Fatalf("expected one mismatch, got %v", got)
	}
	if got[0].MissingSkills != "Mapping" {
		t.Fatalf("expected missing skills Mapping, got %q", got[0].MissingSkills)
	}
	if got[0].MissingCerts != "" {
		t.Fatalf("certs pass, must not be reported, got %q", got[0].MissingCerts)
	}
}

func TestFindSkillCertMismatches_DanglingProjectIgnored(t *testing.T) {
	pilots := []roster.Pilot{
		{ID: "P001", Status: roster.StatusAssigned, CurrentAssignment: "GONE", Skills: "–", Certifications: "–"},
	}
	if got := conflicts.FindSkillCertMismatches(pilots, testProjects); len(got) != 0 {
		t.Fatalf("dangling assignment must be skipped, got %v", got)
	}
}

func TestFindMaintenanceAssigned(t *testing.T) {
	drones := []fleet.Drone{
		{ID: "D001", Status: fleet.StatusMaintenance, CurrentAssignment: "PRJ001"},
		{ID: "D002", Status: fleet.StatusMaintenance, CurrentAssignment: fields.Sentinel},
		{ID: "D003", Status: fleet.StatusDeployed, CurrentAssignment: "PRJ002"},
	}
	got := conflicts.FindMaintenanceAssigned(drones)
	if len(got) != 1 || got[0].ID != "D001" {
		t.Fatalf("expected only D001, got %v", got)
	}
}

func TestFindLocationMismatches(t *testing.T) {
	pilots := []roster.Pilot{
		{ID: "P001", Name: "Arjun", Location: "Mumbai", Status: roster.StatusAssigned, CurrentAssignment: "PRJ001"},
		{ID: "P002", Name: "Sara", Location: "bangalore", Status: roster.StatusAssigned, CurrentAssignment: "PRJ001"},
	}
	got := conflicts.FindLocationMismatches(pilots, testProjects)
	if len(got) != 1 || got[0].PilotID != "P001" {
		t.Fatalf("location compare is case-insensitive, expected only P001, got %v", got)
	}
	if got[0].ProjectLocation != "Bangalore" {
		t.Fatalf("expected project location Bangalore, got %q", got[0].ProjectLocation)
	}
}

func TestFindPilotDroneLocationMismatches(t *testing.T) {
	pilots := []roster.Pilot{
		{ID: "P001", Name: "Arjun", Location: "Bangalore", Status: roster.StatusAssigned, CurrentAssignment: "PRJ001"},
	}
	drones := []fleet.Drone{
		{ID: "D001", Location: "Mumbai", Status: fleet.StatusDeployed, CurrentAssignment: "PRJ001"},
		{ID: "D002", Location: "Bangalore", Status: fleet.StatusDeployed, CurrentAssignment: "PRJ001"},
		{ID: "D003", Location: "Delhi", Status: fleet.StatusDeployed, CurrentAssignment: "PRJ002"},
	}
	got := conflicts.FindPilotDroneLocationMismatches(pilots, drones)
	if len(got) != 1 {
		t.Fatalf("expected one mismatch, got %v", got)
	}
	if got[0].DroneID != "D001" || got[0].Project != "PRJ001" {
		t.Fatalf("expected D001 on PRJ001, got %+v", got[0])
	}
}

func TestRunAll_CleanDataset(t *testing.T) {
	mem := store.NewMemory()
	mem.Seed(
		[]roster.Pilot{
			{ID: "P001", Name: "Arjun", Location: "Bangalore", Status: roster.StatusAssigned,
				Skills: "Mapping", Certifications: "DGCA", CurrentAssignment: "PRJ001"},
		},
		[]fleet.Drone{
			{ID: "D001", Location: "Bangalore", Status: fleet.StatusDeployed, CurrentAssignment: "PRJ001",
				Capabilities: "RGB"},
		},
		testProjects,
	)
	svc := conflicts.NewService(mem, mem, mem)

	report, err := svc.RunAll(context.Background())
	if err != nil {
		t.Fatalf("run all: %v", err)
	}
	if !report.Clean() {
		t.Fatalf("expected clean report, got %+v", report)
	}
}

func TestRunAll_MaintenanceAssignedSurfacesInReport(t *testing.T) {
	mem := store.NewMemory()
	mem.Seed(
		nil,
		[]fleet.Drone{
			{ID: "D001", Location: "Bangalore", Status: fleet.StatusMaintenance, CurrentAssignment: "PRJ001"},
		},
		testProjects,
	)
	svc := conflicts.NewService(mem, mem, mem)

	report, err := svc.RunAll(context.Background())
	if err != nil {
		t.Fatalf("run all: %v", err)
	}
	if report.Clean() {
		t.Fatal("expected a dirty report")
	}
	if len(report.DroneMaintenanceAssigned) != 1 || report.DroneMaintenanceAssigned[0].ID != "D001" {
		t.Fatalf("expected D001 flagged, got %+v", report.DroneMaintenanceAssigned)
	}
}

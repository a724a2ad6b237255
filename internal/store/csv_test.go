package store_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"skylark-ops/internal/fields"
	"skylark-ops/internal/fleet"
	"skylark-ops/internal/roster"
	"skylark-ops/internal/store"
)

func writeDataFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestCSV_ReadPilots_NormalizesEmptyVariants(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "pilot_roster.csv",
		"pilot_id,name,location,status,skills,certifications,current_assignment,available_from\n"+
			"P001, Arjun ,Bangalore,Available,Mapping,DGCA,-,\n")
	s := store.NewCSV(dir)

	pilots, err := s.ReadPilots(context.Background())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(pilots) != 1 {
		t.Fatalf("expected 1 pilot, got %d", len(pilots))
	}
	p := pilots[0]
	if p.Name != "Arjun" {
		t.Fatalf("expected trimmed name, got %q", p.Name)
	}
	if p.CurrentAssignment != fields.Sentinel || p.AvailableFrom != fields.Sentinel {
		t.Fatalf("empty variants must normalize to sentinel, got %+v", p)
	}
}

func TestCSV_ReadPilots_RaggedRowFillsSentinel(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "pilot_roster.csv",
		"pilot_id,name,location,status,skills,certifications,current_assignment,available_from\n"+
			"P001,Arjun,Bangalore,Available\n")
	s := store.NewCSV(dir)

	pilots, err := s.ReadPilots(context.Background())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if pilots[0].Skills != fields.Sentinel || pilots[0].CurrentAssignment != fields.Sentinel {
		t.Fatalf("missing trailing cells must read as sentinel, got %+v", pilots[0])
	}
}

func TestCSV_ReadPilots_MissingColumnFails(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "pilot_roster.csv",
		"pilot_id,name,location,status\nP001,Arjun,Bangalore,Available\n")
	s := store.NewCSV(dir)

	_, err := s.ReadPilots(context.Background())
	if err == nil {
		t.Fatal("expected missing column error")
	}
	if !strings.Contains(err.Error(), "missing column") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCSV_ReadPilots_EmptyFileFails(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "pilot_roster.csv", "")
	s := store.NewCSV(dir)

	if _, err := s.ReadPilots(context.Background()); err == nil {
		t.Fatal("expected error for file without header row")
	}
}

func TestCSV_WriteThenReadPilots_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := store.NewCSV(dir)
	in := []roster.Pilot{
		{ID: "P001", Name: "Arjun Mehta", Location: "Bangalore", Status: roster.StatusAvailable,
			Skills: "Mapping, Survey", Certifications: "DGCA", CurrentAssignment: "", AvailableFrom: "2025-01-10"},
	}

	if err := s.WritePilots(context.Background(), in); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err := s.ReadPilots(context.Background())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 pilot, got %d", len(out))
	}
	if out[0].Skills != "Mapping, Survey" {
		t.Fatalf("multi-value cell must survive the round trip, got %q", out[0].Skills)
	}
	// The empty assignment is written and read back as the sentinel.
	if out[0].CurrentAssignment != fields.Sentinel {
		t.Fatalf("expected sentinel assignment, got %q", out[0].CurrentAssignment)
	}
}

func TestCSV_WriteDrones_OverwritesWholeTable(t *testing.T) {
	dir := t.TempDir()
	s := store.NewCSV(dir)

	first := []fleet.Drone{{ID: "D001", Status: fleet.StatusAvailable}, {ID: "D002", Status: fleet.StatusDeployed}}
	if err := s.WriteDrones(context.Background(), first); err != nil {
		t.Fatalf("write: %v", err)
	}
	second := []fleet.Drone{{ID: "D003", Status: fleet.StatusAvailable}}
	if err := s.WriteDrones(context.Background(), second); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	out, err := s.ReadDrones(context.Background())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(out) != 1 || out[0].ID != "D003" {
		t.Fatalf("write must replace the table, got %v", out)
	}
}

func TestCSV_ReadProjects(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "missions.csv",
		"project_id,location,required_skills,required_certs,start_date,end_date\n"+
			"PRJ001,Bangalore,Mapping,DGCA,2025-02-01,2025-02-20\n")
	s := store.NewCSV(dir)

	projects, err := s.ReadProjects(context.Background())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(projects) != 1 || projects[0].ID != "PRJ001" || projects[0].StartDate != "2025-02-01" {
		t.Fatalf("unexpected projects: %v", projects)
	}
}

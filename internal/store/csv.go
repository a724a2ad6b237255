package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"skylark-ops/internal/fleet"
	"skylark-ops/internal/mission"
	"skylark-ops/internal/roster"
)

const (
	pilotFile   = "pilot_roster.csv"
	droneFile   = "drone_fleet.csv"
	missionFile = "missions.csv"
)

// CSV is the local tabular-file backend, one file per record set under a
// data directory. It is the fallback tier when a remote spreadsheet is
// configured and the whole store when it isn't.
type CSV struct {
	dataDir string
}

func NewCSV(dataDir string) *CSV {
	return &CSV{dataDir: dataDir}
}

func (s *CSV) ReadPilots(ctx context.Context) ([]roster.Pilot, error) {
	header, rows, err := s.readFile(pilotFile)
	if err != nil {
		return nil, err
	}
	return decodePilots(header, rows)
}

func (s *CSV) WritePilots(ctx context.Context, pilots []roster.Pilot) error {
	return s.writeFile(pilotFile, encodePilots(pilots))
}

func (s *CSV) ReadDrones(ctx context.Context) ([]fleet.Drone, error) {
	header, rows, err := s.readFile(droneFile)
	if err != nil {
		return nil, err
	}
	return decodeDrones(header, rows)
}

func (s *CSV) WriteDrones(ctx context.Context, drones []fleet.Drone) error {
	return s.writeFile(droneFile, encodeDrones(drones))
}

func (s *CSV) ReadProjects(ctx context.Context) ([]mission.Project, error) {
	header, rows, err := s.readFile(missionFile)
	if err != nil {
		return nil, err
	}
	return decodeProjects(header, rows)
}

func (s *CSV) readFile(name string) (header []string, rows [][]string, err error) {
	path := filepath.Join(s.dataDir, name)
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows fill in as sentinel cells
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", name, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("read %s: empty file, header row required", name)
	}
	return records[0], records[1:], nil
}

// writeFile replaces the file atomically: write a sibling temp file, then
// rename over the original.
func (s *CSV) writeFile(name string, rows [][]string) error {
	path := filepath.Join(s.dataDir, name)
	tmp, err := os.CreateTemp(s.dataDir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.WriteAll(rows); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

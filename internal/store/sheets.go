package store

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"skylark-ops/internal/fields"
	"skylark-ops/internal/fleet"
	"skylark-ops/internal/mission"
	"skylark-ops/internal/roster"
)

// SheetsConfig identifies the three spreadsheets and the worksheet holding
// each table (first row is the header).
type SheetsConfig struct {
	CredentialsFile    string
	PilotSpreadsheetID string
	DroneSpreadsheetID string
	MissionSpreadsheet string
	Worksheet          string
}

// Configured reports whether all three spreadsheet ids are present; without
// them the store runs purely on the local tier.
func (c SheetsConfig) Configured() bool {
	return c.PilotSpreadsheetID != "" && c.DroneSpreadsheetID != "" && c.MissionSpreadsheet != ""
}

// Sheets is the remote spreadsheet backend. Reads fetch the worksheet in
// one call; writes clear it and replace the full table, header included.
type Sheets struct {
	svc       *sheets.Service
	cfg       SheetsConfig
	worksheet string
}

func NewSheets(ctx context.Context, cfg SheetsConfig) (*Sheets, error) {
	opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets client: %w", err)
	}
	worksheet := cfg.Worksheet
	if worksheet == "" {
		worksheet = "Sheet1"
	}
	return &Sheets{svc: svc, cfg: cfg, worksheet: worksheet}, nil
}

func (s *Sheets) ReadPilots(ctx context.Context) ([]roster.Pilot, error) {
	header, rows, err := s.read(ctx, s.cfg.PilotSpreadsheetID)
	if err != nil {
		return nil, err
	}
	return decodePilots(header, rows)
}

func (s *Sheets) WritePilots(ctx context.Context, pilots []roster.Pilot) error {
	return s.write(ctx, s.cfg.PilotSpreadsheetID, encodePilots(pilots))
}

func (s *Sheets) ReadDrones(ctx context.Context) ([]fleet.Drone, error) {
	header, rows, err := s.read(ctx, s.cfg.DroneSpreadsheetID)
	if err != nil {
		return nil, err
	}
	return decodeDrones(header, rows)
}

func (s *Sheets) WriteDrones(ctx context.Context, drones []fleet.Drone) error {
	return s.write(ctx, s.cfg.DroneSpreadsheetID, encodeDrones(drones))
}

func (s *Sheets) ReadProjects(ctx context.Context) ([]mission.Project, error) {
	header, rows, err := s.read(ctx, s.cfg.MissionSpreadsheet)
	if err != nil {
		return nil, err
	}
	return decodeProjects(header, rows)
}

func (s *Sheets) read(ctx context.Context, spreadsheetID string) (header []string, rows [][]string, err error) {
	resp, err := s.svc.Spreadsheets.Values.Get(spreadsheetID, s.worksheet).Context(ctx).Do()
	if err != nil {
		return nil, nil, fmt.Errorf("sheets read %s: %w", spreadsheetID, err)
	}
	if len(resp.Values) == 0 {
		return nil, nil, fmt.Errorf("sheets read %s: empty worksheet, header row required", spreadsheetID)
	}
	all := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, 0, len(row))
		for _, v := range row {
			cells = append(cells, fmt.Sprint(v))
		}
		all = append(all, cells)
	}
	return all[0], all[1:], nil
}

func (s *Sheets) write(ctx context.Context, spreadsheetID string, rows [][]string) error {
	if _, err := s.svc.Spreadsheets.Values.Clear(spreadsheetID, s.worksheet, &sheets.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("sheets clear %s: %w", spreadsheetID, err)
	}
	values := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		cells := make([]interface{}, 0, len(row))
		for _, c := range row {
			cells = append(cells, fields.Normalize(c))
		}
		values = append(values, cells)
	}
	vr := &sheets.ValueRange{Values: values}
	_, err := s.svc.Spreadsheets.Values.Update(spreadsheetID, s.worksheet, vr).
		ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets update %s: %w", spreadsheetID, err)
	}
	return nil
}

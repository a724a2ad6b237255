package store

import (
	"fmt"

	"skylark-ops/internal/fields"
	"skylark-ops/internal/fleet"
	"skylark-ops/internal/mission"
	"skylark-ops/internal/roster"
)

// columnIndex maps a header row to column positions, failing when any
// expected column is missing. Column presence is validated here, at the
// boundary, so business logic never sees a partial row.
func columnIndex(header []string, expected []string, table string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[fields.Normalize(col)] = i
	}
	for _, col := range expected {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%s: missing column %q", table, col)
		}
	}
	return idx, nil
}

func cell(row []string, idx map[string]int, col string) string {
	i := idx[col]
	if i >= len(row) {
		return fields.Sentinel
	}
	return fields.Normalize(row[i])
}

func decodePilots(header []string, rows [][]string) ([]roster.Pilot, error) {
	idx, err := columnIndex(header, PilotColumns, "pilot roster")
	if err != nil {
		return nil, err
	}
	out := make([]roster.Pilot, 0, len(rows))
	for _, row := range rows {
		out = append(out, roster.Pilot{
			ID:                cell(row, idx, "pilot_id"),
			Name:              cell(row, idx, "name"),
			Location:          cell(row, idx, "location"),
			Status:            roster.Status(cell(row, idx, "status")),
			Skills:            cell(row, idx, "skills"),
			Certifications:    cell(row, idx, "certifications"),
			CurrentAssignment: cell(row, idx, "current_assignment"),
			AvailableFrom:     cell(row, idx, "available_from"),
		})
	}
	return out, nil
}

func encodePilots(pilots []roster.Pilot) [][]string {
	rows := make([][]string, 0, len(pilots)+1)
	rows = append(rows, PilotColumns)
	for _, p := range pilots {
		rows = append(rows, []string{
			fields.Normalize(p.ID),
			fields.Normalize(p.Name),
			fields.Normalize(p.Location),
			fields.Normalize(string(p.Status)),
			fields.Normalize(p.Skills),
			fields.Normalize(p.Certifications),
			fields.Normalize(p.CurrentAssignment),
			fields.Normalize(p.AvailableFrom),
		})
	}
	return rows
}

func decodeDrones(header []string, rows [][]string) ([]fleet.Drone, error) {
	idx, err := columnIndex(header, DroneColumns, "drone fleet")
	if err != nil {
		return nil, err
	}
	out := make([]fleet.Drone, 0, len(rows))
	for _, row := range rows {
		out = append(out, fleet.Drone{
			ID:                cell(row, idx, "drone_id"),
			Location:          cell(row, idx, "location"),
			Status:            fleet.Status(cell(row, idx, "status")),
			Capabilities:      cell(row, idx, "capabilities"),
			CurrentAssignment: cell(row, idx, "current_assignment"),
			MaintenanceDue:    cell(row, idx, "maintenance_due"),
		})
	}
	return out, nil
}

func encodeDrones(drones []fleet.Drone) [][]string {
	rows := make([][]string, 0, len(drones)+1)
	rows = append(rows, DroneColumns)
	for _, d := range drones {
		rows = append(rows, []string{
			fields.Normalize(d.ID),
			fields.Normalize(d.Location),
			fields.Normalize(string(d.Status)),
			fields.Normalize(d.Capabilities),
			fields.Normalize(d.CurrentAssignment),
			fields.Normalize(d.MaintenanceDue),
		})
	}
	return rows
}

func decodeProjects(header []string, rows [][]string) ([]mission.Project, error) {
	idx, err := columnIndex(header, ProjectColumns, "missions")
	if err != nil {
		return nil, err
	}
	out := make([]mission.Project, 0, len(rows))
	for _, row := range rows {
		out = append(out, mission.Project{
			ID:             cell(row, idx, "project_id"),
			Location:       cell(row, idx, "location"),
			RequiredSkills: cell(row, idx, "required_skills"),
			RequiredCerts:  cell(row, idx, "required_certs"),
			StartDate:      cell(row, idx, "start_date"),
			EndDate:        cell(row, idx, "end_date"),
		})
	}
	return out, nil
}

// Package store implements the record store collaborator: bulk reads and
// full-table overwrite writes for the pilot roster, drone fleet and mission
// table. Backends share the same contract — every cell is normalized to the
// sentinel before it reaches the domain layer, and writes always replace the
// whole table (last writer wins, no locking).
package store

import (
	"context"

	"skylark-ops/internal/fleet"
	"skylark-ops/internal/mission"
	"skylark-ops/internal/roster"
)

// RecordStore is the full data-access surface. Domain packages each declare
// the subset they consume; any backend here satisfies all of them.
// Projects have no write path.
type RecordStore interface {
	ReadPilots(ctx context.Context) ([]roster.Pilot, error)
	WritePilots(ctx context.Context, pilots []roster.Pilot) error
	ReadDrones(ctx context.Context) ([]fleet.Drone, error)
	WriteDrones(ctx context.Context, drones []fleet.Drone) error
	ReadProjects(ctx context.Context) ([]mission.Project, error)
}

// Fixed column sets for the three tables. Readers validate headers against
// these at the boundary; writers emit them in this order.
var (
	PilotColumns = []string{
		"pilot_id", "name", "location", "status",
		"skills", "certifications", "current_assignment", "available_from",
	}
	DroneColumns = []string{
		"drone_id", "location", "status",
		"capabilities", "current_assignment", "maintenance_due",
	}
	ProjectColumns = []string{
		"project_id", "location", "required_skills",
		"required_certs", "start_date", "end_date",
	}
)

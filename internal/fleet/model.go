package fleet

import (
	"strings"

	"skylark-ops/internal/fields"
)

type Status string

const (
	StatusAvailable   Status = "Available"
	StatusMaintenance Status = "Maintenance"
	StatusDeployed    Status = "Deployed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusMaintenance, StatusDeployed:
		return true
	}
	return false
}

// Drone is one fleet row.
type Drone struct {
	ID                string `db:"drone_id" json:"drone_id"`
	Location          string `db:"location" json:"location"`
	Status            Status `db:"status" json:"status"`
	Capabilities      string `db:"capabilities" json:"capabilities"`
	CurrentAssignment string `db:"current_assignment" json:"current_assignment"`
	MaintenanceDue    string `db:"maintenance_due" json:"maintenance_due"`
}

func (d *Drone) Assigned() bool {
	return !fields.IsEmpty(d.CurrentAssignment)
}

func (d *Drone) CapabilityList() []string {
	return fields.ParseList(d.Capabilities)
}

// SetStatus applies a status change. Going back to Available clears the
// assignment; Maintenance and Deployed leave it alone so an out-of-band
// maintenance flag on an assigned drone stays visible to conflict checks.
func (d *Drone) SetStatus(status Status) {
	d.Status = status
	if status == StatusAvailable {
		d.CurrentAssignment = fields.Sentinel
	}
}

// FindByID scans a loaded fleet for a drone id, exact match after trimming.
func FindByID(drones []Drone, id string) *Drone {
	want := strings.TrimSpace(id)
	for i := range drones {
		if strings.TrimSpace(drones[i].ID) == want {
			return &drones[i]
		}
	}
	return nil
}

package conflicts

import "skylark-ops/internal/fleet"

// DateRange carries the raw date cells of a project, for display alongside a
// finding.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DoubleBooking flags a pilot identifier that independently appears assigned
// to two projects with overlapping dates.
type DoubleBooking struct {
	PilotID   string    `json:"pilot_id"`
	PilotName string    `json:"pilot_name"`
	ProjectA  string    `json:"project_a"`
	ProjectB  string    `json:"project_b"`
	DatesA    DateRange `json:"dates_a"`
	DatesB    DateRange `json:"dates_b"`
}

// SkillCertMismatch flags an assigned pilot missing their project's required
// skills and/or certifications. Only the failed dimension is populated.
type SkillCertMismatch struct {
	PilotID       string `json:"pilot_id"`
	PilotName     string `json:"pilot_name"`
	Project       string `json:"project"`
	MissingSkills string `json:"missing_skills,omitempty"`
	MissingCerts  string `json:"missing_certs,omitempty"`
}

// LocationMismatch flags an assigned pilot based somewhere other than their
// project's location.
type LocationMismatch struct {
	PilotID         string `json:"pilot_id"`
	PilotName       string `json:"pilot_name"`
	PilotLocation   string `json:"pilot_location"`
	Project         string `json:"project"`
	ProjectLocation string `json:"project_location"`
}

// PilotDroneLocationMismatch flags a pilot and a drone on the same project
// sitting in different locations.
type PilotDroneLocationMismatch struct {
	PilotID       string `json:"pilot_id"`
	PilotName     string `json:"pilot_name"`
	PilotLocation string `json:"pilot_location"`
	DroneID       string `json:"drone_id"`
	DroneLocation string `json:"drone_location"`
	Project       string `json:"project"`
}

// Report bundles the output of all five checks, keyed the way callers expect
// them. Empty slices (never nil) mean no findings.
type Report struct {
	DoubleBooking              []DoubleBooking              `json:"double_booking"`
	SkillCertMismatch          []SkillCertMismatch          `json:"skill_cert_mismatch"`
	DroneMaintenanceAssigned   []fleet.Drone                `json:"drone_maintenance_assigned"`
	LocationMismatch           []LocationMismatch           `json:"location_mismatch"`
	PilotDroneLocationMismatch []PilotDroneLocationMismatch `json:"pilot_drone_location_mismatch"`
}

// Clean reports the no-conflict state: all five sequences empty.
func (r Report) Clean() bool {
	return len(r.DoubleBooking) == 0 &&
		len(r.SkillCertMismatch) == 0 &&
		len(r.DroneMaintenanceAssigned) == 0 &&
		len(r.LocationMismatch) == 0 &&
		len(r.PilotDroneLocationMismatch) == 0
}

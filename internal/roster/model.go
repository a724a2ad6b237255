package roster

import (
	"strings"

	"skylark-ops/internal/fields"
)

type Status string

const (
	StatusAvailable   Status = "Available"
	StatusOnLeave     Status = "On Leave"
	StatusUnavailable Status = "Unavailable"
	StatusAssigned    Status = "Assigned"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusOnLeave, StatusUnavailable, StatusAssigned:
		return true
	}
	return false
}

// Pilot is one roster row. Skills, certifications and dates stay textual the
// way the sheet holds them; parsing happens on read through fields.
//
// Invariant: Status == Assigned exactly when CurrentAssignment is set. Every
// mutation goes through the methods below, which keep both sides in step.
type Pilot struct {
	ID                string `db:"pilot_id" json:"pilot_id"`
	Name              string `db:"name" json:"name"`
	Location          string `db:"location" json:"location"`
	Status            Status `db:"status" json:"status"`
	Skills            string `db:"skills" json:"skills"`
	Certifications    string `db:"certifications" json:"certifications"`
	CurrentAssignment string `db:"current_assignment" json:"current_assignment"`
	AvailableFrom     string `db:"available_from" json:"available_from"`
}

func (p *Pilot) Assigned() bool {
	return !fields.IsEmpty(p.CurrentAssignment)
}

func (p *Pilot) SkillList() []string {
	return fields.ParseList(p.Skills)
}

func (p *Pilot) CertificationList() []string {
	return fields.ParseList(p.Certifications)
}

// Assign puts the pilot on a project, setting both sides of the invariant.
func (p *Pilot) Assign(projectID string) {
	p.Status = StatusAssigned
	p.CurrentAssignment = strings.TrimSpace(projectID)
}

// Unassign frees the pilot and marks them available again.
func (p *Pilot) Unassign() {
	p.Status = StatusAvailable
	p.CurrentAssignment = fields.Sentinel
}

// SetStatus applies a status change. Any status other than Assigned clears
// the current assignment regardless of its prior value.
func (p *Pilot) SetStatus(status Status) {
	p.Status = status
	if status != StatusAssigned {
		p.CurrentAssignment = fields.Sentinel
	}
}

// FindByID scans a loaded roster for a pilot id, exact match after trimming.
func FindByID(pilots []Pilot, id string) *Pilot {
	want := strings.TrimSpace(id)
	for i := range pilots {
		if strings.TrimSpace(pilots[i].ID) == want {
			return &pilots[i]
		}
	}
	return nil
}

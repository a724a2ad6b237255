package mission

import (
	"strings"

	"skylark-ops/internal/fields"
)

// Project is one mission row. All cells stay textual the way the sheet keeps
// them; dates and multi-value fields are parsed on demand through the fields
// helpers so that sentinel and malformed cells degrade instead of erroring.
type Project struct {
	ID             string `db:"project_id" json:"project_id"`
	Location       string `db:"location" json:"location"`
	RequiredSkills string `db:"required_skills" json:"required_skills"`
	RequiredCerts  string `db:"required_certs" json:"required_certs"`
	StartDate      string `db:"start_date" json:"start_date"`
	EndDate        string `db:"end_date" json:"end_date"`
}

func (p *Project) RequiredSkillList() []string {
	return fields.ParseList(p.RequiredSkills)
}

// Overlaps reports whether this project's date range overlaps another's,
// boundaries included. Unparseable bounds never overlap.
func (p *Project) Overlaps(other *Project) bool {
	return fields.RangesOverlap(p.StartDate, p.EndDate, other.StartDate, other.EndDate)
}

// FindByID scans a loaded project table for an identifier, exact match after
// trimming. Dangling references are tolerated: a missing id returns nil.
func FindByID(projects []Project, id string) *Project {
	want := strings.TrimSpace(id)
	for i := range projects {
		if strings.TrimSpace(projects[i].ID) == want {
			return &projects[i]
		}
	}
	return nil
}

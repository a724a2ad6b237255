// Package conflicts cross-references the pilot roster, drone fleet and
// mission table for scheduling and capability inconsistencies. All five
// checks are read-only and independent of one another; they run over
// whatever the record store returns, including states the mutation paths
// could never produce (a sheet edited out-of-band).
package conflicts

import (
	"context"
	"strings"

	"skylark-ops/internal/fields"
	"skylark-ops/internal/fleet"
	"skylark-ops/internal/mission"
	"skylark-ops/internal/roster"
)

type Service interface {
	CheckDoubleBooking(ctx context.Context) ([]DoubleBooking, error)
	CheckSkillCertMismatch(ctx context.Context) ([]SkillCertMismatch, error)
	CheckDroneMaintenanceAssigned(ctx context.Context) ([]fleet.Drone, error)
	CheckLocationMismatch(ctx context.Context) ([]LocationMismatch, error)
	CheckPilotDroneLocationMismatch(ctx context.Context) ([]PilotDroneLocationMismatch, error)
	RunAll(ctx context.Context) (*Report, error)
}

type service struct {
	pilots   roster.Store
	drones   fleet.Store
	missions mission.Store
}

func NewService(pilots roster.Store, drones fleet.Store, missions mission.Store) Service {
	return &service{pilots: pilots, drones: drones, missions: missions}
}

func (s *service) CheckDoubleBooking(ctx context.Context) ([]DoubleBooking, error) {
	pilots, err := s.pilots.ReadPilots(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.missions.ReadProjects(ctx)
	if err != nil {
		return nil, err
	}
	return FindDoubleBookings(pilots, projects), nil
}

func (s *service) CheckSkillCertMismatch(ctx context.Context) ([]SkillCertMismatch, error) {
	pilots, err := s.pilots.ReadPilots(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.missions.ReadProjects(ctx)
	if err != nil {
		return nil, err
	}
	return FindSkillCertMismatches(pilots, projects), nil
}

func (s *service) CheckDroneMaintenanceAssigned(ctx context.Context) ([]fleet.Drone, error) {
	drones, err := s.drones.ReadDrones(ctx)
	if err != nil {
		return nil, err
	}
	return FindMaintenanceAssigned(drones), nil
}

func (s *service) CheckLocationMismatch(ctx context.Context) ([]LocationMismatch, error) {
	pilots, err := s.pilots.ReadPilots(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.missions.ReadProjects(ctx)
	if err != nil {
		return nil, err
	}
	return FindLocationMismatches(pilots, projects), nil
}

func (s *service) CheckPilotDroneLocationMismatch(ctx context.Context) ([]PilotDroneLocationMismatch, error) {
	pilots, err := s.pilots.ReadPilots(ctx)
	if err != nil {
		return nil, err
	}
	drones, err := s.drones.ReadDrones(ctx)
	if err != nil {
		return nil, err
	}
	return FindPilotDroneLocationMismatches(pilots, drones), nil
}

// RunAll loads each record set once and feeds all five checks. No check sees
// another's output.
func (s *service) RunAll(ctx context.Context) (*Report, error) {
	pilots, err := s.pilots.ReadPilots(ctx)
	if err != nil {
		return nil, err
	}
	drones, err := s.drones.ReadDrones(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.missions.ReadProjects(ctx)
	if err != nil {
		return nil, err
	}
	return &Report{
		DoubleBooking:              FindDoubleBookings(pilots, projects),
		SkillCertMismatch:          FindSkillCertMismatches(pilots, projects),
		DroneMaintenanceAssigned:   FindMaintenanceAssigned(drones),
		LocationMismatch:           FindLocationMismatches(pilots, projects),
		PilotDroneLocationMismatch: FindPilotDroneLocationMismatches(pilots, drones),
	}, nil
}

// FindDoubleBookings reports pilot identifiers placed on two projects whose
// date ranges overlap. With one current assignment per roster row this only
// fires when the same pilot id appears on multiple rows — a state the
// mutation engine cannot produce but an out-of-band sheet edit can. The
// cross-check is deliberately kept rather than assumed unreachable.
func FindDoubleBookings(pilots []roster.Pilot, projects []mission.Project) []DoubleBooking {
	out := make([]DoubleBooking, 0)
	assigned := make([]roster.Pilot, 0, len(pilots))
	for _, p := range pilots {
		if p.Assigned() {
			assigned = append(assigned, p)
		}
	}
	for _, p := range assigned {
		projA := mission.FindByID(projects, p.CurrentAssignment)
		if projA == nil {
			continue
		}
		for i := range projects {
			projB := &projects[i]
			if strings.TrimSpace(projB.ID) == strings.TrimSpace(projA.ID) {
				continue
			}
			if !projA.Overlaps(projB) {
				continue
			}
			for _, other := range assigned {
				if strings.TrimSpace(other.CurrentAssignment) != strings.TrimSpace(projB.ID) {
					continue
				}
				if strings.TrimSpace(other.ID) != strings.TrimSpace(p.ID) {
					continue
				}
				out = append(out, DoubleBooking{
					PilotID:   p.ID,
					PilotName: p.Name,
					ProjectA:  p.CurrentAssignment,
					ProjectB:  projB.ID,
					DatesA:    DateRange{Start: projA.StartDate, End: projA.EndDate},
					DatesB:    DateRange{Start: projB.StartDate, End: projB.EndDate},
				})
				break
			}
		}
	}
	return out
}

// FindSkillCertMismatches reports assigned pilots that fail their project's
// skill or certification requirements. Only the failed dimension is carried
// in the finding.
func FindSkillCertMismatches(pilots []roster.Pilot, projects []mission.Project) []SkillCertMismatch {
	out := make([]SkillCertMismatch, 0)
	for _, p := range pilots {
		if !p.Assigned() {
			continue
		}
		proj := mission.FindByID(projects, p.CurrentAssignment)
		if proj == nil {
			continue
		}
		skillsOK := fields.HasMatch(p.SkillList(), proj.RequiredSkills)
		certsOK := fields.HasMatch(p.CertificationList(), proj.RequiredCerts)
		if skillsOK && certsOK {
			continue
		}
		m := SkillCertMismatch{
			PilotID:   p.ID,
			PilotName: p.Name,
			Project:   p.CurrentAssignment,
		}
		if !skillsOK {
			m.MissingSkills = strings.TrimSpace(proj.RequiredSkills)
		}
		if !certsOK {
			m.MissingCerts = strings.TrimSpace(proj.RequiredCerts)
		}
		out = append(out, m)
	}
	return out
}

// FindMaintenanceAssigned reports drones flagged as in maintenance while
// still carrying an assignment.
func FindMaintenanceAssigned(drones []fleet.Drone) []fleet.Drone {
	out := make([]fleet.Drone, 0)
	for _, d := range drones {
		if fields.EqualFold(string(d.Status), string(fleet.StatusMaintenance)) && d.Assigned() {
			out = append(out, d)
		}
	}
	return out
}

// FindLocationMismatches reports assigned pilots based somewhere other than
// their project's location.
func FindLocationMismatches(pilots []roster.Pilot, projects []mission.Project) []LocationMismatch {
	out := make([]LocationMismatch, 0)
	for _, p := range pilots {
		if !p.Assigned() {
			continue
		}
		proj := mission.FindByID(projects, p.CurrentAssignment)
		if proj == nil {
			continue
		}
		if fields.EqualFold(p.Location, proj.Location) {
			continue
		}
		out = append(out, LocationMismatch{
			PilotID:         p.ID,
			PilotName:       p.Name,
			PilotLocation:   p.Location,
			Project:         p.CurrentAssignment,
			ProjectLocation: proj.Location,
		})
	}
	return out
}

// FindPilotDroneLocationMismatches reports pilot/drone pairs sharing a
// project but sitting in different locations.
func FindPilotDroneLocationMismatches(pilots []roster.Pilot, drones []fleet.Drone) []PilotDroneLocationMismatch {
	out := make([]PilotDroneLocationMismatch, 0)
	for _, p := range pilots {
		if !p.Assigned() {
			continue
		}
		for _, d := range drones {
			if strings.TrimSpace(d.CurrentAssignment) != strings.TrimSpace(p.CurrentAssignment) {
				continue
			}
			if fields.EqualFold(p.Location, d.Location) {
				continue
			}
			out = append(out, PilotDroneLocationMismatch{
				PilotID:       p.ID,
				PilotName:     p.Name,
				PilotLocation: p.Location,
				DroneID:       d.ID,
				DroneLocation: d.Location,
				Project:       p.CurrentAssignment,
			})
		}
	}
	return out
}

// Package matching ranks pilots and drones against a project's location,
// skill, certification and timing requirements. It reads across the roster,
// fleet and mission record sets and performs no mutation.
package matching

import (
	"context"
	"strings"

	"skylark-ops/internal/fields"
	"skylark-ops/internal/fleet"
	"skylark-ops/internal/mission"
	"skylark-ops/internal/roster"
)

// capabilityMap translates a required project skill into the drone
// capability tags that can serve it. Skills without an entry map to
// themselves lower-cased.
var capabilityMap = map[string][]string{
	"mapping":    {"rgb", "lidar"},
	"inspection": {"rgb"},
	"survey":     {"rgb"},
	"thermal":    {"thermal"},
}

// PilotCandidate is the projection returned for an eligible pilot.
type PilotCandidate struct {
	PilotID        string        `json:"pilot_id"`
	Name           string        `json:"name"`
	Skills         string        `json:"skills"`
	Certifications string        `json:"certifications"`
	Location       string        `json:"location"`
	Status         roster.Status `json:"status"`
}

type Service interface {
	MatchPilots(ctx context.Context, projectID string) ([]PilotCandidate, error)
	MatchDrones(ctx context.Context, projectID string) ([]fleet.Drone, error)
}

type service struct {
	pilots   roster.Store
	drones   fleet.Store
	missions mission.Store
}

func NewService(pilots roster.Store, drones fleet.Store, missions mission.Store) Service {
	return &service{pilots: pilots, drones: drones, missions: missions}
}

// MatchPilots returns pilots eligible for the project: available, at the
// project's location, holding at least one required skill and cert, and not
// becoming available only after the project starts. An unknown project
// yields an empty result, not an error.
func (s *service) MatchPilots(ctx context.Context, projectID string) ([]PilotCandidate, error) {
	projects, err := s.missions.ReadProjects(ctx)
	if err != nil {
		return nil, err
	}
	proj := mission.FindByID(projects, projectID)
	if proj == nil {
		return []PilotCandidate{}, nil
	}

	pilots, err := s.pilots.ReadPilots(ctx)
	if err != nil {
		return nil, err
	}

	start, startKnown := fields.ParseDate(proj.StartDate)
	out := make([]PilotCandidate, 0)
	for _, p := range pilots {
		if !fields.EqualFold(string(p.Status), "Available") {
			continue
		}
		if !fields.EqualFold(p.Location, proj.Location) {
			continue
		}
		if !fields.HasMatch(p.SkillList(), proj.RequiredSkills) {
			continue
		}
		if !fields.HasMatch(p.CertificationList(), proj.RequiredCerts) {
			continue
		}
		if availFrom, ok := fields.ParseDate(p.AvailableFrom); ok && startKnown && availFrom.After(start) {
			continue
		}
		out = append(out, PilotCandidate{
			PilotID:        p.ID,
			Name:           p.Name,
			Skills:         p.Skills,
			Certifications: p.Certifications,
			Location:       p.Location,
			Status:         p.Status,
		})
	}
	return out, nil
}

// MatchDrones returns available drones at the project's location whose
// capabilities cover at least one capability derived from the project's
// required skills. A project without required skills accepts any drone that
// passes the location and status gates. Unknown projects yield an empty
// result.
func (s *service) MatchDrones(ctx context.Context, projectID string) ([]fleet.Drone, error) {
	projects, err := s.missions.ReadProjects(ctx)
	if err != nil {
		return nil, err
	}
	proj := mission.FindByID(projects, projectID)
	if proj == nil {
		return []fleet.Drone{}, nil
	}

	drones, err := s.drones.ReadDrones(ctx)
	if err != nil {
		return nil, err
	}

	needed := RequiredCapabilities(proj.RequiredSkillList())
	out := make([]fleet.Drone, 0)
	for _, d := range drones {
		if strings.TrimSpace(string(d.Status)) != string(fleet.StatusAvailable) {
			continue
		}
		if !fields.EqualFold(d.Location, proj.Location) {
			continue
		}
		if CapabilitiesCover(d.CapabilityList(), needed) {
			out = append(out, d)
		}
	}
	return out, nil
}

// RequiredCapabilities expands project skills through the capability map.
func RequiredCapabilities(skills []string) []string {
	var caps []string
	for _, s := range skills {
		key := strings.ToLower(strings.TrimSpace(s))
		if mapped, ok := capabilityMap[key]; ok {
			caps = append(caps, mapped...)
		} else {
			caps = append(caps, key)
		}
	}
	return caps
}

// CapabilitiesCover tests the held capability set against the needed tags
// with case-insensitive substring containment, so "RGB + Zoom" covers "rgb".
// An empty needed set always matches.
func CapabilitiesCover(held []string, needed []string) bool {
	if len(needed) == 0 {
		return true
	}
	haystack := strings.ToLower(strings.Join(held, " "))
	for _, n := range needed {
		if strings.Contains(haystack, strings.ToLower(n)) {
			return true
		}
	}
	return false
}

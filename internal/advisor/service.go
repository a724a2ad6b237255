// Package advisor composes the matching engine and the conflict detector
// into a single recommendation bundle for a project that suddenly needs new
// resources. It never mutates anything.
package advisor

import (
	"context"

	"skylark-ops/internal/conflicts"
	"skylark-ops/internal/fleet"
	"skylark-ops/internal/matching"
	"skylark-ops/internal/mission"
)

// Recommendation is the urgent-reassignment bundle: candidate pilots and
// drones for the project, how much of the fleet is currently down for
// maintenance, and the full fleet-wide conflict report (not restricted to
// this project).
type Recommendation struct {
	ProjectID        string                    `json:"project_id"`
	Reason           string                    `json:"reason"`
	SuggestedPilots  []matching.PilotCandidate `json:"suggested_pilots"`
	SuggestedDrones  []fleet.Drone             `json:"suggested_drones"`
	MaintenanceCount int                       `json:"maintenance_count"`
	Conflicts        *conflicts.Report         `json:"conflicts"`
}

type Service interface {
	Suggest(ctx context.Context, projectID, reason string) (*Recommendation, error)
}

type service struct {
	missions  mission.Service
	matcher   matching.Service
	fleet     fleet.Service
	conflicts conflicts.Service
}

func NewService(missions mission.Service, matcher matching.Service, fleetSvc fleet.Service, conflictSvc conflicts.Service) Service {
	return &service{missions: missions, matcher: matcher, fleet: fleetSvc, conflicts: conflictSvc}
}

func (s *service) Suggest(ctx context.Context, projectID, reason string) (*Recommendation, error) {
	proj, err := s.missions.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	pilots, err := s.matcher.MatchPilots(ctx, proj.ID)
	if err != nil {
		return nil, err
	}
	drones, err := s.matcher.MatchDrones(ctx, proj.ID)
	if err != nil {
		return nil, err
	}

	inMaintenance, err := s.fleet.List(ctx, fleet.Filter{Status: string(fleet.StatusMaintenance)})
	if err != nil {
		return nil, err
	}

	report, err := s.conflicts.RunAll(ctx)
	if err != nil {
		return nil, err
	}

	return &Recommendation{
		ProjectID:        proj.ID,
		Reason:           reason,
		SuggestedPilots:  pilots,
		SuggestedDrones:  drones,
		MaintenanceCount: len(inMaintenance),
		Conflicts:        report,
	}, nil
}

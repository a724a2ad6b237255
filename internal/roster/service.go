package roster

import (
	"context"
	"strings"

	"github.com/google/uuid"

	domainerrors "skylark-ops/internal/errors"
	"skylark-ops/internal/fields"
	"skylark-ops/internal/mission"
)

// Store is the pilot slice of the record store: bulk read, full-table
// overwrite write. The service reads fresh on every call and always writes
// the whole roster back.
type Store interface {
	ReadPilots(ctx context.Context) ([]Pilot, error)
	WritePilots(ctx context.Context, pilots []Pilot) error
}

// Filter narrows List. Absent fields impose no constraint. Skill and
// certification filters match if the pilot holds any of the listed values;
// location is case-insensitive; status is an exact match.
type Filter struct {
	Skill         string
	Certification string
	Location      string
	Status        string
}

type Service interface {
	List(ctx context.Context, f Filter) ([]Pilot, error)
	CurrentAssignments(ctx context.Context) ([]Pilot, error)
	Create(ctx context.Context, p Pilot) (*Pilot, error)
	SetStatus(ctx context.Context, pilotID, newStatus string) (*Pilot, error)
	Assign(ctx context.Context, pilotID, projectID string) (*Pilot, error)
	Unassign(ctx context.Context, pilotID string) (*Pilot, error)
}

type service struct {
	store    Store
	missions mission.Store
}

func NewService(store Store, missions mission.Store) Service {
	return &service{store: store, missions: missions}
}

func (s *service) List(ctx context.Context, f Filter) ([]Pilot, error) {
	pilots, err := s.store.ReadPilots(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Pilot, 0, len(pilots))
	for _, p := range pilots {
		if f.Skill != "" && !fields.HasMatch(p.SkillList(), f.Skill) {
			continue
		}
		if f.Certification != "" && !fields.HasMatch(p.CertificationList(), f.Certification) {
			continue
		}
		if f.Location != "" && !fields.EqualFold(p.Location, f.Location) {
			continue
		}
		if f.Status != "" && strings.TrimSpace(string(p.Status)) != strings.TrimSpace(f.Status) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *service) CurrentAssignments(ctx context.Context) ([]Pilot, error) {
	pilots, err := s.store.ReadPilots(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Pilot, 0)
	for _, p := range pilots {
		if p.Assigned() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *service) Create(ctx context.Context, p Pilot) (*Pilot, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, domainerrors.NewValidation("pilot name is required")
	}
	if p.Status == "" {
		p.Status = StatusAvailable
	}
	if !p.Status.Valid() {
		return nil, domainerrors.InvalidPilotStatus(string(p.Status))
	}
	// New pilots start unassigned; Assigned without a project would break
	// the status/assignment invariant. Assignment goes through Assign.
	if p.Status == StatusAssigned {
		return nil, domainerrors.NewValidation("cannot create a pilot with status Assigned; create them Available and use the assign operation")
	}
	if strings.TrimSpace(p.ID) == "" {
		p.ID = uuid.NewString()
	}
	p.CurrentAssignment = fields.Sentinel
	p.AvailableFrom = fields.Normalize(p.AvailableFrom)

	pilots, err := s.store.ReadPilots(ctx)
	if err != nil {
		return nil, err
	}
	if FindByID(pilots, p.ID) != nil {
		return nil, domainerrors.DuplicatePilot(p.ID)
	}
	pilots = append(pilots, p)
	if err := s.store.WritePilots(ctx, pilots); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *service) SetStatus(ctx context.Context, pilotID, newStatus string) (*Pilot, error) {
	status := Status(strings.TrimSpace(newStatus))
	if !status.Valid() {
		return nil, domainerrors.InvalidPilotStatus(newStatus)
	}
	pilots, err := s.store.ReadPilots(ctx)
	if err != nil {
		return nil, err
	}
	p := FindByID(pilots, pilotID)
	if p == nil {
		return nil, domainerrors.PilotNotFound(pilotID)
	}
	p.SetStatus(status)
	if err := s.store.WritePilots(ctx, pilots); err != nil {
		return nil, err
	}
	return p, nil
}

// Assign puts a pilot on a project, rejecting the change with a conflict if
// the pilot's current project overlaps the new one. The project is resolved
// first so a bad project id fails before the roster is touched.
func (s *service) Assign(ctx context.Context, pilotID, projectID string) (*Pilot, error) {
	projects, err := s.missions.ReadProjects(ctx)
	if err != nil {
		return nil, err
	}
	proj := mission.FindByID(projects, projectID)
	if proj == nil {
		return nil, domainerrors.ProjectNotFound(projectID)
	}

	pilots, err := s.store.ReadPilots(ctx)
	if err != nil {
		return nil, err
	}
	p := FindByID(pilots, pilotID)
	if p == nil {
		return nil, domainerrors.PilotNotFound(pilotID)
	}

	if p.Assigned() {
		if current := mission.FindByID(projects, p.CurrentAssignment); current != nil {
			if current.Overlaps(proj) {
				return nil, domainerrors.DoubleBooking(p.ID, p.CurrentAssignment)
			}
		}
	}

	p.Assign(proj.ID)
	if err := s.store.WritePilots(ctx, pilots); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Unassign(ctx context.Context, pilotID string) (*Pilot, error) {
	pilots, err := s.store.ReadPilots(ctx)
	if err != nil {
		return nil, err
	}
	p := FindByID(pilots, pilotID)
	if p == nil {
		return nil, domainerrors.PilotNotFound(pilotID)
	}
	p.Unassign()
	if err := s.store.WritePilots(ctx, pilots); err != nil {
		return nil, err
	}
	return p, nil
}

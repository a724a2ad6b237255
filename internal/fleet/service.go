package fleet

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	domainerrors "skylark-ops/internal/errors"
	"skylark-ops/internal/fields"
)

// Store is the drone slice of the record store: bulk read, full-table
// overwrite write.
type Store interface {
	ReadDrones(ctx context.Context) ([]Drone, error)
	WriteDrones(ctx context.Context, drones []Drone) error
}

// Filter narrows List; absent fields impose no constraint.
type Filter struct {
	Capability string
	Status     string
	Location   string
}

type Service interface {
	List(ctx context.Context, f Filter) ([]Drone, error)
	MaintenanceDue(ctx context.Context) ([]Drone, error)
	Create(ctx context.Context, d Drone) (*Drone, error)
	SetStatus(ctx context.Context, droneID, newStatus string) (*Drone, error)
}

type service struct {
	store Store
}

func NewService(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context, f Filter) ([]Drone, error) {
	drones, err := s.store.ReadDrones(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Drone, 0, len(drones))
	for _, d := range drones {
		if f.Capability != "" && !fields.HasMatch(d.CapabilityList(), f.Capability) {
			continue
		}
		if f.Status != "" && strings.TrimSpace(string(d.Status)) != strings.TrimSpace(f.Status) {
			continue
		}
		if f.Location != "" && !fields.EqualFold(d.Location, f.Location) {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

// MaintenanceDue returns drones whose maintenance date parses and falls on
// or before today (server local date). Unparseable dates are never due.
func (s *service) MaintenanceDue(ctx context.Context) ([]Drone, error) {
	drones, err := s.store.ReadDrones(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	out := make([]Drone, 0)
	for _, d := range drones {
		due, ok := fields.ParseDate(d.MaintenanceDue)
		if ok && !due.After(today) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *service) Create(ctx context.Context, d Drone) (*Drone, error) {
	if d.Status == "" {
		d.Status = StatusAvailable
	}
	if !d.Status.Valid() {
		return nil, domainerrors.InvalidDroneStatus(string(d.Status))
	}
	if strings.TrimSpace(d.ID) == "" {
		d.ID = uuid.NewString()
	}
	d.CurrentAssignment = fields.Normalize(d.CurrentAssignment)
	if d.Status == StatusAvailable {
		d.CurrentAssignment = fields.Sentinel
	}
	d.MaintenanceDue = fields.Normalize(d.MaintenanceDue)

	drones, err := s.store.ReadDrones(ctx)
	if err != nil {
		return nil, err
	}
	if FindByID(drones, d.ID) != nil {
		return nil, domainerrors.DuplicateDrone(d.ID)
	}
	drones = append(drones, d)
	if err := s.store.WriteDrones(ctx, drones); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *service) SetStatus(ctx context.Context, droneID, newStatus string) (*Drone, error) {
	status := Status(strings.TrimSpace(newStatus))
	if !status.Valid() {
		return nil, domainerrors.InvalidDroneStatus(newStatus)
	}
	drones, err := s.store.ReadDrones(ctx)
	if err != nil {
		return nil, err
	}
	d := FindByID(drones, droneID)
	if d == nil {
		return nil, domainerrors.DroneNotFound(droneID)
	}
	d.SetStatus(status)
	if err := s.store.WriteDrones(ctx, drones); err != nil {
		return nil, err
	}
	return d, nil
}

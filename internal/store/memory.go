package store

import (
	"context"
	"sync"

	"skylark-ops/internal/fleet"
	"skylark-ops/internal/mission"
	"skylark-ops/internal/roster"
)

// Memory keeps the three tables in process. Used by tests and as a
// throwaway dev backend; same overwrite-write contract as the real stores.
type Memory struct {
	mu       sync.RWMutex
	pilots   []roster.Pilot
	drones   []fleet.Drone
	projects []mission.Project
}

func NewMemory() *Memory {
	return &Memory{}
}

// Seed replaces all three tables at once.
func (m *Memory) Seed(pilots []roster.Pilot, drones []fleet.Drone, projects []mission.Project) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pilots = append([]roster.Pilot(nil), pilots...)
	m.drones = append([]fleet.Drone(nil), drones...)
	m.projects = append([]mission.Project(nil), projects...)
}

func (m *Memory) ReadPilots(ctx context.Context) ([]roster.Pilot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]roster.Pilot(nil), m.pilots...), nil
}

func (m *Memory) WritePilots(ctx context.Context, pilots []roster.Pilot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pilots = append([]roster.Pilot(nil), pilots...)
	return nil
}

func (m *Memory) ReadDrones(ctx context.Context) ([]fleet.Drone, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]fleet.Drone(nil), m.drones...), nil
}

func (m *Memory) WriteDrones(ctx context.Context, drones []fleet.Drone) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drones = append([]fleet.Drone(nil), drones...)
	return nil
}

func (m *Memory) ReadProjects(ctx context.Context) ([]mission.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]mission.Project(nil), m.projects...), nil
}

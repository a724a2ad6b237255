package store

import (
	"context"
	"log/slog"
	"time"

	"skylark-ops/internal/fleet"
	"skylark-ops/internal/mission"
	"skylark-ops/internal/roster"
)

// Tiered reads from the remote spreadsheet and silently falls back to the
// local files when the remote fails or the breaker is open; the intermediate
// failure is logged, never surfaced. Writes are the opposite: they go to the
// remote and propagate its failure, because losing a roster update quietly
// is worse than reporting it.
type Tiered struct {
	remote  RecordStore
	local   RecordStore
	breaker *breaker
}

func NewTiered(remote, local RecordStore, failureThreshold int, cooldown time.Duration) *Tiered {
	return &Tiered{
		remote:  remote,
		local:   local,
		breaker: newBreaker(failureThreshold, cooldown),
	}
}

func (t *Tiered) ReadPilots(ctx context.Context) ([]roster.Pilot, error) {
	if t.breaker.allow() {
		pilots, err := t.remote.ReadPilots(ctx)
		if err == nil {
			t.breaker.recordSuccess()
			return pilots, nil
		}
		t.fallback(ctx, "pilots", err)
	}
	return t.local.ReadPilots(ctx)
}

func (t *Tiered) WritePilots(ctx context.Context, pilots []roster.Pilot) error {
	if err := t.remote.WritePilots(ctx, pilots); err != nil {
		t.breaker.recordFailure()
		return err
	}
	t.breaker.recordSuccess()
	return nil
}

func (t *Tiered) ReadDrones(ctx context.Context) ([]fleet.Drone, error) {
	if t.breaker.allow() {
		drones, err := t.remote.ReadDrones(ctx)
		if err == nil {
			t.breaker.recordSuccess()
			return drones, nil
		}
		t.fallback(ctx, "drones", err)
	}
	return t.local.ReadDrones(ctx)
}

func (t *Tiered) WriteDrones(ctx context.Context, drones []fleet.Drone) error {
	if err := t.remote.WriteDrones(ctx, drones); err != nil {
		t.breaker.recordFailure()
		return err
	}
	t.breaker.recordSuccess()
	return nil
}

func (t *Tiered) ReadProjects(ctx context.Context) ([]mission.Project, error) {
	if t.breaker.allow() {
		projects, err := t.remote.ReadProjects(ctx)
		if err == nil {
			t.breaker.recordSuccess()
			return projects, nil
		}
		t.fallback(ctx, "projects", err)
	}
	return t.local.ReadProjects(ctx)
}

func (t *Tiered) fallback(ctx context.Context, table string, err error) {
	t.breaker.recordFailure()
	slog.WarnContext(ctx, "remote store read failed, serving local fallback",
		slog.String("table", table),
		slog.String("error", err.Error()),
	)
}

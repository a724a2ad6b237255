// Package postgres is the durable record-store backend. It keeps the same
// contract as the file and spreadsheet stores: bulk reads and transactional
// full-table overwrite writes, text columns all the way (cells keep their
// sentinel form).
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"skylark-ops/internal/fleet"
	"skylark-ops/internal/mission"
	"skylark-ops/internal/roster"
)

type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		MaxOpenConns:    25,
		MaxIdleConns:    10,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 1 * time.Minute,
	}
}

func Connect(dsn string, pool PoolConfig) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}

	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(pool.ConnMaxLifetime)
	db.SetConnMaxIdleTime(pool.ConnMaxIdleTime)

	return db, nil
}

type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ReadPilots(ctx context.Context) ([]roster.Pilot, error) {
	var pilots []roster.Pilot
	const q = `SELECT pilot_id, name, location, status, skills, certifications,
	                  current_assignment, available_from
	           FROM pilots ORDER BY pilot_id`
	if err := s.db.SelectContext(ctx, &pilots, q); err != nil {
		return nil, fmt.Errorf("read pilots: %w", err)
	}
	return pilots, nil
}

func (s *Store) WritePilots(ctx context.Context, pilots []roster.Pilot) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write pilots: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM pilots`); err != nil {
		return fmt.Errorf("write pilots: %w", err)
	}
	const q = `INSERT INTO pilots
	           (pilot_id, name, location, status, skills, certifications, current_assignment, available_from)
	           VALUES (:pilot_id, :name, :location, :status, :skills, :certifications, :current_assignment, :available_from)`
	for _, p := range pilots {
		if _, err := tx.NamedExecContext(ctx, q, p); err != nil {
			return fmt.Errorf("write pilots: %w", err)
		}
	}
	return tx.Commit()
}

func (s *Store) ReadDrones(ctx context.Context) ([]fleet.Drone, error) {
	var drones []fleet.Drone
	const q = `SELECT drone_id, location, status, capabilities, current_assignment, maintenance_due
	           FROM drones ORDER BY drone_id`
	if err := s.db.SelectContext(ctx, &drones, q); err != nil {
		return nil, fmt.Errorf("read drones: %w", err)
	}
	return drones, nil
}

func (s *Store) WriteDrones(ctx context.Context, drones []fleet.Drone) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write drones: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM drones`); err != nil {
		return fmt.Errorf("write drones: %w", err)
	}
	const q = `INSERT INTO drones
	           (drone_id, location, status, capabilities, current_assignment, maintenance_due)
	           VALUES (:drone_id, :location, :status, :capabilities, :current_assignment, :maintenance_due)`
	for _, d := range drones {
		if _, err := tx.NamedExecContext(ctx, q, d); err != nil {
			return fmt.Errorf("write drones: %w", err)
		}
	}
	return tx.Commit()
}

func (s *Store) ReadProjects(ctx context.Context) ([]mission.Project, error) {
	var projects []mission.Project
	const q = `SELECT project_id, location, required_skills, required_certs, start_date, end_date
	           FROM projects ORDER BY project_id`
	if err := s.db.SelectContext(ctx, &projects, q); err != nil {
		return nil, fmt.Errorf("read projects: %w", err)
	}
	return projects, nil
}

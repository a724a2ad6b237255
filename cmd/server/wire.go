package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	goredis "github.com/redis/go-redis/v9"

	"skylark-ops/config"
	"skylark-ops/internal/advisor"
	"skylark-ops/internal/auth"
	"skylark-ops/internal/conflicts"
	"skylark-ops/internal/fleet"
	"skylark-ops/internal/jwt"
	"skylark-ops/internal/matching"
	"skylark-ops/internal/mission"
	"skylark-ops/internal/redis"
	"skylark-ops/internal/roster"
	"skylark-ops/internal/store"
	"skylark-ops/internal/store/postgres"
)

type AppContext struct {
	Config *config.Config
	DB     *sqlx.DB // set only for the postgres backend
	Redis  *goredis.Client
	Router *gin.Engine

	Records store.RecordStore

	// Infrastructure
	JWTService       *jwt.Service
	ConflictCache    *redis.ConflictReportCache
	IdempotencyStore *redis.IdempotencyStore
	RateLimiter      *redis.RateLimiter

	RosterService   roster.Service
	FleetService    fleet.Service
	MissionService  mission.Service
	MatchingService matching.Service
	ConflictService conflicts.Service
	AdvisorService  advisor.Service

	AuthHandler     *auth.Handler
	RosterHandler   *roster.Handler
	FleetHandler    *fleet.Handler
	MissionHandler  *mission.Handler
	MatchingHandler *matching.Handler
	ConflictHandler *conflicts.Handler
	AdvisorHandler  *advisor.Handler
}

func wireApp(cfg *config.Config) (*AppContext, error) {
	// ── Record store ──
	records, db, err := buildRecordStore(cfg)
	if err != nil {
		return nil, err
	}

	// ── Redis ──
	var rdb *goredis.Client
	if cfg.Redis.URL != "" {
		opts, err := goredis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, fmt.Errorf("redis parse url: %w", err)
		}
		rdb = goredis.NewClient(opts)
	} else {
		rdb = goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}

	// ── Infrastructure ──
	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.ExpiryHours)
	conflictCache := redis.NewConflictReportCache(rdb, cfg.Cache.ConflictReportTTLSec)
	idempotencyStore := redis.NewIdempotencyStore(rdb, cfg.Cache.IdempotencyTTLSec)
	rateLimiter := redis.NewRateLimiter(rdb, cfg.RateLimiter.MaxRequests, cfg.RateLimiter.WindowSeconds)

	// ── Services ──
	missionService := mission.NewService(records)
	rosterService := roster.NewService(records, records)
	fleetService := fleet.NewService(records)
	matchingService := matching.NewService(records, records, records)
	conflictService := conflicts.NewService(records, records, records)
	advisorService := advisor.NewService(missionService, matchingService, fleetService, conflictService)
	authService := auth.NewAuthService(jwtService)

	// ── Handlers ──
	authHandler := auth.NewHandler(authService)
	rosterHandler := roster.NewHandler(rosterService, conflictCache)
	fleetHandler := fleet.NewHandler(fleetService, conflictCache)
	missionHandler := mission.NewHandler(missionService)
	matchingHandler := matching.NewHandler(matchingService)
	conflictHandler := conflicts.NewHandler(conflictService, conflictCache)
	advisorHandler := advisor.NewHandler(advisorService)

	return &AppContext{
		Config:  cfg,
		DB:      db,
		Redis:   rdb,
		Router:  gin.New(),
		Records: records,

		JWTService:       jwtService,
		ConflictCache:    conflictCache,
		IdempotencyStore: idempotencyStore,
		RateLimiter:      rateLimiter,

		RosterService:   rosterService,
		FleetService:    fleetService,
		MissionService:  missionService,
		MatchingService: matchingService,
		ConflictService: conflictService,
		AdvisorService:  advisorService,

		AuthHandler:     authHandler,
		RosterHandler:   rosterHandler,
		FleetHandler:    fleetHandler,
		MissionHandler:  missionHandler,
		MatchingHandler: matchingHandler,
		ConflictHandler: conflictHandler,
		AdvisorHandler:  advisorHandler,
	}, nil
}

// buildRecordStore assembles the configured backend. The sheets backend is
// always tiered over the local files so a dead spreadsheet API degrades to
// the last synced copy instead of an outage.
func buildRecordStore(cfg *config.Config) (store.RecordStore, *sqlx.DB, error) {
	switch cfg.Store.Backend {
	case "csv":
		return store.NewCSV(cfg.Store.DataDir), nil, nil

	case "sheets":
		sheetsCfg := store.SheetsConfig{
			CredentialsFile:    cfg.Sheets.CredentialsFile,
			PilotSpreadsheetID: cfg.Sheets.PilotSpreadsheetID,
			DroneSpreadsheetID: cfg.Sheets.DroneSpreadsheetID,
			MissionSpreadsheet: cfg.Sheets.MissionSpreadsheet,
			Worksheet:          cfg.Sheets.Worksheet,
		}
		if !sheetsCfg.Configured() {
			return nil, nil, fmt.Errorf("sheets backend: PILOT_SHEET_ID, DRONE_SHEET_ID and MISSIONS_SHEET_ID are required")
		}
		remote, err := store.NewSheets(context.Background(), sheetsCfg)
		if err != nil {
			return nil, nil, err
		}
		local := store.NewCSV(cfg.Store.DataDir)
		cooldown := time.Duration(cfg.Breaker.CooldownSeconds) * time.Second
		return store.NewTiered(remote, local, cfg.Breaker.FailureThreshold, cooldown), nil, nil

	case "postgres":
		db, err := postgres.Connect(cfg.Postgres.DSN(), postgres.DefaultPoolConfig())
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.RunMigrationsUp(db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("migrations: %w", err)
		}
		return postgres.NewStore(db), db, nil
	}
	return nil, nil, fmt.Errorf("invalid store backend %q", cfg.Store.Backend)
}

func (a *AppContext) Close() {
	if a.DB != nil {
		a.DB.Close()
	}
	a.Redis.Close()
}

func (a *AppContext) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()
	checks := map[string]string{}
	healthy := true

	if err := a.Redis.Ping(ctx).Err(); err != nil {
		checks["redis"] = err.Error()
		healthy = false
	} else {
		checks["redis"] = "ok"
	}

	if a.DB != nil {
		if err := a.DB.PingContext(ctx); err != nil {
			checks["postgres"] = err.Error()
			healthy = false
		} else {
			checks["postgres"] = "ok"
		}
	}

	if _, err := a.Records.ReadProjects(ctx); err != nil {
		checks["store"] = err.Error()
		healthy = false
	} else {
		checks["store"] = "ok"
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status": checks,
	})
}

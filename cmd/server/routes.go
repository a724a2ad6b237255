package main

import (
	"skylark-ops/internal/auth"
	"skylark-ops/internal/middleware"
)

func (app *AppContext) setupRoutes() {
	r := app.Router

	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.RateLimit(app.RateLimiter))
	r.Use(middleware.Auth(app.JWTService))

	r.GET("/health", app.healthCheck)
	r.POST("/auth/token", app.AuthHandler.GenerateToken)

	// Read endpoints, open to every authenticated role.
	read := r.Group("/")
	read.Use(middleware.RoleGuard(auth.RoleViewer, auth.RoleCoordinator, auth.RoleAdmin))
	{
		read.GET("/pilots", app.RosterHandler.List)
		read.GET("/pilots/assignments", app.RosterHandler.CurrentAssignments)
		read.GET("/drones", app.FleetHandler.List)
		read.GET("/drones/maintenance-due", app.FleetHandler.MaintenanceDue)
		read.GET("/projects", app.MissionHandler.List)
		read.GET("/projects/:id", app.MissionHandler.Get)
		read.GET("/projects/:id/pilot-matches", app.MatchingHandler.PilotMatches)
		read.GET("/projects/:id/drone-matches", app.MatchingHandler.DroneMatches)
		// The full report walks all three tables; cap how many run at once.
		read.GET("/conflicts", middleware.Bulkhead(app.Config.Bulkhead.ReportPool), app.ConflictHandler.Report)
	}

	// Mutations rewrite whole tables, so they sit behind the smaller
	// bulkhead pool and the idempotency replay cache.
	mutate := r.Group("/")
	mutate.Use(middleware.RoleGuard(auth.RoleCoordinator, auth.RoleAdmin))
	mutate.Use(middleware.Bulkhead(app.Config.Bulkhead.MutationPool))
	mutate.Use(middleware.Idempotency(app.IdempotencyStore))
	{
		mutate.PATCH("/pilots/:id/status", app.RosterHandler.UpdateStatus)
		mutate.POST("/pilots/:id/assign", app.RosterHandler.Assign)
		mutate.POST("/pilots/:id/unassign", app.RosterHandler.Unassign)
		mutate.PATCH("/drones/:id/status", app.FleetHandler.UpdateStatus)
		mutate.POST("/projects/:id/reassignment", app.AdvisorHandler.Suggest)
	}

	admin := r.Group("/")
	admin.Use(middleware.RoleGuard(auth.RoleAdmin))
	admin.Use(middleware.Bulkhead(app.Config.Bulkhead.MutationPool))
	admin.Use(middleware.Idempotency(app.IdempotencyStore))
	{
		admin.POST("/pilots", app.RosterHandler.Create)
		admin.POST("/drones", app.FleetHandler.Create)
	}
}

package fleet

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"skylark-ops/internal/pkg/apperrors"
)

// ReportInvalidator drops the cached conflict report after a fleet change.
type ReportInvalidator interface {
	Invalidate(ctx context.Context) error
}

type Handler struct {
	service Service
	reports ReportInvalidator
}

func NewHandler(service Service, reports ReportInvalidator) *Handler {
	return &Handler{service: service, reports: reports}
}

func (h *Handler) List(c *gin.Context) {
	f := Filter{
		Capability: c.Query("capability"),
		Status:     c.Query("status"),
		Location:   c.Query("location"),
	}
	drones, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		apperrors.ToHTTPError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"drones": drones, "count": len(drones)})
}

func (h *Handler) MaintenanceDue(c *gin.Context) {
	drones, err := h.service.MaintenanceDue(c.Request.Context())
	if err != nil {
		apperrors.ToHTTPError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"drones": drones, "count": len(drones)})
}

type CreateDroneRequest struct {
	DroneID        string `json:"drone_id"`
	Location       string `json:"location"`
	Status         string `json:"status"`
	Capabilities   string `json:"capabilities"`
	MaintenanceDue string `json:"maintenance_due"`
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateDroneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "VALIDATION", "message": err.Error()}})
		return
	}
	d, err := h.service.Create(c.Request.Context(), Drone{
		ID:             req.DroneID,
		Location:       req.Location,
		Status:         Status(req.Status),
		Capabilities:   req.Capabilities,
		MaintenanceDue: req.MaintenanceDue,
	})
	if err != nil {
		apperrors.ToHTTPError(c, err)
		return
	}
	_ = h.reports.Invalidate(c.Request.Context())
	c.JSON(http.StatusCreated, gin.H{"drone": d})
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "VALIDATION", "message": err.Error()}})
		return
	}
	d, err := h.service.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		apperrors.ToHTTPError(c, err)
		return
	}
	_ = h.reports.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"drone": d})
}

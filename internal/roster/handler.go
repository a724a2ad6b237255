package roster

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"skylark-ops/internal/pkg/apperrors"
)

// ReportInvalidator drops the cached conflict report after a roster change
// (avoids importing the redis package here).
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
		Skill:         c.Query("skill"),
		Certification: c.Query("certification"),
		Location:      c.Query("location"),
		Status:        c.Query("status"),
	}
	pilots, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		apperrors.ToHTTPError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pilots": pilots, "count": len(pilots)})
}

func (h *Handler) CurrentAssignments(c *gin.Context) {
	pilots, err := h.service.CurrentAssignments(c.Request.Context())
	if err != nil {
		apperrors.ToHTTPError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pilots": pilots, "count": len(pilots)})
}

type CreatePilotRequest struct {
	PilotID        string `json:"pilot_id"`
	Name           string `json:"name" binding:"required"`
	Location       string `json:"location"`
	Status         string `json:"status"`
	Skills         string `json:"skills"`
	Certifications string `json:"certifications"`
	AvailableFrom  string `json:"available_from"`
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePilotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "VALIDATION", "message": err.Error()}})
		return
	}
	p, err := h.service.Create(c.Request.Context(), Pilot{
		ID:             req.PilotID,
		Name:           req.Name,
		Location:       req.Location,
		Status:         Status(req.Status),
		Skills:         req.Skills,
		Certifications: req.Certifications,
		AvailableFrom:  req.AvailableFrom,
	})
	if err != nil {
		apperrors.ToHTTPError(c, err)
		return
	}
	h.invalidateReports(c)
	c.JSON(http.StatusCreated, gin.H{"pilot": p})
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
	p, err := h.service.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		apperrors.ToHTTPError(c, err)
		return
	}
	h.invalidateReports(c)
	c.JSON(http.StatusOK, gin.H{"pilot": p})
}

type AssignRequest struct {
	ProjectID string `json:"project_id" binding:"required"`
}

func (h *Handler) Assign(c *gin.Context) {
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "VALIDATION", "message": err.Error()}})
		return
	}
	p, err := h.service.Assign(c.Request.Context(), c.Param("id"), req.ProjectID)
	if err != nil {
		apperrors.ToHTTPError(c, err)
		return
	}
	h.invalidateReports(c)
	c.JSON(http.StatusOK, gin.H{"pilot": p})
}

func (h *Handler) Unassign(c *gin.Context) {
	p, err := h.service.Unassign(c.Request.Context(), c.Param("id"))
	if err != nil {
		apperrors.ToHTTPError(c, err)
		return
	}
	h.invalidateReports(c)
	c.JSON(http.StatusOK, gin.H{"pilot": p})
}

func (h *Handler) invalidateReports(c *gin.Context) {
	// best effort; the cache TTL bounds staleness anyway
	_ = h.reports.Invalidate(c.Request.Context())
}

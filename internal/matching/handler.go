package matching

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skylark-ops/internal/pkg/apperrors"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) PilotMatches(c *gin.Context) {
	pilots, err := h.service.MatchPilots(c.Request.Context(), c.Param("id"))
	if err != nil {
		apperrors.ToHTTPError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pilots": pilots, "count": len(pilots)})
}

func (h *Handler) DroneMatches(c *gin.Context) {
	drones, err := h.service.MatchDrones(c.Request.Context(), c.Param("id"))
	if err != nil {
		apperrors.ToHTTPError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"drones": drones, "count": len(drones)})
}

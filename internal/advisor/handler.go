package advisor

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

type SuggestRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) Suggest(c *gin.Context) {
	var req SuggestRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "VALIDATION", "message": err.Error()}})
			return
		}
	}
	if req.Reason == "" {
		req.Reason = "urgent reassignment requested"
	}
	rec, err := h.service.Suggest(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		apperrors.ToHTTPError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendation": rec})
}

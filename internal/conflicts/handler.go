package conflicts

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"skylark-ops/internal/pkg/apperrors"
)

// ReportCache holds a serialized conflict report with a short TTL so
// repeated dashboard polls don't rescan every table.
type ReportCache interface {
	Get(ctx context.Context) ([]byte, bool, error)
	Set(ctx context.Context, report []byte) error
}

type Handler struct {
	service Service
	cache   ReportCache
}

func NewHandler(service Service, cache ReportCache) *Handler {
	return &Handler{service: service, cache: cache}
}

func (h *Handler) Report(c *gin.Context) {
	ctx := c.Request.Context()

	if cached, found, err := h.cache.Get(ctx); err == nil && found {
		c.Data(http.StatusOK, "application/json", cached)
		return
	} else if err != nil {
		slog.ErrorContext(ctx, "conflict report cache read failed", slog.String("error", err.Error()))
	}

	report, err := h.service.RunAll(ctx)
	if err != nil {
		apperrors.ToHTTPError(c, err)
		return
	}

	body, err := json.Marshal(gin.H{"conflicts": report, "clean": report.Clean()})
	if err != nil {
		apperrors.ToHTTPError(c, err)
		return
	}
	if err := h.cache.Set(ctx, body); err != nil {
		slog.ErrorContext(ctx, "conflict report cache write failed", slog.String("error", err.Error()))
	}
	c.Data(http.StatusOK, "application/json", body)
}

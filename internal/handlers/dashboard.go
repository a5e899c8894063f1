package handlers

import (
	"net/http"

	apierrors "github.com/Shreyas8905/simplyCRM/internal/errors"
	"github.com/Shreyas8905/simplyCRM/internal/middleware"
	"github.com/Shreyas8905/simplyCRM/internal/services"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves dashboard aggregates.
type DashboardHandler struct {
	statsService *services.StatsService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(statsService *services.StatsService) *DashboardHandler {
	return &DashboardHandler{
		statsService: statsService,
	}
}

// GetStats returns the total contact count and per-status counts for the
// current user.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	stats, err := h.statsService.Stats(userID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, stats)
}

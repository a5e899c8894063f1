package handlers

import (
	"net/http"
	"time"

	"github.com/Shreyas8905/simplyCRM/internal/database"
	"github.com/gin-gonic/gin"
)

// HealthHandler serves the unauthenticated health probe.
type HealthHandler struct {
	port string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(port string) *HealthHandler {
	return &HealthHandler{port: port}
}

// Check reports server liveness and database reachability.
func (h *HealthHandler) Check(c *gin.Context) {
	dbStatus := "disconnected"
	if db := database.GetDB(); db != nil {
		if sqlDB, err := db.DB(); err == nil && sqlDB.Ping() == nil {
			dbStatus = "connected"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "Server is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  dbStatus,
		"port":      h.port,
	})
}

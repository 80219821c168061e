package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	storeStats func() map[string]int
	now        func() time.Time
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string         `json:"status"`
	Store     map[string]int `json:"store"`
	Timestamp string         `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(storeStats func() map[string]int, now func() time.Time) *HealthController {
	return &HealthController{
		storeStats: storeStats,
		now:        now,
	}
}

// Check handles GET /health requests.
// It returns the API status and the record count of each store collection.
func (h *HealthController) Check(c *gin.Context) {
	response := HealthResponse{
		Status:    "ok",
		Timestamp: h.now().UTC().Format(time.RFC3339),
	}
	if h.storeStats != nil {
		response.Store = h.storeStats()
	}

	c.JSON(http.StatusOK, response)
}

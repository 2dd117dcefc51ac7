package handlers

import (
	"net/http"

	"seniorwork_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/healthz", h.Healthz)
}

// Healthz reports liveness and, when the DB is reachable, readiness.
func (h *HealthHandler) Healthz(c *gin.Context) {
	status := gin.H{"status": "ok"}

	if dbVal, exists := c.Get(string(contextkeys.DBContextKey)); exists {
		if db, ok := dbVal.(*gorm.DB); ok {
			sqlDB, err := db.DB()
			if err != nil || sqlDB.Ping() != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unreachable"})
				return
			}
			status["database"] = "ok"
		}
	}

	c.JSON(http.StatusOK, status)
}

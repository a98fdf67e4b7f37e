package controller

import (
	"net/http"
	"time"

	"nouasseur-portal/logger"
	"nouasseur-portal/web/entity"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthController answers the store connectivity probe.
type HealthController struct {
	db *gorm.DB
}

func NewHealthController(g *gin.RouterGroup, db *gorm.DB) *HealthController {
	a := &HealthController{db: db}
	g.GET("/health", a.health)
	return a
}

func (a *HealthController) health(c *gin.Context) {
	status := entity.HealthStatus{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Database:  entity.DatabaseHealth{Connected: true},
	}

	var probe int
	if err := a.db.Raw("SELECT 1").Scan(&probe).Error; err != nil {
		logger.Warning("health check failed: ", err)
		status.Status = "error"
		status.Database = entity.DatabaseHealth{
			Connected: false,
			Error:     "database unreachable",
		}
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}
	c.JSON(http.StatusOK, status)
}

package handlers

import (
	"net/http"

	"saarthi/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness and backing-store health.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"mongo":     status.Mongo,
		"redis":     status.Redis,
		"checkedAt": status.CheckedAt,
	})
}

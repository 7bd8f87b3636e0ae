package handlers

import (
	"context"
	"net/http"
	"time"

	intconfig "buspass/internal/config"
	"buspass/internal/http/middleware"
	"buspass/internal/utils"

	"github.com/gin-gonic/gin"
)

func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from backend!"})
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func DBCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := intconfig.PingDB(ctx); err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "system", "db_check_failed", err.Error())
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": "database unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "database connection OK"})
}

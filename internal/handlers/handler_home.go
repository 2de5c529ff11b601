package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary Show the API welcome document.
// @Description Points callers at the versioned API root.
// @Tags root
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func getHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":       "Welcome to the Mongo Analytics API",
		"documentation": "Visit /api/v1/ for the report and employee endpoints",
	})
}

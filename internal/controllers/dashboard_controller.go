package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Dashboard serves the fleet-wide KPI rollup.
func Dashboard(c *gin.Context) {
	kpis, err := reporter().Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, kpis)
}

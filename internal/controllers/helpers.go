package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"fleetops/internal/cache"
	"fleetops/internal/config"
	"fleetops/internal/lifecycle"
	"fleetops/internal/reports"
	"fleetops/internal/validation"
)

var kpiCache *cache.Client

// Init wires the optional Redis cache into the controllers. Called once
// from main; a nil client disables caching.
func Init(c *cache.Client) {
	kpiCache = c
}

func coord() *lifecycle.Coordinator {
	return lifecycle.New(config.DB)
}

func reporter() *reports.Service {
	return reports.New(config.DB, kpiCache)
}

// parseID reads the :id URL parameter. Writes the 400 itself on failure.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format."})
		return 0, false
	}
	return uint(id), true
}

// respondError maps the domain error taxonomy onto HTTP statuses:
// field-level validation failures and state violations come back to the
// caller verbatim, missing records 404, anything else logs and 500s.
func respondError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": verrs})
		return
	}
	var serr *lifecycle.StateError
	if errors.As(err, &serr) {
		c.JSON(http.StatusConflict, gin.H{"error": serr.Message, "code": serr.Code})
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found."})
		return
	}
	logrus.WithError(err).WithField("request_id", c.GetString("request_id")).Error("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
}

// actorRef returns the authenticated user's ID as a nullable reference for
// logged_by / created_by columns.
func actorRef(c *gin.Context) *uint {
	idIfc, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	f, ok := idIfc.(float64)
	if !ok {
		return nil
	}
	id := uint(f)
	return &id
}

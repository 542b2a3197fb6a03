package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fleetops/internal/config"
	"fleetops/internal/lifecycle"
	"fleetops/internal/models"
)

type createMaintenanceInput struct {
	VehicleID       uint       `json:"vehicle_id" binding:"required"`
	MaintenanceType string     `json:"maintenance_type" binding:"required"`
	Description     string     `json:"description"`
	Status          string     `json:"status"`
	StartDate       *time.Time `json:"start_date"`
	Cost            float64    `json:"cost"`
	Vendor          string     `json:"vendor"`
}

// CreateMaintenance opens a record and sends the vehicle to the shop when
// the work is pending or already underway.
func CreateMaintenance(c *gin.Context) {
	var input createMaintenanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maintenance input: " + err.Error()})
		return
	}
	if !models.ValidMaintenanceType(input.MaintenanceType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown maintenance type"})
		return
	}

	rec := models.Maintenance{
		VehicleID:       input.VehicleID,
		LoggedByID:      actorRef(c),
		MaintenanceType: input.MaintenanceType,
		Description:     input.Description,
		Status:          input.Status,
		Cost:            input.Cost,
		Vendor:          input.Vendor,
		StartDate:       time.Now(),
	}
	if input.StartDate != nil {
		rec.StartDate = *input.StartDate
	}

	if err := coord().CreateMaintenance(c.Request.Context(), &rec); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"maintenance": rec})
}

func ListMaintenance(c *gin.Context) {
	q := config.DB.Order("start_date DESC")
	if vehicleID := c.Query("vehicle_id"); vehicleID != "" {
		q = q.Where("vehicle_id = ?", vehicleID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if mtype := c.Query("maintenance_type"); mtype != "" {
		q = q.Where("maintenance_type = ?", mtype)
	}

	var records []models.Maintenance
	if err := q.Find(&records).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": records})
}

func GetMaintenance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var rec models.Maintenance
	if err := config.DB.First(&rec, id).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"maintenance": rec})
}

type updateMaintenanceInput struct {
	lifecycle.MaintenanceInput
	Status *string `json:"status"`
}

// UpdateMaintenance edits record fields; a status value in the payload is
// routed through the coordinator so vehicle cascades still fire.
func UpdateMaintenance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input updateMaintenanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update: " + err.Error()})
		return
	}

	rec, err := coord().UpdateMaintenance(c.Request.Context(), id, input.MaintenanceInput)
	if err != nil {
		respondError(c, err)
		return
	}
	if input.Status != nil && *input.Status != rec.Status {
		rec, err = coord().UpdateMaintenanceStatus(c.Request.Context(), id, *input.Status)
		if err != nil {
			respondError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"maintenance": rec})
}

func DeleteMaintenance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var rec models.Maintenance
	if err := config.DB.First(&rec, id).Error; err != nil {
		respondError(c, err)
		return
	}
	if err := config.DB.Delete(&rec).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Maintenance record deleted."})
}

func CompleteMaintenance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	rec, err := coord().CompleteMaintenance(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Maintenance completed. Vehicle is back in the fleet.",
		"maintenance": rec,
	})
}

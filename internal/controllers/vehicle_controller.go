package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fleetops/internal/config"
	"fleetops/internal/lifecycle"
	"fleetops/internal/models"
)

type createVehicleInput struct {
	LicensePlate    string     `json:"license_plate" binding:"required"`
	Make            string     `json:"make"`
	VehicleModel    string     `json:"model"`
	Year            int        `json:"year"`
	VehicleType     string     `json:"vehicle_type"`
	CapacityKg      float64    `json:"capacity_kg"`
	OdometerKm      float64    `json:"odometer_km"`
	AcquisitionCost float64    `json:"acquisition_cost"`
	AcquisitionDate *time.Time `json:"acquisition_date"`
	Notes           string     `json:"notes"`
}

func CreateVehicle(c *gin.Context) {
	var input createVehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle input: " + err.Error()})
		return
	}
	if input.VehicleType == "" {
		input.VehicleType = models.VehicleTypeTruck
	}
	if !models.ValidVehicleType(input.VehicleType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown vehicle type"})
		return
	}

	vehicle := models.Vehicle{
		LicensePlate:    input.LicensePlate,
		Make:            input.Make,
		VehicleModel:    input.VehicleModel,
		Year:            input.Year,
		VehicleType:     input.VehicleType,
		CapacityKg:      input.CapacityKg,
		OdometerKm:      input.OdometerKm,
		AcquisitionCost: input.AcquisitionCost,
		AcquisitionDate: input.AcquisitionDate,
		Notes:           input.Notes,
		Status:          models.VehicleAvailable,
	}
	if err := config.DB.Create(&vehicle).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"vehicle": vehicle})
}

func ListVehicles(c *gin.Context) {
	q := config.DB.Order("license_plate")
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if vtype := c.Query("vehicle_type"); vtype != "" {
		q = q.Where("vehicle_type = ?", vtype)
	}

	var vehicles []models.Vehicle
	if err := q.Find(&vehicles).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": vehicles})
}

// ListAvailableVehicles lists only vehicles ready to dispatch.
func ListAvailableVehicles(c *gin.Context) {
	var vehicles []models.Vehicle
	if err := config.DB.Where("status = ?", models.VehicleAvailable).
		Order("license_plate").Find(&vehicles).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": vehicles})
}

func GetVehicle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var vehicle models.Vehicle
	if err := config.DB.First(&vehicle, id).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicle": vehicle})
}

func UpdateVehicle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input lifecycle.VehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update: " + err.Error()})
		return
	}

	vehicle, err := coord().UpdateVehicle(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicle": vehicle})
}

// DeleteVehicle is refused: vehicles carry trip, fuel and maintenance
// history and leave the fleet through retirement only.
func DeleteVehicle(c *gin.Context) {
	if _, ok := parseID(c); !ok {
		return
	}
	c.JSON(http.StatusConflict, gin.H{"error": "Vehicles are never deleted; retire them instead via /retire."})
}

func RetireVehicle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	vehicle, err := coord().RetireVehicle(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Vehicle " + vehicle.LicensePlate + " has been retired.",
		"vehicle": vehicle,
	})
}

// VehicleROI serves the per-vehicle financial rollup.
func VehicleROI(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	report, err := reporter().VehicleROI(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

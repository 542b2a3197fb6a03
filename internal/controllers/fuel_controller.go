package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fleetops/internal/config"
	"fleetops/internal/models"
	"fleetops/internal/validation"
)

type createFuelLogInput struct {
	VehicleID     uint       `json:"vehicle_id" binding:"required"`
	TripID        *uint      `json:"trip_id"`
	Date          *time.Time `json:"date"`
	Liters        float64    `json:"liters"`
	PricePerLiter float64    `json:"price_per_liter"`
	OdometerKm    float64    `json:"odometer_km"`
	FuelStation   string     `json:"fuel_station"`
}

func CreateFuelLog(c *gin.Context) {
	var input createFuelLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fuel log input: " + err.Error()})
		return
	}
	if err := validation.FuelQuantities(input.Liters, input.PricePerLiter).OrNil(); err != nil {
		respondError(c, err)
		return
	}

	var vehicle models.Vehicle
	if err := config.DB.First(&vehicle, input.VehicleID).Error; err != nil {
		respondError(c, err)
		return
	}

	log := models.FuelLog{
		VehicleID:     input.VehicleID,
		TripID:        input.TripID,
		LoggedByID:    actorRef(c),
		Liters:        input.Liters,
		PricePerLiter: input.PricePerLiter,
		OdometerKm:    input.OdometerKm,
		FuelStation:   input.FuelStation,
		Date:          time.Now(),
	}
	if input.Date != nil {
		log.Date = *input.Date
	}
	log.RecomputeTotalCost()

	if err := config.DB.Create(&log).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"fuel_log": log})
}

func ListFuelLogs(c *gin.Context) {
	q := config.DB.Order("date DESC")
	if vehicleID := c.Query("vehicle_id"); vehicleID != "" {
		q = q.Where("vehicle_id = ?", vehicleID)
	}
	if tripID := c.Query("trip_id"); tripID != "" {
		q = q.Where("trip_id = ?", tripID)
	}

	var logs []models.FuelLog
	if err := q.Find(&logs).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": logs})
}

func GetFuelLog(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var log models.FuelLog
	if err := config.DB.First(&log, id).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fuel_log": log})
}

type updateFuelLogInput struct {
	Date          *time.Time `json:"date"`
	Liters        *float64   `json:"liters"`
	PricePerLiter *float64   `json:"price_per_liter"`
	OdometerKm    *float64   `json:"odometer_km"`
	FuelStation   *string    `json:"fuel_station"`
	// TotalCost is absent: always recomputed from liters and price.
}

func UpdateFuelLog(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var log models.FuelLog
	if err := config.DB.First(&log, id).Error; err != nil {
		respondError(c, err)
		return
	}

	var input updateFuelLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update: " + err.Error()})
		return
	}

	if input.Date != nil {
		log.Date = *input.Date
	}
	if input.Liters != nil {
		log.Liters = *input.Liters
	}
	if input.PricePerLiter != nil {
		log.PricePerLiter = *input.PricePerLiter
	}
	if input.OdometerKm != nil {
		log.OdometerKm = *input.OdometerKm
	}
	if input.FuelStation != nil {
		log.FuelStation = *input.FuelStation
	}

	if err := validation.FuelQuantities(log.Liters, log.PricePerLiter).OrNil(); err != nil {
		respondError(c, err)
		return
	}
	log.RecomputeTotalCost()

	if err := config.DB.Save(&log).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fuel_log": log})
}

func DeleteFuelLog(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var log models.FuelLog
	if err := config.DB.First(&log, id).Error; err != nil {
		respondError(c, err)
		return
	}
	if err := config.DB.Delete(&log).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fuel log deleted."})
}

// FuelEfficiencyReport serves km-per-liter for every fueled vehicle.
func FuelEfficiencyReport(c *gin.Context) {
	rows, err := reporter().EfficiencyReport(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

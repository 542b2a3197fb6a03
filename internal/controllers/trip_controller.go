package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fleetops/internal/config"
	"fleetops/internal/lifecycle"
	"fleetops/internal/models"
)

type createTripInput struct {
	VehicleID        uint      `json:"vehicle_id" binding:"required"`
	DriverID         uint      `json:"driver_id" binding:"required"`
	Origin           string    `json:"origin" binding:"required"`
	Destination      string    `json:"destination" binding:"required"`
	ScheduledDate    time.Time `json:"scheduled_date"`
	CargoDescription string    `json:"cargo_description"`
	CargoWeightKg    float64   `json:"cargo_weight_kg"`
	Revenue          float64   `json:"revenue"`
	DistanceKm       float64   `json:"distance_km"`
	Notes            string    `json:"notes"`
}

// CreateTrip opens a new trip in draft. Cargo and driver compliance are
// checked up front; the vehicle and driver stay free until dispatch.
func CreateTrip(c *gin.Context) {
	var input createTripInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip input: " + err.Error()})
		return
	}

	trip := models.Trip{
		VehicleID:        input.VehicleID,
		DriverID:         input.DriverID,
		CreatedByID:      actorRef(c),
		Origin:           input.Origin,
		Destination:      input.Destination,
		ScheduledDate:    input.ScheduledDate,
		CargoDescription: input.CargoDescription,
		CargoWeightKg:    input.CargoWeightKg,
		Revenue:          input.Revenue,
		DistanceKm:       input.DistanceKm,
		Notes:            input.Notes,
	}
	if err := coord().CreateTrip(c.Request.Context(), &trip); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"trip": trip})
}

func ListTrips(c *gin.Context) {
	q := config.DB.Preload("Vehicle").Preload("Driver").Order("scheduled_date DESC")
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if vehicleID := c.Query("vehicle_id"); vehicleID != "" {
		q = q.Where("vehicle_id = ?", vehicleID)
	}
	if driverID := c.Query("driver_id"); driverID != "" {
		q = q.Where("driver_id = ?", driverID)
	}

	var trips []models.Trip
	if err := q.Find(&trips).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": trips})
}

func GetTrip(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var trip models.Trip
	if err := config.DB.Preload("Vehicle").Preload("Driver").First(&trip, id).Error; err != nil {
		respondError(c, err)
		return
	}

	var expenseTotal float64
	if err := config.DB.Model(&models.Expense{}).Where("trip_id = ?", trip.ID).
		Select("COALESCE(SUM(amount), 0)").Scan(&expenseTotal).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trip": trip, "total_expenses": expenseTotal})
}

func UpdateTrip(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input lifecycle.TripInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update: " + err.Error()})
		return
	}

	trip, err := coord().UpdateTrip(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trip": trip})
}

// DeleteTrip removes a trip that never ran. A dispatched trip holds the
// vehicle and driver and must be completed or cancelled first.
func DeleteTrip(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var trip models.Trip
	if err := config.DB.First(&trip, id).Error; err != nil {
		respondError(c, err)
		return
	}
	if trip.Status == models.TripDispatched {
		c.JSON(http.StatusConflict, gin.H{"error": "Cannot delete a dispatched trip; complete or cancel it first."})
		return
	}
	if err := config.DB.Delete(&trip).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Trip deleted."})
}

func DispatchTrip(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	trip, err := coord().DispatchTrip(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Trip dispatched successfully.",
		"trip":    trip,
	})
}

func CompleteTrip(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var body struct {
		DistanceKm *float64 `json:"distance_km"`
		Revenue    *float64 `json:"revenue"`
	}
	if err := c.ShouldBindJSON(&body); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	trip, err := coord().CompleteTrip(c.Request.Context(), id, body.DistanceKm, body.Revenue)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Trip completed. Vehicle and driver are now available.",
		"trip":    trip,
	})
}

func CancelTrip(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	trip, err := coord().CancelTrip(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Trip cancelled.",
		"trip":    trip,
	})
}

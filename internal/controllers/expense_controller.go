package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fleetops/internal/config"
	"fleetops/internal/models"
	"fleetops/internal/validation"
)

type createExpenseInput struct {
	VehicleID   *uint      `json:"vehicle_id"`
	TripID      *uint      `json:"trip_id"`
	Category    string     `json:"category" binding:"required"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	Date        *time.Time `json:"date"`
	ReceiptRef  string     `json:"receipt_ref"`
}

func CreateExpense(c *gin.Context) {
	var input createExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense input: " + err.Error()})
		return
	}
	if !models.ValidExpenseCategory(input.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown expense category"})
		return
	}
	if err := validation.ExpenseAmount(input.Amount).OrNil(); err != nil {
		respondError(c, err)
		return
	}

	// Resolve optional referents up front so a bad ID is a 404, not a
	// foreign-key error from the insert.
	if input.VehicleID != nil {
		var vehicle models.Vehicle
		if err := config.DB.First(&vehicle, *input.VehicleID).Error; err != nil {
			respondError(c, err)
			return
		}
	}
	if input.TripID != nil {
		var trip models.Trip
		if err := config.DB.First(&trip, *input.TripID).Error; err != nil {
			respondError(c, err)
			return
		}
	}

	expense := models.Expense{
		VehicleID:   input.VehicleID,
		TripID:      input.TripID,
		LoggedByID:  actorRef(c),
		Category:    input.Category,
		Description: input.Description,
		Amount:      input.Amount,
		ReceiptRef:  input.ReceiptRef,
		Date:        time.Now(),
	}
	if input.Date != nil {
		expense.Date = *input.Date
	}

	if err := config.DB.Create(&expense).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

func ListExpenses(c *gin.Context) {
	q := config.DB.Order("date DESC")
	if vehicleID := c.Query("vehicle_id"); vehicleID != "" {
		q = q.Where("vehicle_id = ?", vehicleID)
	}
	if tripID := c.Query("trip_id"); tripID != "" {
		q = q.Where("trip_id = ?", tripID)
	}
	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}

	var expenses []models.Expense
	if err := q.Find(&expenses).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": expenses})
}

func GetExpense(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var expense models.Expense
	if err := config.DB.First(&expense, id).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

type updateExpenseInput struct {
	Category    *string    `json:"category"`
	Description *string    `json:"description"`
	Amount      *float64   `json:"amount"`
	Date        *time.Time `json:"date"`
	ReceiptRef  *string    `json:"receipt_ref"`
}

func UpdateExpense(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var expense models.Expense
	if err := config.DB.First(&expense, id).Error; err != nil {
		respondError(c, err)
		return
	}

	var input updateExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update: " + err.Error()})
		return
	}

	if input.Category != nil {
		if !models.ValidExpenseCategory(*input.Category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown expense category"})
			return
		}
		expense.Category = *input.Category
	}
	if input.Description != nil {
		expense.Description = *input.Description
	}
	if input.Amount != nil {
		if err := validation.ExpenseAmount(*input.Amount).OrNil(); err != nil {
			respondError(c, err)
			return
		}
		expense.Amount = *input.Amount
	}
	if input.Date != nil {
		expense.Date = *input.Date
	}
	if input.ReceiptRef != nil {
		expense.ReceiptRef = *input.ReceiptRef
	}

	if err := config.DB.Save(&expense).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

func DeleteExpense(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var expense models.Expense
	if err := config.DB.First(&expense, id).Error; err != nil {
		respondError(c, err)
		return
	}
	if err := config.DB.Delete(&expense).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted."})
}

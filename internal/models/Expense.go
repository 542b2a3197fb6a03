// internal/models/expense.go
package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ExpenseFuel        = "fuel"
	ExpenseMaintenance = "maintenance"
	ExpenseToll        = "toll"
	ExpenseParking     = "parking"
	ExpenseInsurance   = "insurance"
	ExpenseSalary      = "salary"
	ExpenseOther       = "other"
)

// Expense is a plain append-only cost record. It carries no cascades.
type Expense struct {
	gorm.Model
	VehicleID  *uint `json:"vehicle_id,omitempty"`
	TripID     *uint `json:"trip_id,omitempty"`
	LoggedByID *uint `json:"logged_by_id,omitempty"`

	Category    string    `json:"category" binding:"required"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	ReceiptRef  string    `json:"receipt_ref"`
}

func ValidExpenseCategory(c string) bool {
	switch c {
	case ExpenseFuel, ExpenseMaintenance, ExpenseToll, ExpenseParking,
		ExpenseInsurance, ExpenseSalary, ExpenseOther:
		return true
	}
	return false
}

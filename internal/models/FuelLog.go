// internal/models/fuellog.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// FuelLog is an append-only fill-up record. TotalCost is derived from
// liters and price on every save and is never client-settable.
type FuelLog struct {
	gorm.Model
	VehicleID  uint  `json:"vehicle_id" binding:"required"`
	TripID     *uint `json:"trip_id,omitempty"`
	LoggedByID *uint `json:"logged_by_id,omitempty"`

	Date          time.Time `json:"date"`
	Liters        float64   `json:"liters"`
	PricePerLiter float64   `json:"price_per_liter"`
	TotalCost     float64   `json:"total_cost"`
	OdometerKm    float64   `json:"odometer_km"`
	FuelStation   string    `json:"fuel_station"`
}

// RecomputeTotalCost refreshes the derived cost from the stored quantities.
func (f *FuelLog) RecomputeTotalCost() {
	f.TotalCost = f.Liters * f.PricePerLiter
}

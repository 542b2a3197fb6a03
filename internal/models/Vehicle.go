// internal/models/vehicle.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// Vehicle status values. Status is owned by the lifecycle coordinator;
// trips and maintenance records move it, ordinary field edits never do.
const (
	VehicleAvailable = "available"
	VehicleOnTrip    = "on_trip"
	VehicleInShop    = "in_shop"
	VehicleRetired   = "retired"
)

const (
	VehicleTypeTruck   = "truck"
	VehicleTypeVan     = "van"
	VehicleTypePickup  = "pickup"
	VehicleTypeTanker  = "tanker"
	VehicleTypeTrailer = "trailer"
)

type Vehicle struct {
	gorm.Model
	LicensePlate string `json:"license_plate" gorm:"unique" binding:"required"`
	Make         string `json:"make"`
	VehicleModel string `json:"model" gorm:"column:model"`
	Year         int    `json:"year"`
	VehicleType  string `json:"vehicle_type" gorm:"default:truck"`

	CapacityKg float64 `json:"capacity_kg"`
	OdometerKm float64 `json:"odometer_km"` // monotonic, never decreases

	Status string `json:"status" gorm:"default:available"`

	AcquisitionCost float64    `json:"acquisition_cost"`
	AcquisitionDate *time.Time `json:"acquisition_date,omitempty"`

	Notes string `json:"notes"`
}

func (v *Vehicle) IsAvailable() bool {
	return v.Status == VehicleAvailable
}

func ValidVehicleStatus(s string) bool {
	switch s {
	case VehicleAvailable, VehicleOnTrip, VehicleInShop, VehicleRetired:
		return true
	}
	return false
}

func ValidVehicleType(t string) bool {
	switch t {
	case VehicleTypeTruck, VehicleTypeVan, VehicleTypePickup, VehicleTypeTanker, VehicleTypeTrailer:
		return true
	}
	return false
}

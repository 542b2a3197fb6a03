// internal/models/trip.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// Trip lifecycle: draft -> dispatched -> completed, with cancellation
// possible from draft or dispatched. Completed and cancelled are terminal.
const (
	TripDraft      = "draft"
	TripDispatched = "dispatched"
	TripCompleted  = "completed"
	TripCancelled  = "cancelled"
)

type Trip struct {
	gorm.Model
	VehicleID uint    `json:"vehicle_id" binding:"required"`
	DriverID  uint    `json:"driver_id" binding:"required"`
	Vehicle   Vehicle `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
	Driver    Driver  `json:"driver,omitempty" gorm:"foreignKey:DriverID"`

	CreatedByID *uint `json:"created_by_id,omitempty"`

	Origin        string     `json:"origin" binding:"required"`
	Destination   string     `json:"destination" binding:"required"`
	ScheduledDate time.Time  `json:"scheduled_date"`
	CompletedDate *time.Time `json:"completed_date,omitempty"` // stamped server-side on completion

	CargoDescription string  `json:"cargo_description"`
	CargoWeightKg    float64 `json:"cargo_weight_kg"`

	Revenue    float64 `json:"revenue"`
	DistanceKm float64 `json:"distance_km"`

	Status string `json:"status" gorm:"default:draft"`
	Notes  string `json:"notes"`
}

// tripTransitions is the allowed status graph. Terminal states map to nil.
var tripTransitions = map[string][]string{
	TripDraft:      {TripDispatched, TripCancelled},
	TripDispatched: {TripCompleted, TripCancelled},
	TripCompleted:  nil,
	TripCancelled:  nil,
}

// TripCanTransition reports whether from -> to is a legal trip status move.
func TripCanTransition(from, to string) bool {
	for _, s := range tripTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// InFlight reports whether the trip currently holds (or is about to hold)
// vehicle and driver compliance guarantees.
func (t *Trip) InFlight() bool {
	return t.Status == TripDraft || t.Status == TripDispatched
}

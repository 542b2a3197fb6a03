// internal/models/maintenance.go
package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	MaintenancePending    = "pending"
	MaintenanceInProgress = "in_progress"
	MaintenanceCompleted  = "completed"
)

const (
	MaintenanceOilChange    = "oil_change"
	MaintenanceTireRotation = "tire_rotation"
	MaintenanceBrakeService = "brake_service"
	MaintenanceEngineRepair = "engine_repair"
	MaintenanceScheduled    = "scheduled"
	MaintenanceAccident     = "accident"
	MaintenanceInspection   = "inspection"
	MaintenanceOther        = "other"
)

type Maintenance struct {
	gorm.Model
	VehicleID  uint  `json:"vehicle_id" binding:"required"`
	LoggedByID *uint `json:"logged_by_id,omitempty"`

	MaintenanceType string `json:"maintenance_type" binding:"required"`
	Description     string `json:"description"`
	Status          string `json:"status" gorm:"default:pending"`

	StartDate     time.Time  `json:"start_date"`
	CompletedDate *time.Time `json:"completed_date,omitempty"` // stamped once, on completion

	Cost   float64 `json:"cost"`
	Vendor string  `json:"vendor"`
}

var maintenanceTransitions = map[string][]string{
	MaintenancePending:    {MaintenanceInProgress, MaintenanceCompleted},
	MaintenanceInProgress: {MaintenanceCompleted},
	MaintenanceCompleted:  nil,
}

func MaintenanceCanTransition(from, to string) bool {
	for _, s := range maintenanceTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func ValidMaintenanceStatus(s string) bool {
	switch s {
	case MaintenancePending, MaintenanceInProgress, MaintenanceCompleted:
		return true
	}
	return false
}

func ValidMaintenanceType(t string) bool {
	switch t {
	case MaintenanceOilChange, MaintenanceTireRotation, MaintenanceBrakeService,
		MaintenanceEngineRepair, MaintenanceScheduled, MaintenanceAccident,
		MaintenanceInspection, MaintenanceOther:
		return true
	}
	return false
}

package lifecycle

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fleetops/internal/models"
	"fleetops/internal/validation"
)

// VehicleInput carries the client-editable vehicle fields. Status is
// excluded: only transitions move it.
type VehicleInput struct {
	LicensePlate    *string  `json:"license_plate"`
	Make            *string  `json:"make"`
	VehicleModel    *string  `json:"model"`
	Year            *int     `json:"year"`
	VehicleType     *string  `json:"vehicle_type"`
	CapacityKg      *float64 `json:"capacity_kg"`
	OdometerKm      *float64 `json:"odometer_km"`
	AcquisitionCost *float64 `json:"acquisition_cost"`
	Notes           *string  `json:"notes"`
}

// UpdateVehicle applies field edits behind the odometer monotonicity gate.
func (c *Coordinator) UpdateVehicle(ctx context.Context, vehicleID uint, in VehicleInput) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&vehicle, vehicleID).Error; err != nil {
			return err
		}
		if in.OdometerKm != nil {
			if err := validation.Odometer(&vehicle, *in.OdometerKm).OrNil(); err != nil {
				return err
			}
			vehicle.OdometerKm = *in.OdometerKm
		}
		if in.LicensePlate != nil {
			vehicle.LicensePlate = *in.LicensePlate
		}
		if in.Make != nil {
			vehicle.Make = *in.Make
		}
		if in.VehicleModel != nil {
			vehicle.VehicleModel = *in.VehicleModel
		}
		if in.Year != nil {
			vehicle.Year = *in.Year
		}
		if in.VehicleType != nil {
			if !models.ValidVehicleType(*in.VehicleType) {
				return &StateError{CodeInvalidTransition, fmt.Sprintf("unknown vehicle type %q", *in.VehicleType)}
			}
			vehicle.VehicleType = *in.VehicleType
		}
		if in.CapacityKg != nil {
			vehicle.CapacityKg = *in.CapacityKg
		}
		if in.AcquisitionCost != nil {
			vehicle.AcquisitionCost = *in.AcquisitionCost
		}
		if in.Notes != nil {
			vehicle.Notes = *in.Notes
		}
		return tx.Save(&vehicle).Error
	})
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// RetireVehicle permanently removes a vehicle from service. Retired is
// terminal; a vehicle on a trip must finish it first.
func (c *Coordinator) RetireVehicle(ctx context.Context, vehicleID uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&vehicle, vehicleID).Error; err != nil {
			return err
		}
		if vehicle.Status == models.VehicleOnTrip {
			return &StateError{CodeVehicleBusy, fmt.Sprintf("vehicle %s is on a trip and cannot be retired", vehicle.LicensePlate)}
		}
		return tx.Model(&vehicle).Update("status", models.VehicleRetired).Error
	})
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// SuspendDriver takes a driver out of rotation. A driver on duty is
// mid-trip and cannot be suspended until released.
func (c *Coordinator) SuspendDriver(ctx context.Context, driverID uint) (*models.Driver, error) {
	var driver models.Driver
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&driver, driverID).Error; err != nil {
			return err
		}
		if driver.Status == models.DriverOnDuty {
			return &StateError{CodeDriverBusy, fmt.Sprintf("driver %s is on duty and cannot be suspended", driver.Name)}
		}
		return tx.Model(&driver).Update("status", models.DriverSuspended).Error
	})
	if err != nil {
		return nil, err
	}
	return &driver, nil
}

// ReinstateDriver returns a driver to off_duty unconditionally.
func (c *Coordinator) ReinstateDriver(ctx context.Context, driverID uint) (*models.Driver, error) {
	var driver models.Driver
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&driver, driverID).Error; err != nil {
			return err
		}
		return tx.Model(&driver).Update("status", models.DriverOffDuty).Error
	})
	if err != nil {
		return nil, err
	}
	return &driver, nil
}

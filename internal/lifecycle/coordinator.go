// Package lifecycle owns every status transition in the fleet and the
// dependent writes that ride along with it. A trip moving to dispatched
// locks its vehicle and driver; completing or cancelling releases them.
// Each transition and its cascade commit inside one transaction, so a
// vehicle is never left locked without a matching live trip.
package lifecycle

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fleetops/internal/models"
	"fleetops/internal/validation"
)

type Coordinator struct {
	db  *gorm.DB
	now func() time.Time
}

func New(db *gorm.DB) *Coordinator {
	return &Coordinator{db: db, now: time.Now}
}

// TripInput carries the client-editable trip fields. Status is absent on
// purpose: status only moves through the transition operations below.
type TripInput struct {
	VehicleID        *uint      `json:"vehicle_id"`
	DriverID         *uint      `json:"driver_id"`
	Origin           *string    `json:"origin"`
	Destination      *string    `json:"destination"`
	ScheduledDate    *time.Time `json:"scheduled_date"`
	CargoDescription *string    `json:"cargo_description"`
	CargoWeightKg    *float64   `json:"cargo_weight_kg"`
	Revenue          *float64   `json:"revenue"`
	DistanceKm       *float64   `json:"distance_km"`
	Notes            *string    `json:"notes"`
}

// CreateTrip stores a new draft trip after the cargo and driver-compliance
// gates pass. The vehicle and driver are not locked yet.
func (c *Coordinator) CreateTrip(ctx context.Context, trip *models.Trip) error {
	trip.Status = models.TripDraft
	trip.CompletedDate = nil

	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		vehicle, driver, err := c.loadPair(tx, trip.VehicleID, trip.DriverID)
		if err != nil {
			return err
		}

		errs := validation.Cargo(trip, vehicle)
		errs = append(errs, validation.DriverCompliance(trip, driver, c.now())...)
		if err := errs.OrNil(); err != nil {
			return err
		}

		return tx.Omit(clause.Associations).Create(trip).Error
	})
}

// UpdateTrip applies ordinary field edits and re-runs the full gate, so an
// in-flight trip cannot be edited into violating capacity or compliance.
func (c *Coordinator) UpdateTrip(ctx context.Context, tripID uint, in TripInput) (*models.Trip, error) {
	var trip models.Trip
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&trip, tripID).Error; err != nil {
			return err
		}
		if trip.Status == models.TripCompleted || trip.Status == models.TripCancelled {
			return &StateError{CodeInvalidTransition, fmt.Sprintf("trip is %s and can no longer be edited", trip.Status)}
		}
		// A dispatched trip holds its vehicle and driver; reassigning either
		// would strand the locked pair.
		if trip.Status == models.TripDispatched {
			if (in.VehicleID != nil && *in.VehicleID != trip.VehicleID) ||
				(in.DriverID != nil && *in.DriverID != trip.DriverID) {
				return &StateError{CodeInvalidTransition, "cannot reassign vehicle or driver on a dispatched trip"}
			}
		}

		applyTripInput(&trip, in)

		vehicle, driver, err := c.loadPair(tx, trip.VehicleID, trip.DriverID)
		if err != nil {
			return err
		}

		errs := validation.Cargo(&trip, vehicle)
		errs = append(errs, validation.DriverCompliance(&trip, driver, c.now())...)
		if err := errs.OrNil(); err != nil {
			return err
		}

		return tx.Omit(clause.Associations).Save(&trip).Error
	})
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// DispatchTrip moves a draft trip to dispatched and locks its vehicle and
// driver. The vehicle row is taken FOR UPDATE first, so two concurrent
// dispatches against the same vehicle serialize and the loser sees the
// already-dispatched trip.
func (c *Coordinator) DispatchTrip(ctx context.Context, tripID uint) (*models.Trip, error) {
	var trip models.Trip
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&trip, tripID).Error; err != nil {
			return err
		}
		if !models.TripCanTransition(trip.Status, models.TripDispatched) {
			return &StateError{CodeInvalidTransition, fmt.Sprintf("trip is %s; only draft trips can be dispatched", trip.Status)}
		}

		var vehicle models.Vehicle
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&vehicle, trip.VehicleID).Error; err != nil {
			return err
		}
		var driver models.Driver
		if err := tx.First(&driver, trip.DriverID).Error; err != nil {
			return err
		}

		var dispatched int64
		if err := tx.Model(&models.Trip{}).
			Where("vehicle_id = ? AND status = ? AND id <> ?", trip.VehicleID, models.TripDispatched, trip.ID).
			Count(&dispatched).Error; err != nil {
			return err
		}

		errs := validation.Cargo(&trip, &vehicle)
		errs = append(errs, validation.DriverCompliance(&trip, &driver, c.now())...)
		errs = append(errs, validation.VehicleAvailability(&vehicle, dispatched > 0)...)
		if err := errs.OrNil(); err != nil {
			return err
		}

		if err := tx.Model(&trip).Update("status", models.TripDispatched).Error; err != nil {
			return err
		}
		if err := tx.Model(&vehicle).Update("status", models.VehicleOnTrip).Error; err != nil {
			return err
		}
		return tx.Model(&driver).Update("status", models.DriverOnDuty).Error
	})
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// CompleteTrip closes out a dispatched trip: releases the vehicle and
// driver, stamps the completion date server-side, and optionally records
// the final distance and revenue supplied by the operator.
func (c *Coordinator) CompleteTrip(ctx context.Context, tripID uint, distanceKm, revenue *float64) (*models.Trip, error) {
	var trip models.Trip
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&trip, tripID).Error; err != nil {
			return err
		}
		if !models.TripCanTransition(trip.Status, models.TripCompleted) {
			return &StateError{CodeInvalidTransition, fmt.Sprintf("trip is %s; only dispatched trips can be completed", trip.Status)}
		}

		completed := c.now()
		updates := map[string]interface{}{
			"status":         models.TripCompleted,
			"completed_date": completed,
		}
		if distanceKm != nil {
			updates["distance_km"] = *distanceKm
		}
		if revenue != nil {
			updates["revenue"] = *revenue
		}
		if err := tx.Model(&trip).Updates(updates).Error; err != nil {
			return err
		}
		return c.releasePair(tx, trip.VehicleID, trip.DriverID)
	})
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// CancelTrip cancels a draft or dispatched trip. A dispatched cancellation
// releases the vehicle and driver exactly like completion, but no
// completion date is stamped. Cancelling a draft has no side effects.
func (c *Coordinator) CancelTrip(ctx context.Context, tripID uint) (*models.Trip, error) {
	var trip models.Trip
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&trip, tripID).Error; err != nil {
			return err
		}
		if !models.TripCanTransition(trip.Status, models.TripCancelled) {
			return &StateError{CodeInvalidTransition, fmt.Sprintf("trip is %s and cannot be cancelled", trip.Status)}
		}

		wasDispatched := trip.Status == models.TripDispatched
		if err := tx.Model(&trip).Update("status", models.TripCancelled).Error; err != nil {
			return err
		}
		if wasDispatched {
			return c.releasePair(tx, trip.VehicleID, trip.DriverID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

func (c *Coordinator) loadPair(tx *gorm.DB, vehicleID, driverID uint) (*models.Vehicle, *models.Driver, error) {
	var vehicle models.Vehicle
	if err := tx.First(&vehicle, vehicleID).Error; err != nil {
		return nil, nil, err
	}
	var driver models.Driver
	if err := tx.First(&driver, driverID).Error; err != nil {
		return nil, nil, err
	}
	return &vehicle, &driver, nil
}

func (c *Coordinator) releasePair(tx *gorm.DB, vehicleID, driverID uint) error {
	if err := tx.Model(&models.Vehicle{}).Where("id = ?", vehicleID).
		Update("status", models.VehicleAvailable).Error; err != nil {
		return err
	}
	return tx.Model(&models.Driver{}).Where("id = ?", driverID).
		Update("status", models.DriverOffDuty).Error
}

func applyTripInput(trip *models.Trip, in TripInput) {
	if in.VehicleID != nil {
		trip.VehicleID = *in.VehicleID
	}
	if in.DriverID != nil {
		trip.DriverID = *in.DriverID
	}
	if in.Origin != nil {
		trip.Origin = *in.Origin
	}
	if in.Destination != nil {
		trip.Destination = *in.Destination
	}
	if in.ScheduledDate != nil {
		trip.ScheduledDate = *in.ScheduledDate
	}
	if in.CargoDescription != nil {
		trip.CargoDescription = *in.CargoDescription
	}
	if in.CargoWeightKg != nil {
		trip.CargoWeightKg = *in.CargoWeightKg
	}
	if in.Revenue != nil {
		trip.Revenue = *in.Revenue
	}
	if in.DistanceKm != nil {
		trip.DistanceKm = *in.DistanceKm
	}
	if in.Notes != nil {
		trip.Notes = *in.Notes
	}
}

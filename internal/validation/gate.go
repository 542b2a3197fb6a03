// Package validation holds the pure precondition checks run before any
// state-changing write is committed. The checks never touch the database;
// callers load the entities, run the gate, and only then write.
package validation

import (
	"fmt"
	"time"

	"fleetops/internal/models"
)

// Odometer fails when the new reading is below the stored one.
func Odometer(vehicle *models.Vehicle, newValue float64) Errors {
	if newValue < vehicle.OdometerKm {
		return Errors{{
			Field:   "odometer_km",
			Code:    CodeOutOfRange,
			Message: fmt.Sprintf("odometer reading cannot decrease (current %.2f km, got %.2f km)", vehicle.OdometerKm, newValue),
		}}
	}
	return nil
}

// Cargo fails when the trip's cargo weight exceeds vehicle capacity.
// Only evaluated when both sides carry a value.
func Cargo(trip *models.Trip, vehicle *models.Vehicle) Errors {
	if trip.CargoWeightKg == 0 || vehicle.CapacityKg == 0 {
		return nil
	}
	if trip.CargoWeightKg > vehicle.CapacityKg {
		return Errors{{
			Field:   "cargo_weight_kg",
			Code:    CodeCapacityExceeded,
			Message: fmt.Sprintf("cargo weight (%.2f kg) exceeds vehicle capacity (%.2f kg)", trip.CargoWeightKg, vehicle.CapacityKg),
		}}
	}
	return nil
}

// DriverCompliance rejects expired or suspended drivers while the trip is
// draft or dispatched. Completed and cancelled trips keep their history.
func DriverCompliance(trip *models.Trip, driver *models.Driver, now time.Time) Errors {
	if !trip.InFlight() {
		return nil
	}
	var errs Errors
	if driver.IsLicenseExpiredAt(now) {
		errs = append(errs, FieldError{
			Field:   "driver_id",
			Code:    CodeLicenseExpired,
			Message: fmt.Sprintf("driver %s's license expired on %s", driver.Name, driver.LicenseExpiry.Format("2006-01-02")),
		})
	}
	if driver.Status == models.DriverSuspended {
		errs = append(errs, FieldError{
			Field:   "driver_id",
			Code:    CodeDriverSuspended,
			Message: fmt.Sprintf("driver %s is suspended", driver.Name),
		})
	}
	return errs
}

// VehicleAvailability guards the move into dispatched. hasOtherDispatched
// reports whether another trip on the same vehicle is already dispatched;
// the coordinator resolves it under a row lock.
func VehicleAvailability(vehicle *models.Vehicle, hasOtherDispatched bool) Errors {
	if hasOtherDispatched {
		return Errors{{
			Field:   "vehicle_id",
			Code:    CodeVehicleBusy,
			Message: fmt.Sprintf("vehicle %s is already on a dispatched trip", vehicle.LicensePlate),
		}}
	}
	if vehicle.Status == models.VehicleInShop || vehicle.Status == models.VehicleRetired {
		return Errors{{
			Field:   "vehicle_id",
			Code:    CodeVehicleUnavail,
			Message: fmt.Sprintf("vehicle %s is %s and cannot be dispatched", vehicle.LicensePlate, vehicle.Status),
		}}
	}
	return nil
}

// ExpenseAmount rejects negative amounts.
func ExpenseAmount(amount float64) Errors {
	if amount < 0 {
		return Errors{{
			Field:   "amount",
			Code:    CodeNegativeAmount,
			Message: "expense amount cannot be negative",
		}}
	}
	return nil
}

// FuelQuantities requires strictly positive liters and price.
func FuelQuantities(liters, pricePerLiter float64) Errors {
	var errs Errors
	if liters <= 0 {
		errs = append(errs, FieldError{
			Field:   "liters",
			Code:    CodeInvalidQuantity,
			Message: "liters must be greater than zero",
		})
	}
	if pricePerLiter <= 0 {
		errs = append(errs, FieldError{
			Field:   "price_per_liter",
			Code:    CodeInvalidQuantity,
			Message: "price_per_liter must be greater than zero",
		})
	}
	return errs
}

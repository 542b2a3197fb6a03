package validation

import (
	"testing"
	"time"

	"fleetops/internal/models"
)

func TestOdometer(t *testing.T) {
	v := &models.Vehicle{OdometerKm: 5000}

	if errs := Odometer(v, 4999); !errs.Has(CodeOutOfRange) {
		t.Fatalf("expected out_of_range for rollback, got %v", errs)
	}
	if errs := Odometer(v, 5000); len(errs) != 0 {
		t.Fatalf("expected equal reading to pass, got %v", errs)
	}
	if errs := Odometer(v, 5150); len(errs) != 0 {
		t.Fatalf("expected increase to pass, got %v", errs)
	}
}

func TestCargo(t *testing.T) {
	vehicle := &models.Vehicle{CapacityKg: 1000}

	trip := &models.Trip{CargoWeightKg: 1500}
	errs := Cargo(trip, vehicle)
	if !errs.Has(CodeCapacityExceeded) {
		t.Fatalf("expected capacity_exceeded, got %v", errs)
	}
	if errs[0].Field != "cargo_weight_kg" {
		t.Fatalf("expected error on cargo_weight_kg, got %s", errs[0].Field)
	}

	trip.CargoWeightKg = 500
	if errs := Cargo(trip, vehicle); len(errs) != 0 {
		t.Fatalf("expected cargo within capacity to pass, got %v", errs)
	}

	// Not evaluated when either side is unset.
	if errs := Cargo(&models.Trip{}, vehicle); len(errs) != 0 {
		t.Fatalf("expected unset cargo to pass, got %v", errs)
	}
}

func TestDriverCompliance(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	expired := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	valid := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	trip := &models.Trip{Status: models.TripDraft}

	driver := &models.Driver{Name: "A", Status: models.DriverOffDuty, LicenseExpiry: expired}
	if errs := DriverCompliance(trip, driver, now); !errs.Has(CodeLicenseExpired) {
		t.Fatalf("expected license_expired, got %v", errs)
	}

	driver = &models.Driver{Name: "B", Status: models.DriverSuspended, LicenseExpiry: valid}
	if errs := DriverCompliance(trip, driver, now); !errs.Has(CodeDriverSuspended) {
		t.Fatalf("expected driver_suspended, got %v", errs)
	}

	// Both failures are reported together.
	driver = &models.Driver{Name: "C", Status: models.DriverSuspended, LicenseExpiry: expired}
	if errs := DriverCompliance(trip, driver, now); len(errs) != 2 {
		t.Fatalf("expected both failures, got %v", errs)
	}

	// Only evaluated while the trip is draft or dispatched.
	done := &models.Trip{Status: models.TripCompleted}
	if errs := DriverCompliance(done, driver, now); len(errs) != 0 {
		t.Fatalf("expected no compliance check on completed trip, got %v", errs)
	}
}

func TestVehicleAvailability(t *testing.T) {
	vehicle := &models.Vehicle{LicensePlate: "KAA 001A", Status: models.VehicleAvailable}

	if errs := VehicleAvailability(vehicle, true); !errs.Has(CodeVehicleBusy) {
		t.Fatalf("expected vehicle_busy when another trip is dispatched, got %v", errs)
	}
	if errs := VehicleAvailability(vehicle, false); len(errs) != 0 {
		t.Fatalf("expected available vehicle to pass, got %v", errs)
	}

	for _, status := range []string{models.VehicleInShop, models.VehicleRetired} {
		vehicle.Status = status
		if errs := VehicleAvailability(vehicle, false); !errs.Has(CodeVehicleUnavail) {
			t.Fatalf("expected vehicle_unavailable for %s, got %v", status, errs)
		}
	}
}

func TestExpenseAmount(t *testing.T) {
	if errs := ExpenseAmount(-1); !errs.Has(CodeNegativeAmount) {
		t.Fatalf("expected negative_amount, got %v", errs)
	}
	if errs := ExpenseAmount(0); len(errs) != 0 {
		t.Fatalf("expected zero amount to pass, got %v", errs)
	}
	if errs := ExpenseAmount(250.75); len(errs) != 0 {
		t.Fatalf("expected positive amount to pass, got %v", errs)
	}
}

func TestFuelQuantities(t *testing.T) {
	if errs := FuelQuantities(0, 3.5); !errs.Has(CodeInvalidQuantity) {
		t.Fatalf("expected invalid_quantity for zero liters, got %v", errs)
	}
	if errs := FuelQuantities(40, 0); !errs.Has(CodeInvalidQuantity) {
		t.Fatalf("expected invalid_quantity for zero price, got %v", errs)
	}
	if errs := FuelQuantities(-5, -1); len(errs) != 2 {
		t.Fatalf("expected both quantities rejected, got %v", errs)
	}
	if errs := FuelQuantities(40, 3.5); len(errs) != 0 {
		t.Fatalf("expected valid quantities to pass, got %v", errs)
	}
}

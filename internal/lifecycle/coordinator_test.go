package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fleetops/internal/models"
	"fleetops/internal/validation"
)

var testNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Vehicle{}, &models.Driver{}, &models.Trip{}, &models.Maintenance{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestCoordinator(t *testing.T) (*Coordinator, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	c := New(db)
	c.now = func() time.Time { return testNow }
	return c, db
}

func seedPair(t *testing.T, db *gorm.DB) (*models.Vehicle, *models.Driver) {
	t.Helper()
	vehicle := &models.Vehicle{
		LicensePlate: "KDA 001A",
		VehicleType:  models.VehicleTypeTruck,
		CapacityKg:   5000,
		Status:       models.VehicleAvailable,
	}
	if err := db.Create(vehicle).Error; err != nil {
		t.Fatalf("seed vehicle: %v", err)
	}
	driver := &models.Driver{
		Name:          "Joy Mwangi",
		LicenseNumber: "DL-1001",
		LicenseExpiry: testNow.AddDate(1, 0, 0),
		Status:        models.DriverOffDuty,
	}
	if err := db.Create(driver).Error; err != nil {
		t.Fatalf("seed driver: %v", err)
	}
	return vehicle, driver
}

func seedDraftTrip(t *testing.T, db *gorm.DB, vehicleID, driverID uint) *models.Trip {
	t.Helper()
	trip := &models.Trip{
		VehicleID:     vehicleID,
		DriverID:      driverID,
		Origin:        "Nairobi",
		Destination:   "Mombasa",
		ScheduledDate: testNow,
		CargoWeightKg: 1200,
		Status:        models.TripDraft,
	}
	if err := db.Omit(clause.Associations).Create(trip).Error; err != nil {
		t.Fatalf("seed trip: %v", err)
	}
	return trip
}

func reloadVehicle(t *testing.T, db *gorm.DB, id uint) *models.Vehicle {
	t.Helper()
	var v models.Vehicle
	if err := db.First(&v, id).Error; err != nil {
		t.Fatalf("reload vehicle: %v", err)
	}
	return &v
}

func reloadDriver(t *testing.T, db *gorm.DB, id uint) *models.Driver {
	t.Helper()
	var d models.Driver
	if err := db.First(&d, id).Error; err != nil {
		t.Fatalf("reload driver: %v", err)
	}
	return &d
}

func TestDispatchTripLocksVehicleAndDriver(t *testing.T) {
	c, db := newTestCoordinator(t)
	vehicle, driver := seedPair(t, db)
	trip := seedDraftTrip(t, db, vehicle.ID, driver.ID)

	got, err := c.DispatchTrip(context.Background(), trip.ID)
	if err != nil {
		t.Fatalf("DispatchTrip: %v", err)
	}
	if got.Status != models.TripDispatched {
		t.Fatalf("trip status = %q, want %q", got.Status, models.TripDispatched)
	}
	if v := reloadVehicle(t, db, vehicle.ID); v.Status != models.VehicleOnTrip {
		t.Fatalf("vehicle status = %q, want %q", v.Status, models.VehicleOnTrip)
	}
	if d := reloadDriver(t, db, driver.ID); d.Status != models.DriverOnDuty {
		t.Fatalf("driver status = %q, want %q", d.Status, models.DriverOnDuty)
	}
}

func TestDispatchTripRefusesBusyVehicle(t *testing.T) {
	c, db := newTestCoordinator(t)
	vehicle, driver := seedPair(t, db)
	first := seedDraftTrip(t, db, vehicle.ID, driver.ID)
	if _, err := c.DispatchTrip(context.Background(), first.ID); err != nil {
		t.Fatalf("dispatch first trip: %v", err)
	}

	second := seedDraftTrip(t, db, vehicle.ID, driver.ID)
	_, err := c.DispatchTrip(context.Background(), second.ID)
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("DispatchTrip error = %v, want validation errors", err)
	}
	if !verrs.Has(validation.CodeVehicleBusy) {
		t.Fatalf("errors = %v, want code %q", verrs, validation.CodeVehicleBusy)
	}
	var still models.Trip
	if err := db.First(&still, second.ID).Error; err != nil {
		t.Fatalf("reload second trip: %v", err)
	}
	if still.Status != models.TripDraft {
		t.Fatalf("second trip status = %q, want %q", still.Status, models.TripDraft)
	}
}

func TestCompleteTripStampsDateAndReleasesPair(t *testing.T) {
	c, db := newTestCoordinator(t)
	vehicle, driver := seedPair(t, db)
	trip := seedDraftTrip(t, db, vehicle.ID, driver.ID)
	if _, err := c.DispatchTrip(context.Background(), trip.ID); err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	distance, revenue := 485.0, 92000.0
	got, err := c.CompleteTrip(context.Background(), trip.ID, &distance, &revenue)
	if err != nil {
		t.Fatalf("CompleteTrip: %v", err)
	}
	if got.Status != models.TripCompleted {
		t.Fatalf("trip status = %q, want %q", got.Status, models.TripCompleted)
	}

	var done models.Trip
	if err := db.First(&done, trip.ID).Error; err != nil {
		t.Fatalf("reload trip: %v", err)
	}
	if done.CompletedDate == nil || !done.CompletedDate.Equal(testNow) {
		t.Fatalf("completed_date = %v, want %v", done.CompletedDate, testNow)
	}
	if done.DistanceKm != distance || done.Revenue != revenue {
		t.Fatalf("distance/revenue = %v/%v, want %v/%v", done.DistanceKm, done.Revenue, distance, revenue)
	}
	if v := reloadVehicle(t, db, vehicle.ID); v.Status != models.VehicleAvailable {
		t.Fatalf("vehicle status = %q, want %q", v.Status, models.VehicleAvailable)
	}
	if d := reloadDriver(t, db, driver.ID); d.Status != models.DriverOffDuty {
		t.Fatalf("driver status = %q, want %q", d.Status, models.DriverOffDuty)
	}

	// Completed is terminal; the date can never be stamped a second time.
	var stateErr *StateError
	if _, err := c.CompleteTrip(context.Background(), trip.ID, nil, nil); !errors.As(err, &stateErr) {
		t.Fatalf("second CompleteTrip error = %v, want state error", err)
	}
}

func TestCancelDispatchedTripReleasesPair(t *testing.T) {
	c, db := newTestCoordinator(t)
	vehicle, driver := seedPair(t, db)
	trip := seedDraftTrip(t, db, vehicle.ID, driver.ID)
	if _, err := c.DispatchTrip(context.Background(), trip.ID); err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	got, err := c.CancelTrip(context.Background(), trip.ID)
	if err != nil {
		t.Fatalf("CancelTrip: %v", err)
	}
	if got.Status != models.TripCancelled {
		t.Fatalf("trip status = %q, want %q", got.Status, models.TripCancelled)
	}
	var cancelled models.Trip
	if err := db.First(&cancelled, trip.ID).Error; err != nil {
		t.Fatalf("reload trip: %v", err)
	}
	if cancelled.CompletedDate != nil {
		t.Fatalf("cancelled trip has completed_date %v", cancelled.CompletedDate)
	}
	if v := reloadVehicle(t, db, vehicle.ID); v.Status != models.VehicleAvailable {
		t.Fatalf("vehicle status = %q, want %q", v.Status, models.VehicleAvailable)
	}
	if d := reloadDriver(t, db, driver.ID); d.Status != models.DriverOffDuty {
		t.Fatalf("driver status = %q, want %q", d.Status, models.DriverOffDuty)
	}
}

func TestCreateMaintenancePullsVehicleIntoShop(t *testing.T) {
	c, db := newTestCoordinator(t)
	vehicle, _ := seedPair(t, db)

	rec := &models.Maintenance{
		VehicleID:       vehicle.ID,
		MaintenanceType: models.MaintenanceBrakeService,
		StartDate:       testNow,
	}
	if err := c.CreateMaintenance(context.Background(), rec); err != nil {
		t.Fatalf("CreateMaintenance: %v", err)
	}
	if rec.Status != models.MaintenancePending {
		t.Fatalf("status = %q, want %q", rec.Status, models.MaintenancePending)
	}
	if rec.CompletedDate != nil {
		t.Fatalf("pending record has completed_date %v", rec.CompletedDate)
	}
	if v := reloadVehicle(t, db, vehicle.ID); v.Status != models.VehicleInShop {
		t.Fatalf("vehicle status = %q, want %q", v.Status, models.VehicleInShop)
	}
}

func TestCreateMaintenanceCompletedStampsDate(t *testing.T) {
	c, db := newTestCoordinator(t)
	vehicle, _ := seedPair(t, db)

	rec := &models.Maintenance{
		VehicleID:       vehicle.ID,
		MaintenanceType: models.MaintenanceOilChange,
		Status:          models.MaintenanceCompleted,
		StartDate:       testNow,
	}
	if err := c.CreateMaintenance(context.Background(), rec); err != nil {
		t.Fatalf("CreateMaintenance: %v", err)
	}
	if rec.CompletedDate == nil || !rec.CompletedDate.Equal(testNow) {
		t.Fatalf("completed_date = %v, want %v", rec.CompletedDate, testNow)
	}
	// The vehicle was never shop-held, so its status must not change.
	if v := reloadVehicle(t, db, vehicle.ID); v.Status != models.VehicleAvailable {
		t.Fatalf("vehicle status = %q, want %q", v.Status, models.VehicleAvailable)
	}
}

func TestCreateMaintenanceCompletedReleasesShopHeldVehicle(t *testing.T) {
	c, db := newTestCoordinator(t)
	vehicle, _ := seedPair(t, db)
	if err := db.Model(vehicle).Update("status", models.VehicleInShop).Error; err != nil {
		t.Fatalf("seed shop-held vehicle: %v", err)
	}

	rec := &models.Maintenance{
		VehicleID:       vehicle.ID,
		MaintenanceType: models.MaintenanceInspection,
		Status:          models.MaintenanceCompleted,
		StartDate:       testNow,
	}
	if err := c.CreateMaintenance(context.Background(), rec); err != nil {
		t.Fatalf("CreateMaintenance: %v", err)
	}
	if v := reloadVehicle(t, db, vehicle.ID); v.Status != models.VehicleAvailable {
		t.Fatalf("vehicle status = %q, want %q", v.Status, models.VehicleAvailable)
	}
}

func TestCompleteMaintenanceReleasesVehicle(t *testing.T) {
	c, db := newTestCoordinator(t)
	vehicle, _ := seedPair(t, db)

	rec := &models.Maintenance{
		VehicleID:       vehicle.ID,
		MaintenanceType: models.MaintenanceEngineRepair,
		StartDate:       testNow,
	}
	if err := c.CreateMaintenance(context.Background(), rec); err != nil {
		t.Fatalf("CreateMaintenance: %v", err)
	}
	if _, err := c.UpdateMaintenanceStatus(context.Background(), rec.ID, models.MaintenanceInProgress); err != nil {
		t.Fatalf("move to in_progress: %v", err)
	}

	done, err := c.CompleteMaintenance(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("CompleteMaintenance: %v", err)
	}
	var stored models.Maintenance
	if err := db.First(&stored, done.ID).Error; err != nil {
		t.Fatalf("reload maintenance: %v", err)
	}
	if stored.Status != models.MaintenanceCompleted {
		t.Fatalf("status = %q, want %q", stored.Status, models.MaintenanceCompleted)
	}
	if stored.CompletedDate == nil || !stored.CompletedDate.Equal(testNow) {
		t.Fatalf("completed_date = %v, want %v", stored.CompletedDate, testNow)
	}
	if v := reloadVehicle(t, db, vehicle.ID); v.Status != models.VehicleAvailable {
		t.Fatalf("vehicle status = %q, want %q", v.Status, models.VehicleAvailable)
	}

	var stateErr *StateError
	if _, err := c.CompleteMaintenance(context.Background(), rec.ID); !errors.As(err, &stateErr) {
		t.Fatalf("second CompleteMaintenance error = %v, want state error", err)
	}
}

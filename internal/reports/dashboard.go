package reports

import (
	"context"
	"time"

	"gorm.io/gorm"

	"fleetops/internal/models"
)

const (
	dashboardCacheKey = "dashboard:kpis"
	dashboardCacheTTL = 60 * time.Second
)

type DashboardKPIs struct {
	TotalVehicles     int64   `json:"total_vehicles"`
	ActiveFleet       int64   `json:"active_fleet"`
	VehiclesAvailable int64   `json:"vehicles_available"`
	VehiclesInShop    int64   `json:"vehicles_in_shop"`
	VehiclesRetired   int64   `json:"vehicles_retired"`
	UtilizationRate   float64 `json:"utilization_rate"`

	TotalTrips      int64 `json:"total_trips"`
	TripsInDraft    int64 `json:"trips_in_draft"`
	TripsDispatched int64 `json:"trips_dispatched"`
	TripsCompleted  int64 `json:"trips_completed"`
	TripsCancelled  int64 `json:"trips_cancelled"`

	TotalDrivers          int64 `json:"total_drivers"`
	DriversOnDuty         int64 `json:"drivers_on_duty"`
	DriversSuspended      int64 `json:"drivers_suspended"`
	DriversExpiredLicense int64 `json:"drivers_expired_license"`

	TotalRevenue         float64 `json:"total_revenue"`
	TotalFuelCost        float64 `json:"total_fuel_cost"`
	TotalMaintenanceCost float64 `json:"total_maintenance_cost"`
	TotalExpenses        float64 `json:"total_expenses"`
	NetProfit            float64 `json:"net_profit"`

	MaintenanceAlerts int64 `json:"maintenance_alerts"`
}

// Dashboard aggregates fleet-wide counts and all-time financial totals.
// Results are cached briefly; the dashboard tolerates last-committed reads.
func (s *Service) Dashboard(ctx context.Context) (*DashboardKPIs, error) {
	var kpis DashboardKPIs
	if s.cache.GetJSON(ctx, dashboardCacheKey, &kpis) {
		return &kpis, nil
	}

	db := s.db.WithContext(ctx)

	if err := db.Model(&models.Vehicle{}).Count(&kpis.TotalVehicles).Error; err != nil {
		return nil, err
	}
	vehicleCounts, err := countByStatus(db.Model(&models.Vehicle{}))
	if err != nil {
		return nil, err
	}
	kpis.ActiveFleet = vehicleCounts[models.VehicleOnTrip]
	kpis.VehiclesAvailable = vehicleCounts[models.VehicleAvailable]
	kpis.VehiclesInShop = vehicleCounts[models.VehicleInShop]
	kpis.VehiclesRetired = vehicleCounts[models.VehicleRetired]
	kpis.UtilizationRate = UtilizationRate(kpis.ActiveFleet, kpis.TotalVehicles)

	if err := db.Model(&models.Trip{}).Count(&kpis.TotalTrips).Error; err != nil {
		return nil, err
	}
	tripCounts, err := countByStatus(db.Model(&models.Trip{}))
	if err != nil {
		return nil, err
	}
	kpis.TripsInDraft = tripCounts[models.TripDraft]
	kpis.TripsDispatched = tripCounts[models.TripDispatched]
	kpis.TripsCompleted = tripCounts[models.TripCompleted]
	kpis.TripsCancelled = tripCounts[models.TripCancelled]

	if err := db.Model(&models.Driver{}).Count(&kpis.TotalDrivers).Error; err != nil {
		return nil, err
	}
	driverCounts, err := countByStatus(db.Model(&models.Driver{}))
	if err != nil {
		return nil, err
	}
	kpis.DriversOnDuty = driverCounts[models.DriverOnDuty]
	kpis.DriversSuspended = driverCounts[models.DriverSuspended]
	if err := db.Model(&models.Driver{}).
		Where("license_expiry < ?", models.StartOfDay(time.Now())).
		Count(&kpis.DriversExpiredLicense).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Trip{}).Where("status = ?", models.TripCompleted).
		Select("COALESCE(SUM(revenue), 0)").Scan(&kpis.TotalRevenue).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.FuelLog{}).
		Select("COALESCE(SUM(total_cost), 0)").Scan(&kpis.TotalFuelCost).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Maintenance{}).
		Select("COALESCE(SUM(cost), 0)").Scan(&kpis.TotalMaintenanceCost).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").Scan(&kpis.TotalExpenses).Error; err != nil {
		return nil, err
	}
	kpis.NetProfit = kpis.TotalRevenue - kpis.TotalFuelCost - kpis.TotalMaintenanceCost - kpis.TotalExpenses

	kpis.MaintenanceAlerts = kpis.VehiclesInShop

	s.cache.SetJSON(ctx, dashboardCacheKey, &kpis, dashboardCacheTTL)
	return &kpis, nil
}

// UtilizationRate is the on-trip share of the whole fleet as a percentage,
// 0 for an empty fleet.
func UtilizationRate(onTrip, total int64) float64 {
	if total == 0 {
		return 0
	}
	return Round2(float64(onTrip) / float64(total) * 100)
}

func countByStatus(q *gorm.DB) (map[string]int64, error) {
	type row struct {
		Status string
		N      int64
	}
	var rows []row
	if err := q.Select("status, COUNT(*) AS n").Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.N
	}
	return counts, nil
}

// Package reports computes the read-side financial rollups: vehicle ROI,
// fleet fuel efficiency, and the dashboard KPIs. Everything here is
// computed on demand from stored facts; nothing is persisted.
package reports

import (
	"context"
	"math"
	"sort"

	"gorm.io/gorm"

	"fleetops/internal/cache"
	"fleetops/internal/models"
)

type Service struct {
	db    *gorm.DB
	cache *cache.Client
}

func New(db *gorm.DB, cache *cache.Client) *Service {
	return &Service{db: db, cache: cache}
}

type ROIReport struct {
	Vehicle              string  `json:"vehicle"`
	AcquisitionCost      float64 `json:"acquisition_cost"`
	TotalRevenue         float64 `json:"total_revenue"`
	TotalFuelCost        float64 `json:"total_fuel_cost"`
	TotalMaintenanceCost float64 `json:"total_maintenance_cost"`
	TotalOperationalCost float64 `json:"total_operational_cost"`
	NetProfit            float64 `json:"net_profit"`
	ROIPercent           float64 `json:"roi_percent"`
}

// VehicleROI rolls up all costs and completed-trip revenue for one vehicle.
func (s *Service) VehicleROI(ctx context.Context, vehicleID uint) (*ROIReport, error) {
	var vehicle models.Vehicle
	if err := s.db.WithContext(ctx).First(&vehicle, vehicleID).Error; err != nil {
		return nil, err
	}

	fuel, err := s.sumFor(ctx, &models.FuelLog{}, "total_cost", vehicleID)
	if err != nil {
		return nil, err
	}
	maint, err := s.sumFor(ctx, &models.Maintenance{}, "cost", vehicleID)
	if err != nil {
		return nil, err
	}

	var revenue float64
	if err := s.db.WithContext(ctx).Model(&models.Trip{}).
		Where("vehicle_id = ? AND status = ?", vehicleID, models.TripCompleted).
		Select("COALESCE(SUM(revenue), 0)").Scan(&revenue).Error; err != nil {
		return nil, err
	}

	operational := fuel + maint
	return &ROIReport{
		Vehicle:              vehicle.LicensePlate,
		AcquisitionCost:      vehicle.AcquisitionCost,
		TotalRevenue:         revenue,
		TotalFuelCost:        fuel,
		TotalMaintenanceCost: maint,
		TotalOperationalCost: operational,
		NetProfit:            revenue - operational,
		ROIPercent:           ROI(revenue, operational, vehicle.AcquisitionCost),
	}, nil
}

// ROI is the return-on-investment percentage, rounded to two decimals.
// An unset or zero acquisition cost yields 0 rather than a division blowup.
func ROI(revenue, operationalCost, acquisitionCost float64) float64 {
	if acquisitionCost == 0 {
		return 0
	}
	return Round2((revenue - operationalCost) / acquisitionCost * 100)
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type EfficiencyRow struct {
	Vehicle         string  `json:"vehicle"`
	MakeModel       string  `json:"make_model"`
	TotalLiters     float64 `json:"total_liters"`
	TotalFuelCost   float64 `json:"total_fuel_cost"`
	TotalDistanceKm float64 `json:"total_distance_km"`
	KmPerLiter      float64 `json:"km_per_liter"`
}

// EfficiencyReport computes km per liter for every vehicle with fuel
// logged, best first. Vehicles with no fuel history are excluded.
func (s *Service) EfficiencyReport(ctx context.Context) ([]EfficiencyRow, error) {
	type fuelAgg struct {
		VehicleID uint
		Liters    float64
		Cost      float64
	}
	var fuels []fuelAgg
	if err := s.db.WithContext(ctx).Model(&models.FuelLog{}).
		Select("vehicle_id, SUM(liters) AS liters, SUM(total_cost) AS cost").
		Group("vehicle_id").Having("SUM(liters) > 0").
		Scan(&fuels).Error; err != nil {
		return nil, err
	}
	if len(fuels) == 0 {
		return []EfficiencyRow{}, nil
	}

	type distAgg struct {
		VehicleID uint
		Distance  float64
	}
	var dists []distAgg
	if err := s.db.WithContext(ctx).Model(&models.Trip{}).
		Select("vehicle_id, SUM(distance_km) AS distance").
		Group("vehicle_id").Scan(&dists).Error; err != nil {
		return nil, err
	}
	distanceByVehicle := make(map[uint]float64, len(dists))
	for _, d := range dists {
		distanceByVehicle[d.VehicleID] = d.Distance
	}

	ids := make([]uint, 0, len(fuels))
	for _, f := range fuels {
		ids = append(ids, f.VehicleID)
	}
	var vehicles []models.Vehicle
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&vehicles).Error; err != nil {
		return nil, err
	}
	vehicleByID := make(map[uint]models.Vehicle, len(vehicles))
	for _, v := range vehicles {
		vehicleByID[v.ID] = v
	}

	rows := make([]EfficiencyRow, 0, len(fuels))
	for _, f := range fuels {
		v := vehicleByID[f.VehicleID]
		dist := distanceByVehicle[f.VehicleID]
		rows = append(rows, EfficiencyRow{
			Vehicle:         v.LicensePlate,
			MakeModel:       v.Make + " " + v.VehicleModel,
			TotalLiters:     f.Liters,
			TotalFuelCost:   f.Cost,
			TotalDistanceKm: dist,
			KmPerLiter:      KmPerLiter(dist, f.Liters),
		})
	}
	SortByEfficiency(rows)
	return rows, nil
}

func KmPerLiter(distanceKm, liters float64) float64 {
	if liters == 0 {
		return 0
	}
	return Round2(distanceKm / liters)
}

// SortByEfficiency orders rows best km/L first.
func SortByEfficiency(rows []EfficiencyRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].KmPerLiter > rows[j].KmPerLiter
	})
}

func (s *Service) sumFor(ctx context.Context, model interface{}, column string, vehicleID uint) (float64, error) {
	var total float64
	err := s.db.WithContext(ctx).Model(model).
		Where("vehicle_id = ?", vehicleID).
		Select("COALESCE(SUM(" + column + "), 0)").Scan(&total).Error
	return total, err
}

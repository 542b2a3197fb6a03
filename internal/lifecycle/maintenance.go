package lifecycle

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fleetops/internal/models"
)

// MaintenanceInput carries the client-editable maintenance fields.
// Status moves through UpdateMaintenanceStatus / CompleteMaintenance only.
type MaintenanceInput struct {
	MaintenanceType *string  `json:"maintenance_type"`
	Description     *string  `json:"description"`
	Cost            *float64 `json:"cost"`
	Vendor          *string  `json:"vendor"`
}

// CreateMaintenance stores a new record and, when it opens in pending or
// in_progress, pulls the vehicle into the shop. An in-shop vehicle can
// never be dispatched, so this takes precedence over any pending trip.
// A record logged directly as completed is back-filled history: it gets
// its completion date stamped here, since no transition will ever do it.
func (c *Coordinator) CreateMaintenance(ctx context.Context, rec *models.Maintenance) error {
	if rec.Status == "" {
		rec.Status = models.MaintenancePending
	}
	if !models.ValidMaintenanceStatus(rec.Status) {
		return &StateError{CodeInvalidTransition, fmt.Sprintf("unknown maintenance status %q", rec.Status)}
	}
	if rec.Status == models.MaintenanceCompleted {
		if rec.CompletedDate == nil {
			done := c.now()
			rec.CompletedDate = &done
		}
	} else {
		rec.CompletedDate = nil
	}

	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var vehicle models.Vehicle
		if err := tx.First(&vehicle, rec.VehicleID).Error; err != nil {
			return err
		}
		if err := tx.Create(rec).Error; err != nil {
			return err
		}
		switch rec.Status {
		case models.MaintenancePending, models.MaintenanceInProgress:
			return tx.Model(&vehicle).Update("status", models.VehicleInShop).Error
		case models.MaintenanceCompleted:
			// Completed-at-creation releases a shop-held vehicle but must
			// not touch one that is out on a trip or retired.
			if vehicle.Status == models.VehicleInShop {
				return tx.Model(&vehicle).Update("status", models.VehicleAvailable).Error
			}
		}
		return nil
	})
}

// UpdateMaintenanceStatus moves a record along pending -> in_progress ->
// completed. Entering completed returns the vehicle to the fleet and
// stamps the completion date if it is not already set.
func (c *Coordinator) UpdateMaintenanceStatus(ctx context.Context, recID uint, to string) (*models.Maintenance, error) {
	if !models.ValidMaintenanceStatus(to) {
		return nil, &StateError{CodeInvalidTransition, fmt.Sprintf("unknown maintenance status %q", to)}
	}

	var rec models.Maintenance
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rec, recID).Error; err != nil {
			return err
		}
		if !models.MaintenanceCanTransition(rec.Status, to) {
			return &StateError{CodeInvalidTransition, fmt.Sprintf("maintenance is %s and cannot move to %s", rec.Status, to)}
		}

		updates := map[string]interface{}{"status": to}
		if to == models.MaintenanceCompleted && rec.CompletedDate == nil {
			updates["completed_date"] = c.now()
		}
		if err := tx.Model(&rec).Updates(updates).Error; err != nil {
			return err
		}
		if to == models.MaintenanceCompleted {
			return tx.Model(&models.Vehicle{}).Where("id = ?", rec.VehicleID).
				Update("status", models.VehicleAvailable).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// CompleteMaintenance is the explicit completion action.
func (c *Coordinator) CompleteMaintenance(ctx context.Context, recID uint) (*models.Maintenance, error) {
	return c.UpdateMaintenanceStatus(ctx, recID, models.MaintenanceCompleted)
}

// UpdateMaintenance applies ordinary field edits without touching status.
func (c *Coordinator) UpdateMaintenance(ctx context.Context, recID uint, in MaintenanceInput) (*models.Maintenance, error) {
	var rec models.Maintenance
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rec, recID).Error; err != nil {
			return err
		}
		if in.MaintenanceType != nil {
			if !models.ValidMaintenanceType(*in.MaintenanceType) {
				return &StateError{CodeInvalidTransition, fmt.Sprintf("unknown maintenance type %q", *in.MaintenanceType)}
			}
			rec.MaintenanceType = *in.MaintenanceType
		}
		if in.Description != nil {
			rec.Description = *in.Description
		}
		if in.Cost != nil {
			rec.Cost = *in.Cost
		}
		if in.Vendor != nil {
			rec.Vendor = *in.Vendor
		}
		return tx.Save(&rec).Error
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

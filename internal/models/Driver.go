// internal/models/driver.go
package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	DriverOffDuty   = "off_duty"
	DriverOnDuty    = "on_duty"
	DriverSuspended = "suspended"
)

// Compliance statuses, in priority order: suspension outranks an expired
// license, which outranks everything else.
const (
	ComplianceSuspended = "SUSPENDED"
	ComplianceExpired   = "LICENSE EXPIRED"
	ComplianceCompliant = "COMPLIANT"
)

type Driver struct {
	gorm.Model
	UserID *uint `json:"user_id,omitempty" gorm:"uniqueIndex"` // optional link to a User account

	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`

	LicenseNumber string    `json:"license_number" gorm:"unique" binding:"required"`
	LicenseExpiry time.Time `json:"license_expiry"`

	Status string `json:"status" gorm:"default:off_duty"`

	Notes string `json:"notes"`
}

// StartOfDay truncates t to midnight UTC. License expiries are whole
// days, so every comparison against them goes through this first.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsLicenseExpiredAt reports whether the license had lapsed before the
// given day. The date-only comparison matches how expiries are recorded:
// a license is valid through its expiry day.
func (d *Driver) IsLicenseExpiredAt(now time.Time) bool {
	return StartOfDay(d.LicenseExpiry).Before(StartOfDay(now))
}

func (d *Driver) IsLicenseExpired() bool {
	return d.IsLicenseExpiredAt(time.Now())
}

func (d *Driver) ComplianceStatus() string {
	if d.Status == DriverSuspended {
		return ComplianceSuspended
	}
	if d.IsLicenseExpired() {
		return ComplianceExpired
	}
	return ComplianceCompliant
}

func (d *Driver) IsAvailable() bool {
	return d.Status == DriverOffDuty && !d.IsLicenseExpired()
}

func ValidDriverStatus(s string) bool {
	switch s {
	case DriverOffDuty, DriverOnDuty, DriverSuspended:
		return true
	}
	return false
}

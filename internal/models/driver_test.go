package models

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	in := time.Date(2025, 6, 15, 23, 59, 59, 1e9-1, time.FixedZone("EAT", 3*3600))
	want := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	if got := StartOfDay(in); !got.Equal(want) {
		t.Fatalf("StartOfDay(%v) = %v, want %v", in, got, want)
	}

	// A license expiring today still satisfies license_expiry >= today,
	// so day-level queries must compare against the truncated instant.
	expiry := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	if expiry.Before(StartOfDay(in)) {
		t.Fatalf("license expiring today compared as already expired")
	}
}

func TestDriverLicenseExpiry(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	d := Driver{LicenseExpiry: time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)}
	if !d.IsLicenseExpiredAt(now) {
		t.Fatalf("expected license expired yesterday to be expired")
	}

	// Valid through the expiry day itself.
	d.LicenseExpiry = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	if d.IsLicenseExpiredAt(now) {
		t.Fatalf("expected license expiring today to still be valid")
	}

	d.LicenseExpiry = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if d.IsLicenseExpiredAt(now) {
		t.Fatalf("expected future license to be valid")
	}
}

func TestDriverComplianceStatusPriority(t *testing.T) {
	expired := time.Now().AddDate(-1, 0, 0)
	valid := time.Now().AddDate(1, 0, 0)

	// Suspension outranks an expired license.
	d := Driver{Status: DriverSuspended, LicenseExpiry: expired}
	if got := d.ComplianceStatus(); got != ComplianceSuspended {
		t.Fatalf("expected %s, got %s", ComplianceSuspended, got)
	}

	d = Driver{Status: DriverOffDuty, LicenseExpiry: expired}
	if got := d.ComplianceStatus(); got != ComplianceExpired {
		t.Fatalf("expected %s, got %s", ComplianceExpired, got)
	}

	d = Driver{Status: DriverOffDuty, LicenseExpiry: valid}
	if got := d.ComplianceStatus(); got != ComplianceCompliant {
		t.Fatalf("expected %s, got %s", ComplianceCompliant, got)
	}
}

func TestDriverIsAvailable(t *testing.T) {
	valid := time.Now().AddDate(1, 0, 0)
	expired := time.Now().AddDate(-1, 0, 0)

	cases := []struct {
		status string
		expiry time.Time
		want   bool
	}{
		{DriverOffDuty, valid, true},
		{DriverOnDuty, valid, false},
		{DriverSuspended, valid, false},
		{DriverOffDuty, expired, false},
	}
	for _, tc := range cases {
		d := Driver{Status: tc.status, LicenseExpiry: tc.expiry}
		if got := d.IsAvailable(); got != tc.want {
			t.Fatalf("status=%s expired=%v: expected available=%v, got %v",
				tc.status, tc.expiry.Before(time.Now()), tc.want, got)
		}
	}
}

package validation

import (
	"fmt"
	"strings"
)

// Error codes surfaced to callers alongside the field name.
const (
	CodeOutOfRange       = "out_of_range"
	CodeCapacityExceeded = "capacity_exceeded"
	CodeLicenseExpired   = "license_expired"
	CodeDriverSuspended  = "driver_suspended"
	CodeVehicleBusy      = "vehicle_busy"
	CodeVehicleUnavail   = "vehicle_unavailable"
	CodeNegativeAmount   = "negative_amount"
	CodeInvalidQuantity  = "invalid_quantity"
	CodeInvalidChoice    = "invalid_choice"
)

// FieldError is a single failed precondition on a named field.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errors collects all field failures from a gate run. A nil or empty set
// means the write may proceed.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Error())
	}
	return strings.Join(parts, "; ")
}

func (e Errors) Has(code string) bool {
	for _, fe := range e {
		if fe.Code == code {
			return true
		}
	}
	return false
}

// OrNil returns the set as an error, or nil when no check failed.
func (e Errors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

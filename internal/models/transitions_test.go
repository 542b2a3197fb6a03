package models

import "testing"

func TestTripTransitions(t *testing.T) {
	if !TripCanTransition(TripDraft, TripDispatched) {
		t.Fatalf("expected draft -> dispatched allowed")
	}
	if !TripCanTransition(TripDraft, TripCancelled) {
		t.Fatalf("expected draft -> cancelled allowed")
	}
	if !TripCanTransition(TripDispatched, TripCompleted) {
		t.Fatalf("expected dispatched -> completed allowed")
	}
	if !TripCanTransition(TripDispatched, TripCancelled) {
		t.Fatalf("expected dispatched -> cancelled allowed")
	}

	if TripCanTransition(TripDraft, TripCompleted) {
		t.Fatalf("expected draft -> completed shortcut not allowed")
	}
	if TripCanTransition(TripDispatched, TripDraft) {
		t.Fatalf("expected no regression to draft")
	}
	for _, terminal := range []string{TripCompleted, TripCancelled} {
		for _, to := range []string{TripDraft, TripDispatched, TripCompleted, TripCancelled} {
			if TripCanTransition(terminal, to) {
				t.Fatalf("expected %s to be terminal, but %s -> %s allowed", terminal, terminal, to)
			}
		}
	}
}

func TestMaintenanceTransitions(t *testing.T) {
	if !MaintenanceCanTransition(MaintenancePending, MaintenanceInProgress) {
		t.Fatalf("expected pending -> in_progress allowed")
	}
	if !MaintenanceCanTransition(MaintenancePending, MaintenanceCompleted) {
		t.Fatalf("expected pending -> completed allowed")
	}
	if !MaintenanceCanTransition(MaintenanceInProgress, MaintenanceCompleted) {
		t.Fatalf("expected in_progress -> completed allowed")
	}
	if MaintenanceCanTransition(MaintenanceCompleted, MaintenancePending) {
		t.Fatalf("expected completed to be terminal")
	}
	if MaintenanceCanTransition(MaintenanceInProgress, MaintenancePending) {
		t.Fatalf("expected no regression to pending")
	}
}

func TestFuelLogRecomputeTotalCost(t *testing.T) {
	log := FuelLog{Liters: 40, PricePerLiter: 3.5, TotalCost: 999}
	log.RecomputeTotalCost()
	if log.TotalCost != 140 {
		t.Fatalf("expected total cost 140.00, got %v", log.TotalCost)
	}
}

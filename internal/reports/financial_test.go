package reports

import "testing"

func TestROI(t *testing.T) {
	// Zero acquisition cost must not blow up.
	if got := ROI(2000, 0, 0); got != 0 {
		t.Fatalf("expected 0 for zero acquisition cost, got %v", got)
	}

	// 2000 revenue, no costs, 10000 acquisition -> 20%.
	if got := ROI(2000, 0, 10000); got != 20.0 {
		t.Fatalf("expected 20.0, got %v", got)
	}

	// Rounded to two decimals.
	if got := ROI(1000, 333, 10000); got != 6.67 {
		t.Fatalf("expected 6.67, got %v", got)
	}

	// Losses go negative.
	if got := ROI(500, 1500, 10000); got != -10.0 {
		t.Fatalf("expected -10.0, got %v", got)
	}
}

func TestKmPerLiter(t *testing.T) {
	if got := KmPerLiter(150, 40); got != 3.75 {
		t.Fatalf("expected 3.75, got %v", got)
	}
	if got := KmPerLiter(100, 0); got != 0 {
		t.Fatalf("expected 0 for no fuel, got %v", got)
	}
	if got := KmPerLiter(100, 3); got != 33.33 {
		t.Fatalf("expected 33.33, got %v", got)
	}
}

func TestSortByEfficiency(t *testing.T) {
	rows := []EfficiencyRow{
		{Vehicle: "B", KmPerLiter: 5.5},
		{Vehicle: "C", KmPerLiter: 12.1},
		{Vehicle: "A", KmPerLiter: 8.0},
	}
	SortByEfficiency(rows)

	want := []string{"C", "A", "B"}
	for i, plate := range want {
		if rows[i].Vehicle != plate {
			t.Fatalf("position %d: expected %s, got %s", i, plate, rows[i].Vehicle)
		}
	}
}

func TestUtilizationRate(t *testing.T) {
	if got := UtilizationRate(0, 0); got != 0 {
		t.Fatalf("expected 0 for empty fleet, got %v", got)
	}
	if got := UtilizationRate(3, 10); got != 30.0 {
		t.Fatalf("expected 30.0, got %v", got)
	}
	if got := UtilizationRate(1, 3); got != 33.33 {
		t.Fatalf("expected 33.33, got %v", got)
	}
}

package scoring

import (
	"testing"

	"github.com/daypulse/daypulse/internal/domain"
)

func TestDeepWorkSelector_Select(t *testing.T) {
	selector := NewDeepWorkSelector(DefaultParams())

	blocks := []domain.FocusBlock{
		{StartHour: 9, EndHour: 12, LengthHours: 3, AvgScore: 82.0},
		{StartHour: 14, EndHour: 17, LengthHours: 3, AvgScore: 88.5},
		{StartHour: 20, EndHour: 22, LengthHours: 2, AvgScore: 71.0},
	}

	plan := selector.Select(blocks, domain.EnergyFlowPrediction{}, 7.0, nil)

	if plan.Primary == nil || plan.Primary.StartHour != 14 {
		t.Fatalf("Primary = %+v, want block starting at 14", plan.Primary)
	}
	if plan.Secondary == nil || plan.Secondary.StartHour != 9 {
		t.Fatalf("Secondary = %+v, want block starting at 9", plan.Secondary)
	}
}

func TestDeepWorkSelector_NoBlocks(t *testing.T) {
	selector := NewDeepWorkSelector(DefaultParams())

	plan := selector.Select(nil, domain.EnergyFlowPrediction{}, 7.0, nil)
	if plan.Primary != nil || plan.Secondary != nil {
		t.Errorf("empty input should yield no primary/secondary, got %+v", plan)
	}
	if plan.Avoid == nil {
		t.Error("Avoid should be an empty slice, not nil")
	}
}

func TestDeepWorkSelector_SecondaryMustNotOverlapPrimary(t *testing.T) {
	selector := NewDeepWorkSelector(DefaultParams())

	blocks := []domain.FocusBlock{
		{StartHour: 9, EndHour: 13, LengthHours: 4, AvgScore: 90.0},
		{StartHour: 11, EndHour: 14, LengthHours: 3, AvgScore: 85.0},
	}

	plan := selector.Select(blocks, domain.EnergyFlowPrediction{}, 7.0, nil)
	if plan.Primary == nil || plan.Primary.StartHour != 9 {
		t.Fatalf("Primary = %+v, want block starting at 9", plan.Primary)
	}
	if plan.Secondary != nil {
		t.Errorf("Secondary = %+v, want nil when the only other block overlaps", plan.Secondary)
	}
}

func TestDeepWorkSelector_PreferenceBreaksTiesOnly(t *testing.T) {
	selector := NewDeepWorkSelector(DefaultParams())

	tied := []domain.FocusBlock{
		{StartHour: 9, EndHour: 11, LengthHours: 2, AvgScore: 80.0},
		{StartHour: 15, EndHour: 17, LengthHours: 2, AvgScore: 80.0},
	}

	// Preferred start hour wins among equal average scores.
	plan := selector.Select(tied, domain.EnergyFlowPrediction{}, 7.0, []int{15, 9})
	if plan.Primary == nil || plan.Primary.StartHour != 15 {
		t.Errorf("Primary = %+v, want preferred block starting at 15", plan.Primary)
	}

	// A preference cannot promote a lower-scoring block.
	uneven := []domain.FocusBlock{
		{StartHour: 9, EndHour: 11, LengthHours: 2, AvgScore: 85.0},
		{StartHour: 15, EndHour: 17, LengthHours: 2, AvgScore: 80.0},
	}
	plan = selector.Select(uneven, domain.EnergyFlowPrediction{}, 7.0, []int{15})
	if plan.Primary == nil || plan.Primary.StartHour != 9 {
		t.Errorf("Primary = %+v, want higher-scoring block starting at 9", plan.Primary)
	}

	// Preferences naming no existing block change nothing.
	plan = selector.Select(tied, domain.EnergyFlowPrediction{}, 7.0, []int{3, 4})
	if plan.Primary == nil || plan.Primary.StartHour != 9 {
		t.Errorf("Primary = %+v, want earlier tied block starting at 9", plan.Primary)
	}
}

func TestDeepWorkSelector_AvoidWindows(t *testing.T) {
	selector := NewDeepWorkSelector(DefaultParams())

	flow := domain.EnergyFlowPrediction{
		Windows: []domain.EnergyWindow{
			{Name: "Morning Peak", StartOffsetHours: 1.5, EndOffsetHours: 4.5, Category: domain.EnergyHigh},
			{Name: "Post-Lunch Dip", StartOffsetHours: 6, EndOffsetHours: 8, Start: "13:00", End: "15:00", Category: domain.EnergyLow},
			{Name: "Evening Decline", StartOffsetHours: 14, EndOffsetHours: 16, Start: "21:00", End: "23:00", Category: domain.EnergyLow},
		},
	}
	blocks := []domain.FocusBlock{
		{StartHour: 13, EndHour: 16, LengthHours: 3, AvgScore: 78.0},
	}

	plan := selector.Select(blocks, flow, 7.0, nil)

	if len(plan.Avoid) != 2 {
		t.Fatalf("len(Avoid) = %d, want 2 low-energy windows", len(plan.Avoid))
	}
	if plan.Avoid[0].Window.Name != "Post-Lunch Dip" || !plan.Avoid[0].ConflictsWithFocus {
		t.Errorf("Avoid[0] = %+v, want conflicting Post-Lunch Dip", plan.Avoid[0])
	}
	if plan.Avoid[1].Window.Name != "Evening Decline" || plan.Avoid[1].ConflictsWithFocus {
		t.Errorf("Avoid[1] = %+v, want non-conflicting Evening Decline", plan.Avoid[1])
	}
}

func TestWindowOverlapsBlockWrapsMidnight(t *testing.T) {
	// Wake at 22:00 puts the dip at 04:00-06:00 the next morning.
	w := domain.EnergyWindow{StartOffsetHours: 6, EndOffsetHours: 8}

	if !windowOverlapsBlock(w, 22.0, domain.FocusBlock{StartHour: 5, EndHour: 7}) {
		t.Error("expected overlap with block 05:00-07:00")
	}
	if windowOverlapsBlock(w, 22.0, domain.FocusBlock{StartHour: 9, EndHour: 11}) {
		t.Error("unexpected overlap with block 09:00-11:00")
	}
}

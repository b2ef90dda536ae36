package guest

import "testing"

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil)
	if stats != (Stats{}) {
		t.Errorf("expected all zeros, got %+v", stats)
	}
}

func TestComputeStats_Counts(t *testing.T) {
	guests := []*Guest{
		{Name: "Ann", Side: SideBride, RSVPStatus: StatusAttending, Tags: []string{"family"}},
		{Name: "Bob", Side: SideBride, RSVPStatus: StatusDeclined},
		{Name: "Cat", Side: SideBride, RSVPStatus: StatusPending},
		{Name: "Dan", Side: SideGroom, RSVPStatus: StatusAttending, Tags: []string{AnonymousTag}},
		{Name: "Eve", Side: SideGroom, RSVPStatus: StatusAttending, Tags: []string{"work", AnonymousTag}},
	}

	stats := ComputeStats(guests)

	want := Stats{
		Total:     5,
		Attending: 3,
		Declined:  1,
		Pending:   1,
		Anonymous: 2,
		Bride:     SideStats{Total: 3, Attending: 1, Declined: 1, Pending: 1},
		Groom:     SideStats{Total: 2, Attending: 2},
	}
	if stats != want {
		t.Errorf("ComputeStats() = %+v, want %+v", stats, want)
	}
}

func TestComputeStats_OrderAndRepeatDoNotMatter(t *testing.T) {
	guests := []*Guest{
		{Side: SideGroom, RSVPStatus: StatusPending},
		{Side: SideBride, RSVPStatus: StatusAttending, Tags: []string{AnonymousTag}},
		{Side: SideBride, RSVPStatus: StatusDeclined},
	}
	reversed := []*Guest{guests[2], guests[1], guests[0]}

	first := ComputeStats(guests)
	second := ComputeStats(guests)
	if first != second {
		t.Errorf("repeated computation differs: %+v vs %+v", first, second)
	}
	if got := ComputeStats(reversed); got != first {
		t.Errorf("order changed the result: %+v vs %+v", got, first)
	}

	if first.Total != first.Attending+first.Declined+first.Pending {
		t.Errorf("status counts do not add up to total: %+v", first)
	}
	if first.Bride.Total+first.Groom.Total != first.Total {
		t.Errorf("side totals do not add up to total: %+v", first)
	}
}

// Copyright (c) 2025 Juan Giraldo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package allocator

import (
	"errors"
	"math"
	"testing"
)

func TestComputeQuotaHare(t *testing.T) {
	a, err := New(1_000_000, 10)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	quota, err := a.ComputeQuota(MethodHare)
	if err != nil {
		t.Fatalf("ComputeQuota failed: %v", err)
	}
	if quota != 100_000.0 {
		t.Errorf("expected hare quota 100000, got %f", quota)
	}

	// Hare quota times seats recovers the total when votes divide evenly
	if quota*10 != 1_000_000.0 {
		t.Errorf("hare quota * seats should equal total votes, got %f", quota*10)
	}
}

func TestComputeQuotaDroop(t *testing.T) {
	a, err := New(1_000_000, 10)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	quota, err := a.ComputeQuota(MethodDroop)
	if err != nil {
		t.Fatalf("ComputeQuota failed: %v", err)
	}

	want := 1_000_000.0/11.0 + 1.0
	if math.Abs(quota-want) > 1e-9 {
		t.Errorf("expected droop quota %f, got %f", want, quota)
	}
}

func TestDroopQuotaExceedsHare(t *testing.T) {
	cases := []struct {
		votes int64
		seats int64
	}{
		{1_000_000, 10},
		{25_000_000, 100},
		{999, 7},
		{5, 1},
	}

	for _, tc := range cases {
		a, err := New(tc.votes, tc.seats)
		if err != nil {
			t.Fatalf("New(%d, %d) failed: %v", tc.votes, tc.seats, err)
		}
		hare, err := a.ComputeQuota(MethodHare)
		if err != nil {
			t.Fatalf("hare quota failed: %v", err)
		}
		droop, err := a.ComputeQuota(MethodDroop)
		if err != nil {
			t.Fatalf("droop quota failed: %v", err)
		}
		if droop <= hare {
			t.Errorf("votes=%d seats=%d: droop quota %f should exceed hare quota %f",
				tc.votes, tc.seats, droop, hare)
		}
	}
}

func TestComputeQuotaUnknownMethod(t *testing.T) {
	a, _ := New(1000, 5)
	_, err := a.ComputeQuota(Method("dhondt"))
	assertValidationError(t, err)
}

// Degenerate case: seats left over after every party received its bonus
// seat are reported, not redistributed.
func TestAllocateUnassignedSeats(t *testing.T) {
	a, err := New(1_000_000, 10)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	mustAddParty(t, a, "A", 350_000)
	mustAddParty(t, a, "B", 280_000)

	res, err := a.Allocate(MethodHare)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}

	if res.Quota != 100_000.0 {
		t.Errorf("expected quota 100000, got %f", res.Quota)
	}

	pa := findParty(res, "A")
	pb := findParty(res, "B")
	if pa == nil || pb == nil {
		t.Fatal("parties missing from result")
	}

	if pa.InitialSeats != 3 || pa.Remainder != 50_000.0 {
		t.Errorf("A: expected initial=3 remainder=50000, got initial=%d remainder=%f",
			pa.InitialSeats, pa.Remainder)
	}
	if pb.InitialSeats != 2 || pb.Remainder != 80_000.0 {
		t.Errorf("B: expected initial=2 remainder=80000, got initial=%d remainder=%f",
			pb.InitialSeats, pb.Remainder)
	}

	// Both parties get exactly one bonus seat; 3 seats stay unassigned
	if pa.BonusSeats != 1 || pb.BonusSeats != 1 {
		t.Errorf("expected one bonus seat each, got A=%d B=%d", pa.BonusSeats, pb.BonusSeats)
	}
	if res.SeatsAssigned != 7 {
		t.Errorf("expected 7 seats assigned, got %d", res.SeatsAssigned)
	}
	if res.UnassignedSeats != 3 {
		t.Errorf("expected 3 unassigned seats, got %d", res.UnassignedSeats)
	}
}

func TestAllocateFullDistribution(t *testing.T) {
	a, err := New(1_000_000, 10)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	parties := []struct {
		name  string
		votes int64
	}{
		{"Partido Liberal", 350_000},
		{"Partido Conservador", 280_000},
		{"Partido Verde", 150_000},
		{"Centro Democrático", 120_000},
		{"Polo Democrático", 80_000},
		{"Otros partidos", 20_000},
	}
	for _, p := range parties {
		mustAddParty(t, a, p.name, p.votes)
	}

	res, err := a.Allocate(MethodHare)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}

	want := map[string]int64{
		"Partido Liberal":     4, // 3 by quota + bonus (remainder 50k, inserted first)
		"Partido Conservador": 3, // 2 by quota + bonus (remainder 80k)
		"Partido Verde":       1,
		"Centro Democrático":  1,
		"Polo Democrático":    1, // 0 by quota + bonus (remainder 80k)
		"Otros partidos":      0,
	}
	for name, seats := range want {
		p := findParty(res, name)
		if p == nil {
			t.Fatalf("party %q missing from result", name)
		}
		if p.Seats != seats {
			t.Errorf("%s: expected %d seats, got %d", name, seats, p.Seats)
		}
	}

	if res.SeatsAssigned != 10 || res.UnassignedSeats != 0 {
		t.Errorf("expected 10 assigned / 0 unassigned, got %d / %d",
			res.SeatsAssigned, res.UnassignedSeats)
	}

	// Result ordering: seats desc, remainder desc, insertion order
	for i := 1; i < len(res.Parties); i++ {
		prev, cur := res.Parties[i-1], res.Parties[i]
		if cur.Seats > prev.Seats {
			t.Errorf("result not ordered by seats: %s (%d) after %s (%d)",
				cur.Name, cur.Seats, prev.Name, prev.Seats)
		}
	}
}

func TestSeatSumInvariant(t *testing.T) {
	cases := []struct {
		totalVotes int64
		totalSeats int64
		votes      []int64
		method     Method
	}{
		{1_000_000, 10, []int64{350_000, 280_000, 150_000, 120_000, 80_000, 20_000}, MethodHare},
		{1_000_000, 10, []int64{350_000, 280_000, 150_000, 120_000, 80_000, 20_000}, MethodDroop},
		{1_000_000, 10, []int64{350_000, 280_000}, MethodHare},
		{999_983, 7, []int64{500_000, 250_000, 125_000, 62_500, 31_250}, MethodHare},
		{12_345, 3, []int64{9_999, 2_000, 346}, MethodDroop},
	}

	for i, tc := range cases {
		a, err := New(tc.totalVotes, tc.totalSeats)
		if err != nil {
			t.Fatalf("case %d: New failed: %v", i, err)
		}
		for j, v := range tc.votes {
			mustAddParty(t, a, string(rune('A'+j)), v)
		}
		res, err := a.Allocate(tc.method)
		if err != nil {
			t.Fatalf("case %d: Allocate failed: %v", i, err)
		}

		var sum int64
		for _, p := range res.Parties {
			sum += p.Seats
			if p.Seats != p.InitialSeats+p.BonusSeats {
				t.Errorf("case %d: %s seats %d != initial %d + bonus %d",
					i, p.Name, p.Seats, p.InitialSeats, p.BonusSeats)
			}
		}
		if sum+res.UnassignedSeats != tc.totalSeats {
			t.Errorf("case %d: seats %d + unassigned %d != total %d",
				i, sum, res.UnassignedSeats, tc.totalSeats)
		}
		if sum != res.SeatsAssigned {
			t.Errorf("case %d: SeatsAssigned %d disagrees with sum %d",
				i, res.SeatsAssigned, sum)
		}
	}
}

// Two parties with identical votes have identical remainders; the one
// inserted first must win the bonus seat.
func TestBonusTiebreakInsertionOrder(t *testing.T) {
	a, err := New(1000, 3)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	mustAddParty(t, a, "Primero", 400)
	mustAddParty(t, a, "Segundo", 400)

	res, err := a.Allocate(MethodHare)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}

	first := findParty(res, "Primero")
	second := findParty(res, "Segundo")
	if first.Remainder != second.Remainder {
		t.Fatalf("expected identical remainders, got %f and %f", first.Remainder, second.Remainder)
	}
	if first.BonusSeats != 1 {
		t.Errorf("first-inserted party should win the tied bonus seat, got bonus=%d", first.BonusSeats)
	}
	if second.BonusSeats != 0 {
		t.Errorf("second-inserted party should lose the tied bonus seat, got bonus=%d", second.BonusSeats)
	}
	// And the final ordering keeps insertion order between the tied pair
	if res.Parties[0].Name != "Primero" {
		t.Errorf("expected Primero ranked first, got %s", res.Parties[0].Name)
	}
}

func TestPercentExact(t *testing.T) {
	a, err := New(1_000_000, 10)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	mustAddParty(t, a, "A", 350_000)

	res, err := a.Allocate(MethodHare)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	if res.Parties[0].Percent != 35.0 {
		t.Errorf("expected exactly 35.0 percent, got %v", res.Parties[0].Percent)
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(0, 10); err == nil {
		t.Error("expected error for zero total votes")
	} else {
		assertValidationError(t, err)
	}
	if _, err := New(-5, 10); err == nil {
		t.Error("expected error for negative total votes")
	}
	if _, err := New(1000, 0); err == nil {
		t.Error("expected error for zero seats")
	}
	if _, err := New(1000, -1); err == nil {
		t.Error("expected error for negative seats")
	}
}

func TestAddPartyValidation(t *testing.T) {
	a, err := New(1000, 5)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	assertValidationError(t, a.AddParty("", 100))
	assertValidationError(t, a.AddParty("Lista A", -1))

	if err := a.AddParty("Lista A", 100); err != nil {
		t.Fatalf("valid AddParty failed: %v", err)
	}
	assertValidationError(t, a.AddParty("Lista A", 200))

	// Zero votes is valid
	if err := a.AddParty("Lista B", 0); err != nil {
		t.Errorf("zero votes should be accepted: %v", err)
	}

	// Failed adds must not have appended anything
	if got := len(a.Parties()); got != 2 {
		t.Errorf("expected 2 registered parties, got %d", got)
	}
}

func TestAllocateNoParties(t *testing.T) {
	a, _ := New(1000, 5)
	_, err := a.Allocate(MethodHare)
	assertValidationError(t, err)
}

func TestResultMetadata(t *testing.T) {
	a, _ := New(1000, 5)
	mustAddParty(t, a, "A", 600)

	res, err := a.Allocate(MethodDroop)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	if res.ID == "" {
		t.Error("result should carry an ID")
	}
	if res.Method != MethodDroop {
		t.Errorf("expected method droop, got %s", res.Method)
	}
	if res.ComputedAt.IsZero() {
		t.Error("result should carry a computation timestamp")
	}
}

func mustAddParty(t *testing.T, a *Allocator, name string, votes int64) {
	t.Helper()
	if err := a.AddParty(name, votes); err != nil {
		t.Fatalf("AddParty(%q, %d) failed: %v", name, votes, err)
	}
}

func findParty(res *Result, name string) *PartyResult {
	for i := range res.Parties {
		if res.Parties[i].Name == name {
			return &res.Parties[i]
		}
	}
	return nil
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected a validation error, got nil")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	if verr.Msg == "" {
		t.Error("validation error should carry a message")
	}
}

// Copyright (c) 2025 Juan Giraldo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package allocator

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Method selects the quota formula used for seat allocation.
type Method string

const (
	MethodHare  Method = "hare"
	MethodDroop Method = "droop"
)

// ValidationError reports invalid input to the allocator. It is the only
// error kind the package produces; detect it with errors.As.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// Party is a single electoral list and its raw vote count.
type Party struct {
	Name  string
	Votes int64
}

// Allocator distributes a fixed number of seats across parties using the
// largest-remainder method. Parties keep their insertion order, which is the
// final tiebreak everywhere ordering matters. An Allocator is not safe for
// concurrent mutation; build one per scenario.
type Allocator struct {
	totalVotes int64
	totalSeats int64
	parties    []Party
}

// New creates an Allocator for the given totals. Both must be positive.
func New(totalVotes, totalSeats int64) (*Allocator, error) {
	if totalVotes <= 0 {
		return nil, validationf("total valid votes must be positive, got %d", totalVotes)
	}
	if totalSeats <= 0 {
		return nil, validationf("total seats must be positive, got %d", totalSeats)
	}
	return &Allocator{totalVotes: totalVotes, totalSeats: totalSeats}, nil
}

func (a *Allocator) TotalVotes() int64 { return a.totalVotes }
func (a *Allocator) TotalSeats() int64 { return a.totalSeats }

// Parties returns a copy of the registered parties in insertion order.
func (a *Allocator) Parties() []Party {
	out := make([]Party, len(a.parties))
	copy(out, a.parties)
	return out
}

// AddParty registers a party. Names must be unique and non-empty, votes
// non-negative. Party votes are not required to sum to the total valid
// votes; vote validity is the caller's concern.
func (a *Allocator) AddParty(name string, votes int64) error {
	if name == "" {
		return validationf("party name must not be empty")
	}
	if votes < 0 {
		return validationf("party %q has negative votes: %d", name, votes)
	}
	for _, p := range a.parties {
		if p.Name == name {
			return validationf("party %q already added", name)
		}
	}
	a.parties = append(a.parties, Party{Name: name, Votes: votes})
	return nil
}

// ComputeQuota returns the vote threshold per seat under the given method.
//
// Hare:  totalVotes / totalSeats
// Droop: totalVotes / (totalSeats + 1) + 1
func (a *Allocator) ComputeQuota(method Method) (float64, error) {
	if a.totalSeats <= 0 {
		return 0, validationf("total seats must be positive, got %d", a.totalSeats)
	}
	switch method {
	case MethodHare:
		return float64(a.totalVotes) / float64(a.totalSeats), nil
	case MethodDroop:
		return float64(a.totalVotes)/float64(a.totalSeats+1) + 1, nil
	default:
		return 0, validationf("unknown method %q (want %q or %q)", method, MethodHare, MethodDroop)
	}
}

// PartyResult is the per-party outcome of an allocation. Percent and
// Remainder are stored unrounded; presentation layers round for display.
type PartyResult struct {
	Name         string  `json:"name"`
	Votes        int64   `json:"votes"`
	Percent      float64 `json:"percent"`
	InitialSeats int64   `json:"initial_seats"`
	BonusSeats   int64   `json:"bonus_seats"`
	Seats        int64   `json:"seats"`
	Remainder    float64 `json:"remainder"`
}

// Result is an allocation snapshot: per-party results ordered by final
// seats, plus run metadata.
type Result struct {
	ID              string        `json:"id"`
	Method          Method        `json:"method"`
	Quota           float64       `json:"quota"`
	ComputedAt      time.Time     `json:"computed_at"`
	Parties         []PartyResult `json:"parties"`
	SeatsAssigned   int64         `json:"seats_assigned"`
	UnassignedSeats int64         `json:"unassigned_seats"`
}

// Allocate runs the two-phase largest-remainder algorithm:
//
//  1. Each party gets floor(votes / quota) seats; its remainder is
//     votes - seats*quota.
//  2. Leftover seats go one each to the parties with the largest
//     remainders, insertion order breaking ties.
//
// Each party can receive at most one bonus seat. Seats that remain after
// every party got its bonus are reported in UnassignedSeats rather than
// redistributed.
func (a *Allocator) Allocate(method Method) (*Result, error) {
	if len(a.parties) == 0 {
		return nil, validationf("no parties added")
	}
	quota, err := a.ComputeQuota(method)
	if err != nil {
		return nil, err
	}

	type entry struct {
		PartyResult
		order int
	}

	entries := make([]entry, len(a.parties))
	var assigned int64
	for i, p := range a.parties {
		initial := int64(math.Floor(float64(p.Votes) / quota))
		entries[i] = entry{
			PartyResult: PartyResult{
				Name:         p.Name,
				Votes:        p.Votes,
				Percent:      float64(p.Votes) / float64(a.totalVotes) * 100,
				InitialSeats: initial,
				Seats:        initial,
				Remainder:    float64(p.Votes) - float64(initial)*quota,
			},
			order: i,
		}
		assigned += initial
	}

	remaining := a.totalSeats - assigned

	// Bonus pass: explicit multi-key comparator (remainder desc, insertion
	// order asc) rather than relying on sort stability.
	byRemainder := make([]*entry, len(entries))
	for i := range entries {
		byRemainder[i] = &entries[i]
	}
	sort.Slice(byRemainder, func(i, j int) bool {
		if byRemainder[i].Remainder != byRemainder[j].Remainder {
			return byRemainder[i].Remainder > byRemainder[j].Remainder
		}
		return byRemainder[i].order < byRemainder[j].order
	})
	for _, e := range byRemainder {
		if remaining <= 0 {
			break
		}
		e.BonusSeats = 1
		e.Seats++
		assigned++
		remaining--
	}

	// Final ordering: seats desc, then remainder desc, then insertion order.
	sort.Slice(entries, func(i, j int) bool {
		x, y := entries[i], entries[j]
		if x.Seats != y.Seats {
			return x.Seats > y.Seats
		}
		if x.Remainder != y.Remainder {
			return x.Remainder > y.Remainder
		}
		return x.order < y.order
	})

	parties := make([]PartyResult, len(entries))
	for i, e := range entries {
		parties[i] = e.PartyResult
	}

	return &Result{
		ID:              uuid.NewString(),
		Method:          method,
		Quota:           quota,
		ComputedAt:      time.Now().UTC(),
		Parties:         parties,
		SeatsAssigned:   assigned,
		UnassignedSeats: remaining,
	}, nil
}

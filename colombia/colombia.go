// Copyright (c) 2025 Juan Giraldo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package colombia

import (
	"sort"

	"github.com/jpgiraldo/cuociente/allocator"
)

// ElectionKind identifies a Colombian election type.
type ElectionKind string

const (
	Senado   ElectionKind = "senado"
	Camara   ElectionKind = "camara"
	Asamblea ElectionKind = "asamblea"
	Concejo  ElectionKind = "concejo"
	Alcaldia ElectionKind = "alcaldia"
)

// Kinds lists all election kinds in menu order.
var Kinds = []ElectionKind{Senado, Camara, Asamblea, Concejo, Alcaldia}

type kindConfig struct {
	seats     int64 // 0 means the caller must supply a seat count
	threshold float64
	method    allocator.Method
}

var configs = map[ElectionKind]kindConfig{
	Senado:   {seats: 100, threshold: 0.03, method: allocator.MethodHare},
	Camara:   {seats: 166, threshold: 0.03, method: allocator.MethodHare},
	Asamblea: {seats: 0, threshold: 0.03, method: allocator.MethodHare}, // varies by department
	Concejo:  {seats: 0, threshold: 0.03, method: allocator.MethodHare}, // varies by municipality
	Alcaldia: {seats: 1, threshold: 0.50},                               // absolute majority, no quota
}

// Calculator applies Colombian election rules (per-kind seat counts, the 3%
// electoral threshold, absolute majority for mayor races) on top of the
// largest-remainder allocator.
type Calculator struct {
	Kind       ElectionKind
	TotalVotes int64
	Seats      int64
	Threshold  float64

	method  allocator.Method
	parties []allocator.Party
}

// NewCalculator builds a Calculator for the given election kind.
// customSeats is required for asamblea and concejo races, where the seat
// count depends on the territory; for other kinds it overrides the default
// when positive.
func NewCalculator(kind ElectionKind, totalVotes int64, customSeats int64) (*Calculator, error) {
	cfg, ok := configs[kind]
	if !ok {
		return nil, &allocator.ValidationError{Msg: "unknown election kind: " + string(kind)}
	}
	if totalVotes <= 0 {
		return nil, &allocator.ValidationError{Msg: "total valid votes must be positive"}
	}

	seats := cfg.seats
	if customSeats > 0 {
		seats = customSeats
	}
	if seats <= 0 {
		return nil, &allocator.ValidationError{
			Msg: "election kind " + string(kind) + " requires an explicit seat count",
		}
	}

	return &Calculator{
		Kind:       kind,
		TotalVotes: totalVotes,
		Seats:      seats,
		Threshold:  cfg.threshold,
		method:     cfg.method,
	}, nil
}

// AddParty registers a party or, for mayor races, a candidate.
func (c *Calculator) AddParty(name string, votes int64) error {
	if name == "" {
		return &allocator.ValidationError{Msg: "party name must not be empty"}
	}
	if votes < 0 {
		return &allocator.ValidationError{Msg: "party " + name + " has negative votes"}
	}
	for _, p := range c.parties {
		if p.Name == name {
			return &allocator.ValidationError{Msg: "party " + name + " already added"}
		}
	}
	c.parties = append(c.parties, allocator.Party{Name: name, Votes: votes})
	return nil
}

// Qualified splits the registered parties into those at or above the
// threshold and those below it, preserving insertion order.
func (c *Calculator) Qualified() (in, out []allocator.Party) {
	minVotes := float64(c.TotalVotes) * c.Threshold
	for _, p := range c.parties {
		if float64(p.Votes) >= minVotes {
			in = append(in, p)
		} else {
			out = append(out, p)
		}
	}
	return in, out
}

// DisqualifiedParty is a party below the electoral threshold. Percent is
// against total valid votes.
type DisqualifiedParty struct {
	Name    string  `json:"name"`
	Votes   int64   `json:"votes"`
	Percent float64 `json:"percent"`
}

// Outcome is the result of a seat-distributing Colombian election.
// Result is nil when no party reached the threshold.
type Outcome struct {
	Kind         ElectionKind        `json:"kind"`
	TotalVotes   int64               `json:"total_votes"`
	Seats        int64               `json:"seats"`
	Threshold    float64             `json:"threshold"`
	Method       allocator.Method    `json:"method"`
	Result       *allocator.Result   `json:"result,omitempty"`
	Disqualified []DisqualifiedParty `json:"disqualified"`
}

// Allocate distributes seats under Colombian rules: parties below the
// threshold are excluded, the quota is computed over qualified votes only,
// and the rest follows the largest-remainder algorithm. Mayor races use
// Mayor instead.
func (c *Calculator) Allocate() (*Outcome, error) {
	if c.Kind == Alcaldia {
		return nil, &allocator.ValidationError{Msg: "alcaldía races use absolute majority; call Mayor"}
	}
	if len(c.parties) == 0 {
		return nil, &allocator.ValidationError{Msg: "no parties added"}
	}

	qualified, excluded := c.Qualified()

	out := &Outcome{
		Kind:       c.Kind,
		TotalVotes: c.TotalVotes,
		Seats:      c.Seats,
		Threshold:  c.Threshold,
		Method:     c.method,
	}
	for _, p := range excluded {
		out.Disqualified = append(out.Disqualified, DisqualifiedParty{
			Name:    p.Name,
			Votes:   p.Votes,
			Percent: float64(p.Votes) / float64(c.TotalVotes) * 100,
		})
	}

	if len(qualified) == 0 {
		return out, nil
	}

	var qualifiedVotes int64
	for _, p := range qualified {
		qualifiedVotes += p.Votes
	}

	a, err := allocator.New(qualifiedVotes, c.Seats)
	if err != nil {
		return nil, err
	}
	for _, p := range qualified {
		if err := a.AddParty(p.Name, p.Votes); err != nil {
			return nil, err
		}
	}

	res, err := a.Allocate(c.method)
	if err != nil {
		return nil, err
	}

	// The quota base is the qualified vote, but reported percentages are
	// always against total valid votes.
	for i := range res.Parties {
		res.Parties[i].Percent = float64(res.Parties[i].Votes) / float64(c.TotalVotes) * 100
	}

	out.Result = res
	return out, nil
}

// MayorCandidate is a ranked candidate in a mayor race.
type MayorCandidate struct {
	Name    string  `json:"name"`
	Votes   int64   `json:"votes"`
	Percent float64 `json:"percent"`
}

// MayorOutcome is the result of an alcaldía race. Winner is empty and
// Runoff true when no candidate reached absolute majority.
type MayorOutcome struct {
	TotalVotes  int64            `json:"total_votes"`
	NeededVotes int64            `json:"needed_votes"`
	Candidates  []MayorCandidate `json:"candidates"`
	Winner      string           `json:"winner,omitempty"`
	Runoff      bool             `json:"runoff"`
}

// Mayor decides an alcaldía race by absolute majority: the leading
// candidate wins outright with strictly more than half the valid votes,
// otherwise a runoff is required.
func (c *Calculator) Mayor() (*MayorOutcome, error) {
	if c.Kind != Alcaldia {
		return nil, &allocator.ValidationError{Msg: "Mayor applies only to alcaldía races"}
	}
	if len(c.parties) == 0 {
		return nil, &allocator.ValidationError{Msg: "no candidates added"}
	}

	ranked := make([]allocator.Party, len(c.parties))
	copy(ranked, c.parties)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Votes > ranked[j].Votes
	})

	out := &MayorOutcome{
		TotalVotes:  c.TotalVotes,
		NeededVotes: c.TotalVotes/2 + 1,
	}
	for _, p := range ranked {
		out.Candidates = append(out.Candidates, MayorCandidate{
			Name:    p.Name,
			Votes:   p.Votes,
			Percent: float64(p.Votes) / float64(c.TotalVotes) * 100,
		})
	}

	if float64(ranked[0].Votes) > float64(c.TotalVotes)/2 {
		out.Winner = ranked[0].Name
	} else {
		out.Runoff = true
	}
	return out, nil
}

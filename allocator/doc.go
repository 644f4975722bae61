// Copyright (c) 2025 Juan Giraldo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package allocator implements largest-remainder seat allocation with the Hare
and Droop quotas, as used in Colombian elections (cuociente electoral).

# Usage

Build an Allocator with the election totals, register parties, then allocate:

	a, err := allocator.New(1_000_000, 10)
	if err != nil { ... }
	a.AddParty("Partido Liberal", 350_000)
	a.AddParty("Partido Conservador", 280_000)
	res, err := a.Allocate(allocator.MethodHare)

# Algorithm

Allocation happens in two phases:

 1. Initial assignment: each party receives floor(votes / quota) seats.
    The leftover votes (votes - seats*quota) are its remainder.
 2. Bonus assignment: seats not covered by phase 1 go one each to the
    parties with the largest remainders, until seats run out or every
    party has received a bonus seat.

When the seats to distribute exceed what one bonus seat per party can cover,
the surplus is reported in Result.UnassignedSeats instead of being
redistributed.

# Quota Methods

  - Hare:  totalVotes / totalSeats
  - Droop: totalVotes / (totalSeats + 1) + 1

The Droop quota is always strictly larger than the Hare quota for the same
inputs.

# Ordering

Parties keep insertion order, and every sort in the package uses an explicit
multi-key comparator ending in that order, so ties resolve the same way on
every run. Result.Parties is ordered by final seats descending, remainder
descending, insertion order.

# Errors

All invalid input (non-positive totals, empty or duplicate party names,
negative votes, unknown method, allocation with no parties) produces a
*ValidationError, raised at the point of the bad input. The package never
coerces or retries.
*/
package allocator

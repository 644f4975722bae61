// Copyright (c) 2025 Juan Giraldo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package colombia layers Colombian election rules on top of the
largest-remainder allocator.

# Election Kinds

	senado    100 seats, 3% threshold, Hare quota
	camara    166 seats, 3% threshold, Hare quota
	asamblea  seats vary by department, 3% threshold, Hare quota
	concejo   seats vary by municipality, 3% threshold, Hare quota
	alcaldia  single winner by absolute majority (50% + 1 vote)

Asamblea and concejo races require an explicit seat count:

	c, err := colombia.NewCalculator(colombia.Concejo, totalVotes, 19)

# Threshold

Parties below the threshold are excluded before allocation, and the quota
is computed over the qualified vote only. Excluded parties still appear in
the Outcome so reports can list them. Reported percentages are always
against total valid votes, not the qualified vote.

# Mayor Races

Alcaldía races never distribute seats. The leading candidate wins with
strictly more than half the valid votes; otherwise MayorOutcome.Runoff is
set and no winner is declared.
*/
package colombia

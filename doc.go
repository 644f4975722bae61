// Copyright (c) 2025 Juan Giraldo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the cuociente CLI.

Cuociente computes electoral seat allocation with the Hare and Droop quota
methods as used in Colombian elections (cuociente electoral), and prints a
formatted distribution report.

# Running

With no flags, the CLI runs a predefined example and prints the Hare and
Droop reports side by side:

	go run .

The example totals can be overridden:

	go run . -m hare -votes 1000000 -seats 10

Interactive data entry:

	go run . -i

Colombian election rules (per-kind seat counts, 3% threshold, absolute
majority for mayor races):

	go run . -colombia
	go run . -colombia -i

# Configuration

Flags fall back to environment variables (METHOD, TOTAL_VOTES, SEATS),
loaded from an optional .env file. See the cliparse package.

# Architecture

The CLI is a thin wrapper over small packages:

  - allocator: largest-remainder seat allocation (the core)
  - colombia: Colombian election rules layered on the allocator
  - report: fixed-layout textual reports with formatted numbers
  - prompt: interactive data entry over io.Reader/io.Writer
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main

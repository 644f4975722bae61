// Copyright (c) 2025 Juan Giraldo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Interactive: run interactive data entry instead of the examples
  - Colombia: apply Colombian election rules
  - Method: quota method for the example run ("hare", "droop", or empty
    for a hare/droop comparison)
  - TotalVotes, Seats: override the example totals (must come together)

# CLI Flags

	-i          Interactive data entry
	-colombia   Colombian election rules
	-m          Quota method (hare or droop)
	-votes      Total valid votes for the example run
	-seats      Total seats for the example run

# Environment Variables

Flags fall back to environment variables, loaded from an optional .env
file via godotenv:

	METHOD      → -m
	TOTAL_VOTES → -votes
	SEATS       → -seats

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if Method is neither "hare" nor "droop", or if
only one of -votes/-seats is given.

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}
*/
package cliparse

package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Interactive bool
	Colombia    bool
	Method      string
	TotalVotes  int64
	Seats       int64
}

// ParseFlags validates flags and resolves the run mode
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// Optional .env for local workflows
	_ = godotenv.Load()

	fs := flag.NewFlagSet("cuociente", flag.ContinueOnError)

	fs.BoolVar(&cfg.Interactive, "i", false, "Interactive data entry")
	fs.BoolVar(&cfg.Colombia, "colombia", false, "Apply Colombian election rules (types, thresholds)")
	fs.StringVar(&cfg.Method, "m", "", "Quota method for the example run (hare or droop)")
	fs.Int64Var(&cfg.TotalVotes, "votes", 0, "Total valid votes for the example run")
	fs.Int64Var(&cfg.Seats, "seats", 0, "Total seats for the example run")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Method == "" {
		cfg.Method = os.Getenv("METHOD")
	}
	if cfg.Method != "" && cfg.Method != "hare" && cfg.Method != "droop" {
		return Config{}, errors.New("method must be hare or droop")
	}

	if cfg.TotalVotes == 0 {
		if v := os.Getenv("TOTAL_VOTES"); v != "" {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return Config{}, errors.New("invalid TOTAL_VOTES env variable")
			}
			cfg.TotalVotes = n
		}
	}
	if cfg.Seats == 0 {
		if v := os.Getenv("SEATS"); v != "" {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return Config{}, errors.New("invalid SEATS env variable")
			}
			cfg.Seats = n
		}
	}

	// Overriding only one of the example totals leaves the run ambiguous
	if (cfg.TotalVotes == 0) != (cfg.Seats == 0) {
		return Config{}, errors.New("-votes and -seats must be provided together")
	}

	return cfg, nil
}

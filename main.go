package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/jpgiraldo/cuociente/allocator"
	"github.com/jpgiraldo/cuociente/cliparse"
	"github.com/jpgiraldo/cuociente/colombia"
	"github.com/jpgiraldo/cuociente/prompt"
	"github.com/jpgiraldo/cuociente/report"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if cfg.Interactive {
		if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			slog.Warn("stdin is not a terminal; reading scripted input")
		}
		err = runInteractive(cfg)
	} else {
		err = runExamples(cfg)
	}
	if err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func runInteractive(cfg cliparse.Config) error {
	s := prompt.NewSession(os.Stdin, os.Stdout)

	if cfg.Colombia {
		c, err := s.RunColombia()
		if err != nil {
			return err
		}
		if c.Kind == colombia.Alcaldia {
			out, err := c.Mayor()
			if err != nil {
				return err
			}
			fmt.Print(report.RenderMayor(out))
			return nil
		}
		out, err := c.Allocate()
		if err != nil {
			return err
		}
		fmt.Print(report.RenderColombia(out))
		return nil
	}

	a, method, err := s.Run()
	if err != nil {
		return err
	}
	res, err := a.Allocate(method)
	if err != nil {
		return err
	}
	fmt.Print(report.Render(res, a.TotalVotes(), a.TotalSeats()))
	return nil
}

func runExamples(cfg cliparse.Config) error {
	if cfg.Colombia {
		return runColombiaExamples()
	}

	totalVotes, totalSeats := int64(1_000_000), int64(10)
	if cfg.TotalVotes > 0 {
		totalVotes, totalSeats = cfg.TotalVotes, cfg.Seats
	}

	a, err := allocator.New(totalVotes, totalSeats)
	if err != nil {
		return err
	}
	for _, p := range exampleParties {
		if err := a.AddParty(p.Name, p.Votes); err != nil {
			return err
		}
	}

	methods := []allocator.Method{allocator.MethodHare, allocator.MethodDroop}
	if cfg.Method != "" {
		methods = []allocator.Method{allocator.Method(cfg.Method)}
	}

	fmt.Println("EJEMPLO DE CÁLCULO DE CUOCIENTE ELECTORAL COLOMBIANO")
	for _, m := range methods {
		res, err := a.Allocate(m)
		if err != nil {
			return err
		}
		fmt.Print(report.Render(res, a.TotalVotes(), a.TotalSeats()))
	}
	return nil
}

func runColombiaExamples() error {
	fmt.Println("EJEMPLO: ELECCIÓN DE SENADO - COLOMBIA")

	senate, err := colombia.NewCalculator(colombia.Senado, 25_000_000, 0)
	if err != nil {
		return err
	}
	for _, p := range senateExample {
		if err := senate.AddParty(p.Name, p.Votes); err != nil {
			return err
		}
	}
	out, err := senate.Allocate()
	if err != nil {
		return err
	}
	fmt.Print(report.RenderColombia(out))

	fmt.Println("\nEJEMPLO: ELECCIÓN DE ALCALDÍA - COLOMBIA")

	mayor, err := colombia.NewCalculator(colombia.Alcaldia, 500_000, 0)
	if err != nil {
		return err
	}
	for _, c := range mayorExample {
		if err := mayor.AddParty(c.Name, c.Votes); err != nil {
			return err
		}
	}
	mout, err := mayor.Mayor()
	if err != nil {
		return err
	}
	fmt.Print(report.RenderMayor(mout))
	return nil
}

// Demo data for the example runs; scenario inputs always come through the
// constructors, never package state inside the core packages.
var exampleParties = []allocator.Party{
	{Name: "Partido Liberal", Votes: 350_000},
	{Name: "Partido Conservador", Votes: 280_000},
	{Name: "Partido Verde", Votes: 150_000},
	{Name: "Centro Democrático", Votes: 120_000},
	{Name: "Polo Democrático", Votes: 80_000},
	{Name: "Otros partidos", Votes: 20_000},
}

var senateExample = []allocator.Party{
	{Name: "Partido Liberal", Votes: 8_500_000},
	{Name: "Partido Conservador", Votes: 7_200_000},
	{Name: "Centro Democrático", Votes: 3_800_000},
	{Name: "Partido Verde", Votes: 2_200_000},
	{Name: "Polo Democrático", Votes: 1_800_000},
	{Name: "FARC", Votes: 800_000},
	{Name: "Partido de la U", Votes: 600_000},
	{Name: "Cambio Radical", Votes: 400_000},
	{Name: "Otros partidos menores", Votes: 2_000_000},
}

var mayorExample = []allocator.Party{
	{Name: "Juan Pérez", Votes: 180_000},
	{Name: "María García", Votes: 160_000},
	{Name: "Carlos López", Votes: 120_000},
	{Name: "Ana Rodríguez", Votes: 40_000},
}

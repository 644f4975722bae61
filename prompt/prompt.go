// Copyright (c) 2025 Juan Giraldo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jpgiraldo/cuociente/allocator"
	"github.com/jpgiraldo/cuociente/colombia"
)

// ErrInputClosed is returned when the input stream ends before the session
// collected enough data to allocate.
var ErrInputClosed = errors.New("input closed before data entry finished")

// Session drives interactive data entry over an arbitrary reader/writer
// pair, so it works the same on a terminal and under test.
type Session struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{in: bufio.NewScanner(in), out: out}
}

// Run collects totals, parties, and a method choice, returning the loaded
// allocator and the chosen method. The caller allocates and renders.
func (s *Session) Run() (*allocator.Allocator, allocator.Method, error) {
	fmt.Fprintln(s.out, "CALCULADORA DE CUOCIENTE ELECTORAL COLOMBIANO")
	fmt.Fprintln(s.out, strings.Repeat("=", 60))

	totalVotes, err := s.readInt64("Ingrese el total de votos válidos: ")
	if err != nil {
		return nil, "", err
	}
	totalSeats, err := s.readInt64("Ingrese el número total de curules: ")
	if err != nil {
		return nil, "", err
	}

	a, err := allocator.New(totalVotes, totalSeats)
	if err != nil {
		return nil, "", err
	}

	fmt.Fprintln(s.out, "\nIngrese los partidos y sus votos (deje nombre vacío para terminar):")
	if err := s.collectParties("partido", a.AddParty); err != nil {
		return nil, "", err
	}
	if len(a.Parties()) == 0 {
		return nil, "", &allocator.ValidationError{Msg: "debe ingresar al menos un partido"}
	}

	method, err := s.readMethod()
	if err != nil {
		return nil, "", err
	}
	return a, method, nil
}

// RunColombia collects an election kind, totals, and parties under
// Colombian rules. Seat counts are requested only for the kinds where they
// vary by territory.
func (s *Session) RunColombia() (*colombia.Calculator, error) {
	fmt.Fprintln(s.out, "CALCULADORA DE CUOCIENTE ELECTORAL - COLOMBIA")
	fmt.Fprintln(s.out, strings.Repeat("=", 70))

	fmt.Fprintln(s.out, "\nTipos de elección disponibles:")
	for i, kind := range colombia.Kinds {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, strings.ToUpper(string(kind)))
	}

	var kind colombia.ElectionKind
	for {
		n, err := s.readInt64(fmt.Sprintf("\nSeleccione el tipo de elección (1-%d): ", len(colombia.Kinds)))
		if err != nil {
			return nil, err
		}
		if n >= 1 && n <= int64(len(colombia.Kinds)) {
			kind = colombia.Kinds[n-1]
			break
		}
		fmt.Fprintln(s.out, "Error: opción fuera de rango")
	}

	totalVotes, err := s.readInt64("\nIngrese el total de votos válidos: ")
	if err != nil {
		return nil, err
	}

	var customSeats int64
	if kind == colombia.Asamblea || kind == colombia.Concejo {
		customSeats, err = s.readInt64("Ingrese el número de curules: ")
		if err != nil {
			return nil, err
		}
	}

	c, err := colombia.NewCalculator(kind, totalVotes, customSeats)
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(s.out, "\nIngrese los partidos/candidatos y sus votos:")
	if err := s.collectParties("partido/candidato", c.AddParty); err != nil {
		return nil, err
	}
	return c, nil
}

// collectParties loops name/votes pairs until a blank name. Bad numbers and
// rejected parties are reported and the entry retried, matching the
// fail-and-reprompt behavior of the terminal workflow.
func (s *Session) collectParties(noun string, add func(string, int64) error) error {
	for {
		name, ok := s.readLine(fmt.Sprintf("\nNombre del %s (o Enter para terminar): ", noun))
		if !ok {
			return nil
		}
		if name == "" {
			return nil
		}

		votes, err := s.readInt64(fmt.Sprintf("Votos de '%s': ", name))
		if err != nil {
			return err
		}
		if err := add(name, votes); err != nil {
			var verr *allocator.ValidationError
			if errors.As(err, &verr) {
				fmt.Fprintf(s.out, "Error: %s\n", verr.Msg)
				continue
			}
			return err
		}
	}
}

func (s *Session) readMethod() (allocator.Method, error) {
	fmt.Fprintln(s.out, "\nMétodos disponibles:")
	fmt.Fprintln(s.out, "1. Hare (más común en Colombia)")
	fmt.Fprintln(s.out, "2. Droop")

	choice, ok := s.readLine("Seleccione el método (1 o 2): ")
	if !ok {
		return "", ErrInputClosed
	}
	if choice == "2" {
		return allocator.MethodDroop, nil
	}
	return allocator.MethodHare, nil
}

func (s *Session) readLine(promptText string) (string, bool) {
	fmt.Fprint(s.out, promptText)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// readInt64 re-prompts until it parses a number or the input ends.
func (s *Session) readInt64(promptText string) (int64, error) {
	for {
		line, ok := s.readLine(promptText)
		if !ok {
			return 0, ErrInputClosed
		}
		n, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			fmt.Fprintln(s.out, "Error: ingrese un número válido")
			continue
		}
		return n, nil
	}
}

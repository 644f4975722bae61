// Copyright (c) 2025 Juan Giraldo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/jpgiraldo/cuociente/allocator"
	"github.com/jpgiraldo/cuociente/colombia"
)

const (
	generalWidth  = 60
	colombiaWidth = 70
)

// Render produces the textual report for a plain allocation: header banner,
// general data, per-party blocks ordered as in the result, summary footer.
func Render(res *allocator.Result, totalVotes, totalSeats int64) string {
	var b strings.Builder
	banner := strings.Repeat("=", generalWidth)
	rule := strings.Repeat("-", generalWidth)

	fmt.Fprintf(&b, "\n%s\n", banner)
	fmt.Fprintf(&b, "REPORTE DE DISTRIBUCIÓN DE CURULES - COLOMBIA\n")
	fmt.Fprintf(&b, "%s\n\n", banner)

	fmt.Fprintf(&b, "DATOS GENERALES:\n")
	fmt.Fprintf(&b, "- Total votos válidos: %s\n", humanize.Comma(totalVotes))
	fmt.Fprintf(&b, "- Total curules: %s\n", humanize.Comma(totalSeats))
	fmt.Fprintf(&b, "- Método utilizado: %s\n", strings.ToUpper(string(res.Method)))
	fmt.Fprintf(&b, "- Cuociente electoral: %s\n\n", fixed2(res.Quota))

	fmt.Fprintf(&b, "RESULTADOS POR PARTIDO:\n%s\n", rule)
	for _, p := range res.Parties {
		writePartyBlock(&b, p)
	}

	fmt.Fprintf(&b, "\nRESUMEN:\n")
	fmt.Fprintf(&b, "- Total curules asignadas: %s\n", humanize.Comma(res.SeatsAssigned))
	fmt.Fprintf(&b, "- Curules sin asignar: %s\n", humanize.Comma(res.UnassignedSeats))
	fmt.Fprintf(&b, "%s\n", banner)

	return b.String()
}

// RenderColombia produces the report for a seat-distributing Colombian
// election, including the parties excluded by the threshold.
func RenderColombia(out *colombia.Outcome) string {
	var b strings.Builder
	banner := strings.Repeat("=", colombiaWidth)
	rule := strings.Repeat("-", colombiaWidth)
	kind := strings.ToUpper(string(out.Kind))

	fmt.Fprintf(&b, "\n%s\n", banner)
	fmt.Fprintf(&b, "REPORTE DE DISTRIBUCIÓN DE CURULES - %s\n", kind)
	fmt.Fprintf(&b, "%s\n\n", banner)

	fmt.Fprintf(&b, "DATOS GENERALES:\n")
	fmt.Fprintf(&b, "- Tipo de elección: %s\n", kind)
	fmt.Fprintf(&b, "- Total votos válidos: %s\n", humanize.Comma(out.TotalVotes))
	fmt.Fprintf(&b, "- Total curules: %s\n", humanize.Comma(out.Seats))
	fmt.Fprintf(&b, "- Umbral mínimo: %.1f%%\n", out.Threshold*100)
	fmt.Fprintf(&b, "- Método: %s\n\n", strings.ToUpper(string(out.Method)))

	fmt.Fprintf(&b, "PARTIDOS QUE SUPERAN EL UMBRAL (%.1f%%):\n%s\n", out.Threshold*100, rule)
	if out.Result == nil {
		fmt.Fprintf(&b, "(ninguno)\n")
	} else {
		for _, p := range out.Result.Parties {
			writePartyBlock(&b, p)
		}
	}

	if len(out.Disqualified) > 0 {
		fmt.Fprintf(&b, "\nPARTIDOS QUE NO SUPERAN EL UMBRAL:\n%s\n", rule)
		for _, p := range out.Disqualified {
			fmt.Fprintf(&b, "%s:\n", strings.ToUpper(p.Name))
			fmt.Fprintf(&b, "  - Votos: %s (%.2f%%)\n", humanize.Comma(p.Votes), p.Percent)
			fmt.Fprintf(&b, "  - Estado: NO CALIFICA\n")
		}
	}

	var qualified int
	var assigned, unassigned int64
	if out.Result != nil {
		qualified = len(out.Result.Parties)
		assigned = out.Result.SeatsAssigned
		unassigned = out.Result.UnassignedSeats
	} else {
		unassigned = out.Seats
	}

	fmt.Fprintf(&b, "\nRESUMEN:\n")
	fmt.Fprintf(&b, "- Partidos que superan umbral: %d\n", qualified)
	fmt.Fprintf(&b, "- Partidos que no superan umbral: %d\n", len(out.Disqualified))
	fmt.Fprintf(&b, "- Total curules asignadas: %s\n", humanize.Comma(assigned))
	fmt.Fprintf(&b, "- Curules sin asignar: %s\n", humanize.Comma(unassigned))
	fmt.Fprintf(&b, "%s\n", banner)

	return b.String()
}

// RenderMayor produces the report for an alcaldía race: ranked candidates
// and the winner or runoff verdict.
func RenderMayor(out *colombia.MayorOutcome) string {
	var b strings.Builder
	banner := strings.Repeat("=", colombiaWidth)
	rule := strings.Repeat("-", colombiaWidth)

	fmt.Fprintf(&b, "\n%s\n", banner)
	fmt.Fprintf(&b, "REPORTE DE ELECCIÓN DE ALCALDÍA - COLOMBIA\n")
	fmt.Fprintf(&b, "%s\n\n", banner)

	fmt.Fprintf(&b, "DATOS GENERALES:\n")
	fmt.Fprintf(&b, "- Tipo de elección: ALCALDÍA\n")
	fmt.Fprintf(&b, "- Total votos válidos: %s\n", humanize.Comma(out.TotalVotes))
	fmt.Fprintf(&b, "- Umbral para mayoría absoluta: 50%% + 1 voto\n")
	fmt.Fprintf(&b, "- Votos necesarios para ganar: %s\n\n", humanize.Comma(out.NeededVotes))

	fmt.Fprintf(&b, "RESULTADOS:\n%s\n", rule)
	for i, c := range out.Candidates {
		estado := "PERDEDOR"
		if c.Name == out.Winner {
			estado = "GANADOR"
		}
		fmt.Fprintf(&b, "%d. %s:\n", i+1, strings.ToUpper(c.Name))
		fmt.Fprintf(&b, "    - Votos: %s (%.2f%%)\n", humanize.Comma(c.Votes), c.Percent)
		fmt.Fprintf(&b, "    - Estado: %s\n", estado)
	}

	if out.Runoff {
		fmt.Fprintf(&b, "\nRESULTADO: SEGUNDA VUELTA REQUERIDA\n")
		fmt.Fprintf(&b, "Ningún candidato obtuvo mayoría absoluta (50%% + 1 voto)\n")
	} else {
		fmt.Fprintf(&b, "\nRESULTADO: GANADOR POR MAYORÍA ABSOLUTA\n")
		fmt.Fprintf(&b, "%s es el alcalde electo\n", strings.ToUpper(out.Winner))
	}
	fmt.Fprintf(&b, "%s\n", banner)

	return b.String()
}

func writePartyBlock(b *strings.Builder, p allocator.PartyResult) {
	fmt.Fprintf(b, "%s:\n", strings.ToUpper(p.Name))
	fmt.Fprintf(b, "  - Votos: %s (%.2f%%)\n", humanize.Comma(p.Votes), p.Percent)
	fmt.Fprintf(b, "  - Curules asignadas: %d\n", p.Seats)
	fmt.Fprintf(b, "  - Residuo: %s\n", fixed2(p.Remainder))
}

// fixed2 formats with thousands separators and exactly two decimals.
func fixed2(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}

// Copyright (c) 2025 Juan Giraldo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package prompt implements the interactive data-entry frontend.

A Session reads from any io.Reader and writes prompts to any io.Writer, so
the same code path serves the terminal and scripted tests:

	s := prompt.NewSession(os.Stdin, os.Stdout)
	a, method, err := s.Run()
	res, err := a.Allocate(method)

Run collects plain allocation inputs (totals, parties, quota method).
RunColombia additionally asks for the election kind and, for asambleas and
concejos, the territory's seat count.

Unparsable numbers and rejected parties are reported on the output writer
and the entry re-prompted; a blank party name ends data entry.
*/
package prompt

// Copyright (c) 2025 Juan Giraldo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package report renders allocation results as fixed-layout textual reports.

All rounding happens here: the allocator stores quotas, remainders, and
percentages unrounded, and this package formats them with thousands
separators and two decimals for display.

Three renderers cover the three outcome shapes:

  - Render: plain allocation (header banner, per-party blocks, summary)
  - RenderColombia: seat-distributing Colombian races, with the threshold
    section listing excluded parties
  - RenderMayor: alcaldía races, with ranked candidates and the winner or
    runoff verdict
*/
package report
